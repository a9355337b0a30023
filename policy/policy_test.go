package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sizekit/adaptivesize/heap"
)

func testBounds() heap.SizeBounds {
	return heap.SizeBounds{
		Alignment:         64 * 1024,
		MinSpaceSize:      1 << 20,
		MaxEdenSize:       64 << 20,
		MaxSurvivorSize:   8 << 20,
		MaxOldSize:        256 << 20,
		MaxSurvivorSpaces: 15,
	}
}

func newTestPolicy(t *testing.T, opts ...Option) *Adaptive {
	t.Helper()
	allOpts := append([]Option{WithSizeBounds(testBounds())}, opts...)
	return New(allOpts...)
}

func TestNewPanicsWithoutSizeBounds(t *testing.T) {
	require.Panics(t, func() { New() })
}

func TestNewDefaults(t *testing.T) {
	a := newTestPolicy(t)
	require.Equal(t, "adaptive", a.Name())
	require.Equal(t, a.calib.InitialTenuringThreshold, a.TenuringThreshold())
	require.Equal(t, testBounds().MinSpaceSize, a.EdenSize())
	require.Equal(t, testBounds().MinSpaceSize, a.SurvivorSize())
	require.Equal(t, testBounds().MinSpaceSize, a.OldSize())
	require.False(t, a.Ready())
	require.Equal(t, uint64(0), a.GCCount())
}

func TestNewHonorsInitialSizeOptions(t *testing.T) {
	a := newTestPolicy(t,
		WithInitialEdenSize(4<<20),
		WithInitialSurvivorSize(2<<20),
		WithInitialOldSize(16<<20),
	)
	require.Equal(t, int64(4<<20), a.EdenSize())
	require.Equal(t, int64(2<<20), a.SurvivorSize())
	require.Equal(t, int64(16<<20), a.OldSize())
}

func TestCountsAccumulate(t *testing.T) {
	a := newTestPolicy(t)
	a.OnCollectionBegin(false, 0, 0)
	a.OnCollectionEnd(false, heap.OnAllocation, heap.Snapshot{})
	a.OnCollectionBegin(true, 0, 0)
	a.OnCollectionEnd(true, heap.OnAllocation, heap.Snapshot{})

	counts := a.Counts()
	require.Equal(t, uint64(1), counts.Minor)
	require.Equal(t, uint64(1), counts.Major)
	require.Equal(t, uint64(2), counts.Total())
	require.Equal(t, uint64(2), a.GCCount())
}

func TestShouldCollectCompletelyNotReadyBeforeWarmup(t *testing.T) {
	a := newTestPolicy(t)
	require.False(t, a.ShouldCollectCompletely(true))
}

func TestShouldCollectCompletelyRequiresFollowingIncremental(t *testing.T) {
	a := newTestPolicy(t)
	for i := 0; i < a.calib.ReadyThreshold; i++ {
		a.OnCollectionBegin(false, 0, 0)
		a.OnCollectionEnd(false, heap.OnAllocation, heap.Snapshot{})
	}
	require.True(t, a.Ready())
	require.False(t, a.ShouldCollectCompletely(false))
}

func TestShouldCollectCompletelyTriggersOnOldSizeExceeded(t *testing.T) {
	a := newTestPolicy(t)
	for i := 0; i < a.calib.ReadyThreshold; i++ {
		a.OnCollectionBegin(false, 0, 0)
		a.OnCollectionEnd(false, heap.OnAllocation, heap.Snapshot{})
	}
	a.OnCollectionBegin(false, 0, 0)
	a.OnCollectionEnd(false, heap.OnAllocation, heap.Snapshot{
		OldGenerationAfterChunkBytes: a.OldSize() + 1,
	})
	require.True(t, a.ShouldCollectCompletely(true))
}

func TestOnCollectionBeginSamplesYoungChunkFraction(t *testing.T) {
	a := newTestPolicy(t)
	a.OnCollectionBegin(false, 3<<20, 4<<20)
	require.InDelta(t, 0.75, a.avgYoungGenAlignedChunkFraction.Average(), 1e-9)
}

func TestOnCollectionBeginSkipsChunkFractionWhenYoungChunkBytesIsZero(t *testing.T) {
	a := newTestPolicy(t)
	a.OnCollectionBegin(false, 3<<20, 0)
	require.Zero(t, a.avgYoungGenAlignedChunkFraction.Average())
}

func TestNeverCollectPolicyImplementsInterface(t *testing.T) {
	n := NewNeverCollectPolicy(1<<20, 1<<20, 4<<20, 3)
	require.Equal(t, "never-collect", n.Name())
	require.False(t, n.ShouldCollectCompletely(true))

	n.OnCollectionBegin(false, 0, 0)
	n.OnCollectionEnd(false, heap.OnAllocation, heap.Snapshot{})
	require.Equal(t, uint64(1), n.GCCount())
	require.Equal(t, int64(1<<20), n.EdenSize())
	require.Equal(t, int64(4<<20), n.OldSize())
	require.Equal(t, 3, n.TenuringThreshold())
}
