package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUpDown(t *testing.T) {
	require.Equal(t, int64(64), AlignUp(50, 64))
	require.Equal(t, int64(64), AlignUp(64, 64))
	require.Equal(t, int64(0), AlignDown(50, 64))
	require.Equal(t, int64(64), AlignDown(64, 64))
	require.True(t, IsAligned(128, 64))
	require.False(t, IsAligned(100, 64))
}

func TestSaturatingSubNeverGoesNegative(t *testing.T) {
	require.Equal(t, int64(0), SaturatingSub(10, 20))
	require.Equal(t, int64(0), SaturatingSub(10, 10))
	require.Equal(t, int64(5), SaturatingSub(10, 5))
}

func TestClamp(t *testing.T) {
	require.Equal(t, int64(5), Clamp(1, 5, 10))
	require.Equal(t, int64(10), Clamp(99, 5, 10))
	require.Equal(t, int64(7), Clamp(7, 5, 10))
}

func TestSizeBoundsValidate(t *testing.T) {
	ok := SizeBounds{
		Alignment: 4096, MinSpaceSize: 4096,
		MaxEdenSize: 1 << 20, MaxSurvivorSize: 1 << 18, MaxOldSize: 1 << 22,
		MaxSurvivorSpaces: 15,
	}
	require.True(t, ok.Validate())

	bad := ok
	bad.MaxSurvivorSpaces = 0
	require.False(t, bad.Validate())
}
