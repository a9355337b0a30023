package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerAccumulatesAcrossOpenClose(t *testing.T) {
	tm := &Timer{}
	tm.Open()
	time.Sleep(2 * time.Millisecond)
	tm.Close()
	first := tm.MeasuredNanos()
	require.Greater(t, first, int64(0))

	tm.Open()
	time.Sleep(2 * time.Millisecond)
	tm.Close()
	require.Greater(t, tm.MeasuredNanos(), first)
}

func TestTimerResetZeroesAccumulator(t *testing.T) {
	tm := &Timer{}
	tm.Open()
	time.Sleep(time.Millisecond)
	tm.Close()
	require.Greater(t, tm.MeasuredNanos(), int64(0))
	tm.Reset()
	require.Equal(t, int64(0), tm.MeasuredNanos())
}

func TestTimerPeekDoesNotLoseRunningMeasurement(t *testing.T) {
	tm := &Timer{}
	tm.Open()
	time.Sleep(2 * time.Millisecond)
	mid := tm.PeekNanos()
	require.Greater(t, mid, int64(0))

	time.Sleep(2 * time.Millisecond)
	tm.Close()
	require.Greater(t, tm.MeasuredNanos(), mid)
}

func TestTimerCloseWhileClosedIsNoop(t *testing.T) {
	tm := &Timer{}
	tm.Open()
	tm.Close()
	before := tm.MeasuredNanos()
	tm.Close()
	require.Equal(t, before, tm.MeasuredNanos())
}
