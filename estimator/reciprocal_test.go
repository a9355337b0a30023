package estimator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateZeroBeforeTwoDistinctSamples(t *testing.T) {
	r := New(25)
	require.Equal(t, float64(0), r.Estimate(100))
	require.Equal(t, float64(0), r.Slope(100))

	r.Sample(100, 0.5)
	require.Equal(t, float64(0), r.Estimate(100))

	r.Sample(100, 0.6) // same x again: still only one distinct x
	require.Equal(t, float64(0), r.Estimate(100))
}

func TestEstimateFitsDecreasingCost(t *testing.T) {
	r := New(25)
	// Cost decreases as size increases: y = 20/x.
	for i := 0; i < 10; i++ {
		r.Sample(100, 0.20)
		r.Sample(200, 0.10)
		r.Sample(400, 0.05)
	}
	require.Less(t, r.Slope(200), 0.0)
	// Estimate at a size between samples should be between the extremes.
	est := r.Estimate(200)
	require.Greater(t, est, 0.0)
}

func TestEstimateDeterministic(t *testing.T) {
	build := func() *ReciprocalLeastSquares {
		r := New(25)
		r.Sample(50, 0.3)
		r.Sample(150, 0.1)
		r.Sample(250, 0.05)
		return r
	}
	r1, r2 := build(), build()
	require.Equal(t, r1.Estimate(150), r2.Estimate(150))
	require.Equal(t, r1.Slope(150), r2.Slope(150))
}

func TestSignificantlyReducesCost(t *testing.T) {
	r := New(25)
	for i := 0; i < 10; i++ {
		r.Sample(100, 0.30)
		r.Sample(200, 0.10)
		r.Sample(400, 0.02)
	}
	// Doubling from 50 to 100 raises estimated throughput from about 0.33
	// to about 0.70, more than the 0.8 tradeoff demands of a doubling.
	require.True(t, r.SignificantlyReducesCost(50, 50, 0.8))
}

func TestSignificantlyReducesCostRejectsZeroOrigin(t *testing.T) {
	r := New(25)
	require.False(t, r.SignificantlyReducesCost(0, 100, 0.8))
}

func TestSignificantlyReducesCostMonotoneInSlopeMagnitude(t *testing.T) {
	weak := New(25)
	strong := New(25)
	for i := 0; i < 10; i++ {
		weak.Sample(100, 0.15)
		weak.Sample(200, 0.12)
		weak.Sample(400, 0.10)

		strong.Sample(100, 0.30)
		strong.Sample(200, 0.10)
		strong.Sample(400, 0.02)
	}
	require.Less(t, strong.Slope(200), weak.Slope(200))
	if weak.SignificantlyReducesCost(200, 200, 0.8) {
		require.True(t, strong.SignificantlyReducesCost(200, 200, 0.8))
	}
}
