package avg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaddedAverageIdempotent(t *testing.T) {
	p := NewPaddedAverage(10, 3, false)
	for i := 0; i < 1000; i++ {
		p.Sample(100)
	}
	require.InDelta(t, 100, p.Average(), 1e-6)
	require.InDelta(t, 0, p.Deviation(), 1e-6)
	require.InDelta(t, 100, p.PaddedAverage(), 1e-6)
}

func TestPaddedAverageTracksDeviation(t *testing.T) {
	p := NewPaddedAverage(25, 1, false)
	for i := 0; i < 50; i++ {
		p.Sample(10)
		p.Sample(20)
	}
	require.Greater(t, p.Deviation(), 0.0)
	require.Greater(t, p.PaddedAverage(), p.Average())
}

func TestPaddedAverageClampsNegativeDeviation(t *testing.T) {
	clamped := NewPaddedAverage(25, 3, true)
	unclamped := NewPaddedAverage(25, 3, false)

	for i := 0; i < 20; i++ {
		clamped.Sample(100)
		unclamped.Sample(100)
	}
	// A single low sample: unclamped still records the |x-mean| deviation;
	// clamped records zero deviation because x is below the new mean.
	clamped.Sample(1)
	unclamped.Sample(1)

	require.Less(t, clamped.Deviation(), unclamped.Deviation())
}
