package avg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedAverageWarmup(t *testing.T) {
	a := NewWeightedAverage(25)
	require.Equal(t, float64(0), a.Average())

	a.Sample(10)
	require.Equal(t, float64(10), a.Average()) // weight=1 on first sample

	a.Sample(20)
	require.InDelta(t, 15, a.Average(), 1e-9) // weight=2: (1*10+20)/2
}

func TestWeightedAverageIdempotent(t *testing.T) {
	a := NewWeightedAverage(10)
	for i := 0; i < 1000; i++ {
		a.Sample(42)
	}
	require.InDelta(t, 42, a.Average(), 1e-9)
}

func TestWeightedAverageConvergesRegardlessOfHistory(t *testing.T) {
	a := NewWeightedAverage(5)
	a.Sample(0)
	a.Sample(100)
	a.Sample(0)
	a.Sample(100)
	for i := 0; i < 500; i++ {
		a.Sample(7)
	}
	require.InDelta(t, 7, a.Average(), 1e-6)
}

func TestWeightedAverageReset(t *testing.T) {
	a := NewWeightedAverage(5)
	a.Sample(99)
	a.Reset()
	require.Equal(t, float64(0), a.Average())
	a.Sample(10)
	require.Equal(t, float64(10), a.Average())
}
