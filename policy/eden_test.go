package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestComputeEdenSpaceSizeHoldsSteadyWhenGrowthWasNeverAttempted verifies
// that a zero gcCost() alone (with the policy not yet ready) does not
// trigger a footprint shrink: the growth-attempt guard failing is not
// the same as expansion being rejected, so eden must stay unchanged.
func TestComputeEdenSpaceSizeHoldsSteadyWhenGrowthWasNeverAttempted(t *testing.T) {
	a := newTestPolicy(t)
	a.edenSize = 8 << 20
	a.promoSize = 2 << 20

	before := a.edenSize
	a.computeEdenSpaceSize()

	require.Equal(t, before, a.edenSize)
}

// TestComputeEdenSpaceSizeShrinksForFootprintWhenReadyAndCostIsLow
// verifies the actual shrink condition: once ready, a mutator cost at
// or above the throughput goal (here, no GC cost sampled at all) does
// shrink eden toward minSpaceSize.
func TestComputeEdenSpaceSizeShrinksForFootprintWhenReadyAndCostIsLow(t *testing.T) {
	a := newTestPolicy(t)
	a.edenSize = 8 << 20
	a.promoSize = 2 << 20
	a.youngGenPolicyIsReady = true

	before := a.edenSize
	a.computeEdenSpaceSize()

	require.Less(t, a.edenSize, before)
	require.GreaterOrEqual(t, a.edenSize, a.bounds.MinSpaceSize)
}

func TestComputeEdenSpaceSizeExpandsWhenCostExceedsGoal(t *testing.T) {
	a := newTestPolicy(t)
	a.edenSize = 8 << 20
	a.promoSize = 2 << 20

	// Drive the minor cost average high enough that adjustedMutatorCost
	// falls below the default 0.95 throughput goal, and gcCost() > 0.
	for i := 0; i < a.calib.TimeWeight; i++ {
		a.avgMinorGcCost.Sample(0.2)
	}

	before := a.edenSize
	a.computeEdenSpaceSize()

	require.Greater(t, a.edenSize, before)
	require.LessOrEqual(t, a.edenSize, a.bounds.MaxEdenSize)
}

func TestComputeEdenSpaceSizeNeverExceedsMaxEdenSize(t *testing.T) {
	a := newTestPolicy(t)
	a.edenSize = a.bounds.MaxEdenSize
	a.promoSize = 2 << 20
	for i := 0; i < a.calib.TimeWeight; i++ {
		a.avgMinorGcCost.Sample(0.9)
	}

	a.computeEdenSpaceSize()
	require.Equal(t, a.bounds.MaxEdenSize, a.edenSize)
}

func TestComputeEdenSpaceSizeNeverShrinksBelowMinSpaceSize(t *testing.T) {
	a := newTestPolicy(t)
	a.edenSize = a.bounds.MinSpaceSize
	a.promoSize = 0

	a.computeEdenSpaceSize()
	require.Equal(t, a.bounds.MinSpaceSize, a.edenSize)
}

func TestEdenDecrementIsBetweenZeroAndEdenSize(t *testing.T) {
	a := newTestPolicy(t)
	eden := int64(16 << 20)
	full := a.edenDecrement(eden)
	require.Greater(t, full, int64(0))
	require.Less(t, full, eden)
}
