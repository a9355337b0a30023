package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeSurvivorSpaceSizeSkipsEntirelyWhenNotReady(t *testing.T) {
	a := newTestPolicy(t)
	survivor0 := a.survivorSize
	tenuring0 := a.tenuringThreshold
	a.avgSurvived.Sample(float64(a.bounds.MaxSurvivorSize) * 4)

	a.computeSurvivorSpaceSizeAndThreshold(true)

	require.Equal(t, survivor0, a.survivorSize)
	require.Equal(t, tenuring0, a.tenuringThreshold)
}

func TestComputeSurvivorSpaceSizeTracksAvgSurvived(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	a.avgSurvived.Sample(2 << 20)

	a.computeSurvivorSpaceSizeAndThreshold(false)

	require.GreaterOrEqual(t, a.survivorSize, a.bounds.MinSpaceSize)
	require.LessOrEqual(t, a.survivorSize, a.bounds.MaxSurvivorSize)
}

func TestComputeSurvivorSpaceSizeClampsToMaxSurvivorSize(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	a.avgSurvived.Sample(float64(a.bounds.MaxSurvivorSize) * 4)

	a.computeSurvivorSpaceSizeAndThreshold(false)

	require.Equal(t, a.bounds.MaxSurvivorSize, a.survivorSize)
}

func TestComputeSurvivorSpaceOverflowLowersTenuringThreshold(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	before := a.tenuringThreshold

	a.computeSurvivorSpaceSizeAndThreshold(true)

	require.Equal(t, before-1, a.tenuringThreshold)
}

func TestComputeSurvivorSpaceSizeRaisesThresholdWhenMajorCostDominates(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	for i := 0; i < a.calib.TimeWeight; i++ {
		a.avgMajorGcCost.Sample(0.5)
	}
	before := a.tenuringThreshold

	a.computeSurvivorSpaceSizeAndThreshold(false)

	require.Equal(t, before+1, a.tenuringThreshold)
}

func TestComputeSurvivorSpaceSizeLowersThresholdWhenMinorCostDominates(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	for i := 0; i < a.calib.TimeWeight; i++ {
		a.avgMinorGcCost.Sample(0.5)
	}
	before := a.tenuringThreshold

	a.computeSurvivorSpaceSizeAndThreshold(false)

	require.Equal(t, before-1, a.tenuringThreshold)
}

func TestTenuringThresholdNeverExceedsMaxSurvivorSpacesPlusOne(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	a.tenuringThreshold = a.bounds.MaxSurvivorSpaces + 1
	for i := 0; i < a.calib.TimeWeight; i++ {
		a.avgMajorGcCost.Sample(0.5)
	}

	a.computeSurvivorSpaceSizeAndThreshold(false)

	require.LessOrEqual(t, a.tenuringThreshold, a.bounds.MaxSurvivorSpaces+1)
}

func TestTenuringThresholdNeverGoesBelowOne(t *testing.T) {
	a := newTestPolicy(t)
	a.youngGenPolicyIsReady = true
	a.tenuringThreshold = 1

	a.computeSurvivorSpaceSizeAndThreshold(true)

	require.GreaterOrEqual(t, a.tenuringThreshold, 1)
}
