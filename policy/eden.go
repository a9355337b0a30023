package policy

import "github.com/sizekit/adaptivesize/heap"

// computeEdenSpaceSize implements spec.md §4.4.5.
func (a *Adaptive) computeEdenSpaceSize() {
	desired := a.edenSize

	useEstimator := a.youngGenChangeForMinorThroughput > a.calib.InitializingSteps
	expansionReducesCost := true
	if useEstimator {
		expansionReducesCost = a.minorCostEstimator.Slope(float64(a.edenSize)) <= 0
	}

	if expansionReducesCost && a.adjustedMutatorCost() < a.calib.ThroughputGoal() && a.gcCost() > 0 {
		pct := a.youngGenSizeIncrementSupplement + a.calib.YoungIncrementPct
		delta := heap.AlignUp(int64(float64(a.edenSize)*pct/100), a.bounds.Alignment)
		scaledDelta := float64(delta) * (a.minorGcCost() / a.gcCost())

		expansionReducesCost = !useEstimator || a.minorCostEstimator.SignificantlyReducesCost(
			float64(a.edenSize), scaledDelta, a.calib.EstimatorMinSizeThroughputTradeoff)

		if expansionReducesCost {
			candidate := heap.AlignUp(a.edenSize+int64(scaledDelta), a.bounds.Alignment)
			if candidate < a.edenSize {
				candidate = a.edenSize
			}
			desired = candidate
			a.youngGenChangeForMinorThroughput++
		}
	}

	if !expansionReducesCost || (a.youngGenPolicyIsReady && a.adjustedMutatorCost() >= a.calib.ThroughputGoal()) {
		change := a.edenDecrement(a.edenSize)
		denom := a.edenSize + a.promoSize
		if denom > 0 {
			change = int64(float64(change) * float64(a.edenSize) / float64(denom))
		}
		desired = heap.AlignUp(a.edenSize-change, a.bounds.Alignment)
	}

	if desired < a.bounds.MinSpaceSize {
		desired = a.bounds.MinSpaceSize
	}
	if desired > a.bounds.MaxEdenSize {
		// Never shrink when hitting the cap here — let tenuring push
		// work to the old generation instead.
		desired = a.bounds.MaxEdenSize
		if a.edenSize > desired {
			desired = a.edenSize
		}
	}

	a.edenSize = desired
}

// edenDecrement implements the footprint-shrink increment,
// spaceIncrement(eden, YOUNG_INCREMENT) / DecrementScaleFactor.
func (a *Adaptive) edenDecrement(eden int64) int64 {
	raw := heap.AlignUp(int64(float64(eden)*a.calib.YoungIncrementPct/100), a.bounds.Alignment)
	return raw / int64(a.calib.DecrementScaleFactor)
}
