package policy

import "github.com/sizekit/adaptivesize/heap"

// computeOldGenSpaceSize implements spec.md §4.4.6. Called only after
// a complete collection.
func (a *Adaptive) computeOldGenSpaceSize(oldLive int64) {
	a.avgOldLive.Sample(float64(oldLive))

	promoLimit := a.promoLimit()

	desired := a.promoSize

	useEstimator := a.oldGenChangeForMajorThroughput > a.calib.InitializingSteps
	expansionReducesCost := true
	if useEstimator {
		expansionReducesCost = a.majorCostEstimator.Slope(float64(a.promoSize)) <= 0
	}

	if expansionReducesCost && a.adjustedMutatorCost() < a.calib.ThroughputGoal() && a.gcCost() > 0 {
		pct := a.oldGenSizeIncrementSupplement + a.calib.TenuredIncrementPct
		delta := heap.AlignUp(int64(float64(a.promoSize)*pct/100), a.bounds.Alignment)
		scaledDelta := float64(delta) * (a.majorGcCost() / a.gcCost())

		expansionReducesCost = !useEstimator || a.majorCostEstimator.SignificantlyReducesCost(
			float64(a.promoSize), scaledDelta, a.calib.EstimatorMinSizeThroughputTradeoff)

		if expansionReducesCost {
			candidate := heap.AlignUp(a.promoSize+int64(scaledDelta), a.bounds.Alignment)
			if candidate < a.promoSize {
				candidate = a.promoSize
			}
			desired = candidate
			a.oldGenChangeForMajorThroughput++
		}
	}

	if !expansionReducesCost || (a.youngGenPolicyIsReady && a.adjustedMutatorCost() >= a.calib.ThroughputGoal()) {
		change := a.oldDecrement(a.promoSize)
		denom := a.edenSize + a.promoSize
		if denom > 0 {
			change = int64(float64(change) * float64(a.edenSize) / float64(denom))
		}
		desired = heap.AlignUp(a.promoSize-change, a.bounds.Alignment)
	}

	if desired < a.bounds.MinSpaceSize {
		desired = a.bounds.MinSpaceSize
	}
	if desired > promoLimit {
		desired = promoLimit
	}
	a.promoSize = desired

	target := heap.AlignUp(oldLive+(a.promoSize+int64(a.avgPromoted.PaddedAverage())), a.bounds.Alignment)
	a.oldSize = heap.Clamp(target, a.bounds.MinSpaceSize, a.bounds.MaxOldSize)
}

// oldDecrement mirrors edenDecrement but scaled by the tenured
// generation's own increment percentage.
func (a *Adaptive) oldDecrement(promo int64) int64 {
	raw := heap.AlignUp(int64(float64(promo)*a.calib.TenuredIncrementPct/100), a.bounds.Alignment)
	return raw / int64(a.calib.DecrementScaleFactor)
}

// promoLimit implements spec.md §4.4.6 step 2: alignDown(max(promoSize,
// maxOldSize - avgOldLive)), saturating the subtraction at zero per
// spec.md §9.
func (a *Adaptive) promoLimit() int64 {
	avgLive := int64(a.avgOldLive.Average())
	headroom := heap.SaturatingSub(a.bounds.MaxOldSize, avgLive)
	limit := a.promoSize
	if headroom > limit {
		limit = headroom
	}
	return heap.AlignDown(limit, a.bounds.Alignment)
}
