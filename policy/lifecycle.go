package policy

import "github.com/sizekit/adaptivesize/heap"

// nanosToSeconds converts a nanosecond duration to a float64 count of
// seconds. spec.md §9's Open Question: latestMinor/MajorMutatorIntervalSeconds
// are stored as nanoseconds despite the name; conversion happens only
// at the point a mutator interval average is sampled.
func nanosToSeconds(nanos int64) float64 {
	return float64(nanos) / 1e9
}

// ShouldCollectCompletely implements spec.md §4.4.1.
func (a *Adaptive) ShouldCollectCompletely(followingIncremental bool) bool {
	if !a.youngGenPolicyIsReady {
		return false
	}
	if !followingIncremental {
		return false
	}

	if a.oldSizeExceededInPreviousCollection {
		return true
	}

	pauseRatioTrigger := float64(a.minorCountSinceMajorCollection)*a.avgMinorPause.Average() >=
		a.calib.ConsecutiveMinorToMajorPauseRatio*a.avgMajorPause.PaddedAverage()
	if pauseRatioTrigger {
		return true
	}

	projectedPromotion := a.avgPromoted.PaddedAverage()
	if float64(a.lastYoungUsed) < projectedPromotion {
		projectedPromotion = float64(a.lastYoungUsed)
	}
	if projectedPromotion > float64(a.oldSize-a.lastOldUsed) {
		return true
	}

	return false
}

// OnCollectionBegin implements spec.md §4.4.2. youngChunkBytes and
// youngAlignedChunkBytes are the young generation's chunk accounting
// as of the start of this collection, reported by the allocator; if
// youngChunkBytes is zero the chunk-fraction sample is skipped.
func (a *Adaptive) OnCollectionBegin(complete bool, youngAlignedChunkBytes, youngChunkBytes int64) {
	timer := a.minorTimer
	if complete {
		timer = a.majorTimer
	}

	timer.Close()
	mutatorNanos := timer.MeasuredNanos()
	if complete {
		a.latestMajorMutatorIntervalNanos = mutatorNanos
	} else {
		a.latestMinorMutatorIntervalNanos = mutatorNanos
	}

	a.sampleYoungChunkFraction(youngAlignedChunkBytes, youngChunkBytes)

	timer.Reset()
	timer.Open()
}

// sampleYoungChunkFraction folds a young generation alignment sample
// into avgYoungGenAlignedChunkFraction, per spec.md §4.4.2.
func (a *Adaptive) sampleYoungChunkFraction(alignedChunkBytes, youngChunkBytes int64) {
	if youngChunkBytes == 0 {
		return
	}
	a.avgYoungGenAlignedChunkFraction.Sample(float64(alignedChunkBytes) / float64(youngChunkBytes))
}

// OnCollectionEnd implements spec.md §4.4.3.
func (a *Adaptive) OnCollectionEnd(complete bool, cause heap.Cause, snap heap.Snapshot) {
	timer := a.minorTimer
	if complete {
		timer = a.majorTimer
	}
	timer.Close()
	pauseNanos := timer.MeasuredNanos()

	a.updateCollectionEndAverages(complete, cause, pauseNanos)

	if complete {
		a.majorCount++
		a.minorCountSinceMajorCollection = 0
	} else {
		a.minorCount++
		a.minorCountSinceMajorCollection++
	}
	if a.minorCount >= uint64(a.calib.ReadyThreshold) {
		a.youngGenPolicyIsReady = true
	}

	timer.Reset()
	timer.Open()

	a.oldSizeExceededInPreviousCollection = snap.OldGenerationAfterChunkBytes > a.oldSize
	a.lastYoungUsed = snap.YoungUsed
	a.lastOldUsed = snap.OldUsed

	a.updateAverages(snap)

	a.computeSurvivorSpaceSizeAndThreshold(snap.SurvivorSpaceOverflow)
	a.computeEdenSpaceSize()
	if complete {
		a.computeOldGenSpaceSize(snap.OldGenerationAfterChunkBytes)
	}

	a.decaySupplementalGrowth(complete)

	a.analytics.record(complete, cause, snap, pauseNanos)

	a.assertInvariants()
}

// updateCollectionEndAverages implements the sampling rules in
// spec.md §4.4.3 step 2.
func (a *Adaptive) updateCollectionEndAverages(complete bool, cause heap.Cause, pauseNanos int64) {
	if cause != heap.OnAllocation && !a.calib.AdaptiveSizePolicyWithSystemGC {
		return
	}

	pauseSeconds := nanosToSeconds(pauseNanos)
	var mutatorNanos int64
	var sizeBytes int64
	if complete {
		mutatorNanos = a.latestMajorMutatorIntervalNanos
		a.avgMajorPause.Sample(pauseSeconds)
		sizeBytes = a.oldSize
	} else {
		mutatorNanos = a.latestMinorMutatorIntervalNanos
		a.avgMinorPause.Sample(pauseSeconds)
		sizeBytes = a.edenSize
	}
	mutatorSeconds := nanosToSeconds(mutatorNanos)

	var cost float64
	if pauseSeconds > 0 && mutatorSeconds > 0 {
		cost = pauseSeconds / (mutatorSeconds + pauseSeconds)
		if complete {
			a.avgMajorGcCost.Sample(cost)
			a.avgMajorIntervalSeconds.Sample(mutatorSeconds + pauseSeconds)
		} else {
			a.avgMinorGcCost.Sample(cost)
		}
	}

	if complete {
		a.majorCostEstimator.Sample(float64(sizeBytes), cost)
	} else {
		a.minorCostEstimator.Sample(float64(sizeBytes), cost)
	}
}

// updateAverages implements spec.md §4.4.3 step 6.
func (a *Adaptive) updateAverages(snap heap.Snapshot) {
	a.avgSurvived.Sample(float64(snap.SurvivorChunkBytes + snap.SurvivorOverflowObjectBytes))
	a.avgPromoted.Sample(float64(snap.TenuredObjectBytes))
}

// decaySupplementalGrowth implements spec.md §4.4.3 step 10.
func (a *Adaptive) decaySupplementalGrowth(complete bool) {
	if complete {
		if a.majorCount%uint64(a.calib.OldSupplementDecayEvery) == 0 {
			a.oldGenSizeIncrementSupplement /= 2
		}
		return
	}
	if a.minorCount >= uint64(a.calib.ReadyThreshold) && a.minorCount%uint64(a.calib.YoungSupplementDecayEvery) == 0 {
		a.youngGenSizeIncrementSupplement /= 2
	}
}

// minorGcCost, majorGcCost, gcCost, and decayingGcCost implement
// spec.md §4.4.7 and the cost invariants of §3/§8.
func (a *Adaptive) minorGcCost() float64 { return a.avgMinorGcCost.Average() }
func (a *Adaptive) majorGcCost() float64 { return a.avgMajorGcCost.Average() }

func (a *Adaptive) gcCost() float64 {
	cost := a.minorGcCost() + a.majorGcCost()
	if cost > 1 {
		return 1
	}
	return cost
}

// decayingGcCost implements spec.md §4.4.7.
func (a *Adaptive) decayingGcCost() float64 {
	decayedMajor := a.majorGcCost()

	if a.calib.DecayMajorGCCost {
		avgInterval := a.avgMajorIntervalSeconds.Average()
		if avgInterval > 0 {
			secondsSinceMajor := nanosToSeconds(a.majorTimer.PeekNanos())
			threshold := a.calib.MajorGCDecayTimeScale * avgInterval
			if secondsSinceMajor > threshold {
				scaled := a.majorGcCost() * threshold / secondsSinceMajor
				if scaled < decayedMajor {
					decayedMajor = scaled
				}
			}
		}
	}

	total := a.minorGcCost() + decayedMajor
	if total > 1 {
		return 1
	}
	return total
}

func (a *Adaptive) adjustedMutatorCost() float64 {
	return 1 - a.decayingGcCost()
}
