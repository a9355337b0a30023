package policy

import "github.com/sizekit/adaptivesize/heap"

// computeSurvivorSpaceSizeAndThreshold implements spec.md §4.4.4.
func (a *Adaptive) computeSurvivorSpaceSizeAndThreshold(survivorOverflowed bool) {
	if !a.youngGenPolicyIsReady {
		return
	}

	delta := 0
	if survivorOverflowed {
		delta = -1
	} else {
		tol := a.calib.ThresholdTolerance()
		switch {
		case a.minorGcCost() > a.majorGcCost()*tol:
			delta = -1
		case a.majorGcCost() > a.minorGcCost()*tol:
			delta = 1
		}
	}

	desired := heap.AlignUp(int64(a.avgSurvived.PaddedAverage()), a.bounds.Alignment)
	if desired < a.bounds.MinSpaceSize {
		desired = a.bounds.MinSpaceSize
	}

	survivorLimit := a.survivorLimit()
	if desired > survivorLimit {
		desired = survivorLimit
		delta = -1
	}

	a.survivorSize = desired
	a.tenuringThreshold = int(heap.Clamp(int64(a.tenuringThreshold+delta), 1, int64(a.bounds.MaxSurvivorSpaces+1)))
}

// survivorLimit is the collector-owned maximum survivor space size.
func (a *Adaptive) survivorLimit() int64 {
	return a.bounds.MaxSurvivorSize
}
