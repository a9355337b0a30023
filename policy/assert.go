package policy

import (
	"github.com/pkg/errors"
	"github.com/sizekit/adaptivesize/errdefs"
)

// assertInvariants checks the size and cost bounds spec.md §8 declares
// as always-true properties of the engine's state, panicking with an
// errdefs.Violation if the collector's accounting has driven the
// policy somewhere the model does not allow. It runs once at the end
// of every OnCollectionEnd, after all sizes for the next collection
// have been computed.
func (a *Adaptive) assertInvariants() {
	switch {
	case a.edenSize < a.bounds.MinSpaceSize || a.edenSize > a.bounds.MaxEdenSize:
		panicViolation("eden size %d out of bounds [%d, %d]", a.edenSize, a.bounds.MinSpaceSize, a.bounds.MaxEdenSize)
	case a.survivorSize < a.bounds.MinSpaceSize || a.survivorSize > a.bounds.MaxSurvivorSize:
		panicViolation("survivor size %d out of bounds [%d, %d]", a.survivorSize, a.bounds.MinSpaceSize, a.bounds.MaxSurvivorSize)
	case a.oldSize < a.bounds.MinSpaceSize || a.oldSize > a.bounds.MaxOldSize:
		panicViolation("old generation size %d out of bounds [%d, %d]", a.oldSize, a.bounds.MinSpaceSize, a.bounds.MaxOldSize)
	case a.tenuringThreshold < 1 || a.tenuringThreshold > a.bounds.MaxSurvivorSpaces+1:
		panicViolation("tenuring threshold %d out of bounds [1, %d]", a.tenuringThreshold, a.bounds.MaxSurvivorSpaces+1)
	case a.gcCost() < 0 || a.gcCost() > 1:
		panicViolation("gc cost %f outside [0, 1]", a.gcCost())
	}
}

func panicViolation(format string, args ...any) {
	panic(errdefs.Violation(errors.Errorf(format, args...)))
}
