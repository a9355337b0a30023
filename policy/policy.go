// Package policy implements the adaptive sizing policy for a
// generational, stop-the-world garbage collector: after each
// collection it decides whether the next collection should be
// incremental or complete, the target sizes of eden, survivor, and
// old space, and the tenuring threshold. See spec.md for the full
// specification this package implements.
//
// The engine executes only within stop-the-world collection callbacks
// (OnCollectionBegin, OnCollectionEnd, ShouldCollectCompletely); at
// those points the mutator is suspended, so Policy performs no
// internal locking. The averages and timers are fixed-size; the cost
// estimators record every distinct size they sample in a map, and the
// run history appends to a slice, so OnCollectionEnd can allocate.
package policy

import (
	"github.com/sizekit/adaptivesize/avg"
	"github.com/sizekit/adaptivesize/estimator"
	"github.com/sizekit/adaptivesize/heap"
	"github.com/sizekit/adaptivesize/interval"
)

// Policy is the common interface every sizing policy in this module
// implements (spec.md §9: "the engine shares a base with simpler
// policies"). Adaptive is the only policy this module fully
// implements; NeverCollectPolicy exists as a trivial sibling for tests and
// comparisons.
type Policy interface {
	Name() string
	ShouldCollectCompletely(followingIncremental bool) bool
	OnCollectionBegin(complete bool, youngAlignedChunkBytes, youngChunkBytes int64)
	OnCollectionEnd(complete bool, cause heap.Cause, snap heap.Snapshot)
	GCCount() uint64

	EdenSize() int64
	SurvivorSize() int64
	PromoSize() int64
	OldSize() int64
	TenuringThreshold() int
}

// Counts is a plain-value snapshot of the policy's collection
// counters, safe to read from uninterruptible contexts per spec.md §9:
// it is two ordinary integer reads, copied out by value, never a
// pointer into engine state.
type Counts struct {
	Minor uint64
	Major uint64
}

// Total returns Minor + Major, the value GCCount() reports.
func (c Counts) Total() uint64 {
	return c.Minor + c.Major
}

// Adaptive is the adaptive sizing policy engine described by
// spec.md §4.4. It is created once at collector initialization and
// destroyed with the collector; its state evolves only inside
// OnCollectionBegin, OnCollectionEnd, and ShouldCollectCompletely.
type Adaptive struct {
	bounds heap.SizeBounds
	calib  Calibration

	edenSize     int64
	survivorSize int64
	promoSize    int64
	oldSize      int64

	tenuringThreshold int

	minorCount                     uint64
	majorCount                     uint64
	minorCountSinceMajorCollection uint64

	youngGenPolicyIsReady bool

	oldSizeExceededInPreviousCollection bool

	lastYoungUsed int64
	lastOldUsed   int64

	youngGenSizeIncrementSupplement float64
	oldGenSizeIncrementSupplement   float64

	youngGenChangeForMinorThroughput int
	oldGenChangeForMajorThroughput   int

	latestMinorMutatorIntervalNanos int64
	latestMajorMutatorIntervalNanos int64

	minorTimer *interval.Timer
	majorTimer *interval.Timer

	avgMinorGcCost                  *avg.WeightedAverage
	avgMinorPause                   *avg.PaddedAverage
	avgMajorGcCost                  *avg.WeightedAverage
	avgMajorPause                   *avg.PaddedAverage
	avgMajorIntervalSeconds         *avg.WeightedAverage
	avgSurvived                     *avg.PaddedAverage
	avgPromoted                     *avg.PaddedAverage
	avgOldLive                      *avg.WeightedAverage
	avgYoungGenAlignedChunkFraction *avg.WeightedAverage

	minorCostEstimator *estimator.ReciprocalLeastSquares
	majorCostEstimator *estimator.ReciprocalLeastSquares

	analytics *Analytics
}

// Option configures an Adaptive policy at construction time, modeled
// on client.PruneOption's functional-option shape from this module's
// teacher.
type Option func(*Adaptive)

// WithSizeBounds sets the collector-owned size limits and alignment
// unit. Required; New panics without it.
func WithSizeBounds(b heap.SizeBounds) Option {
	return func(a *Adaptive) { a.bounds = b }
}

// WithCalibration overrides the default calibration constants.
func WithCalibration(c Calibration) Option {
	return func(a *Adaptive) { a.calib = c }
}

// WithInitialEdenSize seeds the eden size at construction instead of
// starting from the size bounds' minimum.
func WithInitialEdenSize(size int64) Option {
	return func(a *Adaptive) { a.edenSize = size }
}

// WithInitialSurvivorSize seeds the survivor size at construction.
func WithInitialSurvivorSize(size int64) Option {
	return func(a *Adaptive) { a.survivorSize = size }
}

// WithInitialOldSize seeds the old generation size at construction.
func WithInitialOldSize(size int64) Option {
	return func(a *Adaptive) { a.oldSize = size }
}

// New constructs an Adaptive policy. WithSizeBounds must be supplied.
func New(opts ...Option) *Adaptive {
	a := &Adaptive{
		calib:             DefaultCalibration(),
		tenuringThreshold: 0, // set from calib below unless overridden
	}
	for _, o := range opts {
		o(a)
	}
	if !a.bounds.Validate() {
		panic("policy: WithSizeBounds must supply valid, consistent bounds")
	}
	if a.tenuringThreshold == 0 {
		a.tenuringThreshold = a.calib.InitialTenuringThreshold
	}
	if a.edenSize == 0 {
		a.edenSize = a.bounds.MinSpaceSize
	}
	if a.survivorSize == 0 {
		a.survivorSize = a.bounds.MinSpaceSize
	}
	if a.oldSize == 0 {
		a.oldSize = a.bounds.MinSpaceSize
	}

	c := a.calib
	a.minorTimer = interval.NewTimer()
	a.majorTimer = interval.NewTimer()

	a.avgMinorGcCost = avg.NewWeightedAverage(c.TimeWeight)
	a.avgMinorPause = avg.NewPaddedAverage(c.TimeWeight, c.PausePadding, false)
	a.avgMajorGcCost = avg.NewWeightedAverage(c.TimeWeight)
	a.avgMajorPause = avg.NewPaddedAverage(c.TimeWeight, c.PausePadding, false)
	a.avgMajorIntervalSeconds = avg.NewWeightedAverage(c.TimeWeight)
	a.avgSurvived = avg.NewPaddedAverage(c.SizeWeight, c.SurvivorPadding, false)
	a.avgPromoted = avg.NewPaddedAverage(c.SizeWeight, c.PromotedPadding, true)
	a.avgOldLive = avg.NewWeightedAverage(c.SizeWeight)
	a.avgYoungGenAlignedChunkFraction = avg.NewWeightedAverage(c.TimeWeight)

	a.minorCostEstimator = estimator.New(c.EstimatorHistory)
	a.majorCostEstimator = estimator.New(c.EstimatorHistory)

	a.youngGenSizeIncrementSupplement = c.YoungSupplement
	a.oldGenSizeIncrementSupplement = c.OldSupplement

	a.analytics = newAnalytics()

	return a
}

// Name identifies the policy, per spec.md §6.
func (a *Adaptive) Name() string { return "adaptive" }

// GCCount returns minorCount + majorCount. It is safe to call from
// uninterruptible contexts: a plain read of two counters that are
// only ever mutated at safepoints (spec.md §5, §9).
func (a *Adaptive) GCCount() uint64 {
	return a.Counts().Total()
}

// Counts returns a value snapshot of the collection counters.
func (a *Adaptive) Counts() Counts {
	return Counts{Minor: a.minorCount, Major: a.majorCount}
}

func (a *Adaptive) EdenSize() int64        { return a.edenSize }
func (a *Adaptive) SurvivorSize() int64    { return a.survivorSize }
func (a *Adaptive) PromoSize() int64       { return a.promoSize }
func (a *Adaptive) OldSize() int64         { return a.oldSize }
func (a *Adaptive) TenuringThreshold() int { return a.tenuringThreshold }

// Analytics returns the policy's rolling collection-run history. Pure
// observability (SPEC_FULL.md §5.1); it does not feed back into any
// sizing decision.
func (a *Adaptive) Analytics() *Analytics { return a.analytics }

// Ready reports whether the policy has observed enough collections
// (minorCount >= ReadyThreshold). Until then the survivor size and
// tenuring threshold keep their construction-time values, eden is not
// shrunk for footprint, and ShouldCollectCompletely returns false; eden
// and old-generation growth run regardless of readiness.
func (a *Adaptive) Ready() bool {
	return a.youngGenPolicyIsReady
}
