package policy

// Calibration holds every tunable constant the adaptive sizing policy
// uses, defaulted to the values in spec.md §8. All fields are
// overridable (via config.Calibration / internal/tuning) but default
// to the spec's fixed values; nothing about the algorithm changes
// shape when they're overridden, only its pacing.
type Calibration struct {
	// TimeWeight is the weight for pause/cost/interval averages.
	TimeWeight int
	// SizeWeight is the weight for avgSurvived/avgPromoted/avgOldLive.
	SizeWeight int
	// ReadyThreshold is the minorCount at which the policy is
	// considered warmed up.
	ReadyThreshold int
	// InitializingSteps is the number of expansions applied to a
	// generation before its cost estimator is consulted.
	InitializingSteps int
	// DecrementScaleFactor divides a generation's raw shrink increment.
	DecrementScaleFactor int
	// ThresholdTolerancePct is the percentage slack applied when
	// comparing minor vs. major GC cost for tenuring threshold
	// adjustment (10 means 10%, i.e. a factor of 1.10).
	ThresholdTolerancePct float64
	// SurvivorPadding, PromotedPadding, PausePadding are the padding
	// factors for avgSurvived, avgPromoted, and the pause averages.
	SurvivorPadding float64
	PromotedPadding float64
	PausePadding    float64
	// InitialTenuringThreshold seeds a freshly constructed policy.
	InitialTenuringThreshold int
	// GCTimeRatio sets the throughput goal: 1 - 1/(1+GCTimeRatio).
	GCTimeRatio float64
	// YoungIncrementPct, TenuredIncrementPct are the percentage growth
	// increments applied to eden and old-generation expansion.
	YoungIncrementPct   float64
	TenuredIncrementPct float64
	// YoungSupplement, OldSupplement seed the one-time startup growth
	// boosts.
	YoungSupplement float64
	OldSupplement   float64
	// YoungSupplementDecayEvery, OldSupplementDecayEvery are the
	// collection-count moduli at which the corresponding supplement is
	// halved.
	YoungSupplementDecayEvery int
	OldSupplementDecayEvery   int
	// MajorGCDecayTimeScale is the multiple of avgMajorIntervalSeconds
	// beyond which decayingGcCost starts discounting majorGcCost.
	MajorGCDecayTimeScale float64
	// EstimatorMinSizeThroughputTradeoff is the minimum fractional
	// throughput gain required per fractional size gain (0.8 default).
	EstimatorMinSizeThroughputTradeoff float64
	// ConsecutiveMinorToMajorPauseRatio is the multiplier applied to
	// avgMajorPause.PaddedAverage() in the forced-major pause-ratio test.
	ConsecutiveMinorToMajorPauseRatio float64

	// EstimatorHistory is the decay history length for both cost
	// estimators.
	EstimatorHistory int

	// AdaptiveSizePolicyWithSystemGC, when true, samples cost averages
	// on OnRequest collections too, not only OnAllocation. Default
	// false, per spec.md §1 Non-goals.
	AdaptiveSizePolicyWithSystemGC bool

	// DecayMajorGCCost enables decayingGcCost's time-based discount of
	// majorGcCost. Default true, matching the source's default
	// behavior; set false to always use the raw majorGcCost.
	DecayMajorGCCost bool
}

// DefaultCalibration returns the calibration table from spec.md §8.
func DefaultCalibration() Calibration {
	return Calibration{
		TimeWeight:                         25, // ADAPTIVE_TIME_WEIGHT
		SizeWeight:                         10, // ADAPTIVE_SIZE_POLICY_WEIGHT
		ReadyThreshold:                     5,  // ADAPTIVE_SIZE_POLICY_READY_THRESHOLD
		InitializingSteps:                  5,  // ADAPTIVE_SIZE_POLICY_INITIALIZING_STEPS
		DecrementScaleFactor:               4,  // ADAPTIVE_SIZE_DECREMENT_SCALE_FACTOR
		ThresholdTolerancePct:              10, // THRESHOLD_TOLERANCE
		SurvivorPadding:                    3,  // SURVIVOR_PADDING
		PromotedPadding:                    3,  // PROMOTED_PADDING
		PausePadding:                       1,  // PAUSE_PADDING
		InitialTenuringThreshold:           7,  // INITIAL_TENURING_THRESHOLD
		GCTimeRatio:                        19, // GC_TIME_RATIO -> goal 0.95
		YoungIncrementPct:                  10, // YOUNG_GENERATION_SIZE_INCREMENT
		TenuredIncrementPct:                10, // TENURED_GENERATION_SIZE_INCREMENT
		YoungSupplement:                    0,  // YOUNG_GENERATION_SIZE_SUPPLEMENT
		OldSupplement:                      0,  // TENURED_GENERATION_SIZE_SUPPLEMENT
		YoungSupplementDecayEvery:          8,  // YOUNG_GEN_SIZE_SUPPLEMENT_DECAY
		OldSupplementDecayEvery:            2,  // TENURED_GEN_SIZE_SUPPLEMENT_DECAY
		MajorGCDecayTimeScale:              10, // ADAPTIVE_SIZE_MAJOR_GC_DECAY_TIME_SCALE
		EstimatorMinSizeThroughputTradeoff: 0.80,
		ConsecutiveMinorToMajorPauseRatio:  2,
		EstimatorHistory:                   25,
		AdaptiveSizePolicyWithSystemGC:     false,
		DecayMajorGCCost:                   true,
	}
}

// ThroughputGoal returns 1 - 1/(1+GCTimeRatio), the target mutator
// cost. With the default GCTimeRatio of 19 this is 0.95.
func (c Calibration) ThroughputGoal() float64 {
	return 1 - 1/(1+c.GCTimeRatio)
}

// ThresholdTolerance returns the tolerance as a multiplicative factor
// (1.10 for the default 10%).
func (c Calibration) ThresholdTolerance() float64 {
	return 1 + c.ThresholdTolerancePct/100
}
