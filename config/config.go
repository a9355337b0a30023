// Package config decodes the TOML configuration file gcpolicyd and
// gcpolicyctl load at startup into the size bounds and calibration
// constants the policy engine needs.
package config

import (
	"github.com/docker/go-units"
	"github.com/pkg/errors"

	"github.com/sizekit/adaptivesize/heap"
	"github.com/sizekit/adaptivesize/policy"
)

// ByteSize is a byte count that unmarshals from TOML as either a plain
// integer or a human-readable string ("512MiB", "2GB"), matching the
// teacher's DiskSpace TOML fields.
type ByteSize int64

// UnmarshalText implements encoding.TextUnmarshaler so go-toml decodes
// quoted string values ("512MiB") through units.RAMInBytes.
func (b *ByteSize) UnmarshalText(text []byte) error {
	n, err := units.RAMInBytes(string(text))
	if err != nil {
		return errors.Wrapf(err, "config: invalid byte size %q", text)
	}
	*b = ByteSize(n)
	return nil
}

// Bytes returns the size as a plain int64.
func (b ByteSize) Bytes() int64 { return int64(b) }

// SizeBounds mirrors heap.SizeBounds with TOML-friendly field names
// and ByteSize types.
type SizeBounds struct {
	Alignment         ByteSize `toml:"alignment"`
	MinSpaceSize      ByteSize `toml:"min_space_size"`
	MaxEdenSize       ByteSize `toml:"max_eden_size"`
	MaxSurvivorSize   ByteSize `toml:"max_survivor_size"`
	MaxOldSize        ByteSize `toml:"max_old_size"`
	MaxSurvivorSpaces int      `toml:"max_survivor_spaces"`
}

// ToHeapBounds converts to heap.SizeBounds for use with policy.New.
func (b SizeBounds) ToHeapBounds() heap.SizeBounds {
	return heap.SizeBounds{
		Alignment:         b.Alignment.Bytes(),
		MinSpaceSize:      b.MinSpaceSize.Bytes(),
		MaxEdenSize:       b.MaxEdenSize.Bytes(),
		MaxSurvivorSize:   b.MaxSurvivorSize.Bytes(),
		MaxOldSize:        b.MaxOldSize.Bytes(),
		MaxSurvivorSpaces: b.MaxSurvivorSpaces,
	}
}

// Calibration mirrors policy.Calibration with TOML field names, every
// field optional: Load decodes onto Default(), so a field the file
// omits keeps its compiled-in default, while a value the file sets,
// zero included, is passed through unchanged.
type Calibration struct {
	TimeWeight                         int     `toml:"time_weight"`
	SizeWeight                         int     `toml:"size_weight"`
	ReadyThreshold                     int     `toml:"ready_threshold"`
	InitializingSteps                  int     `toml:"initializing_steps"`
	DecrementScaleFactor               int     `toml:"decrement_scale_factor"`
	ThresholdTolerancePct              float64 `toml:"threshold_tolerance_pct"`
	SurvivorPadding                    float64 `toml:"survivor_padding"`
	PromotedPadding                    float64 `toml:"promoted_padding"`
	PausePadding                       float64 `toml:"pause_padding"`
	InitialTenuringThreshold           int     `toml:"initial_tenuring_threshold"`
	GCTimeRatio                        float64 `toml:"gc_time_ratio"`
	YoungIncrementPct                  float64 `toml:"young_increment_pct"`
	TenuredIncrementPct                float64 `toml:"tenured_increment_pct"`
	YoungSupplement                    float64 `toml:"young_supplement"`
	OldSupplement                      float64 `toml:"old_supplement"`
	YoungSupplementDecayEvery          int     `toml:"young_supplement_decay_every"`
	OldSupplementDecayEvery            int     `toml:"old_supplement_decay_every"`
	MajorGCDecayTimeScale              float64 `toml:"major_gc_decay_time_scale"`
	EstimatorMinSizeThroughputTradeoff float64 `toml:"estimator_min_size_throughput_tradeoff"`
	ConsecutiveMinorToMajorPauseRatio  float64 `toml:"consecutive_minor_to_major_pause_ratio"`
	EstimatorHistory                   int     `toml:"estimator_history"`
	AdaptiveSizePolicyWithSystemGC     bool    `toml:"adaptive_size_policy_with_system_gc"`
	DecayMajorGCCost                   bool    `toml:"decay_major_gc_cost"`
}

// ToPolicyCalibration converts to policy.Calibration.
func (c Calibration) ToPolicyCalibration() policy.Calibration {
	return policy.Calibration{
		TimeWeight:                         c.TimeWeight,
		SizeWeight:                         c.SizeWeight,
		ReadyThreshold:                     c.ReadyThreshold,
		InitializingSteps:                  c.InitializingSteps,
		DecrementScaleFactor:               c.DecrementScaleFactor,
		ThresholdTolerancePct:              c.ThresholdTolerancePct,
		SurvivorPadding:                    c.SurvivorPadding,
		PromotedPadding:                    c.PromotedPadding,
		PausePadding:                       c.PausePadding,
		InitialTenuringThreshold:           c.InitialTenuringThreshold,
		GCTimeRatio:                        c.GCTimeRatio,
		YoungIncrementPct:                  c.YoungIncrementPct,
		TenuredIncrementPct:                c.TenuredIncrementPct,
		YoungSupplement:                    c.YoungSupplement,
		OldSupplement:                      c.OldSupplement,
		YoungSupplementDecayEvery:          c.YoungSupplementDecayEvery,
		OldSupplementDecayEvery:            c.OldSupplementDecayEvery,
		MajorGCDecayTimeScale:              c.MajorGCDecayTimeScale,
		EstimatorMinSizeThroughputTradeoff: c.EstimatorMinSizeThroughputTradeoff,
		ConsecutiveMinorToMajorPauseRatio:  c.ConsecutiveMinorToMajorPauseRatio,
		EstimatorHistory:                   c.EstimatorHistory,
		AdaptiveSizePolicyWithSystemGC:     c.AdaptiveSizePolicyWithSystemGC,
		DecayMajorGCCost:                   c.DecayMajorGCCost,
	}
}

// calibrationFromPolicy converts the compiled-in defaults into the
// TOML-decodable shape, used to pre-fill a Config before decoding so
// that fields absent from the file keep their default value instead
// of the Go zero value.
func calibrationFromPolicy(c policy.Calibration) Calibration {
	return Calibration{
		TimeWeight:                         c.TimeWeight,
		SizeWeight:                         c.SizeWeight,
		ReadyThreshold:                     c.ReadyThreshold,
		InitializingSteps:                  c.InitializingSteps,
		DecrementScaleFactor:               c.DecrementScaleFactor,
		ThresholdTolerancePct:              c.ThresholdTolerancePct,
		SurvivorPadding:                    c.SurvivorPadding,
		PromotedPadding:                    c.PromotedPadding,
		PausePadding:                       c.PausePadding,
		InitialTenuringThreshold:           c.InitialTenuringThreshold,
		GCTimeRatio:                        c.GCTimeRatio,
		YoungIncrementPct:                  c.YoungIncrementPct,
		TenuredIncrementPct:                c.TenuredIncrementPct,
		YoungSupplement:                    c.YoungSupplement,
		OldSupplement:                      c.OldSupplement,
		YoungSupplementDecayEvery:          c.YoungSupplementDecayEvery,
		OldSupplementDecayEvery:            c.OldSupplementDecayEvery,
		MajorGCDecayTimeScale:              c.MajorGCDecayTimeScale,
		EstimatorMinSizeThroughputTradeoff: c.EstimatorMinSizeThroughputTradeoff,
		ConsecutiveMinorToMajorPauseRatio:  c.ConsecutiveMinorToMajorPauseRatio,
		EstimatorHistory:                   c.EstimatorHistory,
		AdaptiveSizePolicyWithSystemGC:     c.AdaptiveSizePolicyWithSystemGC,
		DecayMajorGCCost:                   c.DecayMajorGCCost,
	}
}

// Config is the top-level decoded TOML document.
type Config struct {
	Bounds      SizeBounds  `toml:"bounds"`
	Calibration Calibration `toml:"calibration"`
}

// Default returns a Config whose bounds match Physical(), per
// defaultBounds, and whose calibration matches
// policy.DefaultCalibration(), ready to be overlaid by Load.
func Default() Config {
	return Config{
		Bounds:      defaultBounds(),
		Calibration: calibrationFromPolicy(policy.DefaultCalibration()),
	}
}
