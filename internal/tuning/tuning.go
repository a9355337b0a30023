// Package tuning parses "key=value,key=value" calibration overrides
// for cmd/gcpolicyctl, e.g. -tune timeWeight=25,estimatorHistory=10.
// It is a deliberately small rewrite of the shape of a generic CSV
// key=value option unmarshaler: this CLI only ever overrides a
// handful of named float64/int fields on policy.Calibration, so it
// hand-rolls the two setter kinds it needs instead of carrying a
// reflect-based struct-tag framework.
package tuning

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sizekit/adaptivesize/policy"
)

// Overrides is a parsed set of calibration overrides, keyed by field
// name as it would appear in a TOML calibration table.
type Overrides map[string]float64

// Parse parses a CSV string of key=value pairs into Overrides. Values
// are always parsed as float64 (every calibration constant in
// spec.md §8 is a count, weight, or ratio representable as one);
// when an override is applied to an integer-only field, its value is
// truncated toward zero without further validation.
func Parse(src string) (Overrides, error) {
	out := Overrides{}
	if strings.TrimSpace(src) == "" {
		return out, nil
	}

	r := csv.NewReader(strings.NewReader(src))
	entries, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "tuning: invalid override list")
	}

	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("tuning: override %q is not key=value", entry)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, errors.Errorf("tuning: override %q has an empty key", entry)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "tuning: override %q has a non-numeric value", entry)
		}
		out[key] = f
	}
	return out, nil
}

// Int returns key as an int, and whether it was present.
func (o Overrides) Int(key string) (int, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}
	return int(v), true
}

// Float64 returns key as a float64, and whether it was present.
func (o Overrides) Float64(key string) (float64, bool) {
	v, ok := o[key]
	return v, ok
}

// Apply overlays o onto base, one named calibration field at a time.
// Unrecognized keys are ignored: gcpolicyctl's -tune flag is meant for
// quick experiments, not strict validation.
func (o Overrides) Apply(base policy.Calibration) policy.Calibration {
	c := base
	if v, ok := o.Int("timeWeight"); ok {
		c.TimeWeight = v
	}
	if v, ok := o.Int("sizeWeight"); ok {
		c.SizeWeight = v
	}
	if v, ok := o.Int("readyThreshold"); ok {
		c.ReadyThreshold = v
	}
	if v, ok := o.Int("initializingSteps"); ok {
		c.InitializingSteps = v
	}
	if v, ok := o.Int("decrementScaleFactor"); ok {
		c.DecrementScaleFactor = v
	}
	if v, ok := o.Float64("thresholdTolerancePct"); ok {
		c.ThresholdTolerancePct = v
	}
	if v, ok := o.Float64("survivorPadding"); ok {
		c.SurvivorPadding = v
	}
	if v, ok := o.Float64("promotedPadding"); ok {
		c.PromotedPadding = v
	}
	if v, ok := o.Float64("pausePadding"); ok {
		c.PausePadding = v
	}
	if v, ok := o.Int("initialTenuringThreshold"); ok {
		c.InitialTenuringThreshold = v
	}
	if v, ok := o.Float64("gcTimeRatio"); ok {
		c.GCTimeRatio = v
	}
	if v, ok := o.Float64("youngIncrementPct"); ok {
		c.YoungIncrementPct = v
	}
	if v, ok := o.Float64("tenuredIncrementPct"); ok {
		c.TenuredIncrementPct = v
	}
	if v, ok := o.Float64("youngSupplement"); ok {
		c.YoungSupplement = v
	}
	if v, ok := o.Float64("oldSupplement"); ok {
		c.OldSupplement = v
	}
	if v, ok := o.Int("estimatorHistory"); ok {
		c.EstimatorHistory = v
	}
	return c
}
