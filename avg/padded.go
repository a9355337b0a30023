package avg

import "math"

// PaddedAverage tracks a WeightedAverage of its samples plus a second
// WeightedAverage of the absolute deviation of each sample from that
// mean, sampled after the mean is updated. PaddedAverage() adds
// padding standard-deviation-like units of that deviation to the
// mean, giving an upper estimate suitable for sizing decisions that
// would rather over- than under-provision.
type PaddedAverage struct {
	mean            *WeightedAverage
	deviation       *WeightedAverage
	padding         float64
	noNegativeDevOK bool // if true, samples below the mean contribute zero deviation
}

// NewPaddedAverage returns a PaddedAverage with the given weight and
// padding factor. If clampNegativeDeviation is true, a sample below
// the (just-updated) mean records a deviation of 0 instead of its
// true absolute distance — used for signals like promotion volume
// where undershooting the mean is not evidence of variability worth
// padding against.
func NewPaddedAverage(weight int, padding float64, clampNegativeDeviation bool) *PaddedAverage {
	return &PaddedAverage{
		mean:            NewWeightedAverage(weight),
		deviation:       NewWeightedAverage(weight),
		padding:         padding,
		noNegativeDevOK: clampNegativeDeviation,
	}
}

// Sample folds x into the mean, then folds the resulting deviation
// |x - mean| into the deviation tracker.
func (p *PaddedAverage) Sample(x float64) {
	p.mean.Sample(x)
	meanNew := p.mean.Average()

	var dev float64
	if p.noNegativeDevOK && x < meanNew {
		dev = 0
	} else {
		dev = math.Abs(x - meanNew)
	}
	p.deviation.Sample(dev)
}

// Average returns the current mean.
func (p *PaddedAverage) Average() float64 {
	return p.mean.Average()
}

// Deviation returns the current deviation average.
func (p *PaddedAverage) Deviation() float64 {
	return p.deviation.Average()
}

// PaddedAverage returns mean + padding*deviation.
func (p *PaddedAverage) PaddedAverage() float64 {
	return p.mean.Average() + p.padding*p.deviation.Average()
}

// Reset restores both underlying averages to their initial state.
func (p *PaddedAverage) Reset() {
	p.mean.Reset()
	p.deviation.Reset()
}
