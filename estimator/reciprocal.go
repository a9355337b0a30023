// Package estimator fits a reciprocal cost model over a decaying
// history of (size, gc-cost) observations, used by the sizing policy
// to judge whether expanding a generation is still worth its cost.
package estimator

// ReciprocalLeastSquares fits y = a + b/x over an exponentially
// decayed history of (x, y) samples, where x is a generation size and
// y is the collection cost observed at that size. Before every new
// sample, all decayed sums are scaled by (history-1)/history, then the
// new sample is folded in with weight 1 — an exponential-decay
// weighted regression in which older observations vanish geometrically.
type ReciprocalLeastSquares struct {
	history float64

	sw  float64 // sum of weights
	su  float64 // sum of w*(1/x)
	sy  float64 // sum of w*y
	suu float64 // sum of w*(1/x)^2
	suy float64 // sum of w*(1/x)*y

	distinctX map[float64]struct{}
}

// New returns a ReciprocalLeastSquares with the given history length.
// history must be a positive integer count of samples' worth of decay.
func New(history int) *ReciprocalLeastSquares {
	if history <= 0 {
		panic("estimator: history must be positive")
	}
	return &ReciprocalLeastSquares{
		history:   float64(history),
		distinctX: make(map[float64]struct{}),
	}
}

// Sample folds a new (x, y) observation into the decayed regression.
// x must be nonzero; a zero x is silently ignored since 1/x is
// undefined and the caller (the sizing policy) never has a legitimate
// reason to report a zero-byte generation size.
func (r *ReciprocalLeastSquares) Sample(x, y float64) {
	if x == 0 {
		return
	}
	decay := (r.history - 1) / r.history
	r.sw *= decay
	r.su *= decay
	r.sy *= decay
	r.suu *= decay
	r.suy *= decay

	u := 1 / x
	r.sw += 1
	r.su += u
	r.sy += y
	r.suu += u * u
	r.suy += u * y

	r.distinctX[x] = struct{}{}
}

// ready reports whether the regression has seen enough distinct x
// values to fit a non-degenerate line in u=1/x.
func (r *ReciprocalLeastSquares) ready() bool {
	return len(r.distinctX) >= 2
}

// fit returns the slope b and intercept a of y = a + b/x, and whether
// the fit is well-defined.
func (r *ReciprocalLeastSquares) fit() (a, b float64, ok bool) {
	if !r.ready() {
		return 0, 0, false
	}
	denom := r.sw*r.suu - r.su*r.su
	if denom <= 0 {
		return 0, 0, false
	}
	b = (r.sw*r.suy - r.su*r.sy) / denom
	a = (r.sy - b*r.su) / r.sw
	return a, b, true
}

// Estimate returns the fitted cost at size x, or 0 if fewer than two
// distinct x values have been observed or the fit is degenerate.
func (r *ReciprocalLeastSquares) Estimate(x float64) float64 {
	a, b, ok := r.fit()
	if !ok || x == 0 {
		return 0
	}
	return a + b/x
}

// Slope returns d(estimate)/dx at size x: -b/x^2. It is 0 under the
// same conditions Estimate returns 0.
func (r *ReciprocalLeastSquares) Slope(x float64) float64 {
	_, b, ok := r.fit()
	if !ok || x == 0 {
		return 0
	}
	return -b / (x * x)
}

// SignificantlyReducesCost implements spec's expansion significance
// test: whether growing from x0 by delta is expected to buy at least
// tradeoff (0.8 in the default calibration) of the fractional
// throughput gain per fractional size gain.
func (r *ReciprocalLeastSquares) SignificantlyReducesCost(x0, delta, tradeoff float64) bool {
	if x0 == 0 {
		return false
	}
	t0 := 1 - r.Estimate(x0)
	if t0 == 0 {
		return false
	}
	x1 := x0 + delta
	t1 := 1 - r.Estimate(x1)
	if x0 >= x1 || t0 >= t1 {
		return false
	}
	minGain := (x1/x0 - 1) * tradeoff
	estGain := t1/t0 - 1
	return estGain >= minGain
}
