// Package errdefs marks errors that represent a violated sizing-policy
// invariant. Per spec.md §7, every error class here is fatal: a
// violation means the collector supplied the policy nonsensical
// accounting, not a condition the policy can recover from. The policy
// itself never returns an error (spec.md §6); this package exists so
// the internal assertion helper in package policy can panic with a
// value callers can recognize with IsViolation, distinguishing an
// invariant panic from an unrelated one in tests or recovery middleware.
package errdefs

import "errors"

type violationErr struct {
	error
}

func (violationErr) InvariantViolation() {}

func (v violationErr) Unwrap() error {
	return v.error
}

type invariantViolation interface {
	InvariantViolation()
}

var _ invariantViolation = violationErr{}

// Violation wraps err as a policy invariant violation. Violation(nil)
// returns nil.
func Violation(err error) error {
	if err == nil {
		return nil
	}
	return violationErr{err}
}

// IsViolation reports whether err (or anything it wraps) was produced
// by Violation.
func IsViolation(err error) bool {
	var v invariantViolation
	return errors.As(err, &v)
}
