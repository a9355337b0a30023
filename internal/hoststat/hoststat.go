// Package hoststat probes host physical memory, on a best-effort
// basis, so cmd/gcpolicyd and cmd/gcpolicyctl can pick a sensible
// default maxOldSize when none is configured. It has no bearing on
// the sizing policy's own invariants — those always operate on the
// bounds the caller supplies — this is purely a convenience for the
// demo harnesses.
package hoststat

// Memory reports host physical memory in bytes.
type Memory struct {
	Total     int64
	Available int64
}

// Physical returns a best-effort read of host physical memory. On
// platforms without a probe implementation it returns a zero Memory
// and a nil error; callers should treat a zero Total as "unknown" and
// fall back to a hardcoded default rather than treating it as an
// error condition.
func Physical() (Memory, error) {
	return physical()
}
