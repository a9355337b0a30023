package heap

// AlignUp rounds size up to the next multiple of alignment. alignment
// must be a positive power of two; it is the collector's chunk
// alignment unit, an external constant the policy does not choose.
func AlignUp(size, alignment int64) int64 {
	if alignment <= 0 {
		panic("heap: alignment must be positive")
	}
	rem := size % alignment
	if rem == 0 {
		return size
	}
	return size + (alignment - rem)
}

// AlignDown rounds size down to the previous multiple of alignment.
func AlignDown(size, alignment int64) int64 {
	if alignment <= 0 {
		panic("heap: alignment must be positive")
	}
	return size - (size % alignment)
}

// IsAligned reports whether size is a multiple of alignment.
func IsAligned(size, alignment int64) bool {
	if alignment <= 0 {
		panic("heap: alignment must be positive")
	}
	return size%alignment == 0
}

// SaturatingSub returns a-b, or 0 if that would be negative. Byte
// counts in this policy are unsigned in spirit even though Go
// represents them as int64; every subtraction that could go negative
// (promoLimit's maxOldSize-avgOldLive, in particular) must saturate at
// zero instead of wrapping or going negative, per spec.md §9.
func SaturatingSub(a, b int64) int64 {
	if b >= a {
		return 0
	}
	return a - b
}

// Clamp restricts x to [lo, hi]. Callers are expected to ensure lo <= hi.
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// SizeBounds carries the collector-owned size limits and alignment
// unit the policy must respect: minSpaceSize, the per-generation
// maxima, the survivor space count, and the chunk alignment. These
// come from the collector's configuration, not from the policy
// itself — the policy only ever narrows within them.
type SizeBounds struct {
	Alignment         int64
	MinSpaceSize      int64
	MaxEdenSize       int64
	MaxSurvivorSize   int64
	MaxOldSize        int64
	MaxSurvivorSpaces int
}

// Validate reports whether the bounds are internally consistent
// (positive alignment, minSpaceSize no larger than any maximum, at
// least one survivor space).
func (b SizeBounds) Validate() bool {
	if b.Alignment <= 0 || b.MinSpaceSize < 0 {
		return false
	}
	if b.MinSpaceSize > b.MaxEdenSize || b.MinSpaceSize > b.MaxSurvivorSize || b.MinSpaceSize > b.MaxOldSize {
		return false
	}
	return b.MaxSurvivorSpaces >= 1
}
