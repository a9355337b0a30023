package config

import "github.com/sizekit/adaptivesize/internal/hoststat"

const (
	defaultAlignment    = 4096
	defaultMinSpaceSize = 1 << 20 // 1MiB
	minMaxOldSize       = 64 << 20
)

// defaultBounds probes the host's physical memory via internal/hoststat
// and derives a maxOldSize from it (maxOldSizePercent of total,
// platform-dependent), falling back to minMaxOldSize when the probe
// fails or the host reports nothing.
func defaultBounds() SizeBounds {
	maxOld := int64(minMaxOldSize)
	if mem, err := hoststat.Physical(); err == nil && mem.Total > 0 {
		candidate := mem.Total * maxOldSizePercent / 100
		if candidate > maxOld {
			maxOld = candidate
		}
	}

	return SizeBounds{
		Alignment:         defaultAlignment,
		MinSpaceSize:      defaultMinSpaceSize,
		MaxEdenSize:       ByteSize(maxOld / 4),
		MaxSurvivorSize:   ByteSize(maxOld / 16),
		MaxOldSize:        ByteSize(maxOld),
		MaxSurvivorSpaces: 15,
	}
}
