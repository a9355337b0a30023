//go:build !windows

package config

// maxOldSizePercent is the fraction of physical memory defaultBounds
// allots to the old generation cap.
const maxOldSizePercent = 10
