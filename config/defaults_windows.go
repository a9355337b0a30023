//go:build windows

package config

// maxOldSizePercent is the fraction of physical memory defaultBounds
// allots to the old generation cap. Set as double that of other
// platforms since Windows hosts running this daemon are generally
// provisioned with more headroom to spare.
const maxOldSizePercent = 20
