//go:build linux

package hoststat

import "golang.org/x/sys/unix"

func physical() (Memory, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return Memory{}, err
	}
	unit := int64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return Memory{
		Total:     int64(info.Totalram) * unit,
		Available: int64(info.Freeram) * unit,
	}, nil
}
