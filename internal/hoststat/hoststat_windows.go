//go:build windows

package hoststat

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func physical() (Memory, error) {
	var status windows.MemoryStatusEx
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return Memory{}, err
	}
	return Memory{
		Total:     int64(status.TotalPhys),
		Available: int64(status.AvailPhys),
	}, nil
}
