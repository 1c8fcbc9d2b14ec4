//go:build windows

package fs

import "golang.org/x/sys/windows"

// DiskUsage reports the free and total bytes of the volume holding path.
func DiskUsage(path string) (free uint64, total uint64, err error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}
	var avail, totalBytes, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &avail, &totalBytes, &totalFree); err != nil {
		return 0, 0, err
	}
	return avail, totalBytes, nil
}
