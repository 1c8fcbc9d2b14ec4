//go:build !windows

package fs

import "golang.org/x/sys/unix"

// DiskUsage reports the free and total bytes of the filesystem holding
// path.
func DiskUsage(path string) (free uint64, total uint64, err error) {
	var st unix.Statfs_t
	if err := unix.Statfs(fixpath(path), &st); err != nil {
		return 0, 0, err
	}
	bsize := uint64(st.Bsize)
	return st.Bavail * bsize, st.Blocks * bsize, nil
}
