package cache

import (
	"fmt"
	"path/filepath"

	"github.com/fxpipe/cachemgr/internal/fs"
)

// DirSize returns the total byte size of all files under path,
// including nested files at any depth. Entries that vanish mid-walk are
// skipped; a missing path reports 0, since callers only pass paths they
// just listed.
func DirSize(filesys fs.FS, path string) int64 {
	entries, err := filesys.ReadDir(path)
	if err != nil {
		return 0
	}

	var total int64
	for _, entry := range entries {
		p := filepath.Join(path, entry.Name())
		fi, err := filesys.Stat(p)
		if err != nil {
			continue
		}
		if fi.IsDir() {
			total += DirSize(filesys, p)
		} else {
			total += fi.Size()
		}
	}
	return total
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count using binary (1024) units with one
// decimal place, selecting the largest unit where the value stays below
// 1024. Anything beyond GB is rendered as TB.
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024.0 {
			return fmt.Sprintf("%3.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", value)
}
