package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fxpipe/cachemgr/internal/fs"
)

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 100)
	writeFile(t, filepath.Join(dir, "sub", "b"), 23)
	writeFile(t, filepath.Join(dir, "sub", "deep", "c"), 7)

	require.Equal(t, int64(130), DirSize(fs.Local{}, dir))
}

func TestDirSizeMissingPath(t *testing.T) {
	require.Equal(t, int64(0), DirSize(fs.Local{}, filepath.Join(t.TempDir(), "gone")))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0 B"},
		{512, "512.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 << 20, "5.0 MB"},
		{1 << 30, "1.0 GB"},
		{1 << 40, "1.0 TB"},
		{3 << 40, "3.0 TB"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, FormatSize(test.size), "size %d", test.size)
	}
}

// The unit is selected from the raw byte count alone: anything below
// 1024 of a unit stays in that unit. The displayed value rounds to one
// decimal, so a count just under a band boundary may render as 1024.0
// of the smaller unit.
func TestFormatSizeUnitBands(t *testing.T) {
	for _, size := range []int64{1, 999, 1023} {
		require.Contains(t, FormatSize(size), " B")
	}
	for _, size := range []int64{1024, 1025, 1024*1024 - 1} {
		require.Contains(t, FormatSize(size), " KB")
	}

	// band top: still KB, value rounded up
	require.Equal(t, "1024.0 KB", FormatSize(1024*1024-6))
}
