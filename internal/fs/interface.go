package fs

import "os"

// FS is the filesystem surface the cache core works against. Every
// read and every destructive call goes through this interface, so the
// tree builder and the deletion policy can be exercised against a
// scratch directory in tests.
type FS interface {
	// ReadDir returns the entries of the named directory, sorted by
	// filename.
	ReadDir(name string) ([]os.DirEntry, error)

	// Stat returns info for the named path, following symlinks, so a
	// link to a directory classifies like the directory itself.
	Stat(name string) (os.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// MkdirAll creates the named directory along with any necessary
	// parents.
	MkdirAll(name string, perm os.FileMode) error

	// RemoveAll removes the named path and any children it contains.
	RemoveAll(name string) error
}
