package fs

import "os"

// Local is the local filesystem. Most methods are just passthrough
// functions to the corresponding os functions.
type Local struct{}

// statically ensure that Local implements FS.
var _ FS = Local{}

// ReadDir returns the entries of the named directory, sorted by filename.
func (Local) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(fixpath(name))
}

// Stat returns a FileInfo structure describing the named file.
// If there is an error, it will be of type *PathError.
func (Local) Stat(name string) (os.FileInfo, error) {
	return os.Stat(fixpath(name))
}

// ReadFile reads the named file and returns its contents.
func (Local) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(fixpath(name))
}

// MkdirAll creates a directory named path, along with any necessary parents,
// and returns nil, or else returns an error. The permission bits perm are used
// for all directories that MkdirAll creates. If path is already a directory,
// MkdirAll does nothing and returns nil.
func (Local) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(fixpath(name), perm)
}

// RemoveAll removes path and any children it contains.
// It removes everything it can but returns the first error
// it encounters. If the path does not exist, RemoveAll
// returns nil (no error).
func (Local) RemoveAll(name string) error {
	return os.RemoveAll(fixpath(name))
}
