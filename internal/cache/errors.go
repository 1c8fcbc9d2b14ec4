package cache

import "github.com/pkg/errors"

var (
	// ErrRootNotFound is returned by Builder.Build when the cache root
	// does not exist on disk. The service recovers once by creating the
	// directory and rebuilding.
	ErrRootNotFound = errors.New("cache root not found")

	// ErrNotLeaf is returned when deletion is attempted on a directory
	// that still contains subdirectories. It is always surfaced, never
	// resolved silently.
	ErrNotLeaf = errors.New("subdirectory found, aborting")

	// ErrAlreadyDeleted is returned when the backing directory of a
	// node vanished before deletion. The in-memory node is detached all
	// the same.
	ErrAlreadyDeleted = errors.New("cache directory already deleted")

	// ErrProtected is returned when deletion is attempted on a leaf
	// whose sidecar metadata carries the protection flag.
	ErrProtected = errors.New("cache directory is protected")

	// ErrUnresolved is returned by a RootResolver when the user
	// declined to supply a cache root.
	ErrUnresolved = errors.New("cache root not resolved")

	// ErrNoTree is returned for operations that need a scanned tree
	// before the first successful Refresh.
	ErrNoTree = errors.New("cache tree not loaded")
)
