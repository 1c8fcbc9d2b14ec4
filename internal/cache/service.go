package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/fxpipe/cachemgr/internal/fs"
	"github.com/fxpipe/cachemgr/internal/opener"
)

// RootResolver supplies the cache root path, prompting the user through
// the host environment when nothing is configured. Implementations
// return an error wrapping ErrUnresolved when the user cancels.
type RootResolver interface {
	ResolveCacheRoot() (string, error)
}

// ReferenceSource lists the artifact versions currently referenced by
// the host scene graph. The source is expected to have already filtered
// for recognized consumer node types.
type ReferenceSource interface {
	ActiveReferences(ctx context.Context) ([]Reference, error)
}

// Service owns the canonical in-memory cache tree and exposes the
// refresh / query / delete operations consumed by the presentation
// layer. Refresh and deletion are serialized against each other; the
// tree is immutable for readers between those operations.
type Service struct {
	mu       sync.Mutex
	fs       fs.FS
	resolver RootResolver
	refs     ReferenceSource
	workers  uint

	root string
	tree *Node
}

// NewService wires a Service from its collaborators. refs may be nil
// when no scene graph is available; leaves are then never marked in
// use.
func NewService(filesys fs.FS, resolver RootResolver, refs ReferenceSource, workers uint) *Service {
	return &Service{
		fs:       filesys,
		resolver: resolver,
		refs:     refs,
		workers:  workers,
	}
}

// Refresh rebuilds the tree wholesale from disk and re-runs active
// version matching. The prior tree is discarded; there is no
// incremental diffing. A missing cache root is created and the scan
// retried once; a second failure is surfaced.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	root, err := s.resolver.ResolveCacheRoot()
	if err != nil {
		return err
	}

	builder := &Builder{FS: s.fs, Workers: s.workers}

	var tree *Node
	build := func() error {
		t, err := builder.Build(ctx, root)
		if err == nil {
			tree = t
			return nil
		}
		if !errors.Is(err, ErrRootNotFound) {
			return backoff.Permanent(err)
		}
		log.Infof("cache root %v missing, creating it", root)
		if mkErr := s.fs.MkdirAll(root, 0o755); mkErr != nil {
			return backoff.Permanent(errors.Wrapf(mkErr, "create cache root %v", root))
		}
		return err
	}
	if err := backoff.Retry(build, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 1)); err != nil {
		return err
	}

	if s.refs != nil {
		refs, err := s.refs.ActiveReferences(ctx)
		if err != nil {
			return errors.Wrap(err, "query active references")
		}
		MarkInUse(tree, refs)
	}

	s.root = root
	s.tree = tree
	log.Infof("tree populated in %.2fs", time.Since(start).Seconds())
	return nil
}

// Root returns the cache root resolved by the last Refresh.
func (s *Service) Root() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Rows projects the current tree into presentation rows, pre-order,
// excluding the implicit root. Depth 0 is a top-level context
// directory.
func (s *Service) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return nil
	}
	var rows []Row
	s.tree.Walk(func(node *Node, depth int) {
		if depth == 0 {
			return
		}
		rows = append(rows, node.row(depth-1))
	})
	return rows
}

// DeleteSelected deletes the selected nodes, identified by relative
// path, each independently. Protected leaves are refused with
// ErrProtected before anything touches the disk. The selection is
// considered consumed after the call regardless of outcome.
func (s *Service) DeleteSelected(ids []string) []DeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		results := make([]DeleteResult, 0, len(ids))
		for _, id := range ids {
			results = append(results, DeleteResult{ID: id, Err: errors.Wrap(ErrNoTree, id)})
		}
		return results
	}

	policy := NewPolicy(s.fs, s.root)
	results := make([]DeleteResult, 0, len(ids))
	for _, id := range ids {
		if node := s.tree.Find(id); node != nil && node.Protected {
			results = append(results, DeleteResult{ID: id, Err: errors.Wrap(ErrProtected, id)})
			continue
		}
		results = append(results, DeleteResult{ID: id, Err: policy.Delete(s.tree, id)})
	}
	return results
}

// OpenCacheFolderCommand returns the platform file-manager invocation
// for the cache root. Execution is the caller's responsibility.
func (s *Service) OpenCacheFolderCommand() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return opener.Command(s.root)
}

// DiskUsage reports free and total bytes of the filesystem holding the
// cache root, for display next to the tree.
func (s *Service) DiskUsage() (free, total uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fs.DiskUsage(s.root)
}
