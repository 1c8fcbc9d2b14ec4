package cache

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fxpipe/cachemgr/internal/fs"
)

// Builder materializes the on-disk cache layout into a Node tree. The
// immediate children of the root are fanned out across a worker pool;
// each worker owns one disjoint subtree and recurses sequentially
// within it, so no locking is needed below the fan-out.
type Builder struct {
	FS fs.FS

	// Workers bounds the top-level fan-out. Zero means one worker per CPU.
	Workers uint
}

// NewBuilder returns a Builder over the given filesystem.
func NewBuilder(filesys fs.FS) *Builder {
	return &Builder{FS: filesys}
}

type buildJob struct {
	abs  string
	name string
	slot int
}

// Build scans root and returns the materialized tree. It returns
// ErrRootNotFound when root does not exist; the caller decides whether
// to create it and retry. Build blocks until every worker has finished,
// after which the tree is complete and safe to read.
func (b *Builder) Build(ctx context.Context, root string) (*Node, error) {
	fi, err := b.FS.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(ErrRootNotFound, root)
		}
		return nil, errors.Wrapf(err, "stat cache root %v", root)
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("cache root %v is not a directory", root)
	}

	entries, err := b.FS.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "read cache root %v", root)
	}

	tree := &Node{
		Name:    filepath.Base(root),
		ModTime: fi.ModTime(),
	}

	var jobs []buildJob
	for _, entry := range entries {
		abs := filepath.Join(root, entry.Name())
		if !b.isDir(abs) {
			fi, err := b.FS.Stat(abs)
			if err == nil {
				tree.Size += fi.Size()
			}
			continue
		}
		jobs = append(jobs, buildJob{abs: abs, name: entry.Name(), slot: len(jobs)})
	}

	// Every worker writes only to its own slot.
	children := make([]*Node, len(jobs))

	workers := int(b.Workers)
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	ch := make(chan buildJob)
	wg, wgCtx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		wg.Go(func() error {
			for {
				var job buildJob
				var ok bool
				select {
				case <-wgCtx.Done():
					return wgCtx.Err()
				case job, ok = <-ch:
					if !ok {
						return nil
					}
				}
				children[job.slot] = b.buildNode(job.abs, job.name, job.name)
			}
		})
	}

feed:
	for _, job := range jobs {
		select {
		case <-wgCtx.Done():
			break feed
		case ch <- job:
		}
	}
	close(ch)

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	for _, child := range children {
		tree.Children = append(tree.Children, child)
		tree.Size += child.Size
	}
	if len(tree.Children) == 0 {
		tree.Kind = Leaf
		tree.Comment, tree.Protected = ReadMetadata(b.FS, root)
	}
	return tree, nil
}

// buildNode scans one directory and its subtree sequentially. A
// directory that vanished between listing and descent is treated as an
// empty listing, not an error: the next refresh reflects whatever is
// actually on disk.
func (b *Builder) buildNode(abs, rel, name string) *Node {
	node := &Node{
		Name:    name,
		RelPath: rel,
	}
	if fi, err := b.FS.Stat(abs); err == nil {
		node.ModTime = fi.ModTime()
	}

	entries, err := b.FS.ReadDir(abs)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warnf("skipping unreadable cache directory %v: %v", abs, err)
		}
		entries = nil
	}

	var fileBytes int64
	for _, entry := range entries {
		p := filepath.Join(abs, entry.Name())
		if b.isDir(p) {
			child := b.buildNode(p, path.Join(rel, entry.Name()), entry.Name())
			node.Children = append(node.Children, child)
			node.Size += child.Size
		} else if fi, err := b.FS.Stat(p); err == nil {
			fileBytes += fi.Size()
		}
	}
	node.Size += fileBytes

	if len(node.Children) == 0 {
		node.Kind = Leaf
		node.Size = DirSize(b.FS, abs)
		node.Comment, node.Protected = ReadMetadata(b.FS, abs)
	}
	return node
}

// isDir reports whether p is a directory, following symlinks so that a
// link to a directory is traversed like any other directory.
func (b *Builder) isDir(p string) bool {
	fi, err := b.FS.Stat(p)
	return err == nil && fi.IsDir()
}
