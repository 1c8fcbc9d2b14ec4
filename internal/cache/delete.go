package cache

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/fxpipe/cachemgr/internal/fs"
)

// Policy performs leaf-only deletion of cache directories and keeps the
// in-memory tree consistent with the filesystem. The absolute path is
// recomputed from the current root on every call, never cached, so a
// root that changed between scan and deletion cannot misdirect the
// removal.
type Policy struct {
	fs   fs.FS
	root string
}

// NewPolicy returns a Policy rooted at the given cache root.
func NewPolicy(filesys fs.FS, root string) *Policy {
	return &Policy{fs: filesys, root: root}
}

// Delete removes the directory behind the node at relPath and detaches
// the node from the tree. It fails with ErrNotLeaf when the node has
// children, in memory or on disk: the on-disk listing is re-checked at
// the moment of deletion rather than trusting scan-time state. A
// backing path that already vanished reports ErrAlreadyDeleted; the
// node is still detached, since it no longer corresponds to anything.
func (p *Policy) Delete(tree *Node, relPath string) error {
	if relPath == "" {
		return errors.New("refusing to delete the cache root")
	}

	parent, node := tree.findParent(relPath)
	if node == nil {
		return errors.Wrap(ErrAlreadyDeleted, relPath)
	}
	if len(node.Children) > 0 {
		return errors.Wrap(ErrNotLeaf, relPath)
	}

	abs := filepath.Join(p.root, filepath.FromSlash(relPath))
	entries, err := p.fs.ReadDir(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			parent.detach(node)
			return errors.Wrap(ErrAlreadyDeleted, relPath)
		}
		return errors.Wrapf(err, "read %v", abs)
	}
	for _, entry := range entries {
		if fi, err := p.fs.Stat(filepath.Join(abs, entry.Name())); err == nil && fi.IsDir() {
			return errors.Wrap(ErrNotLeaf, relPath)
		}
	}

	if err := p.fs.RemoveAll(abs); err != nil {
		return errors.Wrapf(err, "remove %v", abs)
	}
	parent.detach(node)
	log.Infof("deleted cache directory %v", abs)
	return nil
}

// DeleteResult reports the outcome of one node in a batch deletion.
type DeleteResult struct {
	ID  string
	Err error
}

// DeleteAll processes each selected node independently: one node
// failing its preconditions does not block the others. Results are
// returned in input order.
func (p *Policy) DeleteAll(tree *Node, ids []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, DeleteResult{ID: id, Err: p.Delete(tree, id)})
	}
	return results
}
