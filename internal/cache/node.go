package cache

import (
	"path"
	"strings"
	"time"
)

// Kind classifies a directory in the cache tree.
type Kind uint8

const (
	// Branch is a directory with at least one directory child. It is
	// never deletable directly and never carries metadata.
	Branch Kind = iota
	// Leaf is a directory with no directory children, regardless of how
	// many files it holds. Leaves are the unit of deletion and
	// metadata.
	Leaf
)

func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "branch"
}

// dateFormat is the month-day hour:minute layout used for the date
// column.
const dateFormat = "01-02  15:04"

// Node is one directory in the cache tree. Children are owned
// exclusively by their parent; a node's position is identified by
// RelPath, the slash-separated segments from the cache root.
type Node struct {
	Name     string
	Kind     Kind
	Children []*Node

	// Size is the total byte size of all files under this directory
	// and its descendants, captured at scan time.
	Size    int64
	ModTime time.Time

	// Comment and Protected come from the sidecar metadata file and are
	// only populated for leaves.
	Comment   string
	Protected bool

	// RelPath is empty for the root node.
	RelPath string

	// InUse is set by MarkInUse when an active scene reference matches
	// this leaf. Not persisted.
	InUse bool
}

// IsLeaf reports whether the node had no directory children at scan
// time.
func (n *Node) IsLeaf() bool {
	return n.Kind == Leaf
}

// Find returns the node at the given slash-separated relative path, or
// nil if no such node exists. An empty path returns the node itself.
func (n *Node) Find(relPath string) *Node {
	if relPath == "" {
		return n
	}
	cur := n
segments:
	for _, seg := range strings.Split(relPath, "/") {
		for _, child := range cur.Children {
			if child.Name == seg {
				cur = child
				continue segments
			}
		}
		return nil
	}
	return cur
}

// findParent returns the parent of the node at relPath, together with
// the node itself. Returns nil, nil when the path does not exist or
// names the root.
func (n *Node) findParent(relPath string) (parent, node *Node) {
	dir, name := path.Split(relPath)
	parent = n.Find(strings.TrimSuffix(dir, "/"))
	if parent == nil || name == "" {
		return nil, nil
	}
	for _, child := range parent.Children {
		if child.Name == name {
			return parent, child
		}
	}
	return nil, nil
}

// detach removes child from the node's children. It is a no-op if
// child is not present.
func (n *Node) detach(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// Walk visits the node and all descendants in pre-order. fn receives
// the node and its depth relative to the receiver.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Row is the flat projection of a node consumed by the presentation
// layer. ID is the node's relative path and doubles as the selection
// key for deletion.
type Row struct {
	ID        string
	Name      string
	Comment   string
	Size      string
	Date      string
	Depth     int
	Leaf      bool
	InUse     bool
	Protected bool
}

// row projects the node at the given depth.
func (n *Node) row(depth int) Row {
	return Row{
		ID:        n.RelPath,
		Name:      n.Name,
		Comment:   n.Comment,
		Size:      FormatSize(n.Size),
		Date:      n.ModTime.Format(dateFormat),
		Depth:     depth,
		Leaf:      n.IsLeaf(),
		InUse:     n.InUse,
		Protected: n.Protected,
	}
}
