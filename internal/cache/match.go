package cache

import "strconv"

// Reference is one artifact version currently consumed by the host
// scene graph: the element identifier plus its version rendered as a
// decimal string. References are ephemeral; they are consumed once per
// matching pass.
type Reference struct {
	Identifier string
	Version    string
}

// versionPrefix is the conventional one-character marker leading
// version directory names, as in "v003".
const versionPrefix = 'v'

// ParseVersionName extracts the version from a version directory name
// by stripping the leading marker and normalizing the remaining digits
// to a decimal string, so "v003" yields "3". Names without the marker
// or with a non-numeric remainder report ok=false and never match
// anything.
func ParseVersionName(name string) (version string, ok bool) {
	if len(name) < 2 || name[0] != versionPrefix {
		return "", false
	}
	n, err := strconv.ParseUint(name[1:], 10, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(n, 10), true
}

// MarkInUse walks the tree and sets InUse on every leaf whose logical
// (identifier, version) pair matches one of the references. The
// identifier is the leaf's parent name, the version comes from the
// leaf's own name via ParseVersionName. Setting the flag twice is a
// no-op, so neither reference order nor traversal order matters.
func MarkInUse(root *Node, refs []Reference) {
	if root == nil || len(refs) == 0 {
		return
	}
	markInUse(root, refs)
}

func markInUse(parent *Node, refs []Reference) {
	for _, child := range parent.Children {
		if child.IsLeaf() {
			if version, ok := ParseVersionName(child.Name); ok {
				for _, ref := range refs {
					if ref.Identifier == parent.Name && ref.Version == version {
						child.InUse = true
						break
					}
				}
			}
		}
		markInUse(child, refs)
	}
}
