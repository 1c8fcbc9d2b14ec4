package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersionName(t *testing.T) {
	tests := []struct {
		name    string
		version string
		ok      bool
	}{
		{"v003", "3", true},
		{"v3", "3", true},
		{"v010", "10", true},
		{"v0", "0", true},
		{"v12345", "12345", true},
		{"003", "", false},  // missing marker
		{"v", "", false},    // marker only
		{"vABC", "", false}, // non-numeric
		{"v1a", "", false},
		{"v-1", "", false},
		{"x003", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		version, ok := ParseVersionName(test.name)
		require.Equal(t, test.ok, ok, "name %q", test.name)
		require.Equal(t, test.version, version, "name %q", test.name)
	}
}

// leafNode builds a leaf for in-memory matcher tests.
func leafNode(name string) *Node {
	return &Node{Name: name, Kind: Leaf}
}

func TestMarkInUse(t *testing.T) {
	v003 := leafNode("v003")
	v004 := leafNode("v004")
	other := leafNode("v003")
	tree := &Node{
		Name: "cache",
		Children: []*Node{
			{
				Name: "shot010",
				Children: []*Node{
					{Name: "shot010", Kind: Branch}, // branch named like an identifier is never matched
					v003,
					v004,
				},
			},
			{Name: "shot020", Children: []*Node{other}},
		},
	}

	MarkInUse(tree, []Reference{{Identifier: "shot010", Version: "3"}})

	require.True(t, v003.InUse)
	require.False(t, v004.InUse)
	require.False(t, other.InUse, "identifier comes from the parent name")
}

func TestMarkInUseIdempotent(t *testing.T) {
	leaf := leafNode("v001")
	tree := &Node{Name: "cache", Children: []*Node{{Name: "elem", Children: []*Node{leaf}}}}
	refs := []Reference{
		{Identifier: "elem", Version: "1"},
		{Identifier: "elem", Version: "1"},
	}

	MarkInUse(tree, refs)
	require.True(t, leaf.InUse)

	// a second pass with the same references changes nothing
	MarkInUse(tree, refs)
	require.True(t, leaf.InUse)
}

func TestMarkInUseMalformedNames(t *testing.T) {
	weird := leafNode("latest")
	tree := &Node{Name: "cache", Children: []*Node{{Name: "elem", Children: []*Node{weird}}}}

	// malformed version names never match and never fail
	MarkInUse(tree, []Reference{{Identifier: "elem", Version: "1"}})
	require.False(t, weird.InUse)
}

func TestMarkInUseNoReferences(t *testing.T) {
	leaf := leafNode("v001")
	tree := &Node{Name: "cache", Children: []*Node{{Name: "elem", Children: []*Node{leaf}}}}

	MarkInUse(tree, nil)
	require.False(t, leaf.InUse)

	MarkInUse(nil, []Reference{{Identifier: "elem", Version: "1"}})
}
