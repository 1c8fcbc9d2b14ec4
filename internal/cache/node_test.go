package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTree() (*Node, *Node, *Node) {
	leaf := &Node{Name: "v001", Kind: Leaf, RelPath: "shot010/sim/v001"}
	sim := &Node{Name: "sim", RelPath: "shot010/sim", Children: []*Node{leaf}}
	shot := &Node{Name: "shot010", RelPath: "shot010", Children: []*Node{sim}}
	root := &Node{Name: "cache", Children: []*Node{shot}}
	return root, sim, leaf
}

func TestNodeFind(t *testing.T) {
	root, sim, leaf := sampleTree()

	require.Equal(t, root, root.Find(""))
	require.Equal(t, sim, root.Find("shot010/sim"))
	require.Equal(t, leaf, root.Find("shot010/sim/v001"))
	require.Nil(t, root.Find("shot010/flip"))
	require.Nil(t, root.Find("shot010/sim/v001/deeper"))
}

func TestNodeFindParent(t *testing.T) {
	root, sim, leaf := sampleTree()

	parent, node := root.findParent("shot010/sim/v001")
	require.Equal(t, sim, parent)
	require.Equal(t, leaf, node)

	parent, node = root.findParent("shot010/missing")
	require.Nil(t, parent)
	require.Nil(t, node)

	// the root has no parent
	parent, node = root.findParent("")
	require.Nil(t, parent)
	require.Nil(t, node)
}

func TestNodeDetach(t *testing.T) {
	root, sim, leaf := sampleTree()

	sim.detach(leaf)
	require.Empty(t, sim.Children)
	require.Nil(t, root.Find("shot010/sim/v001"))

	// detaching again is a no-op
	sim.detach(leaf)
	require.Empty(t, sim.Children)
}

func TestNodeWalkPreOrder(t *testing.T) {
	root, _, _ := sampleTree()

	var names []string
	var depths []int
	root.Walk(func(node *Node, depth int) {
		names = append(names, node.Name)
		depths = append(depths, depth)
	})

	require.Equal(t, []string{"cache", "shot010", "sim", "v001"}, names)
	require.Equal(t, []int{0, 1, 2, 3}, depths)
}
