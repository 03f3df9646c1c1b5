package category_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/fibra/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds
//
//	root(merge)
//	├── np(merge)
//	│   ├── det "the"
//	│   └── n   "student"
//	└── v "left"
func sampleTree() *category.Node {
	np := category.NewNode("np", "merge",
		category.NewLeaf("det", "the"),
		category.NewLeaf("n", "student"),
	)

	return category.NewNode("root", "merge", np, category.NewLeaf("v", "left"))
}

// TestNode_LeafConstruction verifies NewLeaf produces a childless node.
func TestNode_LeafConstruction(t *testing.T) {
	leaf := category.NewLeaf("l1", "student")
	assert.True(t, leaf.IsLeaf(), "leaf must have no children")
	assert.Equal(t, "student", leaf.Label)
	assert.Equal(t, 1, leaf.Size())
}

// TestNode_FindDepthFirst verifies Find returns the first DFS match and
// nil for absent ids.
func TestNode_FindDepthFirst(t *testing.T) {
	tree := sampleTree()

	hit := tree.Find("n")
	require.NotNil(t, hit, "existing id must be found")
	assert.Equal(t, "student", hit.Label)

	assert.Nil(t, tree.Find("missing"), "absent id must yield nil")
}

// TestNode_YieldAndLeaves verifies the surface string of a derivation.
func TestNode_YieldAndLeaves(t *testing.T) {
	tree := sampleTree()
	assert.Equal(t, "the student left", tree.Yield())
	assert.Len(t, tree.Leaves(), 3)
	assert.Equal(t, 5, tree.Size())
}

// TestNode_CloneIsDeep verifies Clone duplicates every node so the
// original cannot be reached through the copy.
func TestNode_CloneIsDeep(t *testing.T) {
	tree := sampleTree()
	cp := tree.Clone()

	require.True(t, tree.Equal(cp), "clone must be structurally equal")
	cp.Children[0].Children[0].Label = "a"
	assert.Equal(t, "the", tree.Children[0].Children[0].Label, "mutating the clone must not touch the original")
}

// TestNode_EqualDetectsDifferences verifies Equal is sensitive to id,
// label, and child order.
func TestNode_EqualDetectsDifferences(t *testing.T) {
	a := sampleTree()
	assert.True(t, a.Equal(sampleTree()))

	relabeled := sampleTree()
	relabeled.Children[1].Label = "arrived"
	assert.False(t, a.Equal(relabeled), "different labels must not be equal")

	reordered := category.NewNode("root", "merge",
		category.NewLeaf("v", "left"),
		a.Children[0],
	)
	assert.False(t, a.Equal(reordered), "child order matters")
}

// TestNode_JSONRoundTrip verifies the generic {id,label,children} shape
// survives a marshal/unmarshal cycle.
func TestNode_JSONRoundTrip(t *testing.T) {
	tree := sampleTree()

	raw, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"root"`)
	assert.Contains(t, string(raw), `"label":"merge"`)

	var back category.Node
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, tree.Equal(&back))
}
