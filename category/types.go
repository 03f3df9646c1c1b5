// Package category declares the Node and Morphism types together with
// their sentinel errors. See doc.go for the package overview.
package category

import "errors"

// Sentinel errors for base-category operations.
var (
	// ErrNilNode indicates a nil *Node was supplied where a tree is required.
	ErrNilNode = errors.New("category: node is nil")

	// ErrNilMorphism indicates a nil *Morphism was supplied.
	ErrNilMorphism = errors.New("category: morphism is nil")

	// ErrNotComposable indicates the target of the first morphism does not
	// match the source of the second.
	ErrNotComposable = errors.New("category: morphisms not composable")

	// ErrMappingOutOfRange indicates a node mapping references an id that
	// is not a node of the corresponding tree.
	ErrMappingOutOfRange = errors.New("category: node mapping out of range")
)

// Node is one node of a derivation tree.
//
// ID uniquely identifies the node within a registry; Label is either a
// terminal token (leaves) or a structural tag such as "merge" (internal
// nodes). Children is the ordered list of subtrees.
//
// Treat Node values as immutable after construction: parents own their
// children by reference, so mutating a child in place would silently
// rewrite every tree that shares it.
type Node struct {
	// ID is the stable identifier of this node.
	ID string `json:"id"`

	// Label is the terminal token or structural tag.
	Label string `json:"label"`

	// Children holds the ordered subtrees; empty for leaves.
	Children []*Node `json:"children"`
}

// Morphism is a structure-preserving map between two trees.
//
// Mapping relates node ids of the source tree to node ids of the target
// tree. A morphism is only meaningful when every key is a node id of the
// source and every value a node id of the target; Validate checks that
// invariant.
type Morphism struct {
	// SourceID is the root id of the source tree.
	SourceID string `json:"source"`

	// TargetID is the root id of the target tree.
	TargetID string `json:"target"`

	// Mapping relates source node ids to target node ids.
	Mapping map[string]string `json:"mapping"`
}
