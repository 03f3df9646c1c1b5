package fibration

import (
	"fmt"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// Substitute rebuilds the registered tree treeID with the first node
// matching targetNodeID (depth-first, children in order) replaced by
// replacement, registers the result under a derived id, registers a
// morphism from the new tree to the original, and transports existing
// fibre data back along it.
//
// If the original tree carries an annotation for the fibre, that data is
// pulled back along the morphism; otherwise the fibre's identity data on
// the new root is used.
//
// Errors: ErrTreeNotFound when treeID is unknown, ErrNodeNotFound when
// targetNodeID does not occur in the source tree, ErrNilTree for a nil
// replacement.
//
// Complexity: O(V) for the rebuild plus one Pull.
func Substitute[F any](
	fb *Fibration,
	f fibre.Fibre[F],
	treeID, targetNodeID string,
	replacement *category.Node,
) (*category.Node, F, error) {
	var zero F
	if fb == nil {
		return nil, zero, ErrNilRegistry
	}
	if f == nil {
		return nil, zero, ErrNilFibre
	}
	if replacement == nil {
		return nil, zero, ErrNilTree
	}

	orig := fb.Tree(treeID)
	if orig == nil {
		return nil, zero, fmt.Errorf("%w: %q", ErrTreeNotFound, treeID)
	}
	if orig.Find(targetNodeID) == nil {
		return nil, zero, fmt.Errorf("%w: %q in tree %q", ErrNodeNotFound, targetNodeID, treeID)
	}

	rebuilt, _ := substituteNode(orig, targetNodeID, replacement)
	newRoot := category.NewNode(fb.derivedID(treeID), rebuilt.Label, rebuilt.Children...)
	if err := fb.AddTree(newRoot); err != nil {
		return nil, zero, err
	}

	// Shared node ids map to themselves; the fresh root maps onto the
	// original root.
	origIDs := make(map[string]struct{})
	orig.Walk(func(n *category.Node) { origIDs[n.ID] = struct{}{} })
	mapping := make(map[string]string)
	newRoot.Walk(func(n *category.Node) {
		if _, ok := origIDs[n.ID]; ok {
			mapping[n.ID] = n.ID
		}
	})
	mapping[newRoot.ID] = orig.ID

	m := &category.Morphism{SourceID: newRoot.ID, TargetID: orig.ID, Mapping: mapping}
	if err := fb.AddMorphism(m); err != nil {
		return nil, zero, err
	}

	if prior, ok := Annotation(fb, treeID, f); ok {
		pulled := f.Pull(m, prior)
		fb.Annotate(newRoot.ID, f.Key(), pulled)

		return newRoot, pulled, nil
	}

	data := f.Identity(newRoot)
	fb.Annotate(newRoot.ID, f.Key(), data)

	return newRoot, data, nil
}

// substituteNode returns tree with the first DFS occurrence of targetID
// replaced by replacement, and whether a replacement happened. Subtrees
// on the untouched side are shared, not copied; only the spine above the
// replacement is rebuilt.
func substituteNode(tree *category.Node, targetID string, replacement *category.Node) (*category.Node, bool) {
	if tree.ID == targetID {
		return replacement, true
	}
	replaced := false
	kids := make([]*category.Node, len(tree.Children))
	for i, c := range tree.Children {
		if replaced {
			kids[i] = c
			continue
		}
		kids[i], replaced = substituteNode(c, targetID, replacement)
	}
	if !replaced {
		return tree, false
	}

	return category.NewNode(tree.ID, tree.Label, kids...), true
}

// derivedID returns treeID+"_subst", appending a counter when that id is
// already taken.
func (fb *Fibration) derivedID(treeID string) string {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	base := treeID + "_subst"
	id := base
	for n := 2; ; n++ {
		if _, taken := fb.trees[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s%d", base, n)
	}
}
