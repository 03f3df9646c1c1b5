package fibration

import (
	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// Parse builds a derivation tree bottom-up from tokens while computing
// fibre data compositionally, and returns the root together with its
// data.
//
// Algorithm:
//  1. Mint one registered leaf per token.
//  2. Within the current level, pair adjacent nodes left-to-right. Each
//     pair gets a "merge" parent plus two single-entry morphisms
//     (left child → parent, right child → parent). An unannotated child
//     receives the fibre's identity data; the parent is annotated with
//     Combine(left, right, Merge).
//  3. A level with an odd node count carries its last node forward
//     unpaired. Repeat until one node remains.
//
// The result is a balanced-by-construction binary tree of height
// ⌈log2(n)⌉ — a placeholder structural strategy exercising the
// fibration, not a grammatical parse.
//
// Complexity: O(n) nodes and morphisms, plus n-1 Combine calls.
func Parse[F any](fb *Fibration, f fibre.Fibre[F], tokens []string) (*category.Node, F, error) {
	var zero F
	if fb == nil {
		return nil, zero, ErrNilRegistry
	}
	if f == nil {
		return nil, zero, ErrNilFibre
	}
	if len(tokens) == 0 {
		return nil, zero, ErrNoTokens
	}

	level := make([]*category.Node, 0, len(tokens))
	for _, tok := range tokens {
		leaf := category.NewLeaf(fb.freshID(), tok)
		if err := fb.AddTree(leaf); err != nil {
			return nil, zero, err
		}
		level = append(level, leaf)
	}

	for len(level) > 1 {
		next := make([]*category.Node, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			left, right := level[i], level[i+1]
			parent := category.NewNode(fb.freshID(), string(fibre.Merge), left, right)
			if err := fb.AddTree(parent); err != nil {
				return nil, zero, err
			}
			if err := fb.AddMorphism(&category.Morphism{
				SourceID: left.ID,
				TargetID: parent.ID,
				Mapping:  map[string]string{left.ID: parent.ID},
			}); err != nil {
				return nil, zero, err
			}
			if err := fb.AddMorphism(&category.Morphism{
				SourceID: right.ID,
				TargetID: parent.ID,
				Mapping:  map[string]string{right.ID: parent.ID},
			}); err != nil {
				return nil, zero, err
			}

			leftData := ensureAnnotated(fb, f, left)
			rightData := ensureAnnotated(fb, f, right)
			fb.Annotate(parent.ID, f.Key(), f.Combine(leftData, rightData, fibre.Merge))

			next = append(next, parent)
		}
		// odd node carried forward unpaired
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	root := level[0]
	rootData := ensureAnnotated(fb, f, root)

	return root, rootData, nil
}
