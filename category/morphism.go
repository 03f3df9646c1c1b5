package category

import "fmt"

// Identity returns the identity morphism of the tree: every node of t is
// mapped to itself, source and target are both t.
//
// Identity morphisms are two-sided units for Compose.
// Complexity: O(V)
func Identity(t *Node) (*Morphism, error) {
	if t == nil {
		return nil, ErrNilNode
	}
	mapping := make(map[string]string)
	t.Walk(func(n *Node) { mapping[n.ID] = n.ID })

	return &Morphism{SourceID: t.ID, TargetID: t.ID, Mapping: mapping}, nil
}

// Compose returns the composite morphism m;other.
//
// With m: A→B and other: B→C the result is A→C, whose mapping sends a to
// other.Mapping[m.Mapping[a]] for every node a reachable through both
// mappings. Returns ErrNotComposable when m.TargetID != other.SourceID.
//
// Composition is associative; Identity morphisms are left and right
// units.
// Complexity: O(|m.Mapping|)
func (m *Morphism) Compose(other *Morphism) (*Morphism, error) {
	if m == nil || other == nil {
		return nil, ErrNilMorphism
	}
	if m.TargetID != other.SourceID {
		return nil, fmt.Errorf("%w: %q→%q then %q→%q",
			ErrNotComposable, m.SourceID, m.TargetID, other.SourceID, other.TargetID)
	}
	mapping := make(map[string]string, len(m.Mapping))
	for src, mid := range m.Mapping {
		if dst, ok := other.Mapping[mid]; ok {
			mapping[src] = dst
		}
	}

	return &Morphism{SourceID: m.SourceID, TargetID: other.TargetID, Mapping: mapping}, nil
}

// Validate checks the morphism invariant against concrete trees: every
// mapping key must be a node id of src and every mapping value a node id
// of dst. Returns ErrMappingOutOfRange naming the offending entry.
// Complexity: O(V_src + V_dst + |Mapping|)
func (m *Morphism) Validate(src, dst *Node) error {
	if m == nil {
		return ErrNilMorphism
	}
	if src == nil || dst == nil {
		return ErrNilNode
	}
	srcIDs, dstIDs := src.ids(), dst.ids()
	for k, v := range m.Mapping {
		if _, ok := srcIDs[k]; !ok {
			return fmt.Errorf("%w: key %q is not a node of source %q", ErrMappingOutOfRange, k, src.ID)
		}
		if _, ok := dstIDs[v]; !ok {
			return fmt.Errorf("%w: value %q is not a node of target %q", ErrMappingOutOfRange, v, dst.ID)
		}
	}

	return nil
}

// IsIdentity reports whether the morphism maps a tree to itself with
// every mapped node fixed. It does not verify coverage of the whole
// tree; use Identity to construct a full identity morphism.
func (m *Morphism) IsIdentity() bool {
	if m == nil || m.SourceID != m.TargetID {
		return false
	}
	for k, v := range m.Mapping {
		if k != v {
			return false
		}
	}

	return true
}
