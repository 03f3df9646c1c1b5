package proof

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// preservedInvariants are the invariants known to restrict to subtrees,
// so pull-back keeps them.
var preservedInvariants = map[string]struct{}{
	"well_formed":     {},
	"feature_checked": {},
}

// Fibre is the proof-obligation fibre. Construct with New.
type Fibre struct{}

// New creates a proof fibre.
func New() *Fibre { return &Fibre{} }

// Key returns the stable annotation-store identifier.
func (f *Fibre) Key() string { return "proof" }

// Identity returns the base well-formedness obligation: Proven with the
// "is_leaf" invariant for leaves, Pending for internal nodes.
func (f *Fibre) Identity(n *category.Node) Data {
	data := NewData()
	ob := Obligation{Property: "well_formed", Status: Pending}
	if n != nil {
		ob.Evidence = fmt.Sprintf("well-formedness of tree %s", n.ID)
		if n.IsLeaf() {
			ob.Status = Proven
			ob.Evidence = "leaf nodes are trivially well-formed"
			data.AddInvariant("is_leaf")
		}
	}
	data.Obligations["well_formed"] = ob

	return data
}

// Combine derives the parent's proof data from two children under the
// named operation. See the package documentation for the semantics.
func (f *Fibre) Combine(left, right Data, op fibre.Op) Data {
	switch op {
	case fibre.Merge:
		return combineMerge(left, right)
	case fibre.Move:
		return combineMove(left)
	default:
		// an operation the fibre cannot reason about preserves nothing
		return NewData()
	}
}

func combineMerge(left, right Data) Data {
	out := NewData()

	for inv := range left.Invariants {
		if _, ok := right.Invariants[inv]; ok {
			out.AddInvariant(inv)
		}
	}

	for name, ob1 := range left.Obligations {
		ob2, shared := right.Obligations[name]
		if !shared {
			out.Obligations[name] = cloneObligation(ob1)
			continue
		}
		deps := slices.Clone(ob1.Dependencies)
		deps = append(deps, ob2.Dependencies...)
		out.Obligations[name] = Obligation{
			Property:     ob1.Property,
			Status:       weaker(ob1.Status, ob2.Status),
			Evidence:     fmt.Sprintf("combined: %s and %s", ob1.Evidence, ob2.Evidence),
			Dependencies: deps,
		}
	}
	for name, ob2 := range right.Obligations {
		if _, ok := out.Obligations[name]; !ok {
			out.Obligations[name] = cloneObligation(ob2)
		}
	}

	out.Obligations["merge_wf"] = Obligation{
		Property: "merge_well_formed",
		Status:   Pending,
		Evidence: "merge conditions not yet checked",
	}

	return out
}

func combineMove(left Data) Data {
	out := NewData()

	for inv := range left.Invariants {
		out.AddInvariant(inv)
	}

	// restructuring invalidates prior verification
	for name, ob := range left.Obligations {
		deps := slices.Clone(ob.Dependencies)
		deps = append(deps, "movement_licensed")
		out.Obligations[name] = Obligation{
			Property:     ob.Property,
			Status:       Pending,
			Evidence:     fmt.Sprintf("re-verify after movement: %s", ob.Evidence),
			Dependencies: deps,
		}
	}

	out.Obligations["movement"] = Obligation{
		Property: "movement_licensed",
		Status:   Pending,
		Evidence: "movement features not yet checked",
	}

	return out
}

// Pull restricts proof data to the source side of the morphism: only
// invariants on the preserved list survive; obligations transfer with
// status, evidence, and dependencies unchanged. An identity morphism
// pulls to an unchanged copy, honoring the identity law.
func (f *Fibre) Pull(m *category.Morphism, target Data) Data {
	if m.IsIdentity() {
		return target.Clone()
	}
	out := NewData()
	for inv := range target.Invariants {
		if _, ok := preservedInvariants[inv]; ok {
			out.AddInvariant(inv)
		}
	}
	for name, ob := range target.Obligations {
		out.Obligations[name] = cloneObligation(ob)
	}

	return out
}

// Push lifts proof data along the morphism: only "is_leaf" lifts as an
// invariant, Proven weakens to Assumed, and every obligation records a
// dependency naming the traversed morphism.
func (f *Fibre) Push(m *category.Morphism, source Data) Data {
	out := NewData()
	if source.HasInvariant("is_leaf") {
		out.AddInvariant("is_leaf")
	}
	dep := "morphism"
	if m != nil {
		dep = fmt.Sprintf("morphism_%s_to_%s", m.SourceID, m.TargetID)
	}
	for name, ob := range source.Obligations {
		status := ob.Status
		if status == Proven {
			status = Assumed
		}
		deps := slices.Clone(ob.Dependencies)
		deps = append(deps, dep)
		out.Obligations[name] = Obligation{
			Property:     ob.Property,
			Status:       status,
			Evidence:     fmt.Sprintf("pushed: %s", ob.Evidence),
			Dependencies: deps,
		}
	}

	return out
}

// Equal reports structural equality of two proof-data values:
// identical invariant sets and identical obligations by name.
func (f *Fibre) Equal(a, b Data) bool {
	if len(a.Obligations) != len(b.Obligations) || len(a.Invariants) != len(b.Invariants) {
		return false
	}
	for inv := range a.Invariants {
		if _, ok := b.Invariants[inv]; !ok {
			return false
		}
	}
	for name, oa := range a.Obligations {
		ob, ok := b.Obligations[name]
		if !ok {
			return false
		}
		if oa.Property != ob.Property || oa.Status != ob.Status || oa.Evidence != ob.Evidence {
			return false
		}
		if !slices.Equal(oa.Dependencies, ob.Dependencies) {
			return false
		}
	}

	return true
}

// cloneObligation copies an obligation including its dependency slice.
func cloneObligation(ob Obligation) Obligation {
	ob.Dependencies = slices.Clone(ob.Dependencies)

	return ob
}
