package proof_test

import (
	"testing"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
	"github.com/katalvlaran/fibra/proof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentity_LeafProvenInternalPending verifies the base
// well-formedness obligation for both node kinds.
func TestIdentity_LeafProvenInternalPending(t *testing.T) {
	f := proof.New()

	leaf := f.Identity(category.NewLeaf("l", "student"))
	require.Contains(t, leaf.Obligations, "well_formed")
	assert.Equal(t, proof.Proven, leaf.Obligations["well_formed"].Status)
	assert.True(t, leaf.HasInvariant("is_leaf"))
	assert.True(t, leaf.FullyVerified())

	internal := f.Identity(category.NewNode("p", "merge", category.NewLeaf("l", "x")))
	assert.Equal(t, proof.Pending, internal.Obligations["well_formed"].Status)
	assert.False(t, internal.FullyVerified())
	assert.Equal(t, []string{"well_formed"}, internal.PendingObligations())
}

// TestCombine_MergeTakesWeakerStatus verifies shared obligations combine
// to the weaker status and invariants intersect.
func TestCombine_MergeTakesWeakerStatus(t *testing.T) {
	f := proof.New()

	left := proof.NewData()
	left.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Proven}
	left.AddInvariant("well_formed")
	left.AddInvariant("has_determiner")

	right := proof.NewData()
	right.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Pending}
	right.AddInvariant("well_formed")

	merged := f.Combine(left, right, fibre.Merge)

	assert.Equal(t, proof.Pending, merged.Obligations["well_formed"].Status, "weaker status must win")
	assert.True(t, merged.HasInvariant("well_formed"))
	assert.False(t, merged.HasInvariant("has_determiner"), "invariants must intersect")
}

// TestCombine_MergeAddsWellFormednessObligation verifies the new pending
// merge_wf obligation and carry-over of one-sided obligations.
func TestCombine_MergeAddsWellFormednessObligation(t *testing.T) {
	f := proof.New()

	left := proof.NewData()
	left.Obligations["agreement"] = proof.Obligation{Property: "agreement_satisfied", Status: proof.Proven}
	right := proof.NewData()
	right.Obligations["theta"] = proof.Obligation{Property: "theta_roles_assigned", Status: proof.Pending}

	merged := f.Combine(left, right, fibre.Merge)

	require.Contains(t, merged.Obligations, "merge_wf")
	assert.Equal(t, proof.Pending, merged.Obligations["merge_wf"].Status)
	assert.Equal(t, "merge_well_formed", merged.Obligations["merge_wf"].Property)
	assert.Contains(t, merged.Obligations, "agreement")
	assert.Contains(t, merged.Obligations, "theta")
}

// TestCombine_MoveDemotesToPending verifies movement demotes every
// inherited obligation and adds the movement obligation.
func TestCombine_MoveDemotesToPending(t *testing.T) {
	f := proof.New()

	left := proof.NewData()
	left.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Proven}
	left.AddInvariant("is_leaf")

	moved := f.Combine(left, proof.NewData(), fibre.Move)

	assert.Equal(t, proof.Pending, moved.Obligations["well_formed"].Status)
	assert.Contains(t, moved.Obligations["well_formed"].Dependencies, "movement_licensed")
	require.Contains(t, moved.Obligations, "movement")
	assert.Equal(t, "movement_licensed", moved.Obligations["movement"].Property)
	assert.True(t, moved.HasInvariant("is_leaf"), "move keeps the left side's invariants")
}

// TestCombine_UnknownOperationEmpty verifies the total-function fallback.
func TestCombine_UnknownOperationEmpty(t *testing.T) {
	f := proof.New()

	left := f.Identity(category.NewLeaf("l", "x"))
	out := f.Combine(left, left, fibre.Op("adjoin"))

	assert.Empty(t, out.Obligations)
	assert.Empty(t, out.Invariants)
}

// TestPull_FiltersInvariants verifies only preserved invariants survive
// a pull-back while obligations transfer unchanged.
func TestPull_FiltersInvariants(t *testing.T) {
	f := proof.New()
	m := &category.Morphism{SourceID: "a", TargetID: "b", Mapping: map[string]string{"a": "b"}}

	data := proof.NewData()
	data.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Proven, Evidence: "checked"}
	data.AddInvariant("well_formed")
	data.AddInvariant("has_determiner")

	pulled := f.Pull(m, data)

	assert.True(t, pulled.HasInvariant("well_formed"))
	assert.False(t, pulled.HasInvariant("has_determiner"))
	assert.Equal(t, data.Obligations["well_formed"], pulled.Obligations["well_formed"], "obligations transfer unchanged")
}

// TestPull_IdentityLaw verifies pulling data already restricted to
// preserved invariants returns an equal value.
func TestPull_IdentityLaw(t *testing.T) {
	f := proof.New()
	tree := category.NewLeaf("t", "x")
	idm, err := category.Identity(tree)
	require.NoError(t, err)

	data := proof.NewData()
	data.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Assumed}
	data.AddInvariant("well_formed")

	assert.True(t, f.Equal(data, f.Pull(idm, data)))
}

// TestPush_WeakensProvenAndRecordsMorphism verifies the covariant
// weakening and the recorded dependency.
func TestPush_WeakensProvenAndRecordsMorphism(t *testing.T) {
	f := proof.New()
	m := &category.Morphism{SourceID: "small", TargetID: "big", Mapping: map[string]string{"small": "big"}}

	data := proof.NewData()
	data.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Proven}
	data.AddInvariant("is_leaf")
	data.AddInvariant("has_determiner")

	pushed := f.Push(m, data)

	assert.Equal(t, proof.Assumed, pushed.Obligations["well_formed"].Status, "proven must weaken to assumed")
	assert.Contains(t, pushed.Obligations["well_formed"].Dependencies, "morphism_small_to_big")
	assert.True(t, pushed.HasInvariant("is_leaf"), "is_leaf lifts")
	assert.False(t, pushed.HasInvariant("has_determiner"), "other invariants do not lift")
}

// TestStatus_StringAndOrdering verifies the strength order and names.
func TestStatus_StringAndOrdering(t *testing.T) {
	assert.True(t, proof.Failed < proof.Pending)
	assert.True(t, proof.Pending < proof.Assumed)
	assert.True(t, proof.Assumed < proof.Proven)

	assert.Equal(t, "proven", proof.Proven.String())
	assert.Equal(t, "failed", proof.Failed.String())
}
