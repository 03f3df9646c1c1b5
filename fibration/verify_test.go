package fibration_test

import (
	"testing"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/embedding"
	"github.com/katalvlaran/fibra/fibration"
	"github.com/katalvlaran/fibra/probability"
	"github.com/katalvlaran/fibra/proof"
	"github.com/katalvlaran/fibra/relevance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// composablePair returns f: A→B and g: B→C with non-trivial mappings.
func composablePair() (*category.Morphism, *category.Morphism) {
	f := &category.Morphism{SourceID: "a", TargetID: "b", Mapping: map[string]string{"a": "b", "a1": "b1"}}
	g := &category.Morphism{SourceID: "b", TargetID: "c", Mapping: map[string]string{"b": "c", "b1": "c1"}}

	return f, g
}

// TestVerifyFunctoriality_Probability checks the pull-back coherence law
// on the probability fibre.
func TestVerifyFunctoriality_Probability(t *testing.T) {
	f, g := composablePair()
	data := probability.Dist{"the student left": 0.6, "student the left": 0.4}

	ok, err := fibration.VerifyFunctoriality(f, g, probability.New(), data)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerifyFunctoriality_Embedding checks the law on the embedding
// fibre, whose pull projects to a fixed dimension.
func TestVerifyFunctoriality_Embedding(t *testing.T) {
	f, g := composablePair()
	opts := embedding.DefaultOptions(6)
	fib, err := embedding.New(opts)
	require.NoError(t, err)

	data := embedding.Vector{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	ok, err := fibration.VerifyFunctoriality(f, g, fib, data)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerifyFunctoriality_EmbeddingWithIdentityLeg checks the mixed case
// where one leg is an identity morphism.
func TestVerifyFunctoriality_EmbeddingWithIdentityLeg(t *testing.T) {
	tree := category.NewNode("b", "merge", category.NewLeaf("b1", "x"))
	idB, err := category.Identity(tree)
	require.NoError(t, err)
	f := &category.Morphism{SourceID: "a", TargetID: "b", Mapping: map[string]string{"a": "b"}}

	fib, err := embedding.New(embedding.DefaultOptions(4))
	require.NoError(t, err)

	ok, err := fibration.VerifyFunctoriality(f, idB, fib, embedding.Vector{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerifyFunctoriality_Proof checks the law on the proof fibre, whose
// pull filters invariants.
func TestVerifyFunctoriality_Proof(t *testing.T) {
	f, g := composablePair()
	fib := proof.New()

	data := proof.NewData()
	data.AddInvariant("well_formed")
	data.AddInvariant("is_leaf") // not on the preserved list, must filter once
	data.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Proven}

	ok, err := fibration.VerifyFunctoriality(f, g, fib, data)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerifyFunctoriality_Relevance checks the law on the relevance
// fibre, whose pull is a pass-through.
func TestVerifyFunctoriality_Relevance(t *testing.T) {
	f, g := composablePair()
	opts := relevance.DefaultOptions()
	opts.Documents = map[string]string{
		"doc1": "the student studies machine learning",
		"doc2": "the teacher explains recursion theory",
	}
	fib, err := relevance.New(opts)
	require.NoError(t, err)

	ok, err := fibration.VerifyFunctoriality(f, g, fib, relevance.Scores{"doc1": 0.8, "doc2": 0.1})
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerifyFunctoriality_NotComposable verifies the composability guard.
func TestVerifyFunctoriality_NotComposable(t *testing.T) {
	f := &category.Morphism{SourceID: "a", TargetID: "b", Mapping: map[string]string{"a": "b"}}
	g := &category.Morphism{SourceID: "z", TargetID: "c", Mapping: map[string]string{"z": "c"}}

	_, err := fibration.VerifyFunctoriality(f, g, probability.New(), probability.Dist{})
	assert.ErrorIs(t, err, category.ErrNotComposable)
}
