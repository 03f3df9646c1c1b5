package relevance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
	"github.com/katalvlaran/fibra/relevance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoDocuments is the five-document collection used across the tests.
func demoDocuments() map[string]string {
	return map[string]string{
		"doc1": "the student studies machine learning",
		"doc2": "the teacher explains recursion theory",
		"doc3": "students learn about formal grammars",
		"doc4": "recursive functions in programming",
		"doc5": "the professor teaches linguistics",
	}
}

// newTestFibre builds a fibre over the demo collection with the given
// merge weights.
func newTestFibre(t *testing.T, left, right float64) *relevance.Fibre {
	t.Helper()
	opts := relevance.DefaultOptions()
	opts.Documents = demoDocuments()
	opts.MergeLeft, opts.MergeRight = left, right
	f, err := relevance.New(opts)
	require.NoError(t, err)

	return f
}

// TestNew_Validation verifies construction errors for missing documents
// and out-of-range parameters.
func TestNew_Validation(t *testing.T) {
	_, err := relevance.New(relevance.DefaultOptions())
	assert.ErrorIs(t, err, relevance.ErrEmptyCollection)

	bad := relevance.DefaultOptions()
	bad.Documents = demoDocuments()
	bad.B = 1.5
	_, err = relevance.New(bad)
	assert.ErrorIs(t, err, relevance.ErrBadParameter)

	bad = relevance.DefaultOptions()
	bad.Documents = demoDocuments()
	bad.K1 = 0
	_, err = relevance.New(bad)
	assert.ErrorIs(t, err, relevance.ErrBadParameter)
}

// TestIdentity_ScoresAreNonNegative verifies single-term leaf scoring:
// only matching documents appear and every score is positive.
func TestIdentity_ScoresAreNonNegative(t *testing.T) {
	f := newTestFibre(t, 0.6, 0.4)

	scores := f.Identity(category.NewLeaf("q", "student"))
	require.Contains(t, scores, "doc1", "doc1 contains 'student'")
	for docID, s := range scores {
		assert.Greater(t, s, 0.0, "score for %s must be positive", docID)
	}
	assert.NotContains(t, scores, "doc2", "doc2 has no 'student' token")

	internal := f.Identity(category.NewNode("p", "merge", category.NewLeaf("q", "x")))
	assert.Empty(t, internal, "internal nodes start unscored")
}

// TestIdentity_LowercasesQueryTerm verifies label case does not affect
// matching.
func TestIdentity_LowercasesQueryTerm(t *testing.T) {
	f := newTestFibre(t, 0.6, 0.4)

	upper := f.Identity(category.NewLeaf("q", "Student"))
	lower := f.Identity(category.NewLeaf("q", "student"))
	assert.True(t, f.Equal(upper, lower))
}

// TestCombine_MergeRanksSharedDocumentFirst is the reference retrieval
// scenario: "student" and "learning" combined 0.6/0.4 must rank the
// document containing both terms at least as high as any document
// containing only one.
func TestCombine_MergeRanksSharedDocumentFirst(t *testing.T) {
	f := newTestFibre(t, 0.6, 0.4)

	student := f.Identity(category.NewLeaf("q1", "student"))
	learning := f.Identity(category.NewLeaf("q2", "learning"))

	combined := f.Combine(student, learning, fibre.Merge)
	require.NotEmpty(t, combined)

	top := combined.TopK(1)
	require.Len(t, top, 1)
	assert.Equal(t, "doc1", top[0].DocID, "doc1 contains both terms")
	for docID, s := range combined {
		assert.GreaterOrEqual(t, top[0].Score, s, "top document must dominate %s", docID)
		assert.GreaterOrEqual(t, s, 0.0)
	}
}

// TestCombine_SymmetricWeightsOrderIndependent verifies combining
// (q1,q2) and (q2,q1) with symmetric weights yields identical results.
func TestCombine_SymmetricWeightsOrderIndependent(t *testing.T) {
	f := newTestFibre(t, 0.5, 0.5)

	q1 := f.Identity(category.NewLeaf("a", "student"))
	q2 := f.Identity(category.NewLeaf("b", "recursion"))

	assert.True(t, f.Equal(
		f.Combine(q1, q2, fibre.Merge),
		f.Combine(q2, q1, fibre.Merge),
	))
}

// TestCombine_MoveAndUnknownPassThrough verifies non-merge operations
// leave the left scores untouched.
func TestCombine_MoveAndUnknownPassThrough(t *testing.T) {
	f := newTestFibre(t, 0.6, 0.4)

	left := relevance.Scores{"doc1": 1.5}
	right := relevance.Scores{"doc2": 9.0}

	assert.True(t, f.Equal(left, f.Combine(left, right, fibre.Move)))
	assert.True(t, f.Equal(left, f.Combine(left, right, fibre.Op("adjoin"))))
}

// TestPullPush_PassThrough verifies both transport directions are the
// identity on scores.
func TestPullPush_PassThrough(t *testing.T) {
	f := newTestFibre(t, 0.6, 0.4)
	m := &category.Morphism{SourceID: "a", TargetID: "b", Mapping: map[string]string{"a": "b"}}

	scores := relevance.Scores{"doc1": 2.0, "doc3": 0.5}
	assert.True(t, f.Equal(scores, f.Pull(m, scores)))
	assert.True(t, f.Equal(scores, f.Push(m, scores)))
}

// TestScores_Helpers exercises TopK ordering, normalization, and
// threshold filtering.
func TestScores_Helpers(t *testing.T) {
	s := relevance.Scores{"doc1": 4.0, "doc2": 1.0, "doc3": 2.0}

	top := s.TopK(2)
	require.Len(t, top, 2)
	assert.Equal(t, "doc1", top[0].DocID)
	assert.Equal(t, "doc3", top[1].DocID)

	norm := s.Normalized()
	assert.InDelta(t, 1.0, norm["doc1"], 1e-12)
	assert.InDelta(t, 0.25, norm["doc2"], 1e-12)

	kept := s.FilterThreshold(2.0)
	assert.Len(t, kept, 2)
	assert.NotContains(t, kept, "doc2")

	assert.Empty(t, relevance.Scores{}.Normalized())
}

// TestLoadOptions_YAML verifies the YAML configuration loader fills
// defaults and decodes the collection.
func TestLoadOptions_YAML(t *testing.T) {
	src := strings.NewReader(`
k1: 1.5
documents:
  doc1: the student studies machine learning
  doc2: recursive functions in programming
`)

	opts, err := relevance.LoadOptions(src)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, opts.K1, 1e-12, "explicit value wins")
	assert.InDelta(t, 0.75, opts.B, 1e-12, "unset value keeps the default")
	assert.Len(t, opts.Documents, 2)

	_, err = relevance.LoadOptions(strings.NewReader("- not a mapping"))
	assert.ErrorIs(t, err, relevance.ErrBadConfig)

	f, err := relevance.New(opts)
	require.NoError(t, err)
	scores := f.Identity(category.NewLeaf("q", "student"))
	assert.Contains(t, scores, "doc1")
}
