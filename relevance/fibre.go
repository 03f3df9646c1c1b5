package relevance

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// equalTolerance bounds the per-document score difference Equal accepts.
const equalTolerance = 1e-9

// Fibre is the BM25 relevance-scoring fibre. Construct with New; the
// collection statistics are precomputed there and never change.
type Fibre struct {
	k1, b      float64
	mergeLeft  float64
	mergeRight float64
	tokenize   func(string) []string

	// precomputed collection statistics
	termFreqs map[string]map[string]int // doc id → term → frequency
	docLen    map[string]int
	avgDocLen float64
	idf       map[string]float64
}

// New validates the options, precomputes collection statistics, and
// creates a relevance fibre.
// Errors: ErrEmptyCollection without documents, ErrBadParameter for K1,
// B, or weights outside their ranges.
// Complexity: O(total terms in the collection).
func New(opts Options) (*Fibre, error) {
	if len(opts.Documents) == 0 {
		return nil, ErrEmptyCollection
	}
	if opts.K1 <= 0 {
		return nil, fmt.Errorf("%w: K1=%g", ErrBadParameter, opts.K1)
	}
	if opts.B < 0 || opts.B > 1 {
		return nil, fmt.Errorf("%w: B=%g", ErrBadParameter, opts.B)
	}
	if opts.MergeLeft < 0 || opts.MergeRight < 0 {
		return nil, fmt.Errorf("%w: merge weights %g/%g", ErrBadParameter, opts.MergeLeft, opts.MergeRight)
	}
	tokenize := opts.Tokenizer
	if tokenize == nil {
		tokenize = defaultTokenizer
	}

	f := &Fibre{
		k1:         opts.K1,
		b:          opts.B,
		mergeLeft:  opts.MergeLeft,
		mergeRight: opts.MergeRight,
		tokenize:   tokenize,
		termFreqs:  make(map[string]map[string]int, len(opts.Documents)),
		docLen:     make(map[string]int, len(opts.Documents)),
		idf:        make(map[string]float64),
	}

	docFreq := make(map[string]int)
	totalLen := 0
	for docID, text := range opts.Documents {
		terms := tokenize(text)
		freqs := make(map[string]int, len(terms))
		for _, term := range terms {
			freqs[term]++
		}
		f.termFreqs[docID] = freqs
		f.docLen[docID] = len(terms)
		totalLen += len(terms)
		for term := range freqs {
			docFreq[term]++
		}
	}
	n := float64(len(opts.Documents))
	f.avgDocLen = float64(totalLen) / n
	for term, df := range docFreq {
		f.idf[term] = math.Log((n-float64(df)+0.5)/(float64(df)+0.5) + 1)
	}

	return f, nil
}

// defaultTokenizer lowercases and splits on any non-letter/non-digit
// rune.
func defaultTokenizer(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// score returns the BM25 score of a single query term against one
// document.
func (f *Fibre) score(term, docID string) float64 {
	tf := f.termFreqs[docID][term]
	if tf == 0 {
		return 0
	}
	idf := f.idf[term]
	length := float64(f.docLen[docID])
	numerator := float64(tf) * (f.k1 + 1)
	denominator := float64(tf) + f.k1*(1-f.b+f.b*length/f.avgDocLen)

	return idf * (numerator / denominator)
}

// Key returns the stable annotation-store identifier.
func (f *Fibre) Key() string { return "relevance" }

// Identity scores a leaf's label as a single-term query against the
// collection, omitting zero scores; internal nodes start empty.
func (f *Fibre) Identity(n *category.Node) Scores {
	out := make(Scores)
	if n == nil || !n.IsLeaf() {
		return out
	}
	term := strings.ToLower(n.Label)
	for docID := range f.termFreqs {
		if s := f.score(term, docID); s > 0 {
			out[docID] = s
		}
	}

	return out
}

// Combine merges two score maps under the named operation: a weighted
// linear combination over the union of document ids for "merge", the
// left scores unchanged for "move" and anything unrecognized.
func (f *Fibre) Combine(left, right Scores, op fibre.Op) Scores {
	if op != fibre.Merge {
		return left.clone()
	}
	out := make(Scores, len(left)+len(right))
	for docID, s := range left {
		out[docID] += f.mergeLeft * s
	}
	for docID, s := range right {
		out[docID] += f.mergeRight * s
	}

	return out
}

// Pull passes scores through unchanged: relevance is syntax-invariant
// in this reference strategy, so restriction is the identity.
func (f *Fibre) Pull(_ *category.Morphism, target Scores) Scores {
	return target.clone()
}

// Push passes scores through unchanged, mirroring Pull.
func (f *Fibre) Push(_ *category.Morphism, source Scores) Scores {
	return source.clone()
}

// Equal reports whether two score maps agree on the same documents
// within a small tolerance.
func (f *Fibre) Equal(a, b Scores) bool {
	if len(a) != len(b) {
		return false
	}
	for docID, s := range a {
		o, ok := b[docID]
		if !ok || math.Abs(s-o) > equalTolerance {
			return false
		}
	}

	return true
}
