// Package relevance implements the relevance-scoring fibre: BM25 scores
// over a fixed document collection attached to derivation trees.
//
// Semantics
//
//   - Identity: a leaf's label is scored as a single lowercase term
//     against every document of the configured collection with the BM25
//     formula (parameters K1 and B); zero scores are omitted. Internal
//     nodes start with an empty score map, which is valid and simply
//     ranks nothing.
//   - Combine "merge": weighted linear combination over the union of
//     document ids (MergeLeft / MergeRight, defaults 0.6 / 0.4).
//   - Combine "move" and unknown operations: the left scores pass
//     through unchanged — retrieval relevance is treated as
//     syntax-invariant in this reference implementation.
//   - Pull / Push: scores pass through unchanged for the same reason,
//     which makes both directions exactly functorial.
//
// Configuration
//
//	The document collection, BM25 parameters, combination weights, and
//	tokenizer are explicit construction parameters (Options); inverse
//	document frequencies and per-document lengths are precomputed once
//	by New. LoadOptions reads a collection and parameters from YAML so
//	corpora can ship as data files.
//
// Guarantees
//
//	BM25's idf term log((N-df+0.5)/(df+0.5)+1) is strictly positive, so
//	every stored score is non-negative; with symmetric weights, Combine
//	is order-independent over disjoint term sets.
package relevance
