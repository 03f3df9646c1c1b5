// Package fibra annotates syntactic derivation trees with pluggable
// semantic data — probabilities, vectors, proof obligations, relevance
// scores — and transports that data along tree morphisms.
//
// 🚀 What is fibra?
//
//	A small, deterministic library organized as a fibration: a base
//	category of derivation trees and morphisms, with a fibre of
//	annotation data over every tree. Strategies plug in through one
//	interface:
//		• category/    — trees, morphisms, identity & composition
//		• fibre/       — the Fibre contract (Identity, Combine, Pull, Push)
//		• fibration/   — the registry: Parse, Substitute, transport, export
//		• probability/ — distributions over yields
//		• embedding/   — fixed-length vectors, weighted averaging
//		• proof/       — verification obligations with a status lattice
//		• relevance/   — BM25 scores over a document collection
//
// ✨ Why choose fibra?
//
//   - One contract, many semantics – swap the fibre, keep the machinery
//   - Deterministic – no randomness, no object identity; same inputs,
//     same trees, same ids
//   - Lawful – pull-back respects composition and identity, and
//     VerifyFunctoriality checks it for any fibre you write
//   - Pure Go – safe for concurrent readers, explicit errors
//
// Quick ASCII example:
//
//	      merge            parsing ["the","student","left"]
//	     /     \
//	  merge    left        every node carries fibre data;
//	  /   \                the root's data is the composition
//	the  student           of its children's under "merge"
//
// Start with fibration.Parse, then explore Substitute and the per-fibre
// packages. README.md has full walkthroughs and the cmd/fibra CLI.
//
//	go get github.com/katalvlaran/fibra
package fibra
