// Package category provides the base-category primitives of the fibra
// library: immutable derivation-tree nodes and structure-preserving
// morphisms between trees.
//
// What
//
//   - Node: one node of a derivation tree — an ID, a Label (terminal
//     token or structural tag such as "merge"), and an ordered list of
//     children. A node with no children is a leaf. Nodes are immutable
//     once constructed: building a larger tree creates new parents that
//     reference existing children, never mutates them.
//   - Morphism: a directed, structure-preserving map from one tree to
//     another, carried as a node-id → node-id mapping.
//   - Identity(t): the identity morphism of a tree (every node maps to
//     itself).
//   - Compose: morphism composition f:A→B ∘ g:B→C = A→C, restricted to
//     nodes reachable through both mappings. Associative, with identity
//     morphisms as two-sided units.
//
// Why
//
//	Trees and their morphisms form the base category that enrichment
//	fibres (probability, embedding, proof, relevance) ride along. Keeping
//	this package free of any enrichment concern is what makes the
//	pull-back/push-forward laws in package fibration meaningful.
//
// Determinism
//
//	All operations here are pure value construction — no registries, no
//	shared state, no randomness. Two calls with equal inputs yield equal
//	outputs.
//
// Errors
//
//   - ErrNilNode             — a nil *Node where a tree is required.
//   - ErrNilMorphism         — a nil *Morphism.
//   - ErrNotComposable       — Compose with mismatched target/source IDs.
//   - ErrMappingOutOfRange   — Validate found a mapping entry whose key or
//     value is not a node id of the corresponding tree.
package category
