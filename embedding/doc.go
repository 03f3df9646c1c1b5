// Package embedding implements the embedding fibre: fixed-length
// numeric vectors attached to derivation trees, composed by weighted
// averaging.
//
// Semantics
//
//   - Identity: a leaf looks its label up in the configured word-vector
//     table (fitted to the declared dimension by truncation or
//     zero-padding); unknown labels and internal nodes get the zero
//     vector.
//   - Combine "merge": element-wise weighted average after zero-padding
//     the shorter operand (MergeWeight on the left, 1-MergeWeight on the
//     right; default symmetric 0.5).
//   - Combine "move": the same average with the asymmetric MoveWeight
//     (default 0.3 on the left), favouring the second operand.
//   - Unknown operations: the symmetric 0.5 average.
//   - Pull: projection to the smaller ProjectDim (truncate, zero-pad);
//     identity morphisms pull to an unchanged copy. Deterministic and
//     exactly functorial, since projecting twice to the same dimension
//     equals projecting once.
//   - Push: extension to the declared dimension, padding with PadValue.
//
// Configuration
//
//	The word-vector table and every weight are explicit construction
//	parameters (Options); nothing is read from package-level state.
//	LoadTable reads a table from YAML so vector data can ship as files.
//
// Degeneracies
//
//	Zero vectors combine into zero vectors; no operation fails hard.
package embedding
