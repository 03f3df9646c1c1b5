// Package probability implements the probability fibre: a distribution
// over terminal strings (yields) attached to derivation trees, always
// re-normalized to sum to 1.
//
// Semantics
//
//   - Identity: a leaf gets point mass 1.0 on its own label; an internal
//     node gets the neutral {"" : 1} distribution, which merging treats
//     as the empty prefix.
//   - Combine "merge": the outer product of the two distributions —
//     concatenate yield strings with a space, multiply probabilities,
//     re-normalize.
//   - Combine "move": the left operand restructured — for each yield of
//     at least two tokens, mass is split between the original string and
//     the first-two-token transposition (MoveRetain on the original,
//     1-MoveRetain on the transposed variant). Shorter yields pass
//     through.
//   - Unknown operations: the empty distribution, which is still a valid
//     value (it simply assigns no mass).
//   - Pull: restriction to yields compatible with the source side. In
//     this reference strategy every yield is judged compatible, so Pull
//     re-normalizes a copy — which makes the pull-back exactly
//     functorial.
//   - Push: each yield expands into a small supersequence set
//     {y, y + " *"} with its mass split uniformly. A placeholder
//     heuristic: any strategy satisfying the contract may replace it.
//
// Degeneracies
//
//	Combining two empty distributions yields an empty, still-valid
//	distribution; normalizing an empty or zero-mass distribution is a
//	no-op. No operation fails hard.
package probability
