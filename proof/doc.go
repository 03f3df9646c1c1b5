// Package proof implements the proof fibre: named verification
// obligations with a four-valued status, plus tree-wide invariants,
// attached to derivation trees.
//
// Semantics
//
//   - Status ordering, weakest first: Failed < Pending < Assumed <
//     Proven. Combining two statuses always takes the weaker one.
//   - Identity: every node gets a "well_formed" obligation — Proven for
//     leaves (which also carry the "is_leaf" invariant), Pending for
//     internal nodes.
//   - Combine "merge": obligations shared by name take the weaker status
//     and merged dependencies; one-sided obligations carry over;
//     invariants intersect; a Pending "merge_wf" (merge well-formedness)
//     obligation is added.
//   - Combine "move": the left side's invariants are kept, every left
//     obligation is demoted to Pending with a "movement_licensed"
//     dependency (restructuring invalidates prior verification), and a
//     Pending "movement" obligation is added.
//   - Unknown operations: empty data — no obligations survive an
//     operation the fibre cannot reason about.
//   - Pull: keeps only invariants known to restrict to subtrees
//     ("well_formed", "feature_checked"); obligations transfer with
//     status, evidence, and dependencies unchanged, which keeps the
//     pull-back exactly functorial. Identity morphisms pull to an
//     unchanged copy.
//   - Push: only the "is_leaf" invariant lifts; Proven weakens to
//     Assumed, and each obligation records a dependency naming the
//     traversed morphism.
package proof
