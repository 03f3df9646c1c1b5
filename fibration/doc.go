// Package fibration is the orchestrator of the fibra library: it owns
// the tree registry, the morphism registry, and the per-tree-per-fibre
// annotation store, and exposes the operations that keep enrichment data
// coherent while trees are transformed.
//
// What
//
//   - Fibration: the session-scoped registry. Every node created during
//     a compositional parse is registered as a tree in its own right;
//     morphisms are keyed by (source id, target id) with last-writer-
//     wins; annotations are keyed by (tree id, qualified fibre key).
//   - Parse: builds a derivation tree bottom-up from a token sequence
//     while computing fibre data at every reduction step. The structural
//     strategy is a naive left-to-right binary reduction — one leaf per
//     token, adjacent nodes paired level by level, the odd node carried
//     forward — producing a balanced tree of height ⌈log2(n)⌉. It is a
//     placeholder that exercises the fibration, not a grammatical parse.
//   - Substitute: rebuilds a registered tree with one subtree replaced
//     (first match in DFS order), registers the result and a morphism
//     from the new tree to the original, and pulls existing annotations
//     back along that morphism.
//   - VerifyFunctoriality: checks pull(g∘f, d) == pull(f, pull(g, d))
//     for composable morphisms — a development-time diagnostic for fibre
//     authors, not a runtime gate.
//   - Snapshot / ExportJSON: a generic structured dump of the registry
//     (nested {id,label,children} trees, parallel morphism and
//     annotation lists) for inspection or visualization.
//
// Identifiers
//
//	Node and tree ids minted by the registry come from a monotonically
//	increasing counter ("n1", "n2", …); derived trees get a "_subst"
//	suffix. Ids are never based on runtime object identity, so runs are
//	reproducible.
//
// Concurrency
//
//	Registration and annotation are read-modify-write, so a single
//	RWMutex guards all three registries. The design still assumes one
//	logical owner issuing calls sequentially; Parse and Substitute are
//	not atomic as a whole against concurrent writers.
//
// Errors
//
//   - ErrNoTokens       — Parse on an empty token sequence.
//   - ErrTreeNotFound   — Substitute on an unknown tree id.
//   - ErrNodeNotFound   — substitution target absent from the source tree.
//   - ErrTreeConflict   — re-registering a taken id with a different structure.
//   - ErrNilRegistry, ErrNilFibre, ErrNilTree, ErrEmptyTreeID — nil/empty
//     arguments.
//   - category.ErrNotComposable — surfaced by VerifyFunctoriality.
package fibration
