// Package fibre declares the capability contract every enrichment
// strategy must satisfy to ride along the base category of trees.
//
// What
//
//	A fibre attaches one kind of computed data (probability mass, vector
//	embeddings, proof obligations, relevance scores) to derivation trees
//	and keeps that data coherent while the trees are transformed. The
//	contract is four operations plus an equality predicate:
//
//	  - Identity(node): neutral data for a single, unannotated node.
//	  - Combine(left, right, op): parent data from two sibling subtrees,
//	    parameterized by the structural operation joining them (Merge,
//	    Move, or any other name — Combine must be total and define a
//	    fallback for operations it does not recognize).
//	  - Pull(m, data): given m: A→B and data over B, data over A. The
//	    contravariant direction. Pulling along an identity morphism must
//	    return data equal to the input, and pulling along a composite
//	    f;g must equal pulling along g then along f (the functoriality
//	    law — package fibration ships a checker).
//	  - Push(m, data): given m: A→B and data over A, data over B. The
//	    covariant direction; it may lose or approximate information and
//	    need not invert Pull.
//	  - Equal(a, b): structural fibre-data equality, the relation the
//	    functoriality checker tests against.
//
//	Key() supplies the stable identifier under which annotations are
//	stored; implementations must return a constant, never derive it from
//	runtime type information.
//
// Error policy
//
//	Fibres degrade gracefully: malformed or partial morphisms passed to
//	Pull/Push are answered with a semantically sensible fallback, never
//	with a panic or a hard error. Hard failures are reserved for the
//	orchestrator (non-composable morphisms, substitution target not
//	found).
package fibre
