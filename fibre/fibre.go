package fibre

import "github.com/katalvlaran/fibra/category"

// Op names the structural operation joining two subtrees.
type Op string

const (
	// Merge is concatenative composition of two adjacent subtrees.
	Merge Op = "merge"

	// Move is displacement-like restructuring of a subtree.
	Move Op = "move"
)

// Fibre is the capability contract for one enrichment strategy over
// trees, specialized to its own data type F. See the package
// documentation for the laws each operation must satisfy.
type Fibre[F any] interface {
	// Key returns the stable identifier used as the annotation-store key.
	Key() string

	// Identity produces neutral data for a single tree node with no
	// existing annotation.
	Identity(n *category.Node) F

	// Combine derives parent data from two sibling subtrees under the
	// named structural operation. Total: unrecognized ops yield the
	// fibre's documented fallback.
	Combine(left, right F, op Op) F

	// Pull transports data contravariantly: given m: A→B and data over
	// B, produce data over A.
	Pull(m *category.Morphism, target F) F

	// Push transports data covariantly: given m: A→B and data over A,
	// produce data over B. May lose or approximate information.
	Push(m *category.Morphism, source F) F

	// Equal reports structural equality of two data values.
	Equal(a, b F) bool
}
