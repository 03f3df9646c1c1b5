package probability

import (
	"math"
	"strings"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// equalTolerance bounds the per-yield probability difference Equal
// accepts, absorbing floating-point drift from re-normalization.
const equalTolerance = 1e-9

// Option configures the probability fibre.
type Option func(*Fibre)

// WithMoveRetain sets the probability mass kept on the original yield
// under the "move" operation (the transposed variant receives the rest).
// Values outside [0,1] are clamped.
func WithMoveRetain(w float64) Option {
	return func(f *Fibre) {
		f.moveRetain = math.Min(1, math.Max(0, w))
	}
}

// Fibre is the probability-distribution fibre. The zero value is not
// usable; construct with New.
type Fibre struct {
	moveRetain float64
}

// New creates a probability fibre with the given options.
// Defaults: MoveRetain = 0.5.
func New(opts ...Option) *Fibre {
	f := &Fibre{moveRetain: 0.5}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Key returns the stable annotation-store identifier.
func (f *Fibre) Key() string { return "probability" }

// Identity returns point mass on a leaf's label, or the neutral {"" : 1}
// distribution for internal nodes.
func (f *Fibre) Identity(n *category.Node) Dist {
	if n != nil && n.IsLeaf() {
		return Dist{n.Label: 1.0}
	}

	return Dist{"": 1.0}
}

// Combine merges two distributions under the named operation. See the
// package documentation for the per-operation semantics.
func (f *Fibre) Combine(left, right Dist, op fibre.Op) Dist {
	switch op {
	case fibre.Merge:
		return combineMerge(left, right)
	case fibre.Move:
		return f.combineMove(left)
	default:
		// unrecognized operation: empty, still-valid distribution
		return Dist{}
	}
}

// combineMerge is the outer product over the two distributions' yields.
func combineMerge(left, right Dist) Dist {
	out := make(Dist, len(left)*len(right))
	for y1, p1 := range left {
		for y2, p2 := range right {
			joined := strings.TrimSpace(y1 + " " + y2)
			out[joined] += p1 * p2
		}
	}

	return out.Normalized()
}

// combineMove redistributes mass between each yield and its
// first-two-token transposition.
func (f *Fibre) combineMove(left Dist) Dist {
	out := make(Dist, len(left)*2)
	for y, p := range left {
		toks := strings.Fields(y)
		if len(toks) < 2 {
			out[y] += p
			continue
		}
		toks[0], toks[1] = toks[1], toks[0]
		moved := strings.Join(toks, " ")
		out[y] += p * f.moveRetain
		out[moved] += p * (1 - f.moveRetain)
	}

	return out.Normalized()
}

// Pull restricts a distribution to the yields compatible with the
// morphism's source side. The reference strategy treats every yield as
// compatible, so the restriction is a normalized copy.
func (f *Fibre) Pull(_ *category.Morphism, target Dist) Dist {
	return target.Normalized()
}

// Push expands each yield into the supersequence set {y, y + " *"},
// splitting its mass uniformly. A placeholder extension heuristic.
func (f *Fibre) Push(_ *category.Morphism, source Dist) Dist {
	out := make(Dist, len(source)*2)
	for y, p := range source {
		out[y] += p / 2
		out[y+" *"] += p / 2
	}

	return out.Normalized()
}

// Equal reports whether two distributions assign the same mass to the
// same yields within a small floating-point tolerance.
func (f *Fibre) Equal(a, b Dist) bool {
	if len(a) != len(b) {
		return false
	}
	for y, p := range a {
		q, ok := b[y]
		if !ok || math.Abs(p-q) > equalTolerance {
			return false
		}
	}

	return true
}
