package embedding

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// equalTolerance bounds the per-component difference Equal accepts.
const equalTolerance = 1e-9

// Fibre is the vector-embedding fibre. Construct with New.
type Fibre struct {
	dim        int
	table      map[string]Vector
	mergeLeft  float64
	moveLeft   float64
	projectDim int
	padValue   float64
}

// New validates the options and creates an embedding fibre.
// Errors: ErrBadDimension when Dim <= 0 or ProjectDim < 0,
// ErrBadWeight when a combination weight is outside [0,1].
func New(opts Options) (*Fibre, error) {
	if opts.Dim <= 0 {
		return nil, fmt.Errorf("%w: Dim=%d", ErrBadDimension, opts.Dim)
	}
	if opts.ProjectDim < 0 {
		return nil, fmt.Errorf("%w: ProjectDim=%d", ErrBadDimension, opts.ProjectDim)
	}
	if opts.MergeWeight < 0 || opts.MergeWeight > 1 {
		return nil, fmt.Errorf("%w: MergeWeight=%g", ErrBadWeight, opts.MergeWeight)
	}
	if opts.MoveWeight < 0 || opts.MoveWeight > 1 {
		return nil, fmt.Errorf("%w: MoveWeight=%g", ErrBadWeight, opts.MoveWeight)
	}

	projectDim := opts.ProjectDim
	if projectDim == 0 {
		projectDim = opts.Dim / 2
		if projectDim < 1 {
			projectDim = 1
		}
	}

	table := make(map[string]Vector, len(opts.Table))
	for label, vec := range opts.Table {
		table[label] = Vector(vec).fit(opts.Dim)
	}

	return &Fibre{
		dim:        opts.Dim,
		table:      table,
		mergeLeft:  opts.MergeWeight,
		moveLeft:   opts.MoveWeight,
		projectDim: projectDim,
		padValue:   opts.PadValue,
	}, nil
}

// Key returns the stable annotation-store identifier.
func (f *Fibre) Key() string { return "embedding" }

// Dim returns the declared vector dimension.
func (f *Fibre) Dim() int { return f.dim }

// Identity returns the table vector for a leaf's label fitted to the
// declared dimension, or the zero vector when the label is unknown or
// the node is internal.
func (f *Fibre) Identity(n *category.Node) Vector {
	if n != nil && n.IsLeaf() {
		if vec, ok := f.table[n.Label]; ok {
			return vec.fit(f.dim)
		}
	}

	return make(Vector, f.dim)
}

// Combine averages two vectors element-wise under the weight the
// operation selects; the shorter operand is zero-padded first.
func (f *Fibre) Combine(left, right Vector, op fibre.Op) Vector {
	w := 0.5
	switch op {
	case fibre.Merge:
		w = f.mergeLeft
	case fibre.Move:
		w = f.moveLeft
	}

	dim := len(left)
	if len(right) > dim {
		dim = len(right)
	}
	a, b := left.fit(dim), right.fit(dim)
	out := make(Vector, dim)
	for i := range out {
		out[i] = w*a[i] + (1-w)*b[i]
	}

	return out
}

// Pull projects a vector down to the configured ProjectDim by
// truncation/zero-padding. An identity morphism pulls to an unchanged
// copy, honoring the identity law.
func (f *Fibre) Pull(m *category.Morphism, target Vector) Vector {
	if m.IsIdentity() {
		return target.fit(len(target))
	}

	return target.fit(f.projectDim)
}

// Push extends a vector up to the declared dimension, padding fresh
// components with PadValue; longer vectors are truncated to Dim.
func (f *Fibre) Push(_ *category.Morphism, source Vector) Vector {
	out := make(Vector, f.dim)
	for i := range out {
		if i < len(source) {
			out[i] = source[i]
			continue
		}
		out[i] = f.padValue
	}

	return out
}

// Equal reports component-wise equality within a small tolerance;
// vectors of different lengths are unequal.
func (f *Fibre) Equal(a, b Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > equalTolerance {
			return false
		}
	}

	return true
}
