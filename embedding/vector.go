package embedding

import "math"

// Vector is a numeric embedding. Its length is its dimension.
type Vector []float64

// Norm returns the L2 norm of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Normalized returns a unit-norm copy; the zero vector is returned as a
// plain copy.
func (v Vector) Normalized() Vector {
	out := make(Vector, len(v))
	n := v.Norm()
	if n == 0 {
		copy(out, v)

		return out
	}
	for i, x := range v {
		out[i] = x / n
	}

	return out
}

// Dot returns the dot product over the shared prefix of two vectors.
func (v Vector) Dot(o Vector) float64 {
	n := len(v)
	if len(o) < n {
		n = len(o)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += v[i] * o[i]
	}

	return sum
}

// Cosine returns the cosine similarity of two vectors, or 0 when either
// has zero norm.
func (v Vector) Cosine(o Vector) float64 {
	nv, no := v.Norm(), o.Norm()
	if nv == 0 || no == 0 {
		return 0
	}

	return v.Dot(o) / (nv * no)
}

// fit returns a copy of v truncated or zero-padded to dim.
func (v Vector) fit(dim int) Vector {
	out := make(Vector, dim)
	copy(out, v)

	return out
}
