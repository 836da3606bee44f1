package domain

import "math"

// Vector is an embedding vector.
type Vector []float32

// Embedding dimensions for each modality.
const (
	TextDim  = 384
	ImageDim = 512
	VibeDim  = 384
	FusedDim = 512
)

// ZeroVector returns an all-zero vector of the given dimension.
func ZeroVector(dim int) Vector {
	return make(Vector, dim)
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Fit returns a copy of v adjusted to dim: zero-padded when shorter,
// truncated when longer. A vector of the right size is copied as-is.
func (v Vector) Fit(dim int) Vector {
	out := make(Vector, dim)
	copy(out, v)
	return out
}

// Norm returns the L2 norm of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Normalized returns v scaled to unit L2 norm. The zero vector is
// returned unchanged rather than producing NaNs.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	out := make(Vector, len(v))
	if n == 0 {
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out
}
