package dbscan

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean computes the Euclidean (L2) distance. It panics if a and b have
// different lengths.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan computes the Manhattan (L1 / city-block) distance.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev computes the Chebyshev (L-infinity) distance.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Cosine computes the cosine distance: 1 - cosine_similarity.
// For a zero vector the result is NaN, which no epsilon admits.
func Cosine(a, b []float64) float64 {
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}

// Minkowski returns the Minkowski (Lp) distance for p. It panics if p < 1,
// where the result is no longer a metric.
func Minkowski(p float64) func(a, b []float64) float64 {
	if p < 1 {
		panic("dbscan: Minkowski p must be >= 1")
	}
	return func(a, b []float64) float64 {
		return floats.Distance(a, b, p)
	}
}

// Number is the set of scalar types AbsDiff accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AbsDiff returns |a - b|, the natural distance for the sorted engine.
// It does not underflow for unsigned types.
func AbsDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
