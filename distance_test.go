package dbscan

import (
	"math"
	"testing"
)

const floatTol = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// --- Euclidean tests ---

func TestEuclidean_IdenticalVectors(t *testing.T) {
	a := []float64{1, 2, 3}
	if d := Euclidean(a, a); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestEuclidean_HandComputed(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	// sqrt((4-1)^2 + (6-2)^2 + (3-3)^2) = sqrt(9+16+0) = 5
	if d := Euclidean(a, b); !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", d)
	}
}

func TestEuclidean_Symmetric(t *testing.T) {
	a := []float64{1.5, -2.2, 0.1}
	b := []float64{-0.3, 4.0, 9.9}
	if Euclidean(a, b) != Euclidean(b, a) {
		t.Errorf("Euclidean not symmetric: %v vs %v", Euclidean(a, b), Euclidean(b, a))
	}
}

// --- Manhattan / Chebyshev tests ---

func TestManhattan_HandComputed(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	// |3| + |4| + |0| = 7
	if d := Manhattan(a, b); !almostEqual(d, 7.0, floatTol) {
		t.Errorf("expected 7.0, got %v", d)
	}
}

func TestChebyshev_HandComputed(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	// max(3, 4, 0) = 4
	if d := Chebyshev(a, b); !almostEqual(d, 4.0, floatTol) {
		t.Errorf("expected 4.0, got %v", d)
	}
}

// --- Cosine tests ---

func TestCosine_Orthogonal(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	if d := Cosine(a, b); !almostEqual(d, 1.0, floatTol) {
		t.Errorf("expected 1.0, got %v", d)
	}
}

func TestCosine_SameDirection(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{2, 4}
	if d := Cosine(a, b); !almostEqual(d, 0.0, floatTol) {
		t.Errorf("expected 0.0, got %v", d)
	}
}

func TestCosine_ZeroVectorIsNaN(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{1, 1}
	if d := Cosine(a, b); !math.IsNaN(d) {
		t.Errorf("expected NaN, got %v", d)
	}
}

// --- Minkowski tests ---

func TestMinkowski_MatchesEuclideanAndManhattan(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	if d := Minkowski(2)(a, b); !almostEqual(d, Euclidean(a, b), floatTol) {
		t.Errorf("p=2: expected %v, got %v", Euclidean(a, b), d)
	}
	if d := Minkowski(1)(a, b); !almostEqual(d, Manhattan(a, b), floatTol) {
		t.Errorf("p=1: expected %v, got %v", Manhattan(a, b), d)
	}
}

func TestMinkowski_PanicsOnPLessThanOne(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for p < 1")
		}
	}()
	Minkowski(0.5)
}

// --- AbsDiff tests ---

func TestAbsDiff(t *testing.T) {
	if d := AbsDiff(1.5, 4.0); d != 2.5 {
		t.Errorf("float: expected 2.5, got %v", d)
	}
	if d := AbsDiff(7, -3); d != 10 {
		t.Errorf("int: expected 10, got %v", d)
	}
	if d := AbsDiff[uint8](3, 250); d != 247 {
		t.Errorf("uint8: expected 247, got %v", d)
	}
	if d := AbsDiff(math.NaN(), 1); !math.IsNaN(d) {
		t.Errorf("NaN: expected NaN, got %v", d)
	}
}

func TestMinkowski_WorksWithClassify(t *testing.T) {
	result, err := Classify(NewConfig(1.0, 3), twoBlobs, Minkowski(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NumClusters != 2 {
		t.Errorf("expected 2 clusters, got %d", result.NumClusters)
	}
}
