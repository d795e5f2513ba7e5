package dbscan

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrDataNotSorted is returned by ClassifySorted when the input is not in
	// ascending order.
	ErrDataNotSorted = errors.New("dbscan: data is not sorted")

	// ErrInvalidConfig is wrapped by every config validation error.
	ErrInvalidConfig = errors.New("dbscan: invalid config")
)

// Config controls DBSCAN clustering behavior.
// Start with [NewConfig] or [DefaultConfig] and override the fields you need.
// D is the type the distance function returns.
type Config[D cmp.Ordered] struct {
	// Epsilon is the neighbourhood radius. Two records are neighbours when
	// their distance is <= Epsilon. Must not be NaN.
	Epsilon D

	// MinPoints is the number of neighbours, the record itself included, a
	// record needs to be a core point. Must be >= 1.
	MinPoints int

	// Verify enables checks of the caller contracts that are too expensive
	// for the default path: distance symmetry and determinism, and (sorted
	// engine) window consistency. Violations are logged, never returned, and
	// do not change the result. Default: false.
	Verify bool

	// LegacyRunMerge makes the sorted engine use the older run-merging scan.
	// That scan labels whole forward windows Core, never emits Edge, and
	// leaves a core point whose forward run has length one as Noise, so its
	// cluster identifiers can have gaps. Kept for reproducing results produced
	// by that scan. Ignored by the general engine. Default: false.
	LegacyRunMerge bool
}

// NewConfig returns a Config with the given radius and density threshold.
func NewConfig[D cmp.Ordered](epsilon D, minPoints int) Config[D] {
	return Config[D]{
		Epsilon:   epsilon,
		MinPoints: minPoints,
	}
}

// DefaultConfig returns a Config for float64 distances with reasonable
// defaults for two-dimensional data (MinPoints = 2 * dims).
func DefaultConfig() Config[float64] {
	return NewConfig(0.5, 4)
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig[D cmp.Ordered](cfg *Config[D]) error {
	if cfg.MinPoints < 1 {
		return fmt.Errorf("%w: MinPoints must be >= 1, got %d", ErrInvalidConfig, cfg.MinPoints)
	}
	// NaN is the only value not equal to itself.
	if cfg.Epsilon != cfg.Epsilon {
		return fmt.Errorf("%w: Epsilon must not be NaN", ErrInvalidConfig)
	}
	return nil
}

// within reports whether d falls inside the epsilon neighbourhood.
// Incomparable distances (NaN) are outside.
func (cfg *Config[D]) within(d D) bool {
	return d <= cfg.Epsilon
}

// Result contains the output of DBSCAN clustering.
type Result struct {
	// Labels assigns each record a Core, Edge or Noise label. Labels[i]
	// always refers to data[i] and len(Labels) == len(data).
	Labels []Label

	// NumClusters is the number of clusters started during the run. Cluster
	// identifiers are 0..NumClusters-1 in order of discovery.
	NumClusters int
}

// LastCluster returns the highest cluster identifier assigned, or false if
// no cluster was started.
func (r *Result) LastCluster() (ClusterID, bool) {
	if r.NumClusters == 0 {
		return 0, false
	}
	return ClusterID(r.NumClusters - 1), true
}

// Members returns the positions labelled with the given cluster, core and
// edge points alike, in input order.
func (r *Result) Members(id ClusterID) []int {
	var out []int
	for i, l := range r.Labels {
		if c, ok := l.ClusterID(); ok && c == id {
			out = append(out, i)
		}
	}
	return out
}

// Count returns how many records carry each kind of label.
func (r *Result) Count() (core, edge, noise int) {
	for _, l := range r.Labels {
		switch l.Kind {
		case Core:
			core++
		case Edge:
			edge++
		default:
			noise++
		}
	}
	return core, edge, noise
}

// emptyResult returns a Result with n Noise labels and no clusters.
// When n is 0, Labels is non-nil but empty.
func emptyResult(n int) *Result {
	return &Result{Labels: make([]Label, n)}
}
