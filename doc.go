// Package dbscan implements Density-Based Spatial Clustering of Applications
// with Noise (DBSCAN).
//
// DBSCAN groups records that are packed closely together and marks records
// in sparse regions as noise. A record with at least MinPoints records
// (itself included) within Epsilon is a core point; records within Epsilon of
// a core point join its cluster as edge points; everything else is noise.
//
// The package does not assume a numeric representation. Records are opaque
// values of any type and distances come from a caller-supplied function, so
// any metric space works as long as the distance is deterministic and
// symmetric.
//
// Basic usage:
//
//	cfg := dbscan.NewConfig(1.0, 3)
//	result, err := dbscan.Classify(cfg, points, dbscan.Euclidean)
//	// result.Labels[i] is Core(id), Edge(id) or Noise for points[i]
//	// result.NumClusters is the number of clusters found
//
// # Engines
//
// [Classify] is the general engine. It compares every record with every
// other record, O(n²) distance evaluations, and works for any metric.
//
// [ClassifySorted] is restricted to one-dimensional data sorted in ascending
// order. Because the distance from a fixed record grows monotonically as one
// moves away from it along sorted input, neighbourhoods are contiguous
// windows found by binary search, and clusters are rebuilt by a single
// forward scan over overlapping windows in O(n log n). It returns
// [ErrDataNotSorted] when the input is not sorted;
// [ClassifySortedUnchecked] skips that check.
//
// Both engines treat a record as a neighbour when distance <= Epsilon. A
// distance that does not compare with Epsilon (NaN) is never a neighbour.
package dbscan
