package dbscan

import (
	"cmp"
	"log"
	"sort"
)

// ClassifySorted runs DBSCAN over one-dimensional data that is already in
// ascending order. It returns ErrDataNotSorted, before calling distance even
// once, if it is not.
//
// distance must grow as records move apart in the sort order, as |a - b|
// does for numbers. Each neighbourhood is then a contiguous window found by
// two binary searches, and clusters are recovered by one forward scan, for
// O(n log n) distance evaluations instead of O(n²).
//
// The result matches what Classify returns for the same input.
func ClassifySorted[T cmp.Ordered, D cmp.Ordered](cfg Config[D], data []T, distance func(a, b T) D) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if !IsSorted(data) {
		return nil, ErrDataNotSorted
	}
	return classifySorted(&cfg, data, distance), nil
}

// ClassifySortedUnchecked is ClassifySorted without the sortedness check,
// for callers that guarantee the order themselves. The result for unsorted
// data is unspecified. With cfg.Verify set the check is made anyway and a
// failure is logged.
func ClassifySortedUnchecked[T cmp.Ordered, D cmp.Ordered](cfg Config[D], data []T, distance func(a, b T) D) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if cfg.Verify && !IsSorted(data) {
		log.Printf("dbscan: ClassifySortedUnchecked called with unsorted data, result is unspecified")
	}
	return classifySorted(&cfg, data, distance), nil
}

func classifySorted[T any, D cmp.Ordered](cfg *Config[D], data []T, distance func(a, b T) D) *Result {
	if len(data) == 0 {
		return emptyResult(0)
	}
	r := &sortedRunner[T, D]{cfg: cfg, data: data, distance: distance}
	if cfg.Verify {
		r.checker = newContractChecker(data, distance)
	}
	if cfg.LegacyRunMerge {
		return r.classifyLegacy()
	}
	return r.classify()
}

// window is the half-open range [lo, hi) of positions within epsilon of
// some position.
type window struct {
	lo, hi pos
}

func (w window) width() int { return int(w.hi - w.lo) }

func (w window) contains(p pos) bool { return w.lo <= p && p < w.hi }

// sortedRunner holds the state of one sorted-engine call.
type sortedRunner[T any, D cmp.Ordered] struct {
	cfg      *Config[D]
	data     []T
	distance func(a, b T) D

	// checker is nil unless cfg.Verify is set.
	checker *contractChecker[T, D]
}

// coreWindow returns the neighbourhood window of i and whether i is a core
// point. lo is the first position at or before i that is within epsilon of
// data[i]; hi is the first position at or after i that is not.
func (r *sortedRunner[T, D]) coreWindow(i pos) (window, bool) {
	center := r.data[i]
	lo := sort.Search(int(i)+1, func(j int) bool {
		return r.cfg.within(r.distance(r.data[j], center))
	})
	fwd := sort.Search(len(r.data)-int(i), func(k int) bool {
		return !r.cfg.within(r.distance(r.data[int(i)+k], center))
	})
	w := window{lo: pos(lo), hi: i + pos(fwd)}
	if r.checker != nil {
		r.checker.checkWindow(r.cfg, i, w)
	}
	return w, w.width() >= r.cfg.MinPoints
}

// classify scans left to right. A core point not yet in a cluster starts
// one; the cluster then runs forward as long as the next position is still
// inside the window of a core point already in it. Core points inside that
// reach join as Core and push the reach further, the rest join as Edge. The
// scan resumes where the reach ends, so every window is computed once.
func (r *sortedRunner[T, D]) classify() *Result {
	n := pos(len(r.data))
	labels := make([]Label, n)
	next := ClusterID(0)

	for cursor := pos(0); cursor < n; {
		w, core := r.coreWindow(cursor)
		if !core {
			cursor++
			continue
		}

		id := next
		next++

		// Everything before cursor is already scanned and not core. Points an
		// earlier cluster claimed keep their label.
		for p := w.lo; p < cursor; p++ {
			if labels[p].IsNoise() {
				labels[p] = EdgeLabel(id)
			}
		}
		labels[cursor] = CoreLabel(id)

		reach := w.hi
		p := cursor + 1
		for ; p < reach; p++ {
			pw, ok := r.coreWindow(p)
			if !ok {
				labels[p] = EdgeLabel(id)
				continue
			}
			labels[p] = CoreLabel(id)
			reach = max(reach, pw.hi)
		}
		cursor = p
	}

	return &Result{Labels: labels, NumClusters: int(next)}
}

// classifyLegacy is the older run-merging scan selected by
// Config.LegacyRunMerge. At a core cursor it looks at k, the number of
// positions from the cursor to the end of its window. For k >= 2 the whole
// forward window is labelled Core and the cursor moves to the window's last
// position, so that position's window decides whether the run continues.
// For k == 1 the run is over: the identifier advances and the cursor moves
// on without labelling the cursor.
//
// Two consequences are kept as they were. A core point reached with k == 1
// that no earlier run covered stays Noise. A run that ends on a non-core
// position does not advance the identifier, so the next run reuses it.
func (r *sortedRunner[T, D]) classifyLegacy() *Result {
	n := pos(len(r.data))
	labels := make([]Label, n)
	id := ClusterID(0)
	highest := ClusterID(-1)

	for cursor := pos(0); cursor < n; {
		w, core := r.coreWindow(cursor)
		if !core {
			cursor++
			continue
		}

		k := w.hi - cursor
		if k <= 1 {
			cursor++
			id++
			continue
		}
		for p := cursor; p < cursor+k; p++ {
			labels[p] = CoreLabel(id)
		}
		highest = max(highest, id)
		cursor += k - 1
	}

	return &Result{Labels: labels, NumClusters: max(int(id), int(highest)+1)}
}
