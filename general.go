package dbscan

import "cmp"

// Classify runs DBSCAN over data using the general brute-force engine.
// distance may be any deterministic, symmetric function; every pair of
// records is compared, O(n²) evaluations in total. Clusters are numbered in
// the order their first core point appears in data.
//
// The only error is an invalid config.
func Classify[T any, D cmp.Ordered](cfg Config[D], data []T, distance func(a, b T) D) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return emptyResult(0), nil
	}
	return newGeneralRunner(&cfg, data, distance).classify(), nil
}

// generalRunner holds the state of one Classify call.
type generalRunner[T any, D cmp.Ordered] struct {
	cfg      *Config[D]
	data     []T
	distance func(a, b T) D

	labels  []Label
	visited []bool
	// queued[p] is id+1 once p has entered the work list of cluster id.
	queued []ClusterID
	// neighbors is reused by every rangeQuery.
	neighbors []pos

	// checker is nil unless cfg.Verify is set.
	checker *contractChecker[T, D]
}

func newGeneralRunner[T any, D cmp.Ordered](cfg *Config[D], data []T, distance func(a, b T) D) *generalRunner[T, D] {
	r := &generalRunner[T, D]{
		cfg:      cfg,
		data:     data,
		distance: distance,
		labels:   make([]Label, len(data)),
		visited:  make([]bool, len(data)),
		queued:   make([]ClusterID, len(data)),
	}
	if cfg.Verify {
		r.checker = newContractChecker(data, distance)
	}
	return r
}

func (r *generalRunner[T, D]) classify() *Result {
	next := ClusterID(0)
	for i := range r.data {
		p := pos(i)
		if r.visited[p] {
			continue
		}
		r.visited[p] = true

		neighbors := r.rangeQuery(p)
		if len(neighbors) < r.cfg.MinPoints {
			// Stays noise unless a later expansion claims it as an edge.
			continue
		}

		r.labels[p] = CoreLabel(next)
		r.expand(neighbors, next)
		next++
	}
	return &Result{Labels: r.labels, NumClusters: int(next)}
}

// rangeQuery returns every position within epsilon of p, p included. The
// slice is only valid until the next call.
func (r *generalRunner[T, D]) rangeQuery(p pos) []pos {
	out := r.neighbors[:0]
	sample := r.data[p]
	for j := range r.data {
		d := r.distance(sample, r.data[j])
		if r.checker != nil {
			r.checker.checkPair(p, pos(j), d)
		}
		if r.cfg.within(d) {
			out = append(out, pos(j))
		}
	}
	r.neighbors = out
	return out
}

// expand grows cluster id outward from the neighbourhood of its first core
// point. The frontier is an explicit queue, so cluster size is bounded by
// memory rather than stack depth. A position enters the queue at most once
// per cluster, which keeps the queue within n entries.
func (r *generalRunner[T, D]) expand(seed []pos, id ClusterID) {
	queue := make([]pos, 0, len(seed))
	for _, q := range seed {
		queue = r.enqueue(queue, q, id)
	}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		if r.labels[q].IsNoise() {
			r.labels[q] = EdgeLabel(id)
		}
		if r.visited[q] {
			continue
		}
		r.visited[q] = true

		neighbors := r.rangeQuery(q)
		if len(neighbors) < r.cfg.MinPoints {
			continue
		}
		r.labels[q] = CoreLabel(id)
		for _, nb := range neighbors {
			// Visited points only matter if they are still noise.
			if !r.visited[nb] || r.labels[nb].IsNoise() {
				queue = r.enqueue(queue, nb, id)
			}
		}
	}
}

func (r *generalRunner[T, D]) enqueue(queue []pos, q pos, id ClusterID) []pos {
	if r.queued[q] == id+1 {
		return queue
	}
	r.queued[q] = id + 1
	return append(queue, q)
}
