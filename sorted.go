package dbscan

import "cmp"

// IsSorted reports whether data is in ascending order. Equal neighbours are
// allowed. A pair that does not compare, such as a NaN next to anything,
// counts as out of order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, func(a, b T) bool { return a <= b })
}

// IsSortedFunc reports whether inOrder(data[i-1], data[i]) holds for every
// adjacent pair. inOrder must return false for pairs that are out of order
// or incomparable. Empty and single-element input is sorted.
func IsSortedFunc[T any](data []T, inOrder func(a, b T) bool) bool {
	for i := 1; i < len(data); i++ {
		if !inOrder(data[i-1], data[i]) {
			return false
		}
	}
	return true
}
