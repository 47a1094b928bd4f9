// Package imsort sorts slices in place using a block merge sort: stable,
// O(n log n) time, and O(1) auxiliary space beyond a handful of ints.
//
// The algorithm collects a small set of pairwise distinct elements from
// the input itself to use as scratch space (an "imitation buffer" that
// tracks how blocks have moved, and an internal buffer used for
// buffered merging), falling back to a slower but still correct
// unbuffered merge when the input is too short or too uniform to
// furnish enough distinct elements.
package imsort

import (
	"cmp"

	"github.com/inplacesort/imsort/internal/blockmerge"
)

// Sort sorts x in ascending order, as determined by the < operator on
// the element type. Sorting is stable, and x is sorted in place.
func Sort[S ~[]E, E cmp.Ordered](x S) {
	SortFunc(x, func(a, b E) bool { return a < b })
}

// SortFunc sorts x in place using less to compare elements. less must
// report a strict weak order: irreflexive, asymmetric, and transitive.
// Sorting is stable: elements for which neither less(a, b) nor
// less(b, a) holds keep their relative order.
func SortFunc[S ~[]E, E any](x S, less func(a, b E) bool) {
	blockmerge.Run(x, less)
}

// SortKeyFunc sorts x in place by the ascending order of key(e) for each
// element e, composing key with < the way SortFunc composes an
// arbitrary less. Sorting is stable.
func SortKeyFunc[S ~[]E, E any, K cmp.Ordered](x S, key func(E) K) {
	SortFunc(x, func(a, b E) bool { return key(a) < key(b) })
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[S ~[]E, E cmp.Ordered](x S) bool {
	return IsSortedFunc(x, func(a, b E) bool { return a < b })
}

// IsSortedFunc reports whether x is sorted in the order less describes.
func IsSortedFunc[S ~[]E, E any](x S, less func(a, b E) bool) bool {
	for i := 1; i < len(x); i++ {
		if less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// BinarySearch searches a sorted, ascending x for target, returning the
// smallest index at which target could be inserted while keeping x
// sorted, and whether that index holds an element equal to target.
func BinarySearch[S ~[]E, E cmp.Ordered](x S, target E) (int, bool) {
	return BinarySearchFunc(x, target, cmp.Compare[E])
}

// BinarySearchFunc searches a sorted x for target, using cmp to compare
// elements to target. It returns the smallest index at which target
// could be inserted while keeping x sorted, and whether an equal
// element was found there. x must be sorted in ascending order as
// cmp defines it: cmp(x[i], target) < 0 for every i below the result
// and >= 0 at or above it.
func BinarySearchFunc[S ~[]E, E, T any](x S, target T, cmp func(E, T) int) (int, bool) {
	lo, hi := 0, len(x)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(x[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(x) && cmp(x[lo], target) == 0
}
