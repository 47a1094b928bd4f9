package blockmerge

// ciuraGaps are Ciura's empirically tuned gaps for shell sort, smallest
// first. Gaps past 701 are produced on demand by extending the sequence
// with x -> 2x + x/4 (spec.md §4.9).
var ciuraGaps = [8]int{1, 4, 10, 23, 57, 132, 301, 701}

// shellSort sorts v[data:data+length) by gapped insertion sort, using
// the descending gap sequence built from ciuraGaps and extended upward
// by x -> 2x + x/4 until a gap at or past length is reached (spec.md
// §4.9). It is used to re-sort the internal buffer once the merge-level
// controller retires it; the buffer only ever holds pairwise-distinct
// collected keys (spec.md §3), so the lack of a general stability
// guarantee in shell sort is immaterial here.
//
// The gaps past 701 are kept in a fixed-size array on the stack, so
// shellSort performs no allocation: one forward pass fills the array with
// the extension up to the first gap at or past length, then the array and
// ciuraGaps are walked in reverse to drive the gapped insertion passes
// from the largest gap below length down to 1.
func shellSort[E any](v view[E], data, length int) {
	var ext [64]int
	n := 0
	last := ciuraGaps[len(ciuraGaps)-1]
	for last < length && n < len(ext) {
		next := 2*last + last/4
		ext[n] = next
		n++
		last = next
	}

	for i := n - 1; i >= 0; i-- {
		if gap := ext[i]; gap < length {
			shellPass(v, data, length, gap)
		}
	}
	for i := len(ciuraGaps) - 1; i >= 0; i-- {
		if gap := ciuraGaps[i]; gap < length {
			shellPass(v, data, length, gap)
		}
	}
}

func shellPass[E any](v view[E], data, length, gap int) {
	for i := data + gap; i < data+length; i++ {
		for j := i; j >= data+gap && v.less(j, j-gap); j -= gap {
			v.swap(j, j-gap)
		}
	}
}
