package blockmerge

// collectKeys scans v[first:last) for up to numDesiredKeys pairwise
// distinct elements, maintaining a sorted window of the keys found so
// far, and rotates the final window to v[first:...) before returning its
// length (spec.md §4.10/§3; sayhisort.h CollectKeys).
//
// The window is periodically rotated forward past already-examined
// duplicates before a new key is inserted, which keeps the amortized
// insertion cost O(numKeys) rather than O(numKeys) per duplicate skipped.
func collectKeys[E any](v view[E], first, last, numDesiredKeys int) int {
	if perfTrace != nil {
		perfTrace("collectKeys")
	}

	keys := first
	keysLast := first + 1
	cur := first + 1
	numDesiredKeys--

	for {
		inspos := binarySearch(v, keys, keysLast, cur, true)
		if inspos == keysLast || v.less(cur, inspos) {
			if cur-keysLast != 0 {
				rotate(v, keys, keysLast, cur)
				keys += cur - keysLast
				inspos += cur - keysLast
			}
			for tmp := cur; tmp > inspos; tmp-- {
				v.swap(tmp, tmp-1)
			}
			keysLast = cur + 1
			numDesiredKeys--
		}

		if numDesiredKeys == 0 {
			break
		}
		cur++
		if cur >= last {
			break
		}
	}

	if keys-first != 0 {
		rotate(v, first, keys, keysLast)
	}
	return keysLast - keys
}
