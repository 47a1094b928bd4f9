package blockmerge

// mergeWithoutBuf merges the adjacent runs v[xs:ys) and v[ys:ysLast) in
// place, using binary search plus rotation, when no scratch buffer is
// available (spec.md §4.3; sayhisort.h MergeWithoutBuf).
//
// Its time bound is O((m+log n)*min(m,n,j,k) + n), where m, n are the run
// lengths and j, k are the numbers of distinct keys in each run; callers
// must arrange for the shorter run to be passed as xs to keep the outer
// merge linear-amortized (spec.md §4.3, §4.5).
func mergeWithoutBuf[E any](v view[E], xs, ys, ysLast int, xsFromRight bool) mergeResult {
	for {
		xs = binarySearch(v, xs, ys, ys, xsFromRight)
		if xs == ys {
			return mergeResult{true, ys}
		}
		ysUpper := ys + 1
		if ysUpper != ysLast {
			ysUpper = binarySearch(v, ysUpper, ysLast, xs, !xsFromRight)
		}
		rotate(v, xs, ys, ysUpper)
		xs += ysUpper - ys
		ys = ysUpper
		if ysUpper == ysLast {
			return mergeResult{false, xs}
		}
	}
}
