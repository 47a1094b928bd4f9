package blockmerge

// mergeResult reports which side a merge fully consumed and where the
// unconsumed remainder starts (spec.md §4.2/§4.3; sayhisort.h MergeResult).
type mergeResult struct {
	xsConsumed bool
	rest       int
}

// mergeWithBuf merges the adjacent runs v[xs:ys) and v[ys:ysLast) into the
// buffer that sits immediately before xs, advancing *buf as output is
// emitted (spec.md §4.2; sayhisort.h MergeWithBuf).
//
// Preconditions: *buf < xs < ys < ysLast, and ysLast-ys <= xs-*buf.
//
// xsFromRight selects which side wins ties: when the left run (xs) was
// moved here from the right side of the outer block merge, ys must win
// equality to preserve stability; otherwise xs wins.
func mergeWithBuf[E any](v view[E], buf *int, xs, ys, ysLast int, xsFromRight bool) mergeResult {
	xsLast := ys
	b := *buf

	// Cross-merge: when one side's next two elements both dominate the
	// other side's front, emit both in one step (spec.md §4.2).
	for xs < xsLast-1 && ys < ysLast-1 {
		switch {
		case lessXY(v, xsFromRight, xs+1, ys):
			v.swap(b, xs)
			b++
			xs++
			v.swap(b, xs)
			b++
			xs++
		case !lessXY(v, xsFromRight, xs, ys+1):
			v.swap(b, ys)
			b++
			ys++
			v.swap(b, ys)
			b++
			ys++
		default:
			yPos := lessXY(v, xsFromRight, xs, ys)
			if yPos {
				v.swap(b, xs)
				xs++
				v.swap(b+1, ys)
				ys++
			} else {
				v.swap(b+1, xs)
				xs++
				v.swap(b, ys)
				ys++
			}
			b += 2
		}
	}

	xsConsumed := xs == xsLast

	if xs == xsLast-1 {
		xsConsumed = false
		for {
			if lessXY(v, xsFromRight, xs, ys) {
				v.swap(b, xs)
				b++
				xs++
				xsConsumed = true
				break
			}
			v.swap(b, ys)
			b++
			ys++
			if ys >= ysLast {
				break
			}
		}
	} else if ys == ysLast-1 {
		xsConsumed = true
		for {
			if !lessXY(v, xsFromRight, xs, ys) {
				v.swap(b, ys)
				b++
				ys++
				xsConsumed = false
				break
			}
			v.swap(b, xs)
			b++
			xs++
			if xs >= xsLast {
				break
			}
		}
	}

	*buf = b

	// Case xs == xsLast:  [ merged | buffer | buffer | right ]
	if xsConsumed {
		return mergeResult{true, ys}
	}

	// Case ys == ysLast:  [ merged | buffer | left | buffer ]
	// Repeatedly swap tails so the buffer ends up contiguous again:
	//                     [ merged | buffer | buffer | left ]
	for {
		ys--
		xsLast--
		v.swap(ys, xsLast)
		if xsLast == xs {
			break
		}
	}
	return mergeResult{false, ys}
}

// lessXY applies the xs-from-right tie-break policy: when xsFromRight is
// true, xs is the right-origin run, so ys must win ties, i.e. lessXY
// reports whether v[i] strictly precedes v[j] under "ys wins ties" rule.
// This mirrors sayhisort.h's IterComp(xs, ys, bool_constant<is_xs_from_right>).
func lessXY[E any](v view[E], xsFromRight bool, i, j int) bool {
	if xsFromRight {
		return v.less(i, j)
	}
	return !v.less(j, i)
}
