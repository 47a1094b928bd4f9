package blockmerge

// deinterleaveImitationBuffered restores imit[0:imitLen) to sorted order
// after interleaveBlocks has permuted it, using an auxiliary buf of length
// imitLen/2: it partitions imit into left-origin keys (< midKey) and
// right-origin keys by swapping into buf, then concatenates them back
// into imit (spec.md §4.4; sayhisort.h DeinterleaveImitation, buffered
// overload).
func deinterleaveImitationBuffered[E any](v view[E], imit, imitLen, buf, midKey int) {
	if imitLen == 0 {
		return
	}

	v.swap(midKey, buf)
	leftCur := midKey
	rightCur := buf + 1
	cur := midKey + 1
	mid := buf

	for cur != imit+imitLen {
		if v.less(cur, mid) {
			v.swap(leftCur, cur)
			leftCur++
			cur++
		} else {
			v.swap(rightCur, cur)
			rightCur++
			cur++
		}
	}

	for {
		v.swap(leftCur, buf)
		leftCur++
		buf++
		if buf == rightCur {
			break
		}
	}
}

// deinterleaveImitationInPlace restores imit[0:imitLen) to sorted order
// without any auxiliary buffer. imit is viewed as alternating
// monochromatic runs of left-origin (< midKey) and right-origin keys; one
// pass rotates every other (right-run, left-run) pair, halving the number
// of such pairs, until a pass finds at most one (spec.md §4.4; sayhisort.h
// DeinterleaveImitation, in-place overload).
func deinterleaveImitationInPlace[E any](v view[E], imit, imitLen, midKey int) {
	if imitLen == 0 {
		return
	}

	lRunLength := 0

	for {
		rRunLength := 0
		numRLPairs := 0

		cur := imit
		for {
			if cur == imit+imitLen || !v.less(cur, midKey) {
				if lRunLength != 0 {
					numRLPairs++
					if numRLPairs%2 != 0 {
						lRun := cur - lRunLength
						rRun := lRun - rRunLength
						rotate(v, rRun, lRun, cur)
						if numRLPairs == 1 {
							midKey = cur - rRunLength
						}
					}
					lRunLength = 0
					rRunLength = 0
				}
				if cur == imit+imitLen {
					break
				}
				rRunLength++
			} else if rRunLength != 0 {
				lRunLength++
			}
			cur++
		}

		if numRLPairs <= 1 {
			break
		}
	}
}
