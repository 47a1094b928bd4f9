package blockmerge

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// mergeOneLevel drives one bottom-up merge level: it walks every adjacent
// pair of runs of seqLen (or seqLen-1, per div) elements, pairwise
// block-merging each with mergeBlocking, and advances through the whole
// level in the direction forward selects (spec.md §4.7; sayhisort.h
// MergeOneLevel).
//
// Running a level backward reuses the exact same block-merge machinery by
// handing it a view whose traversal and comparator are both reversed:
// physical position X, read through v.reversed(), is addressed at
// logical index len(v.data)-X, which is exactly where sayhisort.h's
// ReversedIterator{X} begins iterating (index 0 there is *(X-1)).
func mergeOneLevel[E any](v view[E], imit, buf, data, seqLen int, div *sequenceDivider, p blockingParam, hasBuf, forward bool) {
	if perfTrace != nil {
		perfTrace("mergeOneLevel")
	}
	residualLen := p.firstBlockLen

	if forward {
		bufPos := buf
		for {
			lDecr := div.next()
			rDecr := div.next()
			mergingLen := 2*seqLen - btoi(lDecr) - btoi(rDecr)
			p.firstBlockLen = residualLen - btoi(lDecr)
			p.lastBlockLen = residualLen - btoi(rDecr)

			mergeBlocking(v, imit, &bufPos, data, p, hasBuf)
			data += mergingLen

			if div.isEnd() {
				return
			}
		}
	}

	n := len(v.data)
	rv := v.reversed()
	imitLogical := n - (imit + p.numBlocks - 2)
	bufPhys := buf
	for {
		lDecr := div.next()
		rDecr := div.next()
		mergingLen := 2*seqLen - btoi(lDecr) - btoi(rDecr)
		p.firstBlockLen = residualLen - btoi(lDecr)
		p.lastBlockLen = residualLen - btoi(rDecr)

		bufLogical := n - bufPhys
		dataLogical := n - data

		mergeBlocking(rv, imitLogical, &bufLogical, dataLogical, p, hasBuf)

		bufPhys = n - bufLogical
		data -= mergingLen

		if div.isEnd() {
			return
		}
	}
}

// Run sorts data[0:len(data)) according to less, which must report a
// strict weak order (spec.md §2, §7). Sorting is stable and uses O(1)
// auxiliary space beyond a handful of ints (spec.md §1; sayhisort.h
// Sort).
//
// Short inputs (len(data) <= 8) go straight to sortSmall. Otherwise, a
// prefix of the array is scanned for up to 2*overApproxSqrt(n)-2
// pairwise distinct keys (collectKeys); those keys split into an
// imitation buffer, used to track block provenance during the bottom-up
// merge, and an internal buffer used as merge scratch, per spec.md §3.
// If too few distinct keys turn up the split is abandoned and the
// bottom-up merge runs unbuffered instead, still correct but slower.
func Run[E any](data []E, less func(a, b E) bool) {
	n := len(data)
	v := newView(data, less)

	if n <= 8 {
		sortSmall(v, 0, n)
		return
	}

	const first = 0
	imit := first
	numKeys := 0
	length := n
	if n > 16 {
		numDesiredKeys := 2*overApproxSqrt(n) - 2
		numKeys = collectKeys(v, 0, n, numDesiredKeys)
		if numKeys < 8 {
			imit += numKeys
			length -= numKeys
			numKeys = 0
		}
	}

	dataLen := length - numKeys
	ctrl := newMergeSortControl(numKeys, dataLen)

	dataStart := imit + numKeys
	last := n

	leafDiv := newSequenceDivider(ctrl.dataLen, ctrl.log2NumSeqs, true)
	sortLeaves(v, dataStart, ctrl.seqLen, leafDiv)

	for {
		p := determineBlocking(ctrl)

		switch {
		case ctrl.bufLen == 0:
			div := newSequenceDivider(ctrl.dataLen, ctrl.log2NumSeqs, true)
			mergeOneLevel(v, imit, imit+ctrl.imitLen, dataStart, ctrl.seqLen, &div, p, false, true)
		case ctrl.forward:
			div := newSequenceDivider(ctrl.dataLen, ctrl.log2NumSeqs, true)
			mergeOneLevel(v, imit, imit+ctrl.imitLen, dataStart, ctrl.seqLen, &div, p, true, true)
		default:
			div := newSequenceDivider(ctrl.dataLen, ctrl.log2NumSeqs, false)
			mergeOneLevel(v, imit, last, last-ctrl.bufLen, ctrl.seqLen, &div, p, true, false)
		}

		if oldBufLen := ctrl.next(); oldBufLen != 0 {
			buf := dataStart - oldBufLen
			if !ctrl.forward {
				backBuf := last
				backData := last - oldBufLen
				for {
					backData--
					backBuf--
					v.swap(backData, backBuf)
					if backData == buf {
						break
					}
				}
				ctrl.forward = true
			}
			shellSort(v, buf, oldBufLen)
		}

		if ctrl.log2NumSeqs == 0 {
			break
		}
	}

	if first != dataStart {
		mergeWithoutBuf(v, first, dataStart, last, false)
	}
}
