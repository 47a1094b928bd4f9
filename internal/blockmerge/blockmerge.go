package blockmerge

// blockingParam carries the per-level block layout chosen by
// determineBlocking (spec.md §4.8; sayhisort.h BlockingParam).
type blockingParam struct {
	numBlocks      int
	blockLen       int
	firstBlockLen  int
	lastBlockLen   int
}

const (
	blockOriginLeft = iota
	blockOriginRight
)

// mergeAdjacentBlocks walks the numBlocks blocks of a single pairwise
// merge left to right, coalescing consecutive same-origin blocks (already
// sorted relative to each other, so no merge is needed) and merging
// across an origin change with mergeWithBuf (hasBuf) or mergeWithoutBuf
// (spec.md §4.5; sayhisort.h MergeAdjacentBlocks).
//
// imit holds the block-origin keys for the numBlocks-2 interior blocks, in
// the same order as the interleaved blocks, each compared against midKey
// to recover its origin.
func mergeAdjacentBlocks[E any](v view[E], imit int, buf *int, blocks int, p blockingParam, midKey int, hasBuf bool) {
	numRemainedBlocks := p.numBlocks

	xs := blocks
	lastBlockBeforeYs := xs
	xsOrigin := blockOriginLeft
	numRemainedBlocks--

	ys := xs + p.firstBlockLen

	for {
		numRemainedBlocks--
		blockLen := p.blockLen
		if numRemainedBlocks == 0 {
			blockLen = p.lastBlockLen
		}
		ysLast := ys + blockLen

		ysOrigin := blockOriginRight
		if numRemainedBlocks != 0 {
			if v.less(imit, midKey) {
				ysOrigin = blockOriginLeft
			}
			imit++
		}

		if ysOrigin == xsOrigin {
			lastBlockBeforeYs = ys
			ys = ysLast
			if numRemainedBlocks == 0 {
				break
			}
			continue
		}

		if xs != lastBlockBeforeYs {
			if hasBuf {
				if numRemainedBlocks != 0 {
					// Same-origin blocks before lastBlockBeforeYs, and
					// the first element of that block, are already in
					// final order; swap them across the buffer so only
					// the rest of the last block is merged with ys.
					for xs != lastBlockBeforeYs+1 {
						v.swap(*buf, xs)
						(*buf)++
						xs++
					}
				}
			} else {
				if numRemainedBlocks != 0 {
					xs = lastBlockBeforeYs + 1
				} else if ys-xs > p.lastBlockLen {
					// Keep xs no longer than ys so mergeWithoutBuf stays
					// within its amortized time bound (spec.md §4.3/§4.5).
					rotate(v, xs, ys, ysLast)
					ys = xs + p.lastBlockLen
					xsOrigin = blockOriginRight
					ysOrigin = blockOriginLeft
				}
			}
		}

		var mr mergeResult
		if hasBuf {
			mr = mergeWithBuf(v, buf, xs, ys, ysLast, xsOrigin == blockOriginRight)
		} else {
			mr = mergeWithoutBuf(v, xs, ys, ysLast, xsOrigin == blockOriginRight)
		}

		xs = mr.rest
		lastBlockBeforeYs = xs
		if mr.xsConsumed {
			xsOrigin = flipOrigin(xsOrigin)
		}

		ys = ysLast

		if numRemainedBlocks == 0 {
			break
		}
	}

	if hasBuf {
		for xs != ys {
			v.swap(*buf, xs)
			(*buf)++
			xs++
		}
	}
}

func flipOrigin(o int) int {
	if o == blockOriginLeft {
		return blockOriginRight
	}
	return blockOriginLeft
}

// mergeBlocking drives one full pairwise block merge: it skips the first
// and last (possibly short) blocks from interleaving, interleaves the
// interior blocks by first element, merges adjacent blocks of differing
// origin, then restores the imitation keys to sorted order (spec.md §4.5;
// sayhisort.h MergeBlocking).
func mergeBlocking[E any](v view[E], imit int, buf *int, blocks int, p blockingParam, hasBuf bool) {
	imitLen := p.numBlocks - 2
	midKey := interleaveBlocks(v, imit, blocks+p.firstBlockLen, imitLen, p.blockLen)

	mergeAdjacentBlocks(v, imit, buf, blocks, p, midKey, hasBuf)

	if hasBuf {
		deinterleaveImitationBuffered(v, imit, imitLen, *buf, midKey)
	} else {
		deinterleaveImitationInPlace(v, imit, imitLen, midKey)
	}
}
