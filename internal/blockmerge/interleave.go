package blockmerge

// interleaveBlocks reorders the imitLen+2 blocks of two adjacent sorted
// runs (the skipped first block, of length firstBlockLen, and the skipped
// last block are not passed here; blocks is the first interior block)
// so that the interior imitLen blocks become globally non-decreasing by
// first element, recording every block swap as the matching swap of two
// keys in imit (spec.md §4.4; sayhisort.h InterleaveBlocks).
//
// It returns the key position that was originally the midpoint between
// left- and right-origin keys; because keys are pairwise distinct and
// sorted, comparing against that position still distinguishes left-origin
// from right-origin blocks after arbitrary permutation.
func interleaveBlocks[E any](v view[E], imit, blocks, imitLen, blockLen int) int {
	if imitLen == 0 {
		return imit
	}

	swapBlock := func(a, b int) {
		if a == b {
			return
		}
		for i := 0; i < blockLen; i++ {
			v.swap(a+i, b+i)
		}
	}

	leftKeys := imit
	rightKeys := imit + imitLen/2
	leftBlocks := blocks
	rightBlocks := leftBlocks + imitLen/2*blockLen

	leastLeftKey := leftKeys
	leastLeftBlock := leftBlocks
	leastRightKey := rightKeys
	origRightKey := rightKeys
	lastRightKey := rightKeys + imitLen/2

	for {
		if rightKeys == lastRightKey || !v.less(rightBlocks, leastLeftBlock) {
			v.swap(leftKeys, leastLeftKey)
			swapBlock(leftBlocks, leastLeftBlock)

			leftKeys++
			leftBlocks += blockLen
			if leftKeys == rightKeys {
				break
			}

			leastLeftKey = leftKeys
			leastLeftBlock = leftBlocks
			start := leftKeys + 1
			if leftKeys < origRightKey {
				start = origRightKey
			}
			for key := start; key < rightKeys; key++ {
				if v.less(key, leastLeftKey) {
					leastLeftKey = key
				}
			}
			leastLeftBlock += (leastLeftKey - leftKeys) * blockLen
		} else {
			v.swap(leftKeys, rightKeys)
			swapBlock(leftBlocks, rightBlocks)

			if leftKeys == leastLeftKey {
				leastLeftKey = rightKeys
				leastLeftBlock = rightBlocks
			}
			if rightKeys == leastRightKey {
				leastRightKey = leftKeys
			}

			leftKeys++
			rightKeys++
			leftBlocks += blockLen
			rightBlocks += blockLen
		}
	}

	return leastRightKey
}
