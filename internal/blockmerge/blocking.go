package blockmerge

// determineBlocking picks the block layout for the controller's current
// level: the number of blocks, the common block length, and the length of
// the (possibly shorter) first/last blocks (spec.md §4.8; sayhisort.h
// DetermineBlocking).
//
// When buffered, numBlocks is chosen so every block fits the buffer
// (ceil(seqLen/bufLen)*2); this is guaranteed to fit the imitation buffer
// because the controller only keeps buffering enabled while
// seqLen <= bufferableLen. Unbuffered, numBlocks is capped by an
// under-approximation of sqrt(2*seqLen) so interleaveBlocks' linear scan
// stays O(seqLen).
func determineBlocking(c *mergeSortControl) blockingParam {
	seqLen := c.seqLen

	maxNumBlocks := c.imitLen + 2
	var numBlocks int
	if c.bufLen != 0 {
		numBlocks = ((seqLen-1)/c.bufLen + 1) * 2
	} else {
		limitNumBlocks := seqLen / overApproxSqrt(seqLen*2) * 2
		numBlocks = maxNumBlocks
		if limitNumBlocks < maxNumBlocks {
			numBlocks = limitNumBlocks
		}
	}

	blockLen := (seqLen-1)/(numBlocks/2) + 1
	residualLen := seqLen - blockLen*(numBlocks/2-1)

	return blockingParam{
		numBlocks:     numBlocks,
		blockLen:      blockLen,
		firstBlockLen: residualLen,
		lastBlockLen:  residualLen,
	}
}
