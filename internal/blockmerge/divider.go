package blockmerge

// sequenceDivider simulates real-number division of a length-dataLen run
// into 2^log2NumSeqs nearly-equal pieces: piece i spans
// [floor(i*dataLen/numSeqs), floor((i+1)*dataLen/numSeqs)), tracked with a
// fractional counter so every length differs from the others by at most
// one (spec.md §4.7; sayhisort.h SequenceDivider).
type sequenceDivider struct {
	log2NumSeqs int
	numSeqs     int
	remainder   int
	fracCounter int
	forward     bool
}

func newSequenceDivider(dataLen, log2NumSeqs int, forward bool) sequenceDivider {
	numSeqs := 1 << log2NumSeqs
	remainder := (dataLen-1)%numSeqs + 1
	if !forward {
		remainder = numSeqs - remainder
	}
	return sequenceDivider{
		log2NumSeqs: log2NumSeqs,
		numSeqs:     numSeqs,
		remainder:   remainder,
		forward:     forward,
	}
}

// next returns true if the upcoming run is one shorter than the base
// length, in either direction, then consumes one run.
func (d *sequenceDivider) next() bool {
	d.fracCounter += d.remainder
	bit := 1 << d.log2NumSeqs
	noCarry := d.fracCounter&bit == 0
	if !d.forward {
		noCarry = !noCarry
	}
	d.fracCounter &^= bit
	d.numSeqs--
	return noCarry
}

func (d *sequenceDivider) isEnd() bool { return d.numSeqs == 0 }
