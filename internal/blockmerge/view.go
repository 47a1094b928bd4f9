// Package blockmerge implements the in-place, stable block merge sort
// engine: key collection, block interleaving, buffered and buffer-less
// merge, the merge-level controller and small-array sorting.
//
// The engine never allocates and never copies an element out of the
// slice it is given; every operation on the payload is either a
// comparison or a swap of two positions.
package blockmerge

// view presents a slice as a logically forward or backward sequence of
// n positions, so that a single implementation of each merge routine can
// serve both the forward and the backward merge direction (spec.md §4.1,
// "Reversed view"; sayhisort.h's ReversedIterator + IterComp).
//
// When rev is false, logical position i is backing position i, and
// less(i, j) calls cmp(data[i], data[j]) directly.
//
// When rev is true, logical position i is backing position n-1-i, and
// less(i, j) calls cmp(data[pos(j)], data[pos(i)]): the operands are
// swapped in addition to the position mirroring, exactly as sayhisort.h's
// IterComp specialization for ReversedIterator does. The combination
// makes a backward merge over [0,n) behave like a forward merge over the
// mirror image of the slice under the same ascending order.
type view[E any] struct {
	data []E
	cmp  func(a, b E) bool
	rev  bool
}

func newView[E any](data []E, cmp func(a, b E) bool) view[E] {
	return view[E]{data: data, cmp: cmp}
}

// reversed returns a view over the same backing slice, logically mirrored.
func (v view[E]) reversed() view[E] {
	return view[E]{data: v.data, cmp: v.cmp, rev: !v.rev}
}

func (v view[E]) n() int { return len(v.data) }

func (v view[E]) pos(i int) int {
	if v.rev {
		return len(v.data) - 1 - i
	}
	return i
}

func (v view[E]) less(i, j int) bool {
	if v.rev {
		return v.cmp(v.data[v.pos(j)], v.data[v.pos(i)])
	}
	return v.cmp(v.data[i], v.data[j])
}

// lessEq reports !less(j, i), i.e. data[i] <= data[j] under the sequence's order.
func (v view[E]) lessEq(i, j int) bool { return !v.less(j, i) }

func (v view[E]) swap(i, j int) {
	pi, pj := v.pos(i), v.pos(j)
	v.data[pi], v.data[pj] = v.data[pj], v.data[pi]
}
