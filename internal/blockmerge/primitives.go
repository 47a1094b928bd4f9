package blockmerge

// overApproxSqrt returns an over-approximation r of sqrt(x), satisfying
// sqrt(x) <= r < x/2 for x >= 8 (spec.md §4.1; sayhisort.h OverApproxSqrt).
//
// It finds n such that x fits 2^(2n-1) <= x < 2^(2n+1), seeds r0 with a
// binary estimate and refines it with one step of Heron's method, taking
// the ceiling so the result stays an over-approximation.
func overApproxSqrt(x int) int {
	n := 1
	for p := x; p >= 8; p /= 4 {
		n++
	}

	r0 := (1 << (n - 1)) + ((x - 1) >> (n + 1)) + 1

	return (r0+(x-1)/r0)/2 + 1
}

// rotate performs an in-place three-range rotation of v[first:last) about
// middle, so that v[middle] becomes the new v[first] (spec.md §4.1;
// sayhisort.h Rotate). For spans longer than 64 it uses helix rotation
// (repeated swapping of the shorter side across the longer, which reduces
// to a smaller rotation whose offset is longer mod shorter); shorter spans
// use triple reversal to avoid a modulo.
func rotate[E any](v view[E], first, middle, last int) {
	lLen := middle - first
	rLen := last - middle
	length := lLen + rLen

	for length > 64 {
		if lLen <= rLen {
			rem := rLen % lLen
			for {
				v.swap(first, middle)
				first++
				middle++
				if middle == last {
					break
				}
			}
			if rem == 0 {
				return
			}
			middle = last - rem
			length = lLen
			lLen -= rem
			rLen = rem
		} else {
			rem := lLen % rLen
			for {
				last--
				middle--
				v.swap(last, middle)
				if middle == first {
					break
				}
			}
			if rem == 0 {
				return
			}
			middle = first + rem
			length = rLen
			rLen -= rem
			lLen = rem
		}
	}

	f, m, l := first, middle, last
	for f < m-1 {
		m--
		v.swap(f, m)
		f++
	}
	for middle < l-1 {
		l--
		v.swap(middle, l)
		middle++
	}
	for first < last-1 {
		last--
		v.swap(first, last)
		first++
	}
}

// binarySearch is a monobound search: it runs a statically determined
// number of iterations (ceil(log2(last-first+1))) regardless of outcome,
// favouring branch prediction over early exit (spec.md §4.1; sayhisort.h
// BinarySearch).
//
// If strict is true, it returns the first position p in [first,last) such
// that !v.less(p, key), or last if there is none (the upper bound of the
// strictly-less region). If strict is false, it returns the first position
// p in [first,last) such that v.less(key, p), or last if there is none (the
// lower bound of the strictly-greater region).
func binarySearch[E any](v view[E], first, last, key int, strict bool) int {
	base := first
	length := last - first + 1

	for {
		mid := length / 2
		if mid == 0 {
			break
		}
		pivot := base + mid
		var take bool
		if strict {
			take = v.less(pivot-1, key)
		} else {
			take = v.lessEq(pivot-1, key)
		}
		if take {
			base = pivot
		}
		length -= mid
	}
	return base
}
