package blockmerge

import (
	"math"
	"math/bits"
	"testing"

	"golang.org/x/exp/rand"
)

func TestOverApproxSqrtBounds(t *testing.T) {
	for x := 8; x < 100_000; x++ {
		r := overApproxSqrt(x)
		sqrt := math.Sqrt(float64(x))
		if float64(r) < sqrt {
			t.Fatalf("overApproxSqrt(%d) = %d, under sqrt(%d) = %v", x, r, x, sqrt)
		}
		if 2*r >= x {
			t.Fatalf("overApproxSqrt(%d) = %d, not < x/2 = %v", x, r, float64(x)/2)
		}
	}
}

// TestOverApproxSqrtNearWordBoundary exercises the index arithmetic in
// overApproxSqrt up against the limits of a machine word (Go has no
// user-definable trapping integer type to stand in for a checked
// difference type, so this is the closest substitute: values right at
// the bit boundary are exactly where a silent overflow in the shift/add
// sequence would first show up).
func TestOverApproxSqrtNearWordBoundary(t *testing.T) {
	top := 1 << (bits.UintSize/2 - 2)
	for _, x := range []int{top - 1, top, top + 1, top*2 - 1, top * 2} {
		if x < 8 {
			continue
		}
		r := overApproxSqrt(x)
		if r <= 0 {
			t.Fatalf("overApproxSqrt(%d) = %d, want positive", x, r)
		}
		sqrt := math.Sqrt(float64(x))
		if float64(r) < sqrt {
			t.Fatalf("overApproxSqrt(%d) = %d, under sqrt(%d) = %v", x, r, x, sqrt)
		}
		if r >= x/2 {
			t.Fatalf("overApproxSqrt(%d) = %d, not < x/2 = %d", x, r, x/2)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 2 + r.Intn(300)
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}
		want := append([]int{}, data...)

		v := newView(data, func(a, b int) bool { return a < b })
		m := 1 + r.Intn(n-1)

		rotate(v, 0, m, n)
		rotate(v, 0, n-m, n)

		for i := range data {
			if data[i] != want[i] {
				t.Fatalf("trial %d: rotate round trip failed at %d, n=%d m=%d: got %v want %v", trial, i, n, m, data, want)
			}
		}
	}
}

func TestBinarySearchAgainstLinearReference(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	less := func(a, b int) bool { return a < b }

	for trial := 0; trial < 500; trial++ {
		n := 1 + r.Intn(200)
		data := make([]int, n)
		cur := 0
		for i := range data {
			cur += r.Intn(3)
			data[i] = cur
		}
		key := r.Intn(cur + 3)

		// binarySearch's key argument must live in the same view, so
		// append it to the probed data and search for position n.
		withKey := append(append([]int{}, data...), key)
		vk := newView(withKey, less)

		// strict: first position p such that !(data[p] < key), or n if
		// none, i.e. the upper bound of the region strictly less than key.
		wantStrict := 0
		for wantStrict < n && data[wantStrict] < key {
			wantStrict++
		}
		gotStrict := binarySearch(vk, 0, n, n, true)
		if gotStrict != wantStrict {
			t.Fatalf("trial %d: strict binarySearch = %d, want %d (n=%d key=%d data=%v)", trial, gotStrict, wantStrict, n, key, data)
		}

		gotLoose := binarySearch(vk, 0, n, n, false)
		wantLoose := 0
		for wantLoose < n && data[wantLoose] <= key {
			wantLoose++
		}
		if gotLoose != wantLoose {
			t.Fatalf("trial %d: non-strict binarySearch = %d, want %d (n=%d key=%d data=%v)", trial, gotLoose, wantLoose, n, key, data)
		}
	}
}
