// Package gendata builds the element sequences exercised by
// cmd/imsortbench and by the engine's property tests: already-sorted,
// reversed, pi-digit, all-equal, uniform-random, few-key-random and
// sqrt-key-random inputs (spec.md §8's seven concrete scenarios).
package gendata

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Dist names one of the distributions Gen understands.
type Dist string

const (
	Sorted   Dist = "sorted"
	Reversed Dist = "reversed"
	Pi       Dist = "pi"
	AllEqual Dist = "allequal"
	Random   Dist = "random"
	FewKeys  Dist = "fewkeys"
	SqrtKeys Dist = "sqrtkeys"
)

// Gen returns n uint64s drawn from dist, seeded by seed for the random
// distributions. Unknown dist values report an error rather than
// silently falling back to a default, since a benchmark run over the
// wrong distribution is a silent correctness bug in the harness.
func Gen(dist Dist, n int, seed uint64) ([]uint64, error) {
	switch dist {
	case Sorted:
		return sorted(n), nil
	case Reversed:
		return reversed(n), nil
	case Pi:
		return piDigits(n), nil
	case AllEqual:
		return allEqual(n), nil
	case Random:
		return uniform(n, seed, math.MaxUint64)
	case FewKeys:
		return uniform(n, seed, 99)
	case SqrtKeys:
		return uniform(n, seed, uint64(math.Sqrt(float64(n)))+1)
	default:
		return nil, fmt.Errorf("gendata: unknown distribution %q", dist)
	}
}

func sorted(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}

func reversed(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(n - 1 - i)
	}
	return out
}

// piDigits cycles through the digits of pi (3.14159265...), the small
// concrete fixture of spec.md §8 scenario 3, extended to length n by
// repetition so the same generator also serves larger stability checks.
func piDigits(n int) []uint64 {
	digits := []uint64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6}
	out := make([]uint64, n)
	for i := range out {
		out[i] = digits[i%len(digits)]
	}
	return out
}

func allEqual(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = 42
	}
	return out
}

// uniform draws n values uniformly from [0, numKeys) (from the whole
// uint64 range when numKeys is math.MaxUint64) using a PCG
// generator (see pcg.go) wrapped in golang.org/x/exp/rand.Rand, seeded
// deterministically by seed, so a benchmark or test run is exactly
// reproducible given the same seed.
func uniform(n int, seed, numKeys uint64) ([]uint64, error) {
	if numKeys == 0 {
		return nil, fmt.Errorf("gendata: numKeys must be positive")
	}
	r := rand.New(newPCGSource(seed))
	out := make([]uint64, n)
	for i := range out {
		if numKeys == math.MaxUint64 {
			out[i] = r.Uint64()
		} else {
			out[i] = r.Uint64() % numKeys
		}
	}
	return out, nil
}
