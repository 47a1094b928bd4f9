package blockmerge

import (
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

type keyed struct {
	key uint64
	pos int
}

func lessKeyed(a, b keyed) bool { return a.key < b.key }

func checkSortedAndPermutation(t *testing.T, orig, got []keyed) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		if got[i].key < got[i-1].key {
			t.Fatalf("not sorted at %d: %+v then %+v", i, got[i-1], got[i])
		}
	}
	want := append([]keyed{}, orig...)
	sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })
	if len(got) != len(want) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func runRandomTrial(t *testing.T, n int, numKeys uint64, seed uint64) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([]keyed, n)
	for i := range data {
		data[i] = keyed{key: r.Uint64() % numKeys, pos: i}
	}
	orig := append([]keyed{}, data...)
	Run(data, lessKeyed)
	checkSortedAndPermutation(t, orig, data)
}

func TestRunSmallLengths(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for seed := uint64(0); seed < 5; seed++ {
			runRandomTrial(t, n, 3, seed)
		}
	}
}

func TestRunAroundCollectKeysThreshold(t *testing.T) {
	for n := 9; n <= 64; n++ {
		runRandomTrial(t, n, 5, uint64(n))
	}
}

func TestRunFewDistinctKeysFallsBackToUnbuffered(t *testing.T) {
	// numKeys=2 over a few hundred elements guarantees collectKeys finds
	// fewer than 8 distinct values, forcing the unbuffered merge path.
	runRandomTrial(t, 500, 2, 7)
}

func TestRunManyLevelsRandom(t *testing.T) {
	sizes := []int{100, 997, 4096, 10_000}
	for _, n := range sizes {
		runRandomTrial(t, n, uint64(n/3+8), uint64(n))
	}
}

func TestRunLarge(t *testing.T) {
	n := 200_000
	if testing.Short() {
		n = 2_000
	}
	runRandomTrial(t, n, 1_000_003, 42)
}

func TestRunAllEqual(t *testing.T) {
	n := 5000
	data := make([]keyed, n)
	for i := range data {
		data[i] = keyed{key: 7, pos: i}
	}
	Run(data, lessKeyed)
	for i, v := range data {
		if v.pos != i {
			t.Fatalf("stability broken on all-equal input at %d: got pos %d", i, v.pos)
		}
	}
}

func TestRunAllocFree(t *testing.T) {
	n := 4096
	base := make([]keyed, n)
	r := rand.New(rand.NewSource(9))
	for i := range base {
		base[i] = keyed{key: r.Uint64() % 500, pos: i}
	}

	allocs := testing.AllocsPerRun(5, func() {
		data := append([]keyed{}, base...)
		Run(data, lessKeyed)
	})
	if allocs > 1 {
		t.Errorf("Run allocated %v times per run beyond the setup copy", allocs)
	}
}
