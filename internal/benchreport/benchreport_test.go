package benchreport

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	results := []Result{
		{Dist: "random", N: 1_000_000, Seed: 1, Elapsed: 42 * time.Millisecond, Verified: true},
		{Dist: "fewkeys", N: 4096, Seed: 7, Elapsed: 3 * time.Microsecond, Verified: false},
	}

	data, err := Encode(results)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(results, got); diff != "" {
		t.Errorf("Decode(Encode(results)) mismatch:\n%s", diff)
	}
}

func TestWriteTextIncludesDistAndStatus(t *testing.T) {
	out := WriteText([]Result{
		{Dist: "sorted", N: 10, Seed: 0, Elapsed: time.Second, Verified: true},
		{Dist: "random", N: 20, Seed: 1, Elapsed: time.Second, Verified: false},
	})
	text := string(out)
	for _, want := range []string{"sorted", "ok", "random", "unverified"} {
		if !strings.Contains(text, want) {
			t.Errorf("WriteText output missing %q:\n%s", want, text)
		}
	}
}
