// Package benchreport records and renders the result of one
// cmd/imsortbench run: the distribution sorted, how long it took, and
// whether the output was verified against a reference stable sort.
package benchreport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Result is one benchmark run's outcome, encodable with msgpack for
// machine consumption or rendered as text for a terminal.
type Result struct {
	Dist     string        `msgpack:"dist"`
	N        int           `msgpack:"n"`
	Seed     uint64        `msgpack:"seed"`
	Elapsed  time.Duration `msgpack:"elapsed_ns"`
	Verified bool          `msgpack:"verified"`
}

// Encode renders results in msgpack, one top-level array.
func Encode(results []Result) ([]byte, error) {
	return msgpack.Marshal(results)
}

// Decode is the inverse of Encode, used by tests round-tripping a report.
func Decode(data []byte) ([]Result, error) {
	var results []Result
	if err := msgpack.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteText renders results as aligned plain-text rows.
func WriteText(results []Result) []byte {
	var buf bytes.Buffer
	for _, r := range results {
		status := "ok"
		if !r.Verified {
			status = "unverified"
		}
		fmt.Fprintf(&buf, "%-10s n=%-10d seed=%-20d %12s %s\n", r.Dist, r.N, r.Seed, r.Elapsed, status)
	}
	return buf.Bytes()
}
