package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings keyed by "package.Operation".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameCounts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("meshing.BuildMesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		frameCounts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	clear(frameCounts)
	mu.Unlock()
}

// Entry is one named timing.
type Entry struct {
	Name  string
	Total time.Duration
	Calls int
}

// Snapshot returns the current frame's entries, slowest first.
func Snapshot() []Entry {
	mu.Lock()
	out := make([]Entry, 0, len(frameTotals))
	for k, v := range frameTotals {
		out = append(out, Entry{Name: k, Total: v, Calls: frameCounts[k]})
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Name < out[j].Name
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// TopN formats the n slowest entries of the current frame.
// Example: "meshing.BuildMesh:4.2ms, physics.Raycast:0.1ms"
func TopN(n int) string {
	list := Snapshot()
	n = min(max(n, 0), len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		ms := float64(e.Total.Microseconds()) / 1000.0
		parts = append(parts, e.Name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms")
	}
	return strings.Join(parts, ", ")
}
