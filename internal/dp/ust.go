package dp

import (
	"sort"
	"sync"

	"github.com/zyr17/artifact-scheduler/internal/data"
)

// USTEntry is one reachable increment vector (packed as code) and the
// number of length-k upgrade histories that produce it.
type USTEntry struct {
	Code  int
	Count int
}

var (
	ustOnce  sync.Once
	ustTable [N + 1][]USTEntry
)

func ensureUST() {
	ustOnce.Do(buildUST)
}

// UST returns the memoized upgrade-state table entries for level k,
// building the table on first call.
func UST(k int) []USTEntry {
	ensureUST()
	if k < 0 || k > N {
		return nil
	}
	return ustTable[k]
}

// buildUST computes UST[0..N] by convolving, level by level, the 16
// (slot, roll) one-step transitions into the previous level's codes. This
// is equivalent to the spec's sequence enumeration but runs in
// O(sum_k |UST[k]| * 16) instead of enumerating all 16^k raw sequences.
func buildUST() {
	levels := make([]map[int]int, N+1)
	levels[0] = map[int]int{0: 1}
	for k := 1; k <= N; k++ {
		next := make(map[int]int)
		for code, count := range levels[k-1] {
			for slot := 0; slot < data.AffixNum; slot++ {
				base := intPow(Base, slot)
				for roll := data.UpdateMin; roll <= data.UpdateMax; roll++ {
					next[code+roll*base] += count
				}
			}
		}
		levels[k] = next
	}

	for k := 0; k <= N; k++ {
		entries := make([]USTEntry, 0, len(levels[k]))
		for code, count := range levels[k] {
			entries = append(entries, USTEntry{Code: code, Count: count})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
		ustTable[k] = entries
	}
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// decodeVector unpacks a code into its per-slot increments.
func decodeVector(code int) [4]int {
	var v [4]int
	for j := 0; j < 4; j++ {
		v[j] = code % Base
		code /= Base
	}
	return v
}
