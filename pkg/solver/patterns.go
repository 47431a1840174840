package solver

import "sync"

// MaxBlades is the largest blade count the solver accepts. Enumeration is
// exponential in the blade count; 2^20 candidates is the most the instrument
// scale justifies holding in memory.
const MaxBlades = 20

// maxPatternEntries bounds the number of distinct blade counts whose pattern
// matrices are retained. A deployment solves for one or two stack sizes, so
// a small cap suffices; without one the cache would grow without bound
// across many distinct N values.
const maxPatternEntries = 8

// patternCache memoizes the in/out pattern matrix per blade count. The
// matrix depends only on N, never on transmission values, so it is shared
// across all solves. Eviction is FIFO by insertion order.
var patternCache = struct {
	sync.Mutex
	entries map[int][][]int
	order   []int
}{entries: make(map[int][][]int)}

// patterns returns all 2^n insert/remove bit-patterns for n blades in
// canonical enumeration order: pattern k assigns blade i the bit
// (k >> (n-1-i)) & 1, so blade 0 varies slowest. This order is the tie-break
// baseline for the adjacency search in FindConfigs and must not change.
//
// The returned rows are shared and must not be mutated.
func patterns(n int) [][]int {
	patternCache.Lock()
	defer patternCache.Unlock()

	if rows, ok := patternCache.entries[n]; ok {
		return rows
	}

	rows := make([][]int, 1<<n)
	for k := range rows {
		row := make([]int, n)
		for i := 0; i < n; i++ {
			row[i] = (k >> (n - 1 - i)) & 1
		}
		rows[k] = row
	}

	if len(patternCache.order) >= maxPatternEntries {
		oldest := patternCache.order[0]
		patternCache.order = patternCache.order[1:]
		delete(patternCache.entries, oldest)
	}
	patternCache.entries[n] = rows
	patternCache.order = append(patternCache.order, n)
	return rows
}
