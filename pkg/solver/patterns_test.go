package solver

import (
	"reflect"
	"testing"
)

func TestPatterns_CanonicalOrder(t *testing.T) {
	want := [][]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	}
	got := patterns(2)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("patterns(2) = %v, want %v", got, want)
	}
}

func TestPatterns_CachedRowsShared(t *testing.T) {
	a := patterns(3)
	b := patterns(3)
	if &a[0][0] != &b[0][0] {
		t.Error("patterns(3) not served from cache")
	}
}

func TestPatterns_CacheBounded(t *testing.T) {
	for n := 1; n <= maxPatternEntries+4; n++ {
		patterns(n)
	}
	patternCache.Lock()
	defer patternCache.Unlock()
	if len(patternCache.entries) > maxPatternEntries {
		t.Errorf("cache holds %d entries, cap is %d",
			len(patternCache.entries), maxPatternEntries)
	}
	if len(patternCache.order) != len(patternCache.entries) {
		t.Errorf("eviction order length %d != entries %d",
			len(patternCache.order), len(patternCache.entries))
	}
}
