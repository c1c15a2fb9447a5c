//go:build test

package mem

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/bastiangx/treeline/pkg/trie"
)

var testEntries = []string{
	"hello world", "hello sir", "hello there",
	"good afternoon", "good morning", "good evening",
	"make build", "make test", "make clean",
	"git status", "git commit", "git push origin main",
	"cargo run", "cargo test",
}

var testPrefixes = []string{
	"h", "he", "hel", "hell", "hello",
	"g", "go", "goo", "good",
	"m", "ma", "mak", "make",
	"git ", "car",
}

// heapAfterGC returns the live heap after a full collection.
func heapAfterGC() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// TestInsertDeleteCycles checks that repeated insert/delete cycles do not
// accumulate nodes: a fully deleted history must leave the heap near where
// it started.
func TestInsertDeleteCycles(t *testing.T) {
	iterations := []int{100, 500, 1000, 5000}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			tr := trie.New()
			before := heapAfterGC()

			for i := 0; i < iterCount; i++ {
				for _, entry := range testEntries {
					tr.Insert(entry)
				}
				for _, prefix := range testPrefixes {
					tr.WordsWithPrefix(prefix).Collect()
				}
				for _, entry := range testEntries {
					tr.Delete(entry)
				}
			}

			if got := len(tr.Words().Collect()); got != 0 {
				t.Fatalf("expected empty trie after cycles, %d entries remain", got)
			}

			after := heapAfterGC()
			// Allow a generous slack for runtime noise; an actual leak of
			// iterCount*len(testEntries) node chains would dwarf it.
			const slack = 4 << 20
			if after > before+slack {
				t.Errorf("heap grew from %d to %d bytes over %d cycles", before, after, iterCount)
			}
		})
	}
}

// TestWalkerReleasesStack drains very wide walks to make sure the walker
// does not pin nodes once exhausted.
func TestWalkerReleasesStack(t *testing.T) {
	tr := trie.New()
	for i := 0; i < 10000; i++ {
		tr.Insert(fmt.Sprintf("entry number %d", i))
	}

	before := heapAfterGC()
	for i := 0; i < 100; i++ {
		w := tr.Words()
		for {
			if _, ok := w.Next(); !ok {
				break
			}
		}
	}
	after := heapAfterGC()

	const slack = 8 << 20
	if after > before+slack {
		t.Errorf("heap grew from %d to %d bytes across drained walks", before, after)
	}
}
