package extsort

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadixSortKeysMatchesPositionOrder(t *testing.T) {
	raw := []struct {
		chrom      string
		start, end int64
	}{
		{"chr1", 500, 600},
		{"chr10", 0, 10},
		{"chr2", 100, 200},
		{"chr1", 100, 200},
		{"chr1", 100, 150},
	}
	keys := make([]sortKey, len(raw))
	for i, r := range raw {
		keys[i] = makeSortKey(r.chrom, r.start, r.end, i, i)
	}

	radixSortKeys(keys)

	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool {
		return byPositionLess(keys[i], keys[j])
	}))
	// chr1 sorts before chr10 lexicographically.
	assert.Equal(t, "chr1", keys[0].chrom)
	assert.Equal(t, "chr10", keys[len(keys)-1].chrom)
}

func TestRadixSortKeysStableOnExactTies(t *testing.T) {
	keys := []sortKey{
		makeSortKey("chr1", 10, 20, 0, 0),
		makeSortKey("chr1", 10, 20, 1, 1),
		makeSortKey("chr1", 10, 20, 2, 2),
	}
	radixSortKeys(keys)
	assert.Equal(t, 0, keys[0].original)
	assert.Equal(t, 1, keys[1].original)
	assert.Equal(t, 2, keys[2].original)
}

func TestByPositionLessOrdersByStartThenEnd(t *testing.T) {
	a := makeSortKey("chr1", 10, 20, 0, 0)
	b := makeSortKey("chr1", 10, 30, 0, 1)
	assert.True(t, byPositionLess(a, b))
	assert.False(t, byPositionLess(b, a))
}

func TestFixupTiedPrefixesReordersLongSharedPrefixes(t *testing.T) {
	// Two chrom names that share a 16-byte prefix but differ after it sort
	// correctly only via the exact comparator fallback.
	long1 := "scaffold_0000000001"
	long2 := "scaffold_0000000002"
	keys := []sortKey{
		makeSortKey(long2, 0, 10, 0, 0),
		makeSortKey(long1, 0, 10, 1, 1),
	}
	fixupTiedPrefixes(keys)
	assert.Equal(t, long1, keys[0].chrom)
	assert.Equal(t, long2, keys[1].chrom)
}
