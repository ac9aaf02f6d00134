// Package extsort implements an external sort: a radix sort over
// memory-mapped input that reproduces
// `LC_ALL=C sort -k1,1 -k2,2n -k3,3n` byte-for-byte under lexicographic
// chromosome order, or an equivalent genome-ranked ordering when a genome
// file is supplied.
package extsort

import "github.com/grailbio/bedtk/bedrec"

// ByMode selects what extsort orders by.
type ByMode int

const (
	// ByPosition sorts by (chrom, start, end) — the default contract.
	ByPosition ByMode = iota
	// BySizeAsc and BySizeDesc sort by interval length (end-start),
	// breaking ties by (chrom, start, end); these always use the
	// comparator-based path, never the radix fast path.
	BySizeAsc
	BySizeDesc
)

// Options configures Sort.
type Options struct {
	// Order compares chromosome names. nil means bedrec.Lexicographic,
	// which is the only ordering eligible for the radix fast path — any
	// other Order (e.g. a *genome.Genome's rank-based order) forces the
	// comparator-based sort, since radix bucketing needs an order that is
	// itself byte-comparable.
	Order bedrec.ChromOrder
	Mode  ByMode
	// Reverse walks the sorted order back to front at emission time.
	Reverse bool
	// TmpDir is where stdin shards are written when the input cannot be
	// memory-mapped. "" uses the system default.
	TmpDir string
	// ShardRecords caps how many records are buffered in memory per shard
	// before it is sorted and flushed, when sorting from a non-mmap-able
	// source.
	ShardRecords int
}

const defaultShardRecords = 1 << 20

func (o Options) shardSize() int {
	if o.ShardRecords > 0 {
		return o.ShardRecords
	}
	return defaultShardRecords
}

func (o Options) order() bedrec.ChromOrder {
	if o.Order != nil {
		return o.Order
	}
	return bedrec.Lexicographic
}

// fastEligible reports whether the radix fast path applies: position
// ordering under plain lexicographic chromosome order.
func (o Options) fastEligible() bool {
	return o.Mode == ByPosition && o.Order == nil
}
