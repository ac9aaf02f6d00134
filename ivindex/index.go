// Package ivindex implements the in-memory per-chromosome interval index
// used by batch (non-streaming) operators: a start-sorted record array
// plus a prefix-max-end array, queried with a binary search over starts
// followed by a backward scan bounded by maxEnd.
package ivindex

import (
	"sort"

	"github.com/grailbio/bedtk/bedrec"
)

// Index is a queryable, start-sorted set of records on a single
// chromosome. Build it with New; it is immutable afterwards.
type Index struct {
	chrom   string
	records []bedrec.Record
	maxEnd  []bedrec.Pos // maxEnd[i] = max(records[0..=i].End)
}

// New builds an Index for a single chromosome from recs, which need not be
// sorted: New stable-sorts by (Start, End) and builds the prefix-max-end
// array in O(N log N). All records must share the same Chrom; New panics
// otherwise (callers are expected to have partitioned by chromosome
// already, as the batch loader does).
func New(chrom string, recs []bedrec.Record) *Index {
	sorted := make([]bedrec.Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bedrec.Less(sorted[i].Interval, sorted[j].Interval)
	})
	maxEnd := make([]bedrec.Pos, len(sorted))
	var running bedrec.Pos
	for i, r := range sorted {
		if r.Chrom != chrom {
			panic("ivindex: record chromosome does not match index chromosome")
		}
		if r.End > running {
			running = r.End
		}
		maxEnd[i] = running
	}
	return &Index{chrom: chrom, records: sorted, maxEnd: maxEnd}
}

// Chrom returns the chromosome this index covers.
func (ix *Index) Chrom() string { return ix.chrom }

// Len returns the number of records in the index.
func (ix *Index) Len() int { return len(ix.records) }

// Record returns the i'th record in start-sorted order.
func (ix *Index) Record(i int) bedrec.Record { return ix.records[i] }

// Overlaps calls fn once for every indexed record overlapping q, honoring
// compatWide the same way bedrec.Overlaps does. Records are visited in
// descending (Start, End) order, since the scan walks backward. Stops
// early if fn returns false.
//
// Algorithm: binary-search the rightmost index j with
// records[j].Start < q.End, then walk backward, using maxEnd to skip
// whole runs that cannot reach q.Start.
func (ix *Index) Overlaps(q bedrec.Interval, compatWide bool, fn func(bedrec.Record) bool) {
	qEnd := q.End
	if compatWide && q.Start == q.End {
		qEnd = q.End + 1
	}
	// In compatibility mode a zero-length record reaches one base past its
	// stored End, so the prefix-max skip must allow for that widening.
	var widen bedrec.Pos
	if compatWide {
		widen = 1
	}
	j := sort.Search(len(ix.records), func(i int) bool { return ix.records[i].Start >= qEnd }) - 1
	for i := j; i >= 0; {
		if ix.maxEnd[i]+widen <= q.Start {
			// Nothing in records[0..=i] can reach q.Start; skip the whole prefix.
			break
		}
		rec := ix.records[i]
		recEnd := rec.End
		if compatWide && rec.Start == rec.End {
			recEnd = rec.End + 1
		}
		if recEnd > q.Start {
			if !fn(rec) {
				return
			}
		}
		i--
	}
}

// CountOverlaps returns the number of indexed records overlapping q.
func (ix *Index) CountOverlaps(q bedrec.Interval, compatWide bool) int {
	n := 0
	ix.Overlaps(q, compatWide, func(bedrec.Record) bool { n++; return true })
	return n
}

// ByChrom partitions recs into one Index per chromosome.
func ByChrom(recs []bedrec.Record) map[string]*Index {
	buckets := make(map[string][]bedrec.Record)
	for _, r := range recs {
		buckets[r.Chrom] = append(buckets[r.Chrom], r)
	}
	out := make(map[string]*Index, len(buckets))
	for chrom, rs := range buckets {
		out[chrom] = New(chrom, rs)
	}
	return out
}
