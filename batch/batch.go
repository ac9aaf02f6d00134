// Package batch implements non-streaming operator variants: when input
// cannot be assumed sorted and the caller opts into --allow-unsorted,
// load both operands into memory, build a per-chromosome
// ivindex.Index over B, then partition A by chromosome across worker
// goroutines, each probing the shared (read-only) index — no shared
// mutation, so results collect per worker and are concatenated back in
// chromosome order for deterministic output.
package batch

import (
	"sort"
	"sync"

	"github.com/grailbio/base/traverse"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/ivindex"
)

// partitionByChrom groups recs by chromosome, preserving each
// chromosome's internal record order, and returns the chromosome names in
// first-seen order.
func partitionByChrom(recs []bedrec.Record) (map[string][]bedrec.Record, []string) {
	groups := make(map[string][]bedrec.Record)
	var order []string
	for _, r := range recs {
		if _, ok := groups[r.Chrom]; !ok {
			order = append(order, r.Chrom)
		}
		groups[r.Chrom] = append(groups[r.Chrom], r)
	}
	return groups, order
}

// sortedChroms returns names ordered per cmp.
func sortedChroms(names []string, cmp bedrec.ChromOrder) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// IntersectOptions mirrors stream.IntersectOptions for the batch path.
type IntersectOptions struct {
	Order      bedrec.ChromOrder
	FractionA  float64
	Reciprocal bool
	CompatWide bool
}

// IntersectResult is one A record's batch intersect outcome.
type IntersectResult struct {
	A       bedrec.Record
	Matches []bedrec.Record
}

// Intersect computes, for every record in a, the B records in b it
// overlaps (subject to the same fraction filters as the streaming
// operator), using one worker per A chromosome and emitting chromosome
// blocks in opts.Order (bedrec.Lexicographic if nil).
func Intersect(a, b []bedrec.Record, opts IntersectOptions) ([]IntersectResult, error) {
	order := opts.Order
	if order == nil {
		order = bedrec.Lexicographic
	}

	bGroups, _ := partitionByChrom(b)
	indexes := make(map[string]*ivindex.Index, len(bGroups))
	for chrom, recs := range bGroups {
		indexes[chrom] = ivindex.New(chrom, recs)
	}

	aGroups, chroms := partitionByChrom(a)
	perChrom := make(map[string][]IntersectResult, len(chroms))
	var mu sync.Mutex
	err := traverse.Each(len(chroms), func(i int) error {
		chrom := chroms[i]
		recs := aGroups[chrom]
		idx := indexes[chrom]
		results := make([]IntersectResult, len(recs))
		for j, rec := range recs {
			res := IntersectResult{A: rec}
			if idx != nil {
				idx.Overlaps(rec.Interval, opts.CompatWide, func(cand bedrec.Record) bool {
					ol := bedrec.OverlapLen(rec.Interval, cand.Interval, opts.CompatWide)
					if opts.FractionA > 0 {
						if float64(ol) < opts.FractionA*float64(rec.Len()) {
							return true
						}
						if opts.Reciprocal && float64(ol) < opts.FractionA*float64(cand.Len()) {
							return true
						}
					}
					res.Matches = append(res.Matches, cand)
					return true
				})
			}
			results[j] = res
		}
		mu.Lock()
		perChrom[chrom] = results
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []IntersectResult
	for _, chrom := range sortedChroms(chroms, order) {
		out = append(out, perChrom[chrom]...)
	}
	return out, nil
}
