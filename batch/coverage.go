package batch

import (
	"sort"
	"sync"

	"github.com/grailbio/base/traverse"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/ivindex"
)

// CoverageOptions mirrors stream.CoverageOptions for the batch path.
type CoverageOptions struct {
	Order      bedrec.ChromOrder
	CompatWide bool
}

// CoverageResult mirrors stream.CoverageResult.
type CoverageResult struct {
	A            bedrec.Record
	Count        int
	CoveredBases bedrec.Pos
	Fraction     float64
}

// Coverage computes, for every record in a, how much of it is covered by
// b, the same way Intersect does: one indexed probe per A record, workers
// partitioned by chromosome.
func Coverage(a, b []bedrec.Record, opts CoverageOptions) ([]CoverageResult, error) {
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
	perChrom := make(map[string][]CoverageResult, len(chroms))
	var mu sync.Mutex
	err := traverse.Each(len(chroms), func(i int) error {
		chrom := chroms[i]
		recs := aGroups[chrom]
		idx := indexes[chrom]
		results := make([]CoverageResult, len(recs))
		for j, rec := range recs {
			res := CoverageResult{A: rec}
			var segs []bedrec.Interval
			if idx != nil {
				idx.Overlaps(rec.Interval, opts.CompatWide, func(cand bedrec.Record) bool {
					res.Count++
					start, end := cand.Start, cand.End
					if rec.Start > start {
						start = rec.Start
					}
					if rec.End < end {
						end = rec.End
					}
					segs = append(segs, bedrec.Interval{Chrom: chrom, Start: start, End: end})
					return true
				})
			}
			res.CoveredBases = unionLen(segs)
			if l := rec.Len(); l > 0 {
				res.Fraction = float64(res.CoveredBases) / float64(l)
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

	var out []CoverageResult
	for _, chrom := range sortedChroms(chroms, order) {
		out = append(out, perChrom[chrom]...)
	}
	return out, nil
}

// unionLen sums the covered length of segs after sorting by start and
// merging overlaps, so double-covered bases aren't double counted.
func unionLen(segs []bedrec.Interval) bedrec.Pos {
	if len(segs) == 0 {
		return 0
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })
	var total, runEnd bedrec.Pos
	haveRun := false
	for _, s := range segs {
		if !haveRun {
			total += s.Len()
			runEnd = s.End
			haveRun = true
			continue
		}
		if s.Start <= runEnd {
			if s.End > runEnd {
				total += s.End - runEnd
				runEnd = s.End
			}
			continue
		}
		total += s.Len()
		runEnd = s.End
	}
	return total
}
