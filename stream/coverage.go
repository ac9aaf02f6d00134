package stream

import "github.com/grailbio/bedtk/bedrec"

// CoverageOptions configures Coverage.
type CoverageOptions struct {
	Order      bedrec.ChromOrder
	CompatWide bool
}

// CoverageResult reports, for one A, how many B records touch it and how
// much of its span they cover — bedtools coverage's default four columns
// (count / bases covered / length / fraction), computed here by merging
// the clipped overlap segments rather than summing raw overlap lengths,
// so bases double-covered by more than one B are not double-counted.
type CoverageResult struct {
	A            bedrec.Record
	Count        int
	CoveredBases bedrec.Pos
	Fraction     float64
}

// Coverage sweeps a and b and calls onA once per A.
func Coverage(a, b Source, opts CoverageOptions, onA func(CoverageResult) error) error {
	order := opts.Order
	if order == nil {
		order = bedrec.Lexicographic
	}
	active := &ActiveSet{}

	curA, aOK, err := a.Next()
	if err != nil {
		return err
	}
	curB, bOK, err := b.Next()
	if err != nil {
		return err
	}

	var segs []bedrec.Interval
	for aOK {
		for bOK && curB.Chrom != curA.Chrom {
			advA, advB := behind(curA.Chrom, curB.Chrom, order)
			if advB {
				curB, bOK, err = b.Next()
				if err != nil {
					return err
				}
				continue
			}
			if advA {
				active.Reset()
				break
			}
		}
		if active.Len() > 0 && active.Front().Chrom != curA.Chrom {
			active.Reset()
		}

		active.PopWhile(func(r bedrec.Record) bool { return r.End <= curA.Start })

		for bOK && curB.Chrom == curA.Chrom && curB.Start < curA.End {
			if curB.End > curA.Start {
				active.Push(curB)
			}
			curB, bOK, err = b.Next()
			if err != nil {
				return err
			}
		}

		segs = segs[:0]
		count := 0
		active.Each(func(cand bedrec.Record) bool {
			if cand.Chrom != curA.Chrom || !bedrec.Overlaps(curA.Interval, cand.Interval, opts.CompatWide) {
				return true
			}
			count++
			start := cand.Start
			if curA.Start > start {
				start = curA.Start
			}
			end := cand.End
			if curA.End < end {
				end = curA.End
			}
			segs = append(segs, bedrec.Interval{Chrom: curA.Chrom, Start: start, End: end})
			return true
		})

		var covered bedrec.Pos
		var runEnd bedrec.Pos
		haveRun := false
		for _, s := range segs {
			if !haveRun {
				runEnd = s.End
				covered += s.Len()
				haveRun = true
				continue
			}
			if s.Start <= runEnd {
				if s.End > runEnd {
					covered += s.End - runEnd
					runEnd = s.End
				}
				continue
			}
			covered += s.Len()
			runEnd = s.End
		}

		res := CoverageResult{A: curA, Count: count, CoveredBases: covered}
		if l := curA.Len(); l > 0 {
			res.Fraction = float64(covered) / float64(l)
		}
		if onA != nil {
			if err := onA(res); err != nil {
				return err
			}
		}

		curA, aOK, err = a.Next()
		if err != nil {
			return err
		}
	}
	return nil
}
