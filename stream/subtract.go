package stream

import "github.com/grailbio/bedtk/bedrec"

// SubtractOptions configures Subtract.
type SubtractOptions struct {
	// Order compares chromosome names at a stream boundary; defaults to
	// bedrec.Lexicographic if nil.
	Order bedrec.ChromOrder
	// RemoveEntire drops the whole of A if it has any qualifying overlap
	// with B, instead of carving the overlapping portion(s) out of it
	// (bedtools -A).
	RemoveEntire bool
	// FractionA requires overlap length >= FractionA * len(A) before that
	// overlap counts towards removal, if nonzero.
	FractionA  float64
	Reciprocal bool
	CompatWide bool
}

// Subtract sweeps a and b and calls emit once per surviving piece of A, in
// input order. An A untouched by any qualifying B is emitted unchanged.
func Subtract(a, b Source, opts SubtractOptions, emit func(bedrec.Interval) error) error {
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

		// Collect qualifying B overlaps, then carve them out of curA's span.
		pieces := []bedrec.Interval{curA.Interval}
		hit := false
		active.Each(func(cand bedrec.Record) bool {
			if cand.Chrom != curA.Chrom || !bedrec.Overlaps(curA.Interval, cand.Interval, opts.CompatWide) {
				return true
			}
			ol := bedrec.OverlapLen(curA.Interval, cand.Interval, opts.CompatWide)
			if opts.FractionA > 0 {
				if float64(ol) < opts.FractionA*float64(curA.Len()) {
					return true
				}
				if opts.Reciprocal && float64(ol) < opts.FractionA*float64(cand.Len()) {
					return true
				}
			}
			hit = true
			pieces = carve(pieces, cand.Interval)
			return true
		})

		if hit {
			if !opts.RemoveEntire {
				for _, p := range pieces {
					if p.Len() > 0 {
						if err := emit(p); err != nil {
							return err
						}
					}
				}
			}
		} else {
			if err := emit(curA.Interval); err != nil {
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

// carve removes cut from every interval in pieces, splitting an interval in
// two when cut falls strictly inside it.
func carve(pieces []bedrec.Interval, cut bedrec.Interval) []bedrec.Interval {
	out := make([]bedrec.Interval, 0, len(pieces)+1)
	for _, p := range pieces {
		if cut.End <= p.Start || cut.Start >= p.End {
			out = append(out, p)
			continue
		}
		if cut.Start > p.Start {
			out = append(out, bedrec.Interval{Chrom: p.Chrom, Start: p.Start, End: cut.Start})
		}
		if cut.End < p.End {
			out = append(out, bedrec.Interval{Chrom: p.Chrom, Start: cut.End, End: p.End})
		}
	}
	return out
}
