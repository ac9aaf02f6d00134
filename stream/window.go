package stream

import "github.com/grailbio/bedtk/bedrec"

// WindowOptions configures Window: intersect, but each
// A is widened by Left upstream and Right downstream before matching.
type WindowOptions struct {
	Order      bedrec.ChromOrder
	Left       bedrec.Pos
	Right      bedrec.Pos
	CompatWide bool
}

// WindowMatch is one qualifying (A, B) pair under the widened window.
type WindowMatch struct {
	A bedrec.Record
	B bedrec.Record
}

// Window sweeps a and b, matching each A's widened span against B, and
// calls onMatch per qualifying pair and onA once per A with its match
// count — the same shape as Intersect, so callers share formatting code
// between the two operators.
func Window(a, b Source, opts WindowOptions, onMatch func(WindowMatch) error, onA func(a bedrec.Record, count int) error) error {
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

	widen := func(iv bedrec.Interval) bedrec.Interval {
		start := iv.Start - opts.Left
		if start < 0 {
			start = 0
		}
		return bedrec.Interval{Chrom: iv.Chrom, Start: start, End: iv.End + opts.Right}
	}

	for aOK {
		wa := widen(curA.Interval)

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

		active.PopWhile(func(r bedrec.Record) bool { return r.End <= wa.Start })

		for bOK && curB.Chrom == curA.Chrom && curB.Start < wa.End {
			if curB.End > wa.Start {
				active.Push(curB)
			}
			curB, bOK, err = b.Next()
			if err != nil {
				return err
			}
		}

		count := 0
		var matchErr error
		active.Each(func(cand bedrec.Record) bool {
			if cand.Chrom != curA.Chrom || !bedrec.Overlaps(wa, cand.Interval, opts.CompatWide) {
				return true
			}
			count++
			if onMatch != nil {
				if err := onMatch(WindowMatch{A: curA, B: cand}); err != nil {
					matchErr = err
					return false
				}
			}
			return true
		})
		if matchErr != nil {
			return matchErr
		}
		if onA != nil {
			if err := onA(curA, count); err != nil {
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
