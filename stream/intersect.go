package stream

import "github.com/grailbio/bedtk/bedrec"

// IntersectOptions configures Intersect.
type IntersectOptions struct {
	// Order compares chromosome names to decide which stream is behind at a
	// chromosome boundary; defaults to
	// bedrec.Lexicographic if nil.
	Order bedrec.ChromOrder
	// FractionA requires overlap length >= FractionA * len(A) to count, if
	// nonzero.
	FractionA float64
	// Reciprocal additionally requires overlap length >= FractionA * len(B)
	// (bedtools' -f combined with -r: both sides use the same fraction).
	Reciprocal bool
	// CompatWide is the zero-length-interval overlap mode; pass
	// config.BedtoolsCompatible() once per call.
	CompatWide bool
}

// IntersectMatch is one qualifying (A, B) overlap.
type IntersectMatch struct {
	A          bedrec.Record
	B          bedrec.Record
	OverlapLen bedrec.Pos
}

// Intersect sweeps a and b (both sorted, per the invariant validated
// upstream) and calls onMatch once per qualifying overlap pair, in A order
// and then B-arrival order within an A, and finally onA once per A record
// with the total number of qualifying matches found for it (0 if none) —
// this single end-of-A callback is enough to implement every intersect
// output shape (pairs, -wa/-wb, -u unique, -c count, -v no-overlap)
// without the engine itself needing to know which shape the caller wants.
func Intersect(a, b Source, opts IntersectOptions, onMatch func(IntersectMatch) error, onA func(a bedrec.Record, count int) error) error {
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
		// Step 1: chromosome alignment. Advance whichever stream is behind;
		// drop any active B left over from a chromosome A has moved past.
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

		// Step 2: evict active B that can no longer overlap curA or any later
		// A on this chromosome.
		active.PopWhile(func(r bedrec.Record) bool { return r.End <= curA.Start })

		// Step 3: pull in B records that may overlap curA.
		for bOK && curB.Chrom == curA.Chrom && curB.Start < curA.End {
			if curB.End > curA.Start {
				active.Push(curB)
			}
			curB, bOK, err = b.Next()
			if err != nil {
				return err
			}
		}

		// Step 4: match policy.
		count := 0
		var matchErr error
		active.Each(func(cand bedrec.Record) bool {
			if cand.Chrom != curA.Chrom {
				return true
			}
			if !bedrec.Overlaps(curA.Interval, cand.Interval, opts.CompatWide) {
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
			count++
			if onMatch != nil {
				if err := onMatch(IntersectMatch{A: curA, B: cand, OverlapLen: ol}); err != nil {
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

		// Step 5: advance A.
		curA, aOK, err = a.Next()
		if err != nil {
			return err
		}
	}
	return nil
}
