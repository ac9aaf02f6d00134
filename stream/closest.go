package stream

import "github.com/grailbio/bedtk/bedrec"

// TieMode selects how Closest resolves multiple B's tied for the minimum
// distance to an A.
type TieMode int

const (
	// TieAll emits one row per tied B.
	TieAll TieMode = iota
	// TieFirst keeps only the tied B encountered earliest in the sweep
	// (the most upstream of the tied candidates).
	TieFirst
	// TieLast keeps only the tied B encountered latest in the sweep (the
	// most downstream of the tied candidates).
	TieLast
)

// ClosestOptions configures Closest.
type ClosestOptions struct {
	Order      bedrec.ChromOrder
	CompatWide bool

	// Ties selects how multiple equally-close B's are resolved. Zero value
	// is TieAll.
	Ties TieMode
	// IgnoreOverlaps excludes B's that overlap A from consideration.
	IgnoreOverlaps bool
	// IgnoreUpstream excludes B's that end at or before A.Start.
	IgnoreUpstream bool
	// IgnoreDownstream excludes B's that start at or after A.End.
	IgnoreDownstream bool
	// MaxDistance caps how far a B may be to qualify; <= 0 means no limit,
	// matching FractionA's zero-disables convention.
	MaxDistance bedrec.Pos
}

// ClosestMatch is one emitted (A, B) pairing. HasB is false only when A has
// no qualifying candidate anywhere on its chromosome, in which case B is
// the zero Record and Distance is -1.
type ClosestMatch struct {
	A        bedrec.Record
	B        bedrec.Record
	Distance bedrec.Pos
	HasB     bool
}

// Closest sweeps a and b and calls onA once per A for each qualifying
// nearest B — more than once if opts.Ties is TieAll and several B's tie —
// using bedrec.Distance's convention (0 for overlapping, gap+1 otherwise).
// An A with no qualifying B anywhere on its chromosome gets a single call
// with HasB false and Distance -1.
//
// The active set here is not evicted the moment a B falls behind curA, the
// way Intersect's is: a B that overlapped a previous, larger A must still
// be considered for a smaller A nested inside it. Instead, eviction
// *promotes* the departing record to lastB when it ends at or after the
// current lastB, so lastB is the nearest upstream candidate seen so far —
// which is exactly what a B that has fully fallen behind curA becomes.
// Only one such B is kept, so of several upstream B's tied on End only the
// latest-evicted one is a candidate.
//
// lastB and the active set together cover every B that overlaps curA or
// has already fallen behind it; the one candidate neither covers is the
// next unread B once it starts at or after curA.End, since it has not
// overlapped any A yet and so was never pulled into active. That one is
// considered directly off the B source without being consumed, since a
// later or larger A may still need to see it overlap or fall behind.
func Closest(a, b Source, opts ClosestOptions, onA func(ClosestMatch) error) error {
	order := opts.Order
	if order == nil {
		order = bedrec.Lexicographic
	}
	active := &ActiveSet{}
	var lastB bedrec.Record
	haveLast := false

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
				break
			}
		}
		if haveLast && lastB.Chrom != curA.Chrom {
			haveLast = false
		}
		if active.Len() > 0 && active.Front().Chrom != curA.Chrom {
			active.Reset()
		}

		for active.Len() > 0 && active.Front().End <= curA.Start {
			if !haveLast || active.Front().End >= lastB.End {
				lastB = active.Front()
				haveLast = true
			}
			active.PopFront()
		}

		for bOK && curB.Chrom == curA.Chrom && curB.Start < curA.End {
			active.Push(curB)
			curB, bOK, err = b.Next()
			if err != nil {
				return err
			}
		}

		best := bedrec.Pos(-1)
		var ties []bedrec.Record
		consider := func(cand bedrec.Record) {
			if cand.Chrom != curA.Chrom {
				return
			}
			overlap := bedrec.Overlaps(curA.Interval, cand.Interval, opts.CompatWide)
			downstream := !overlap && curA.End <= cand.Start
			upstream := !overlap && !downstream
			switch {
			case overlap && opts.IgnoreOverlaps:
				return
			case upstream && opts.IgnoreUpstream:
				return
			case downstream && opts.IgnoreDownstream:
				return
			}
			d := bedrec.Distance(curA.Interval, cand.Interval, opts.CompatWide)
			if opts.MaxDistance > 0 && d > opts.MaxDistance {
				return
			}
			switch {
			case best < 0 || d < best:
				best = d
				ties = append(ties[:0], cand)
			case d == best:
				ties = append(ties, cand)
			}
		}
		if haveLast {
			consider(lastB)
		}
		active.Each(func(cand bedrec.Record) bool {
			consider(cand)
			return true
		})
		if bOK && curB.Chrom == curA.Chrom {
			consider(curB)
		}

		if err := emitClosest(curA, best, ties, opts.Ties, onA); err != nil {
			return err
		}

		curA, aOK, err = a.Next()
		if err != nil {
			return err
		}
	}
	return nil
}

// emitClosest calls onA once with HasB false for an A with no qualifying
// candidate, or once per tied B selected by mode. ties is in
// ascending-B-start encounter order, so ties[0] is the most-upstream tie
// and ties[len-1] the most-downstream.
func emitClosest(a bedrec.Record, best bedrec.Pos, ties []bedrec.Record, mode TieMode, onA func(ClosestMatch) error) error {
	if onA == nil {
		return nil
	}
	if len(ties) == 0 {
		return onA(ClosestMatch{A: a, Distance: -1})
	}
	switch mode {
	case TieFirst:
		return onA(ClosestMatch{A: a, B: ties[0], Distance: best, HasB: true})
	case TieLast:
		return onA(ClosestMatch{A: a, B: ties[len(ties)-1], Distance: best, HasB: true})
	default:
		for _, t := range ties {
			if err := onA(ClosestMatch{A: a, B: t, Distance: best, HasB: true}); err != nil {
				return err
			}
		}
		return nil
	}
}
