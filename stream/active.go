package stream

import "github.com/grailbio/bedtk/bedrec"

// ActiveSet is the bounded FIFO of B-records a streaming operator still
// considers candidates for overlap with the current or future A. Records
// are appended in arrival order (chrom, start) and popped from the front
// once they can no longer participate.
type ActiveSet struct {
	recs []bedrec.Record
	// head is the index of the logical front of the queue; popped entries
	// are not compacted out of recs until Compact is called, so repeated
	// Pop calls stay O(1) amortized rather than O(n) each.
	head int
}

// Push appends rec to the back of the active set.
func (a *ActiveSet) Push(rec bedrec.Record) {
	a.recs = append(a.recs, rec)
}

// Len returns the number of records currently active.
func (a *ActiveSet) Len() int { return len(a.recs) - a.head }

// Front returns the oldest active record. Panics if empty.
func (a *ActiveSet) Front() bedrec.Record { return a.recs[a.head] }

// PopFront discards the oldest active record.
func (a *ActiveSet) PopFront() {
	a.head++
	a.maybeCompact()
}

// PopWhile removes and discards active records from the front for as long
// as shouldPop returns true — typically "while the head's end is at or
// before the current A's start".
func (a *ActiveSet) PopWhile(shouldPop func(bedrec.Record) bool) {
	for a.Len() > 0 && shouldPop(a.Front()) {
		a.PopFront()
	}
}

// Each calls fn for every currently active record, oldest first. Stops
// early if fn returns false.
func (a *ActiveSet) Each(fn func(bedrec.Record) bool) {
	for i := a.head; i < len(a.recs); i++ {
		if !fn(a.recs[i]) {
			return
		}
	}
}

// Reset empties the active set, e.g. on a chromosome transition.
func (a *ActiveSet) Reset() {
	a.recs = a.recs[:0]
	a.head = 0
}

// maybeCompact reclaims storage once the discarded prefix dominates, so a
// long-running sweep over a chromosome with heavy turnover doesn't grow
// a.recs without bound.
func (a *ActiveSet) maybeCompact() {
	if a.head < 1024 || a.head < len(a.recs)/2 {
		return
	}
	n := copy(a.recs, a.recs[a.head:])
	a.recs = a.recs[:n]
	a.head = 0
}
