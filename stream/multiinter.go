package stream

import (
	"container/heap"

	"github.com/grailbio/bedtk/bedrec"
)

// MultiinterOptions configures Multiinter.
type MultiinterOptions struct {
	Order bedrec.ChromOrder
	// EmptyOK also emits segments where no input has coverage (bedtools
	// multiinter's -empty).
	EmptyOK bool
}

// MultiinterRow is one maximal segment of constant presence across all
// input sets.
type MultiinterRow struct {
	Interval bedrec.Interval
	// Present[i] is true if source i covers this segment.
	Present []bool
	Count   int
}

// endEvent is a pending deactivation, ordered by position — the dynamic
// priority queue driving the sweep forward once a segment's sources are
// known.
type endEvent struct {
	pos bedrec.Pos
	src int
}

type endHeap []endEvent

func (h endHeap) Len() int            { return len(h) }
func (h endHeap) Less(i, j int) bool  { return h[i].pos < h[j].pos }
func (h endHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *endHeap) Push(x interface{}) { *h = append(*h, x.(endEvent)) }
func (h *endHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Multiinter k-way merges sources (each individually sorted) and calls
// emit once per maximal constant-presence segment.
func Multiinter(sources []Source, opts MultiinterOptions, emit func(MultiinterRow) error) error {
	order := opts.Order
	if order == nil {
		order = bedrec.Lexicographic
	}
	n := len(sources)
	cur := make([]bedrec.Record, n)
	ok := make([]bool, n)
	for i, s := range sources {
		rec, has, err := s.Next()
		if err != nil {
			return err
		}
		cur[i], ok[i] = rec, has
	}

	active := make([]bool, n)
	ends := &endHeap{}
	heap.Init(ends)
	curChrom := ""
	var pos bedrec.Pos

	anyLeft := func() bool {
		if ends.Len() > 0 {
			return true
		}
		for i := range sources {
			if ok[i] {
				return true
			}
		}
		return false
	}

	pickChrom := func() string {
		best := ""
		for i := range sources {
			if !ok[i] {
				continue
			}
			if best == "" || order(cur[i].Chrom, best) < 0 {
				best = cur[i].Chrom
			}
		}
		return best
	}

	for anyLeft() {
		if curChrom == "" || (ends.Len() == 0 && !chromHasInput(cur, ok, curChrom)) {
			// drain any stale ends from the previous chromosome
			for ends.Len() > 0 {
				heap.Pop(ends)
			}
			for i := range active {
				active[i] = false
			}
			curChrom = pickChrom()
			if curChrom == "" {
				break
			}
			pos = -1
		}

		// next boundary: earliest of (pending ends) and (starts on curChrom)
		next := bedrec.Pos(-1)
		if ends.Len() > 0 {
			next = (*ends)[0].pos
		}
		for i := range sources {
			if ok[i] && cur[i].Chrom == curChrom && !active[i] {
				if next < 0 || cur[i].Start < next {
					next = cur[i].Start
				}
			}
		}
		if next < 0 {
			// nothing left on this chromosome
			curChrom = ""
			continue
		}

		if pos >= 0 && next > pos {
			cnt := 0
			for _, a := range active {
				if a {
					cnt++
				}
			}
			if cnt > 0 || opts.EmptyOK {
				present := make([]bool, n)
				copy(present, active)
				if err := emit(MultiinterRow{
					Interval: bedrec.Interval{Chrom: curChrom, Start: pos, End: next},
					Present:  present,
					Count:    cnt,
				}); err != nil {
					return err
				}
			}
		}

		for ends.Len() > 0 && (*ends)[0].pos == next {
			e := heap.Pop(ends).(endEvent)
			active[e.src] = false
		}
		for i := range sources {
			if ok[i] && cur[i].Chrom == curChrom && !active[i] && cur[i].Start == next {
				active[i] = true
				heap.Push(ends, endEvent{pos: cur[i].End, src: i})
				rec, has, err := sources[i].Next()
				if err != nil {
					return err
				}
				cur[i], ok[i] = rec, has
			}
		}
		pos = next
	}
	return nil
}

func chromHasInput(cur []bedrec.Record, ok []bool, chrom string) bool {
	for i := range cur {
		if ok[i] && cur[i].Chrom == chrom {
			return true
		}
	}
	return false
}
