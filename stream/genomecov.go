package stream

import (
	"sort"

	"github.com/biogo/store/step"
	"github.com/grailbio/bedtk/bedrec"
)

// GenomecovMode selects genomecov's output shape.
type GenomecovMode int

const (
	// GenomecovPerBase emits one row per base: chrom, 1-based position,
	// depth.
	GenomecovPerBase GenomecovMode = iota
	// GenomecovBedGraph emits one row per maximal run of constant nonzero
	// depth: chrom, start, end, depth.
	GenomecovBedGraph
	// GenomecovBedGraphAll is GenomecovBedGraph but also emits zero-depth
	// runs.
	GenomecovBedGraphAll
	// GenomecovHistogram emits, per chromosome and finally for the whole
	// genome, one row per depth value: chrom, depth, bases at that depth,
	// chrom (or genome) length, fraction.
	GenomecovHistogram
)

// GenomecovOptions configures Genomecov.
type GenomecovOptions struct {
	Mode GenomecovMode
}

// GenomecovRow is one output row; which fields are meaningful depends on
// the mode the row was produced under.
type GenomecovRow struct {
	Chrom    string // "genome" for the whole-genome histogram total
	Pos      bedrec.Pos
	Start    bedrec.Pos
	End      bedrec.Pos
	Depth    int
	Bases    bedrec.Pos
	Length   bedrec.Pos
	Fraction float64
}

// depth is a step.Equaler wrapping a per-base coverage count.
type depth int

func (d depth) Equal(e step.Equaler) bool { return d == e.(depth) }

func incr(e step.Equaler) step.Equaler { return e.(depth) + 1 }

// Genomecov reads src (one chromosome's worth of sorted intervals at a
// time, assumed to arrive in src in g's chromosome order) and builds a
// per-base depth track with a step.Vector, then calls emit with rows
// shaped per opts.Mode. Chromosomes present in g but never touched by src
// are reported as all-zero.
func Genomecov(src Source, g ChromLength, opts GenomecovOptions, emit func(GenomecovRow) error) error {
	hist := map[int]bedrec.Pos{}
	var genomeLen bedrec.Pos
	seen := make(map[string]bool)

	flush := func(chrom string, v *step.Vector, length bedrec.Pos) error {
		switch opts.Mode {
		case GenomecovPerBase:
			var err error
			v.Do(func(start, end int, e step.Equaler) {
				if err != nil {
					return
				}
				d := int(e.(depth))
				for p := start; p < end; p++ {
					if werr := emit(GenomecovRow{Chrom: chrom, Pos: bedrec.Pos(p) + 1, Depth: d}); werr != nil {
						err = werr
						return
					}
				}
			})
			return err
		case GenomecovBedGraph, GenomecovBedGraphAll:
			var err error
			v.Do(func(start, end int, e step.Equaler) {
				if err != nil {
					return
				}
				d := int(e.(depth))
				if d == 0 && opts.Mode == GenomecovBedGraph {
					return
				}
				if werr := emit(GenomecovRow{Chrom: chrom, Start: bedrec.Pos(start), End: bedrec.Pos(end), Depth: d}); werr != nil {
					err = werr
				}
			})
			return err
		case GenomecovHistogram:
			local := map[int]bedrec.Pos{}
			v.Do(func(start, end int, e step.Equaler) {
				d := int(e.(depth))
				local[d] += bedrec.Pos(end - start)
				hist[d] += bedrec.Pos(end - start)
			})
			for _, d := range sortedKeys(local) {
				bases := local[d]
				frac := 0.0
				if length > 0 {
					frac = float64(bases) / float64(length)
				}
				if err := emit(GenomecovRow{Chrom: chrom, Depth: d, Bases: bases, Length: length, Fraction: frac}); err != nil {
					return err
				}
			}
			return nil
		}
		return nil
	}

	newVector := func(length bedrec.Pos) (*step.Vector, error) {
		return step.New(0, int(length), depth(0))
	}

	curChrom := ""
	var curVec *step.Vector
	var curLen bedrec.Pos

	for {
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if rec.Chrom != curChrom {
			if curVec != nil {
				if err := flush(curChrom, curVec, curLen); err != nil {
					return err
				}
			}
			curChrom = rec.Chrom
			seen[curChrom] = true
			length, _ := g.Length(curChrom)
			curLen = length
			genomeLen += length
			curVec, err = newVector(length)
			if err != nil {
				return err
			}
		}
		start, end := rec.Start, rec.End
		if end > curLen {
			end = curLen
		}
		if start >= end {
			continue
		}
		if err := curVec.ApplyRange(int(start), int(end), incr); err != nil {
			return err
		}
	}
	if curVec != nil {
		if err := flush(curChrom, curVec, curLen); err != nil {
			return err
		}
	}

	if g == nil {
		return nil
	}
	for _, name := range g.Names() {
		if seen[name] {
			continue
		}
		length, ok := g.Length(name)
		if !ok || length <= 0 {
			continue
		}
		genomeLen += length
		v, err := newVector(length)
		if err != nil {
			return err
		}
		if err := flush(name, v, length); err != nil {
			return err
		}
	}

	if opts.Mode == GenomecovHistogram {
		for _, d := range sortedKeys(hist) {
			bases := hist[d]
			frac := 0.0
			if genomeLen > 0 {
				frac = float64(bases) / float64(genomeLen)
			}
			if err := emit(GenomecovRow{Chrom: "genome", Depth: d, Bases: bases, Length: genomeLen, Fraction: frac}); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[int]bedrec.Pos) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
