package stream

import "github.com/grailbio/bedtk/bedrec"

// ChromLength resolves the full length of a chromosome, normally backed by
// a *genome.Genome (kept as an interface here so stream does not import
// genome back).
type ChromLength interface {
	Length(chrom string) (bedrec.Pos, bool)
	Names() []string
}

// Complement sweeps src (assumed sorted) and emits the gaps between merged
// intervals on each chromosome, plus the leading gap from 0 and the
// trailing gap out to the chromosome's length from g, and finally a
// whole-chromosome gap for any chromosome present in g that src never
// touched at all.
func Complement(src Source, g ChromLength, compatWide bool, emit func(bedrec.Interval) error) error {
	seen := make(map[string]bool)
	curChrom := ""
	var runEnd bedrec.Pos
	haveRun := false

	flushChrom := func() error {
		if curChrom == "" {
			return nil
		}
		if length, ok := g.Length(curChrom); ok && runEnd < length {
			if err := emit(bedrec.Interval{Chrom: curChrom, Start: runEnd, End: length}); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if rec.Chrom != curChrom {
			if err := flushChrom(); err != nil {
				return err
			}
			curChrom = rec.Chrom
			seen[curChrom] = true
			runEnd = 0
			haveRun = false
		}
		if !haveRun {
			if rec.Start > 0 {
				if err := emit(bedrec.Interval{Chrom: curChrom, Start: 0, End: rec.Start}); err != nil {
					return err
				}
			}
			runEnd = rec.End
			haveRun = true
			continue
		}
		if rec.Start > runEnd {
			if err := emit(bedrec.Interval{Chrom: curChrom, Start: runEnd, End: rec.Start}); err != nil {
				return err
			}
		}
		if rec.End > runEnd {
			runEnd = rec.End
		}
	}
	if err := flushChrom(); err != nil {
		return err
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
		if err := emit(bedrec.Interval{Chrom: name, Start: 0, End: length}); err != nil {
			return err
		}
	}
	return nil
}
