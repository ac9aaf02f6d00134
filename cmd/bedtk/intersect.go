package main

import (
	"flag"

	"github.com/grailbio/bedtk/batch"
	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/config"
	"github.com/grailbio/bedtk/stream"
)

func runIntersect(args []string) {
	fs := flag.NewFlagSet("intersect", flag.ExitOnError)
	aPath := fs.String("a", "", "A file (required)")
	bPath := fs.String("b", "", "B file (required)")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	fraction := fs.Float64("f", 0, "minimum overlap fraction of A required")
	reciprocal := fs.Bool("r", false, "require the fraction also of B (reciprocal)")
	wa := fs.Bool("wa", false, "write A for each overlap")
	wb := fs.Bool("wb", false, "write B for each overlap")
	unique := fs.Bool("u", false, "write A once if it has any overlap")
	count := fs.Bool("c", false, "write A with its overlap count appended")
	invert := fs.Bool("v", false, "write A that has no overlap")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	allowUnsorted := fs.Bool("allow-unsorted", false, "load into memory instead of streaming")
	fs.Parse(args)

	if *aPath == "" || *bPath == "" {
		fatalf("intersect requires -a and -b")
	}
	_, order, err := loadGenome(*genomePath)
	if err != nil {
		fatalf("%v", err)
	}
	compatWide := config.BedtoolsCompatible()
	w, bw := newStdoutWriter()
	defer bw.Flush()

	shape := intersectShape{wa: *wa, wb: *wb, unique: *unique, count: *count, invert: *invert}

	if *allowUnsorted {
		runIntersectBatch(*aPath, *bPath, order, *fraction, *reciprocal, compatWide, shape, w)
		return
	}

	af, err := openInput(*aPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer af.Close()
	bf, err := openInput(*bPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer bf.Close()

	srcA := newBedSource(af, order, *assumeSorted, func(line []byte) { w.Raw(line) })
	srcB := newBedSource(bf, order, *assumeSorted, func([]byte) {})

	opts := stream.IntersectOptions{Order: order, FractionA: *fraction, Reciprocal: *reciprocal, CompatWide: compatWide}
	onMatch := func(m stream.IntersectMatch) error {
		if shape.unique || shape.count || shape.invert {
			return nil
		}
		return writeIntersectPair(w, shape, m.A, m.B)
	}
	onA := func(a bedrec.Record, n int) error {
		switch {
		case shape.invert:
			if n == 0 {
				return w.Record(a)
			}
			return nil
		case shape.count:
			return w.Fields(a.Chrom, stream.Itoa(a.Start), stream.Itoa(a.End), stream.Itoa(bedrec.Pos(n)))
		case shape.unique:
			if n > 0 {
				return w.Record(a)
			}
			return nil
		}
		return nil
	}
	if err := stream.Intersect(srcA, srcB, opts, onMatch, onA); err != nil {
		fatalf("%v", err)
	}
}

// intersectShape is which intersect output columns to write.
type intersectShape struct {
	wa, wb, unique, count, invert bool
}

func writeIntersectPair(w *stream.Writer, shape intersectShape, a, b bedrec.Record) error {
	switch {
	case shape.wa && !shape.wb:
		return w.Record(a)
	case shape.wb && !shape.wa:
		return w.Record(b)
	default:
		return w.Fields(a.Chrom, stream.Itoa(a.Start), stream.Itoa(a.End), b.Chrom, stream.Itoa(b.Start), stream.Itoa(b.End))
	}
}

func runIntersectBatch(aPath, bPath string, order bedrec.ChromOrder, fraction float64, reciprocal, compatWide bool, shape intersectShape, w *stream.Writer) {
	af, err := openInput(aPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer af.Close()
	bf, err := openInput(bPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer bf.Close()

	aRecs, err := loadAllRecords(af)
	if err != nil {
		fatalf("%v", err)
	}
	bRecs, err := loadAllRecords(bf)
	if err != nil {
		fatalf("%v", err)
	}

	results, err := batch.Intersect(aRecs, bRecs, batch.IntersectOptions{Order: order, FractionA: fraction, Reciprocal: reciprocal, CompatWide: compatWide})
	if err != nil {
		fatalf("%v", err)
	}
	for _, res := range results {
		switch {
		case shape.invert:
			if len(res.Matches) == 0 {
				if err := w.Record(res.A); err != nil {
					fatalf("%v", err)
				}
			}
		case shape.count:
			if err := w.Fields(res.A.Chrom, stream.Itoa(res.A.Start), stream.Itoa(res.A.End), stream.Itoa(bedrec.Pos(len(res.Matches)))); err != nil {
				fatalf("%v", err)
			}
		case shape.unique:
			if len(res.Matches) > 0 {
				if err := w.Record(res.A); err != nil {
					fatalf("%v", err)
				}
			}
		default:
			for _, b := range res.Matches {
				if err := writeIntersectPair(w, shape, res.A, b); err != nil {
					fatalf("%v", err)
				}
			}
		}
	}
}
