package main

import (
	"flag"

	"github.com/grailbio/bedtk/batch"
	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/config"
	"github.com/grailbio/bedtk/stream"
)

func runCoverage(args []string) {
	fs := flag.NewFlagSet("coverage", flag.ExitOnError)
	aPath := fs.String("a", "", "A file (required)")
	bPath := fs.String("b", "", "B file (required)")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	allowUnsorted := fs.Bool("allow-unsorted", false, "load into memory instead of streaming")
	fs.Parse(args)

	if *aPath == "" || *bPath == "" {
		fatalf("coverage requires -a and -b")
	}
	_, order, err := loadGenome(*genomePath)
	if err != nil {
		fatalf("%v", err)
	}
	compatWide := config.BedtoolsCompatible()
	w, bw := newStdoutWriter()
	defer bw.Flush()

	if *allowUnsorted {
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
		aRecs, err := loadAllRecords(af)
		if err != nil {
			fatalf("%v", err)
		}
		bRecs, err := loadAllRecords(bf)
		if err != nil {
			fatalf("%v", err)
		}
		results, err := batch.Coverage(aRecs, bRecs, batch.CoverageOptions{Order: order, CompatWide: compatWide})
		if err != nil {
			fatalf("%v", err)
		}
		for _, res := range results {
			if err := w.Fields(res.A.Chrom, stream.Itoa(res.A.Start), stream.Itoa(res.A.End), stream.Itoa(bedrec.Pos(res.Count)), stream.Itoa(res.CoveredBases), stream.Itoa(res.A.Len()), stream.FtoaPrec(res.Fraction, 4)); err != nil {
				fatalf("%v", err)
			}
		}
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

	opts := stream.CoverageOptions{Order: order, CompatWide: compatWide}
	err = stream.Coverage(srcA, srcB, opts, func(res stream.CoverageResult) error {
		return w.Fields(res.A.Chrom, stream.Itoa(res.A.Start), stream.Itoa(res.A.End), stream.Itoa(bedrec.Pos(res.Count)), stream.Itoa(res.CoveredBases), stream.Itoa(res.A.Len()), stream.FtoaPrec(res.Fraction, 4))
	})
	if err != nil {
		fatalf("%v", err)
	}
}
