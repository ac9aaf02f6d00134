package main

import (
	"flag"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/stream"
)

func runGenomecov(args []string) {
	fs := flag.NewFlagSet("genomecov", flag.ExitOnError)
	in := fs.String("i", "-", "input BED path, or - for stdin")
	genomePath := fs.String("g", "", "genome file (required)")
	dFlag := fs.Bool("d", false, "per-base depth output")
	bg := fs.Bool("bg", false, "BedGraph output (nonzero runs only)")
	bga := fs.Bool("bga", false, "BedGraph output including zero-depth runs")
	hist := fs.Bool("hist", false, "histogram of bases at each depth")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	if *genomePath == "" {
		fatalf("genomecov requires -g")
	}
	g, order, err := loadGenome(*genomePath)
	if err != nil {
		fatalf("%v", err)
	}
	rc, err := openInput(*in)
	if err != nil {
		fatalf("%v", err)
	}
	defer rc.Close()

	w, bw := newStdoutWriter()
	defer bw.Flush()

	src := newBedSource(rc, order, *assumeSorted, func([]byte) {})

	mode := stream.GenomecovPerBase
	switch {
	case *hist:
		mode = stream.GenomecovHistogram
	case *bga:
		mode = stream.GenomecovBedGraphAll
	case *bg:
		mode = stream.GenomecovBedGraph
	case *dFlag:
		mode = stream.GenomecovPerBase
	}

	err = stream.Genomecov(src, g, stream.GenomecovOptions{Mode: mode}, func(row stream.GenomecovRow) error {
		switch mode {
		case stream.GenomecovPerBase:
			return w.Fields(row.Chrom, stream.Itoa(row.Pos), stream.Itoa(bedrec.Pos(row.Depth)))
		case stream.GenomecovBedGraph, stream.GenomecovBedGraphAll:
			return w.Fields(row.Chrom, stream.Itoa(row.Start), stream.Itoa(row.End), stream.Itoa(bedrec.Pos(row.Depth)))
		default:
			return w.Fields(row.Chrom, stream.Itoa(bedrec.Pos(row.Depth)), stream.Itoa(row.Bases), stream.Itoa(row.Length), stream.FtoaPrec(row.Fraction, 4))
		}
	})
	if err != nil {
		fatalf("%v", err)
	}
}
