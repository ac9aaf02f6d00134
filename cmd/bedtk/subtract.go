package main

import (
	"flag"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/config"
	"github.com/grailbio/bedtk/stream"
)

func runSubtract(args []string) {
	fs := flag.NewFlagSet("subtract", flag.ExitOnError)
	aPath := fs.String("a", "", "A file (required)")
	bPath := fs.String("b", "", "B file (required)")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	fraction := fs.Float64("f", 0, "minimum overlap fraction of A required to subtract")
	reciprocal := fs.Bool("r", false, "require the fraction also of B (reciprocal)")
	removeEntire := fs.Bool("A", false, "remove the entire A interval on any qualifying overlap")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	if *aPath == "" || *bPath == "" {
		fatalf("subtract requires -a and -b")
	}
	_, order, err := loadGenome(*genomePath)
	if err != nil {
		fatalf("%v", err)
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

	w, bw := newStdoutWriter()
	defer bw.Flush()

	srcA := newBedSource(af, order, *assumeSorted, func(line []byte) { w.Raw(line) })
	srcB := newBedSource(bf, order, *assumeSorted, func([]byte) {})

	opts := stream.SubtractOptions{
		Order:        order,
		RemoveEntire: *removeEntire,
		FractionA:    *fraction,
		Reciprocal:   *reciprocal,
		CompatWide:   config.BedtoolsCompatible(),
	}
	if err := stream.Subtract(srcA, srcB, opts, func(iv bedrec.Interval) error { return w.Interval(iv) }); err != nil {
		fatalf("%v", err)
	}
}
