package main

import (
	"flag"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/config"
	"github.com/grailbio/bedtk/stream"
)

func runComplement(args []string) {
	fs := flag.NewFlagSet("complement", flag.ExitOnError)
	in := fs.String("i", "-", "input BED path, or - for stdin")
	genomePath := fs.String("g", "", "genome file (required)")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	if *genomePath == "" {
		fatalf("complement requires -g")
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
	err = stream.Complement(src, g, config.BedtoolsCompatible(), func(iv bedrec.Interval) error { return w.Interval(iv) })
	if err != nil {
		fatalf("%v", err)
	}
}
