package main

import (
	"flag"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/config"
	"github.com/grailbio/bedtk/stream"
)

func runWindow(args []string) {
	fs := flag.NewFlagSet("window", flag.ExitOnError)
	aPath := fs.String("a", "", "A file (required)")
	bPath := fs.String("b", "", "B file (required)")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	w0 := fs.Int64("w", 0, "symmetric window slop on both sides of A")
	left := fs.Int64("l", 0, "upstream slop (overrides -w on the left)")
	right := fs.Int64("r", 0, "downstream slop (overrides -w on the right)")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	if *aPath == "" || *bPath == "" {
		fatalf("window requires -a and -b")
	}
	l, r := *left, *right
	if l == 0 {
		l = *w0
	}
	if r == 0 {
		r = *w0
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

	out, bw := newStdoutWriter()
	defer bw.Flush()

	srcA := newBedSource(af, order, *assumeSorted, func(line []byte) { out.Raw(line) })
	srcB := newBedSource(bf, order, *assumeSorted, func([]byte) {})

	opts := stream.WindowOptions{Order: order, Left: bedrec.Pos(l), Right: bedrec.Pos(r), CompatWide: config.BedtoolsCompatible()}
	err = stream.Window(srcA, srcB, opts, func(m stream.WindowMatch) error {
		return out.Fields(m.A.Chrom, stream.Itoa(m.A.Start), stream.Itoa(m.A.End), m.B.Chrom, stream.Itoa(m.B.Start), stream.Itoa(m.B.End))
	}, nil)
	if err != nil {
		fatalf("%v", err)
	}
}
