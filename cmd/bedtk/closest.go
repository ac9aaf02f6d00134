package main

import (
	"flag"
	"fmt"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/config"
	"github.com/grailbio/bedtk/stream"
)

func runClosest(args []string) {
	fs := flag.NewFlagSet("closest", flag.ExitOnError)
	aPath := fs.String("a", "", "A file (required)")
	bPath := fs.String("b", "", "B file (required)")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	tie := fs.String("t", "all", "tie-break mode for equally-close B's: all, first, last")
	ignoreOverlaps := fs.Bool("io", false, "ignore B's that overlap A")
	ignoreUpstream := fs.Bool("iu", false, "ignore B's upstream of A")
	ignoreDownstream := fs.Bool("id", false, "ignore B's downstream of A")
	maxDistance := fs.Int64("d", 0, "maximum distance to report a B, 0 for unlimited")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	if *aPath == "" || *bPath == "" {
		fatalf("closest requires -a and -b")
	}
	tieMode, err := parseTieMode(*tie)
	if err != nil {
		fatalf("%v", err)
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

	opts := stream.ClosestOptions{
		Order:            order,
		CompatWide:       config.BedtoolsCompatible(),
		Ties:             tieMode,
		IgnoreOverlaps:   *ignoreOverlaps,
		IgnoreUpstream:   *ignoreUpstream,
		IgnoreDownstream: *ignoreDownstream,
		MaxDistance:      bedrec.Pos(*maxDistance),
	}
	err = stream.Closest(srcA, srcB, opts, func(m stream.ClosestMatch) error {
		if !m.HasB {
			return w.Fields(m.A.Chrom, stream.Itoa(m.A.Start), stream.Itoa(m.A.End), "...", "-1", "-1", "-1")
		}
		return w.Fields(m.A.Chrom, stream.Itoa(m.A.Start), stream.Itoa(m.A.End), m.B.Chrom, stream.Itoa(m.B.Start), stream.Itoa(m.B.End), stream.Itoa(m.Distance))
	})
	if err != nil {
		fatalf("%v", err)
	}
}

func parseTieMode(s string) (stream.TieMode, error) {
	switch s {
	case "all":
		return stream.TieAll, nil
	case "first":
		return stream.TieFirst, nil
	case "last":
		return stream.TieLast, nil
	default:
		return 0, fmt.Errorf("closest: unknown tie mode %q (want all, first, or last)", s)
	}
}
