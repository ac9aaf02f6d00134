package main

import (
	"flag"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/stream"
)

func runMerge(args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	in := fs.String("i", "-", "input BED path, or - for stdin")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	distance := fs.Int64("d", 0, "merge intervals separated by at most this many bases")
	strandAware := fs.Bool("s", false, "require matching strand to merge")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	_, order, err := loadGenome(*genomePath)
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

	src := newBedSource(rc, order, *assumeSorted, func(line []byte) { w.Raw(line) })
	opts := stream.MergeOptions{Distance: bedrec.Pos(*distance), StrandAware: *strandAware}
	if err := stream.Merge(src, opts, func(iv bedrec.Interval, _ bedrec.Strand) error {
		return w.Interval(iv)
	}); err != nil {
		fatalf("%v", err)
	}
}
