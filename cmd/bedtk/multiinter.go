package main

import (
	"flag"
	"strings"

	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/stream"
)

func runMultiinter(args []string) {
	fs := flag.NewFlagSet("multiinter", flag.ExitOnError)
	inputs := fs.String("i", "", "comma-separated input files (required, at least 2)")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	emptyOK := fs.Bool("empty", false, "also emit segments with zero coverage")
	assumeSorted := fs.Bool("assume-sorted", false, "skip sort-order validation")
	fs.Parse(args)

	paths := strings.Split(*inputs, ",")
	if *inputs == "" || len(paths) < 2 {
		fatalf("multiinter requires -i with at least 2 comma-separated files")
	}
	_, order, err := loadGenome(*genomePath)
	if err != nil {
		fatalf("%v", err)
	}

	sources := make([]stream.Source, len(paths))
	for i, p := range paths {
		f, err := openInput(p)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		sources[i] = newBedSource(f, order, *assumeSorted, func([]byte) {})
	}

	w, bw := newStdoutWriter()
	defer bw.Flush()

	opts := stream.MultiinterOptions{Order: order, EmptyOK: *emptyOK}
	err = stream.Multiinter(sources, opts, func(row stream.MultiinterRow) error {
		fields := []string{row.Interval.Chrom, stream.Itoa(row.Interval.Start), stream.Itoa(row.Interval.End), stream.Itoa(bedrec.Pos(row.Count))}
		for _, p := range row.Present {
			if p {
				fields = append(fields, "1")
			} else {
				fields = append(fields, "0")
			}
		}
		return w.Fields(fields...)
	})
	if err != nil {
		fatalf("%v", err)
	}
}
