package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/grailbio/bedtk/extsort"
)

func runSort(args []string) {
	fs := flag.NewFlagSet("sort", flag.ExitOnError)
	in := fs.String("i", "-", "input BED path, or - for stdin")
	genomePath := fs.String("g", "", "genome file fixing chromosome order")
	reverse := fs.Bool("r", false, "reverse sort order")
	sizeAsc := fs.Bool("size-asc", false, "sort by interval length, ascending")
	sizeDesc := fs.Bool("size-desc", false, "sort by interval length, descending")
	fs.Parse(args)

	_, order, err := loadGenome(*genomePath)
	if err != nil {
		fatalf("%v", err)
	}
	if *genomePath == "" {
		order = nil // nil Order is what makes the radix fast path eligible
	}

	mode := extsort.ByPosition
	switch {
	case *sizeAsc:
		mode = extsort.BySizeAsc
	case *sizeDesc:
		mode = extsort.BySizeDesc
	}
	opts := extsort.Options{Order: order, Mode: mode, Reverse: *reverse}

	bw := bufio.NewWriter(os.Stdout)
	defer bw.Flush()
	emit := func(line []byte) error {
		if _, err := bw.Write(line); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	}

	if *in == "-" || *in == "" {
		if err := extsort.SortReader(os.Stdin, opts, emit); err != nil {
			fatalf("%v", err)
		}
		return
	}
	f, err := os.Open(*in)
	if err != nil {
		fatalf("%v", err)
	}
	defer f.Close()
	if err := extsort.Sort(f, opts, emit); err != nil {
		fatalf("%v", err)
	}
}
