package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/bedtk/bedio"
	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/genome"
	"github.com/grailbio/bedtk/sortcheck"
	"github.com/grailbio/bedtk/stream"
)

// commonFlags are the knobs every operator subcommand exposes.
type commonFlags struct {
	genomePath    string
	assumeSorted  bool
	allowUnsorted bool
	streaming     bool
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// loadGenome opens path (if non-empty) and returns the genome plus the
// chromosome order it implies; an empty path means lexicographic order
// with no length information.
func loadGenome(path string) (*genome.Genome, bedrec.ChromOrder, error) {
	if path == "" {
		return nil, bedrec.Lexicographic, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	g, err := genome.Load(f)
	if err != nil {
		return nil, nil, err
	}
	return g, g.Order(), nil
}

// newBedSource wraps rc as a stream.Source, validating sort order live
// unless assumeSorted is set.
func newBedSource(rc io.Reader, order bedrec.ChromOrder, assumeSorted bool, passthrough func([]byte)) stream.Source {
	r := bedio.NewReader(rc)
	var checker sortcheck.Checker
	if assumeSorted {
		checker = sortcheck.AssumeSorted{}
	} else {
		checker = sortcheck.New(order)
	}
	return stream.NewBedSource(r, checker, passthrough)
}

// fatalf prints an "Error: "-prefixed message to stderr and exits 1.
func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func newStdoutWriter() (*stream.Writer, *bufio.Writer) {
	bw := bufio.NewWriter(os.Stdout)
	return stream.NewWriter(bw), bw
}
