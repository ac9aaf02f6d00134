// Command bedtk implements a set of BED interval-algebra operators: merge,
// intersect, subtract, window, closest, coverage, multiinter, genomecov,
// complement, and the external sort.
package main

import (
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
)

var subcommands = map[string]func(args []string){
	"merge":      runMerge,
	"intersect":  runIntersect,
	"subtract":   runSubtract,
	"window":     runWindow,
	"closest":    runClosest,
	"coverage":   runCoverage,
	"multiinter": runMultiinter,
	"genomecov":  runGenomecov,
	"complement": runComplement,
	"sort":       runSort,
}

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd, ok := subcommands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown operator %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	cmd(os.Args[2:])
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bedtk <operator> [flags]")
	fmt.Fprintln(os.Stderr, "operators: merge intersect subtract window closest coverage multiinter genomecov complement sort")
}
