// Package bedrec defines the semantic types shared by every bedtk
// component: the half-open genomic Interval, the Record that wraps it with
// an opaque payload, and the chromosome-ordering machinery that gives
// "sorted" its meaning for a given invocation.
package bedrec

import (
	"github.com/dgryski/go-farm"
)

// Pos is bedtk's coordinate type. BED coordinates are non-negative and
// bounded well under 2^63; int64 leaves headroom for saturating
// arithmetic (End-Start, distances) without a dedicated unsigned type.
type Pos = int64

// Interval is a half-open coordinate range [Start, End) on Chrom.
//
// Start == End is a zero-length interval (a point between bases). Whether
// two zero-length intervals at the same position overlap depends on the
// process-wide compatibility flag in package config; Interval itself never
// branches on it directly (see Overlap).
type Interval struct {
	Chrom string
	Start Pos
	End   Pos
}

// Len returns End-Start, saturating at zero. Never negative: the parser
// rejects Start > End before an Interval is constructed, but arithmetic
// here stays defensive since callers may build Intervals directly (tests,
// batch index construction from already-validated slices).
func (iv Interval) Len() Pos {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// zeroLenWiden is how far a zero-length interval is widened for overlap
// testing in compatibility mode: [x, x) becomes [x, x+1).
const zeroLenWiden = 1

// effectiveEnd returns the End to use for overlap testing, widening
// zero-length intervals by one base when compatWide is true.
func effectiveEnd(iv Interval, compatWide bool) Pos {
	if compatWide && iv.Start == iv.End {
		return iv.End + zeroLenWiden
	}
	return iv.End
}

// Overlaps reports whether a and b overlap on the same chromosome, honoring
// compatWide (pass config.BedtoolsCompatible() — callers in this package's
// consumers should read that flag once per operator invocation, not per
// call, since it is fixed for the process's lifetime).
//
// Under strict semantics (compatWide == false) a zero-length interval [x, x)
// does not overlap an identical zero-length interval, nor an interval that
// starts or ends at x; it does overlap an interval with Start < x < End.
// Under compatibility mode both endpoints widen before the half-open
// overlap test.
func Overlaps(a, b Interval, compatWide bool) bool {
	if a.Chrom != b.Chrom {
		return false
	}
	aEnd := effectiveEnd(a, compatWide)
	bEnd := effectiveEnd(b, compatWide)
	return a.Start < bEnd && b.Start < aEnd
}

// OverlapLen returns the number of bases a and b share, honoring compatWide
// the same way Overlaps does. Zero if they don't overlap.
func OverlapLen(a, b Interval, compatWide bool) Pos {
	if !Overlaps(a, b, compatWide) {
		return 0
	}
	aEnd, bEnd := effectiveEnd(a, compatWide), effectiveEnd(b, compatWide)
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}

// Distance returns the bedtk closest-operator distance between a and b on
// the same chromosome: 0 if they overlap, otherwise 1 plus the number of
// bases strictly between them. The "+1" (rather than the bare base gap)
// matches grit's closest convention, under which two intervals that merely
// touch (e.g. [100,150) and [150,300)) are distance 1 apart, not 0.
//
// Distance panics if a and b are on different chromosomes; callers
// (closest, window) only ever call it within a single active chromosome.
func Distance(a, b Interval, compatWide bool) Pos {
	if a.Chrom != b.Chrom {
		panic("bedrec: Distance called across chromosomes")
	}
	if Overlaps(a, b, compatWide) {
		return 0
	}
	if a.End <= b.Start {
		return b.Start - a.End + 1
	}
	return a.Start - b.End + 1
}

// Less orders two intervals by (Start, End), ignoring Chrom. Used within a
// single chromosome's worth of records (interval index, batch sort).
func Less(a, b Interval) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// ChromOrder is a total-order comparator over chromosome names. It returns
// a negative number, zero, or a positive number as x is less than, equal
// to, or greater than y, exactly like strings.Compare or bytes.Compare.
//
// Streaming operators must never call a ChromOrder to decide whether to
// *advance* one stream past another mid-chromosome-match:
// equality is tested directly via ==, and ChromOrder is reserved for
// validating the sort invariant and for picking which stream is "behind"
// when chromosomes differ.
type ChromOrder func(x, y string) int

// Lexicographic orders chromosome names byte-wise, equivalent to
// `LC_ALL=C sort`.
func Lexicographic(x, y string) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Fingerprint returns a fast 64-bit hash of a chromosome name. It is used
// only as a pre-check before a real comparison (see ChromTracker); a
// fingerprint collision never changes correctness, only skips the
// short-circuit.
func Fingerprint(chrom string) uint64 {
	return farm.Hash64([]byte(chrom))
}

// ChromTracker remembers the name and fingerprint of the last-seen
// chromosome for repeated "is this still the same chromosome as last time"
// checks. Each call hashes chrom; a fingerprint mismatch skips the string
// compare, and a fingerprint match is confirmed by a full string compare.
type ChromTracker struct {
	name string
	fp   uint64
	set  bool
}

// Same reports whether chrom equals the chromosome this tracker was last
// updated with, and updates the tracker to chrom. The first call on a
// zero-value tracker always reports false (nothing has been seen yet).
func (t *ChromTracker) Same(chrom string) bool {
	fp := Fingerprint(chrom)
	same := t.set && fp == t.fp && t.name == chrom
	t.name, t.fp, t.set = chrom, fp, true
	return same
}

// Chrom returns the chromosome name the tracker was last updated with.
func (t *ChromTracker) Chrom() string { return t.name }
