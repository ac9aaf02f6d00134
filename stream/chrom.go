package stream

import "github.com/grailbio/bedtk/bedrec"

// behind decides, when chromA != chromB, which stream must advance before
// the sweep can continue. In the two-stream operators order is consulted
// only here, at a genuine cross-chromosome boundary (Multiinter likewise
// uses it only to pick the next chromosome) — every other comparison in
// this package (active-set membership, "has the chromosome changed") tests
// equality only, never order. That distinction matters for genome-sorted
// inputs (e.g. chr9 before chr10: chr10 < chr9 lexicographically, so a
// stray '<' there would silently drop records).
func behind(chromA, chromB string, order bedrec.ChromOrder) (advanceA, advanceB bool) {
	switch {
	case order(chromA, chromB) < 0:
		return true, false
	case order(chromA, chromB) > 0:
		return false, true
	default:
		// Equal under order but not identical strings: genome order only
		// distinguishes by rank, so two distinctly-named-but-unranked
		// chromosomes could tie; fall back to treating A as behind so
		// progress is still made.
		return true, false
	}
}
