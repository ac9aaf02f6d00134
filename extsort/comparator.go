package extsort

import "sort"

// comparatorFor builds the Less function for the comparator-based sort
// path: position order under a non-lexicographic (e.g. genome) chromosome
// order, or either size mode.
func comparatorFor(opts Options) func(a, b sortKey) bool {
	order := opts.order()
	switch opts.Mode {
	case BySizeAsc, BySizeDesc:
		asc := opts.Mode == BySizeAsc
		return func(a, b sortKey) bool {
			sa, sb := a.end-a.start, b.end-b.start
			if sa != sb {
				if asc {
					return sa < sb
				}
				return sa > sb
			}
			return byPositionLess(a, b)
		}
	default:
		return func(a, b sortKey) bool {
			if c := order(a.chrom, b.chrom); c != 0 {
				return c < 0
			}
			if a.start != b.start {
				return a.start < b.start
			}
			if a.end != b.end {
				return a.end < b.end
			}
			return a.original < b.original
		}
	}
}

// stableSortKeys sorts keys in place with sort.SliceStable, preserving
// original input order among keys the comparator treats as equal.
func stableSortKeys(keys []sortKey, less func(a, b sortKey) bool) {
	sort.SliceStable(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
}
