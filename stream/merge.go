package stream

import "github.com/grailbio/bedtk/bedrec"

// MergeOptions configures Merge.
type MergeOptions struct {
	// Distance is the slack: two intervals on the same run key merge if the
	// next one starts at or before runEnd+Distance. Zero means "merge only
	// overlapping or touching intervals".
	Distance bedrec.Pos
	// StrandAware keys runs by (chrom, strand) instead of just chrom, using
	// field 6 of the payload.
	//
	// Comment/blank-line passthrough is handled independently by
	// the Source (see BedSource's onComment callback), since it is
	// positional in the input rather than part of merge's own semantics.
	StrandAware bool
}

// mergeRun is one in-progress merged interval.
type mergeRun struct {
	chrom  string
	strand bedrec.Strand
	start  bedrec.Pos
	end    bedrec.Pos
	active bool
}

// Merge reads src (assumed sorted — the caller validates beforehand) and
// calls emit once per merged interval, in input order.
func Merge(src Source, opts MergeOptions, emit func(bedrec.Interval, bedrec.Strand) error) error {
	var run mergeRun
	flush := func() error {
		if !run.active {
			return nil
		}
		run.active = false
		return emit(bedrec.Interval{Chrom: run.chrom, Start: run.start, End: run.end}, run.strand)
	}

	for {
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		strand := bedrec.StrandUnknown
		if opts.StrandAware {
			strand = rec.Strand()
		}
		sameRun := run.active && run.chrom == rec.Chrom && (!opts.StrandAware || run.strand == strand)
		if !sameRun {
			if err := flush(); err != nil {
				return err
			}
			run = mergeRun{chrom: rec.Chrom, strand: strand, start: rec.Start, end: rec.End, active: true}
			continue
		}
		if rec.Start <= run.end+opts.Distance {
			if rec.End > run.end {
				run.end = rec.End
			}
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		run = mergeRun{chrom: rec.Chrom, strand: strand, start: rec.Start, end: rec.End, active: true}
	}
	return flush()
}
