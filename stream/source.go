// Package stream implements the nine streaming operators that
// share a common sweep skeleton: merge, intersect, subtract, window,
// closest, coverage, multiinter, genomecov, and complement.
package stream

import (
	"io"

	"github.com/grailbio/bedtk/bedio"
	"github.com/grailbio/bedtk/bedrec"
	"github.com/grailbio/bedtk/sortcheck"
)

// Source yields a sorted stream of records one at a time (comment lines
// are surfaced separately — see NewBedSource's onComment callback).
type Source interface {
	// Next advances to the next data record, returning false at clean EOF.
	// Comment/blank lines are skipped internally; BedSource hands them to
	// its onComment callback for operators that must pass them through.
	Next() (bedrec.Record, bool, error)
}

// BedSource adapts a bedio.Reader into a Source, optionally validating the
// sort invariant as it goes.
type BedSource struct {
	r         *bedio.Reader
	check     sortcheck.Checker
	onComment func(line []byte)
}

// NewBedSource wraps r. check may be sortcheck.AssumeSorted{} to skip
// in-line validation. onComment, if non-nil, is called with each
// comment/blank line encountered (verbatim, without the trailing
// newline), in input order relative to the records around it.
func NewBedSource(r *bedio.Reader, check sortcheck.Checker, onComment func(line []byte)) *BedSource {
	return &BedSource{r: r, check: check, onComment: onComment}
}

// Next implements Source.
func (s *BedSource) Next() (bedrec.Record, bool, error) {
	for s.r.Advance() {
		line := s.r.Bytes()
		if bedio.IsComment(line) {
			if s.onComment != nil {
				cp := make([]byte, len(line))
				copy(cp, line)
				s.onComment(cp)
			}
			continue
		}
		parsed, err := bedio.Parse(line, s.r.LineNo())
		if err != nil {
			return bedrec.Record{}, false, err
		}
		rec := parsed.ToRecord(s.r.LineNo())
		if err := s.check.Check(rec.Interval, s.r.LineNo()); err != nil {
			return bedrec.Record{}, false, sortcheck.WrapFatal(err)
		}
		return rec, true, nil
	}
	if err := s.r.Err(); err != nil && err != io.EOF {
		return bedrec.Record{}, false, err
	}
	return bedrec.Record{}, false, nil
}

// SliceSource adapts an in-memory, already-sorted slice into a Source, for
// tests and for callers that already hold their records in memory. It
// performs no sort-order validation.
type SliceSource struct {
	recs []bedrec.Record
	i    int
}

// NewSliceSource returns a Source over recs.
func NewSliceSource(recs []bedrec.Record) *SliceSource {
	return &SliceSource{recs: recs}
}

// Next implements Source.
func (s *SliceSource) Next() (bedrec.Record, bool, error) {
	if s.i >= len(s.recs) {
		return bedrec.Record{}, false, nil
	}
	r := s.recs[s.i]
	s.i++
	return r, true, nil
}
