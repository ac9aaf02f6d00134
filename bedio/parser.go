// Package bedio implements the zero-copy BED line parser and the buffered
// line reader that feeds it.
package bedio

import (
	"github.com/grailbio/bedtk/bedrec"
	"github.com/pkg/errors"
)

// ParseError reports a malformed BED line, with the 1-based line number and
// offending text included so callers can surface a fatal parse error with
// line context.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return errors.Wrapf(e.Err, "line %d: %q", e.Line, e.Text).Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errTooFewFields  = errors.New("fewer than 3 tab-separated fields")
	errEmptyChrom    = errors.New("empty chrom field")
	errBadStart      = errors.New("start is not a well-formed non-negative integer")
	errBadEnd        = errors.New("end is not a well-formed non-negative integer")
	errStartAfterEnd = errors.New("start > end")
)

// IsComment reports whether line is blank or a '#' comment: both pass
// through unchanged by merge/sort and are skipped by analytic operators.
func IsComment(line []byte) bool {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i == len(line) || line[i] == '#'
}

// Parsed is the result of parsing one BED line: the three mandatory
// fields plus the verbatim tail. Chrom and Payload are strings copied out
// of the input line by Parse; FastParse returns borrowed slices instead.
type Parsed struct {
	Chrom   string
	Start   bedrec.Pos
	End     bedrec.Pos
	Payload string
}

// Parse splits line on ASCII tabs and validates the first three fields.
// line is not retained: Chrom and Payload are copied into fresh strings, so
// the returned Parsed is safe to keep across subsequent reader advances.
// Use FastParse on the hot path where the caller consumes the record
// before the underlying buffer is reused.
func Parse(line []byte, lineNo int) (Parsed, error) {
	p, err := parseFields(line)
	if err != nil {
		return Parsed{}, &ParseError{Line: lineNo, Text: string(line), Err: err}
	}
	return Parsed{
		Chrom:   string(p.Chrom),
		Start:   p.Start,
		End:     p.End,
		Payload: string(p.Payload),
	}, nil
}

// fastParsed is the borrowed-slice twin of Parsed: Chrom and Payload point
// directly into the line buffer handed to FastParse and are only valid
// until the next Reader advance.
type fastParsed struct {
	Chrom   []byte
	Start   bedrec.Pos
	End     bedrec.Pos
	Payload []byte
}

// FastParse is Parse without allocation: Chrom and Payload are slices of
// line itself. The parser never allocates on a successful call; an error
// path allocates only to build the ParseError. Callers that need to retain
// a record past the next Reader.Advance must copy it (e.g. by using Parse,
// which copies Chrom and Payload into strings).
func FastParse(line []byte, lineNo int) (chrom []byte, start, end bedrec.Pos, payload []byte, err error) {
	p, perr := parseFields(line)
	if perr != nil {
		return nil, 0, 0, nil, &ParseError{Line: lineNo, Text: string(line), Err: perr}
	}
	return p.Chrom, p.Start, p.End, p.Payload, nil
}

// parseFields does the actual field-splitting and integer parsing, shared
// by Parse and FastParse. It never allocates on success.
func parseFields(line []byte) (fastParsed, error) {
	chromEnd := indexByte(line, '\t')
	if chromEnd < 0 {
		return fastParsed{}, errTooFewFields
	}
	chrom := line[:chromEnd]
	if len(chrom) == 0 {
		return fastParsed{}, errEmptyChrom
	}
	rest := line[chromEnd+1:]

	startEnd := indexByte(rest, '\t')
	if startEnd < 0 {
		return fastParsed{}, errTooFewFields
	}
	startField := rest[:startEnd]
	rest = rest[startEnd+1:]

	endEnd := indexByte(rest, '\t')
	var endField, payload []byte
	if endEnd < 0 {
		endField = rest
		payload = nil
	} else {
		endField = rest[:endEnd]
		payload = rest[endEnd+1:]
	}

	start, ok := parseUint63(startField)
	if !ok {
		return fastParsed{}, errBadStart
	}
	end, ok := parseUint63(endField)
	if !ok {
		return fastParsed{}, errBadEnd
	}
	if start > end {
		return fastParsed{}, errStartAfterEnd
	}
	return fastParsed{Chrom: chrom, Start: start, End: end, Payload: payload}, nil
}

// indexByte is a tiny local wrapper to avoid importing bytes just for
// IndexByte in a file that otherwise does its own scanning.
func indexByte(b []byte, c byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// parseUint63 parses an unsigned decimal integer in place, failing on any
// non-digit byte, an empty field, or a value that would not fit in 63
// bits.
func parseUint63(b []byte) (bedrec.Pos, bool) {
	if len(b) == 0 {
		return 0, false
	}
	const maxBeforeMul = (1<<63 - 1) / 10
	var v int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int64(c - '0')
		if v > maxBeforeMul || (v == maxBeforeMul && d > (1<<63-1)%10) {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// ToRecord copies a Parsed into an owned bedrec.Record tagged with lineNo.
func (p Parsed) ToRecord(lineNo int) bedrec.Record {
	return bedrec.Record{
		Interval: bedrec.Interval{Chrom: p.Chrom, Start: p.Start, End: p.End},
		Payload:  p.Payload,
		Line:     lineNo,
	}
}
