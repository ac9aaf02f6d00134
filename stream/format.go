package stream

import (
	"bufio"
	"strconv"

	"github.com/grailbio/bedtk/bedrec"
)

// Writer wraps a *bufio.Writer with the small set of BED-row-formatting
// helpers every operator needs. Callers own flushing.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w *bufio.Writer) *Writer { return &Writer{w: w} }

// Interval writes "chrom\tstart\tend\n".
func (w *Writer) Interval(iv bedrec.Interval) error {
	return w.Row(iv.Chrom, iv.Start, iv.End)
}

// Record writes "chrom\tstart\tend" followed by "\tpayload" if payload is
// non-empty, then a newline — i.e. the record re-emitted verbatim.
func (w *Writer) Record(r bedrec.Record) error {
	if err := w.writeTriple(r.Chrom, r.Start, r.End); err != nil {
		return err
	}
	if r.Payload != "" {
		if err := w.w.WriteByte('\t'); err != nil {
			return err
		}
		if _, err := w.w.WriteString(r.Payload); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Row writes "chrom\tstart\tend\n".
func (w *Writer) Row(chrom string, start, end bedrec.Pos) error {
	if err := w.writeTriple(chrom, start, end); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Raw writes line followed by a newline, unchanged — used for comment
// passthrough.
func (w *Writer) Raw(line []byte) error {
	if _, err := w.w.Write(line); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Fields writes a variadic list of already-stringified fields, tab
// separated, followed by a newline — used by operators that append
// computed columns (coverage counts, closest distance, multiinter
// presence vector).
func (w *Writer) Fields(fields ...string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.w.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(f); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

func (w *Writer) writeTriple(chrom string, start, end bedrec.Pos) error {
	if _, err := w.w.WriteString(chrom); err != nil {
		return err
	}
	if err := w.w.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.w.WriteString(strconv.FormatInt(start, 10)); err != nil {
		return err
	}
	if err := w.w.WriteByte('\t'); err != nil {
		return err
	}
	_, err := w.w.WriteString(strconv.FormatInt(end, 10))
	return err
}

// Itoa is a small shared formatting helper for operators building Fields
// rows out of integers.
func Itoa(p bedrec.Pos) string { return strconv.FormatInt(p, 10) }

// Ftoa formats f to one decimal place.
func Ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) }

// FtoaPrec formats f with prec decimal digits (the CLI writes coverage and
// genomecov histogram fractions with 4).
func FtoaPrec(f float64, prec int) string { return strconv.FormatFloat(f, 'f', prec, 64) }
