package bedio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const defaultBufSize = 256 * 1024

// Reader is a buffered line iterator over a BED or genome file. Its only
// non-trivial contract: a line longer than the internal buffer
// grows the buffer exactly once and is still delivered whole, and line
// slices returned by Bytes are valid only until the next call to Advance.
type Reader struct {
	br     *bufio.Reader
	line   []byte
	lineNo int
	err    error
}

// NewReader wraps r in a Reader with the default 256KiB read buffer.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, defaultBufSize)
}

// NewReaderSize wraps r in a Reader with an initial read buffer of size
// bufSize (clamped to a sane minimum); the buffer still grows as needed for
// long lines.
func NewReaderSize(r io.Reader, bufSize int) *Reader {
	if bufSize < 4096 {
		bufSize = 4096
	}
	return &Reader{br: bufio.NewReaderSize(r, bufSize)}
}

// Advance reads the next line (terminator stripped; a trailing \r from
// \r\n input is also stripped) into the Reader's internal buffer and
// returns true, or returns false at EOF or on error (see Err).
func (r *Reader) Advance() bool {
	if r.err != nil {
		return false
	}
	line, err := r.br.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// The line didn't fit; fall back to ReadString which grows as needed,
		// delivering the whole line in one piece as the contract requires.
		var full []byte
		full = append(full, line...)
		rest, rerr := r.br.ReadString('\n')
		full = append(full, rest...)
		line = full
		err = rerr
	}
	if err != nil && err != io.EOF {
		r.err = errors.Wrapf(err, "bedio: reading line %d", r.lineNo+1)
		return false
	}
	if err == io.EOF && len(line) == 0 {
		r.err = io.EOF
		return false
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	r.line = line
	r.lineNo++
	if err == io.EOF {
		// Last line had no trailing newline; deliver it, then report EOF on
		// the next Advance.
		r.err = io.EOF
		return true
	}
	return true
}

// Bytes returns the current line, valid only until the next Advance call.
func (r *Reader) Bytes() []byte { return r.line }

// LineNo returns the 1-based line number of the current line.
func (r *Reader) LineNo() int { return r.lineNo }

// Err returns the first non-EOF error encountered, or nil if the stream
// ended cleanly (including a final line with no trailing newline).
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}
