package main

import (
	"io"

	"github.com/grailbio/base/log"

	"github.com/grailbio/bedtk/bedio"
	"github.com/grailbio/bedtk/bedrec"
)

// loadAllRecords parses every non-comment line of r into memory, in file
// order, for the batch operator path — no sort-order validation, since
// batch mode exists precisely for input that isn't sorted.
func loadAllRecords(r io.Reader) ([]bedrec.Record, error) {
	reader := bedio.NewReader(r)
	var recs []bedrec.Record
	for reader.Advance() {
		line := reader.Bytes()
		if bedio.IsComment(line) {
			continue
		}
		parsed, err := bedio.Parse(line, reader.LineNo())
		if err != nil {
			return nil, err
		}
		recs = append(recs, parsed.ToRecord(reader.LineNo()))
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	log.Printf("loaded %d record(s) into memory.\n", len(recs))
	return recs, nil
}
