package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func TestMultiinterThreeSegments(t *testing.T) {
	s0 := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10)})
	s1 := NewSliceSource([]bedrec.Record{rec("chr1", 5, 15)})

	var rows []MultiinterRow
	err := Multiinter([]Source{s0, s1}, MultiinterOptions{}, func(r MultiinterRow) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 0, End: 5}, rows[0].Interval)
	assert.Equal(t, []bool{true, false}, rows[0].Present)

	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 5, End: 10}, rows[1].Interval)
	assert.Equal(t, []bool{true, true}, rows[1].Present)
	assert.Equal(t, 2, rows[1].Count)

	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 10, End: 15}, rows[2].Interval)
	assert.Equal(t, []bool{false, true}, rows[2].Present)
}

func TestMultiinterSkipsGapsByDefault(t *testing.T) {
	s0 := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10)})
	s1 := NewSliceSource([]bedrec.Record{rec("chr1", 20, 30)})

	var rows []MultiinterRow
	err := Multiinter([]Source{s0, s1}, MultiinterOptions{}, func(r MultiinterRow) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 2) // the [10,20) gap is omitted, EmptyOK is false
}

func TestMultiinterEmptyOKIncludesGaps(t *testing.T) {
	s0 := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10)})
	s1 := NewSliceSource([]bedrec.Record{rec("chr1", 20, 30)})

	var rows []MultiinterRow
	err := Multiinter([]Source{s0, s1}, MultiinterOptions{EmptyOK: true}, func(r MultiinterRow) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 0, rows[1].Count)
}
