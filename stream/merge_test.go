package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func rec(chrom string, start, end bedrec.Pos) bedrec.Record {
	return bedrec.Record{Interval: bedrec.Interval{Chrom: chrom, Start: start, End: end}}
}

func TestMergeOverlapping(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{
		rec("chr1", 10, 20),
		rec("chr1", 15, 30),
		rec("chr1", 40, 50),
	})
	var out []bedrec.Interval
	err := Merge(src, MergeOptions{}, func(iv bedrec.Interval, _ bedrec.Strand) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 10, End: 30}, out[0])
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 40, End: 50}, out[1])
}

func TestMergeDistance(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{
		rec("chr1", 10, 20),
		rec("chr1", 25, 30),
	})
	var out []bedrec.Interval
	err := Merge(src, MergeOptions{Distance: 5}, func(iv bedrec.Interval, _ bedrec.Strand) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, bedrec.Pos(30), out[0].End)
}

func TestMergeChromBoundary(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{
		rec("chr1", 10, 20),
		rec("chr2", 10, 20),
	})
	var out []bedrec.Interval
	err := Merge(src, MergeOptions{Distance: 1000}, func(iv bedrec.Interval, _ bedrec.Strand) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
}
