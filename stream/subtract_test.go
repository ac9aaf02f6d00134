package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func TestSubtractCarvesMiddle(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 100)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 40, 60)})

	var out []bedrec.Interval
	err := Subtract(a, b, SubtractOptions{}, func(iv bedrec.Interval) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 0, End: 40}, out[0])
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 60, End: 100}, out[1])
}

func TestSubtractUntouchedPassesThrough(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 50, 60)})

	var out []bedrec.Interval
	err := Subtract(a, b, SubtractOptions{}, func(iv bedrec.Interval) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, bedrec.Pos(0), out[0].Start)
	assert.Equal(t, bedrec.Pos(10), out[0].End)
}

func TestSubtractRemoveEntire(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 100), rec("chr1", 200, 300)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 40, 60)})

	var out []bedrec.Interval
	err := Subtract(a, b, SubtractOptions{RemoveEntire: true}, func(iv bedrec.Interval) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, bedrec.Pos(200), out[0].Start)
}
