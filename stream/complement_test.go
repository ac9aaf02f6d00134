package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func TestComplementGapsAndEdges(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{rec("chr1", 10, 20), rec("chr1", 30, 40)})
	g := fakeGenome{"chr1": 50}

	var out []bedrec.Interval
	err := Complement(src, g, false, func(iv bedrec.Interval) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 0, End: 10}, out[0])
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 20, End: 30}, out[1])
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 40, End: 50}, out[2])
}

func TestComplementUntouchedChromIsWholeGap(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{rec("chr1", 0, 50)})
	g := fakeGenome{"chr1": 50, "chr2": 30}

	var out []bedrec.Interval
	err := Complement(src, g, false, func(iv bedrec.Interval) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, bedrec.Interval{Chrom: "chr2", Start: 0, End: 30}, out[0])
}

func TestComplementMergesOverlappingInput(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10), rec("chr1", 5, 15)})
	g := fakeGenome{"chr1": 20}

	var out []bedrec.Interval
	err := Complement(src, g, false, func(iv bedrec.Interval) error {
		out = append(out, iv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, bedrec.Interval{Chrom: "chr1", Start: 15, End: 20}, out[0])
}
