package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func TestCoverageUnionOfOverlappingB(t *testing.T) {
	a := []bedrec.Record{rec("chr1", 0, 100)}
	b := []bedrec.Record{rec("chr1", 0, 60), rec("chr1", 40, 80)}

	results, err := Coverage(a, b, CoverageOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Count)
	assert.Equal(t, bedrec.Pos(80), results[0].CoveredBases)
	assert.InDelta(t, 0.8, results[0].Fraction, 1e-9)
}

func TestCoverageNoOverlap(t *testing.T) {
	a := []bedrec.Record{rec("chr1", 0, 10)}
	b := []bedrec.Record{rec("chr1", 50, 60)}

	results, err := Coverage(a, b, CoverageOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Count)
	assert.Equal(t, 0.0, results[0].Fraction)
}

func TestUnionLenMergesOverlaps(t *testing.T) {
	segs := []bedrec.Interval{
		{Chrom: "chr1", Start: 10, End: 20},
		{Chrom: "chr1", Start: 15, End: 25},
		{Chrom: "chr1", Start: 50, End: 60},
	}
	assert.Equal(t, bedrec.Pos(25), unionLen(segs))
}
