package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

type fakeGenome map[string]bedrec.Pos

func (g fakeGenome) Length(chrom string) (bedrec.Pos, bool) {
	l, ok := g[chrom]
	return l, ok
}

func (g fakeGenome) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	return names
}

func TestGenomecovPerBase(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{rec("chr1", 0, 3), rec("chr1", 1, 2)})
	g := fakeGenome{"chr1": 5}

	var rows []GenomecovRow
	err := Genomecov(src, g, GenomecovOptions{Mode: GenomecovPerBase}, func(r GenomecovRow) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 5) // full chromosome length, including the two untouched trailing bases
	assert.Equal(t, 1, rows[0].Depth)
	assert.Equal(t, 2, rows[1].Depth)
	assert.Equal(t, 1, rows[2].Depth)
	assert.Equal(t, 0, rows[3].Depth)
	assert.Equal(t, 0, rows[4].Depth)
}

func TestGenomecovBedGraphCollapsesRuns(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{rec("chr1", 0, 3)})
	g := fakeGenome{"chr1": 5}

	var rows []GenomecovRow
	err := Genomecov(src, g, GenomecovOptions{Mode: GenomecovBedGraph}, func(r GenomecovRow) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, bedrec.Pos(0), rows[0].Start)
	assert.Equal(t, bedrec.Pos(3), rows[0].End)
	assert.Equal(t, 1, rows[0].Depth)
}

func TestGenomecovUntouchedChromAllZero(t *testing.T) {
	src := NewSliceSource([]bedrec.Record{rec("chr1", 0, 3)})
	g := fakeGenome{"chr1": 3, "chr2": 2}

	var chr2Rows int
	err := Genomecov(src, g, GenomecovOptions{Mode: GenomecovBedGraphAll}, func(r GenomecovRow) error {
		if r.Chrom == "chr2" {
			chr2Rows++
			assert.Equal(t, 0, r.Depth)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, chr2Rows)
}
