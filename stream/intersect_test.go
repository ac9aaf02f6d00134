package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func TestIntersectBasic(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 100), rec("chr1", 200, 300)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 50, 60), rec("chr1", 90, 210)})

	var matches []IntersectMatch
	counts := map[bedrec.Pos]int{}
	err := Intersect(a, b, IntersectOptions{}, func(m IntersectMatch) error {
		matches = append(matches, m)
		return nil
	}, func(a bedrec.Record, n int) error {
		counts[a.Start] = n
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, matches, 3) // (0,100)x(50,60); (0,100)x(90,210); (200,300)x(90,210)
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[200])
}

func TestIntersectFractionFilter(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 100)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 90, 200)}) // 10bp overlap, 10% of A

	var n int
	err := Intersect(a, b, IntersectOptions{FractionA: 0.5}, nil, func(_ bedrec.Record, count int) error {
		n = count
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestIntersectNoOverlap(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10), rec("chr1", 50, 60)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 50, 60)})

	var noOverlap []bedrec.Record
	err := Intersect(a, b, IntersectOptions{}, nil, func(rec bedrec.Record, count int) error {
		if count == 0 {
			noOverlap = append(noOverlap, rec)
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, noOverlap, 1)
	assert.Equal(t, bedrec.Pos(0), noOverlap[0].Start)
}
