package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/bedtk/bedrec"
)

func TestClosestNonOverlapping(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 150)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 180, 200)})

	var got ClosestMatch
	err := Closest(a, b, ClosestOptions{}, func(m ClosestMatch) error {
		got = m
		return nil
	})
	require.NoError(t, err)
	require.True(t, got.HasB)
	assert.Equal(t, bedrec.Pos(31), got.Distance) // 180 - 150 + 1
}

func TestClosestOverlapping(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 150)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 120, 140)})

	var got ClosestMatch
	err := Closest(a, b, ClosestOptions{}, func(m ClosestMatch) error {
		got = m
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, bedrec.Pos(0), got.Distance)
}

func TestClosestNested(t *testing.T) {
	// B overlaps the larger A1 but not the smaller, nested A2; A2 must
	// still find B as its closest record, not report no match.
	a := NewSliceSource([]bedrec.Record{
		rec("chr1", 0, 1000),
		rec("chr1", 500, 510),
	})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 0, 100)})

	var matches []ClosestMatch
	err := Closest(a, b, ClosestOptions{}, func(m ClosestMatch) error {
		matches = append(matches, m)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.True(t, matches[1].HasB)
	assert.Equal(t, bedrec.Pos(500-100+1), matches[1].Distance)
}

func TestClosestNoCandidates(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 0, 10)})
	b := NewSliceSource([]bedrec.Record{rec("chr2", 0, 10)})

	var got ClosestMatch
	err := Closest(a, b, ClosestOptions{}, func(m ClosestMatch) error {
		got = m
		return nil
	})
	require.NoError(t, err)
	assert.False(t, got.HasB)
	assert.Equal(t, bedrec.Pos(-1), got.Distance)
}

func TestClosestDownstreamUnconsumedBSurvivesForLaterA(t *testing.T) {
	// curB (150,160) is purely downstream of A1 and must not be consumed
	// while only being peeked at; A2 needs to pull it into the active set.
	a := NewSliceSource([]bedrec.Record{
		rec("chr1", 10, 20),
		rec("chr1", 100, 200),
	})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 150, 160)})

	var matches []ClosestMatch
	err := Closest(a, b, ClosestOptions{}, func(m ClosestMatch) error {
		matches = append(matches, m)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.True(t, matches[0].HasB)
	assert.Equal(t, bedrec.Pos(150-20+1), matches[0].Distance)
	require.True(t, matches[1].HasB)
	assert.Equal(t, bedrec.Pos(0), matches[1].Distance)
}

func TestClosestTiesAllEmitsBoth(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 100)})
	b := NewSliceSource([]bedrec.Record{
		rec("chr1", 80, 90),
		rec("chr1", 110, 120),
	})

	var matches []ClosestMatch
	err := Closest(a, b, ClosestOptions{}, func(m ClosestMatch) error {
		matches = append(matches, m)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, bedrec.Pos(80), matches[0].B.Start)
	assert.Equal(t, bedrec.Pos(110), matches[1].B.Start)
	assert.Equal(t, matches[0].Distance, matches[1].Distance)
}

func TestClosestTieFirstAndLast(t *testing.T) {
	newSources := func() (Source, Source) {
		a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 100)})
		b := NewSliceSource([]bedrec.Record{
			rec("chr1", 80, 90),
			rec("chr1", 110, 120),
		})
		return a, b
	}

	a, b := newSources()
	var first ClosestMatch
	require.NoError(t, Closest(a, b, ClosestOptions{Ties: TieFirst}, func(m ClosestMatch) error {
		first = m
		return nil
	}))
	assert.Equal(t, bedrec.Pos(80), first.B.Start)

	a, b = newSources()
	var last ClosestMatch
	require.NoError(t, Closest(a, b, ClosestOptions{Ties: TieLast}, func(m ClosestMatch) error {
		last = m
		return nil
	}))
	assert.Equal(t, bedrec.Pos(110), last.B.Start)
}

func TestClosestIgnoreOverlaps(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 150)})
	b := NewSliceSource([]bedrec.Record{
		rec("chr1", 120, 140),
		rec("chr1", 200, 210),
	})

	var got ClosestMatch
	err := Closest(a, b, ClosestOptions{IgnoreOverlaps: true}, func(m ClosestMatch) error {
		got = m
		return nil
	})
	require.NoError(t, err)
	require.True(t, got.HasB)
	assert.Equal(t, bedrec.Pos(200), got.B.Start)
	assert.Equal(t, bedrec.Pos(200-150+1), got.Distance)
}

func TestClosestIgnoreUpstreamAndDownstream(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 150)})
	b := NewSliceSource([]bedrec.Record{
		rec("chr1", 0, 50),
		rec("chr1", 200, 210),
	})

	var upstreamIgnored ClosestMatch
	err := Closest(a, b, ClosestOptions{IgnoreUpstream: true}, func(m ClosestMatch) error {
		upstreamIgnored = m
		return nil
	})
	require.NoError(t, err)
	require.True(t, upstreamIgnored.HasB)
	assert.Equal(t, bedrec.Pos(200), upstreamIgnored.B.Start)

	a = NewSliceSource([]bedrec.Record{rec("chr1", 100, 150)})
	b = NewSliceSource([]bedrec.Record{
		rec("chr1", 0, 50),
		rec("chr1", 200, 210),
	})
	var downstreamIgnored ClosestMatch
	err = Closest(a, b, ClosestOptions{IgnoreDownstream: true}, func(m ClosestMatch) error {
		downstreamIgnored = m
		return nil
	})
	require.NoError(t, err)
	require.True(t, downstreamIgnored.HasB)
	assert.Equal(t, bedrec.Pos(0), downstreamIgnored.B.Start)
}

func TestClosestMaxDistance(t *testing.T) {
	a := NewSliceSource([]bedrec.Record{rec("chr1", 100, 150)})
	b := NewSliceSource([]bedrec.Record{rec("chr1", 1000, 1010)})

	var got ClosestMatch
	err := Closest(a, b, ClosestOptions{MaxDistance: 10}, func(m ClosestMatch) error {
		got = m
		return nil
	})
	require.NoError(t, err)
	assert.False(t, got.HasB)
	assert.Equal(t, bedrec.Pos(-1), got.Distance)
}
