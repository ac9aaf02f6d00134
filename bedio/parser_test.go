package bedio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	p, err := Parse([]byte("chr1\t10\t20\tname1\t0\t+"), 1)
	require.NoError(t, err)
	assert.Equal(t, "chr1", p.Chrom)
	assert.EqualValues(t, 10, p.Start)
	assert.EqualValues(t, 20, p.End)
	assert.Equal(t, "name1\t0\t+", p.Payload)
}

func TestParseNoPayload(t *testing.T) {
	p, err := Parse([]byte("chr1\t10\t20"), 1)
	require.NoError(t, err)
	assert.Equal(t, "", p.Payload)
}

func TestParseRejectsTooFewFields(t *testing.T) {
	_, err := Parse([]byte("chr1\t10"), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
}

func TestParseRejectsEmptyChrom(t *testing.T) {
	_, err := Parse([]byte("\t10\t20"), 1)
	require.Error(t, err)
}

func TestParseRejectsBadInt(t *testing.T) {
	_, err := Parse([]byte("chr1\t10x\t20"), 1)
	require.Error(t, err)

	_, err = Parse([]byte("chr1\t10\t-5"), 1)
	require.Error(t, err)
}

func TestParseRejectsStartAfterEnd(t *testing.T) {
	_, err := Parse([]byte("chr1\t20\t10"), 1)
	require.Error(t, err)
}

func TestParseZeroLengthOK(t *testing.T) {
	p, err := Parse([]byte("chr1\t10\t10"), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 10, p.Start)
	assert.EqualValues(t, 10, p.End)
}

func TestFastParseNoAlloc(t *testing.T) {
	line := []byte("chr1\t10\t20\tfoo")
	chrom, start, end, payload, err := FastParse(line, 1)
	require.NoError(t, err)
	assert.Equal(t, "chr1", string(chrom))
	assert.EqualValues(t, 10, start)
	assert.EqualValues(t, 20, end)
	assert.Equal(t, "foo", string(payload))
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment([]byte("")))
	assert.True(t, IsComment([]byte("   ")))
	assert.True(t, IsComment([]byte("# a comment")))
	assert.True(t, IsComment([]byte("  # indented comment")))
	assert.False(t, IsComment([]byte("chr1\t1\t2")))
}

func TestRecordStrand(t *testing.T) {
	p, err := Parse([]byte("chr1\t10\t20\tname\t0\t+"), 1)
	require.NoError(t, err)
	rec := p.ToRecord(1)
	assert.EqualValues(t, '+', rec.Strand())
}

func TestOverflowRejected(t *testing.T) {
	huge := strings.Repeat("9", 20)
	_, err := Parse([]byte("chr1\t"+huge+"\t"+huge), 1)
	require.Error(t, err)
}
