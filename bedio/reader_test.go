package bedio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderBasic(t *testing.T) {
	r := NewReader(strings.NewReader("chr1\t1\t2\nchr1\t3\t4\n"))
	var lines []string
	for r.Advance() {
		lines = append(lines, string(r.Bytes()))
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"chr1\t1\t2", "chr1\t3\t4"}, lines)
}

func TestReaderNoTrailingNewline(t *testing.T) {
	r := NewReader(strings.NewReader("chr1\t1\t2\nchr1\t3\t4"))
	var lines []string
	for r.Advance() {
		lines = append(lines, string(r.Bytes()))
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"chr1\t1\t2", "chr1\t3\t4"}, lines)
}

func TestReaderCRLF(t *testing.T) {
	r := NewReader(strings.NewReader("chr1\t1\t2\r\nchr1\t3\t4\r\n"))
	var lines []string
	for r.Advance() {
		lines = append(lines, string(r.Bytes()))
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"chr1\t1\t2", "chr1\t3\t4"}, lines)
}

func TestReaderGrowsBufferForLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	r := NewReaderSize(strings.NewReader("chr1\t1\t2\t"+long+"\nchr1\t3\t4\n"), 4096)
	require.True(t, r.Advance())
	assert.Equal(t, "chr1\t1\t2\t"+long, string(r.Bytes()))
	require.True(t, r.Advance())
	assert.Equal(t, "chr1\t3\t4", string(r.Bytes()))
	require.False(t, r.Advance())
	require.NoError(t, r.Err())
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	require.False(t, r.Advance())
	require.NoError(t, r.Err())
}
