package extsort

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"

	"github.com/grailbio/bedtk/bedio"
)

// lineSpan is a (offset, length) reference into the mapped file, excluding
// the trailing newline.
type lineSpan struct {
	offset int
	length int
}

// SortFile sorts the BED rows of f (which must support mmap, i.e. a
// regular file, not a pipe) per opts and calls emit with each output
// line's raw bytes in final order: memory map, scan once for line
// boundaries, radix- or comparator-sort a parallel tuple array, then walk
// it back over the map to emit original bytes without ever copying line
// data.
func SortFile(f *os.File, opts Options, emit func(line []byte) error) error {
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer data.Unmap()
	// MADV_SEQUENTIAL: the line scan and the final emission pass both walk
	// the mapping roughly in file order even though the sort reorders
	// logical records, since each record's bytes are read exactly once in
	// each pass.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	spans := scanLines([]byte(data))
	keys, comments := make([]sortKey, 0, len(spans)), make([]lineSpan, 0)
	for i, sp := range spans {
		line := []byte(data)[sp.offset : sp.offset+sp.length]
		if bedio.IsComment(line) {
			comments = append(comments, sp)
			continue
		}
		chrom, start, end, _, err := bedio.FastParse(line, i+1)
		if err != nil {
			return err
		}
		keys = append(keys, makeSortKey(string(chrom), start, end, i, len(keys)))
	}
	order := sortKeys(keys, opts)

	for _, sp := range comments {
		if err := emit([]byte(data)[sp.offset : sp.offset+sp.length]); err != nil {
			return err
		}
	}
	if opts.Reverse {
		for i := len(order) - 1; i >= 0; i-- {
			if err := emitKey([]byte(data), spans, order[i], emit); err != nil {
				return err
			}
		}
		return nil
	}
	for _, k := range order {
		if err := emitKey([]byte(data), spans, k, emit); err != nil {
			return err
		}
	}
	return nil
}

func emitKey(data []byte, spans []lineSpan, k sortKey, emit func([]byte) error) error {
	sp := spans[k.line]
	return emit(data[sp.offset : sp.offset+sp.length])
}

// scanLines finds every line's (offset, length) in data, length excluding
// the terminator.
func scanLines(data []byte) []lineSpan {
	var spans []lineSpan
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		end := i
		if end > start && data[end-1] == '\r' {
			end--
		}
		spans = append(spans, lineSpan{offset: start, length: end - start})
		start = i + 1
	}
	if start < len(data) {
		spans = append(spans, lineSpan{offset: start, length: len(data) - start})
	}
	return spans
}

// sortKeys orders keys per opts and returns them in final order: the
// radix fast path when eligible, a stable comparator sort otherwise
// (genome order, size modes).
func sortKeys(keys []sortKey, opts Options) []sortKey {
	if opts.fastEligible() {
		radixSortKeys(keys)
		fixupTiedPrefixes(keys)
		return keys
	}
	less := comparatorFor(opts)
	stableSortKeys(keys, less)
	return keys
}

// fixupTiedPrefixes repairs order among any run of keys whose chrom prefix
// bytes tie while at least one chrom name is longer than chromPrefixLen —
// radixSortKeys leaves such a run contiguous and ordered by (start, end,
// original), but not by the true chrom byte order beyond the shared
// prefix, so re-sort any such run by the exact comparator.
func fixupTiedPrefixes(keys []sortKey) {
	n := len(keys)
	for i := 0; i < n; {
		j := i + 1
		for j < n && string(keys[j].key[:chromPrefixLen]) == string(keys[i].key[:chromPrefixLen]) {
			j++
		}
		if j-i > 1 {
			run := keys[i:j]
			hasLong := false
			for _, k := range run {
				if len(k.chrom) > chromPrefixLen {
					hasLong = true
					break
				}
			}
			if hasLong {
				stableSortKeys(run, byPositionLess)
			}
		}
		i = j
	}
}
