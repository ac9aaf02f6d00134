package extsort

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/base/log"

	"github.com/grailbio/bedtk/bedio"
)

// SortReader sorts BED rows read from r, which cannot be memory-mapped
// (stdin, a pipe). Input is buffered into shards of at most
// opts.shardSize() records, each shard sorted independently and spilled
// to a temp file, then all shards are k-way merged. The merged lines are
// collected in memory before the first one is emitted, so the whole input
// is held in memory at that point.
func SortReader(r io.Reader, opts Options, emit func(line []byte) error) error {
	br := bufio.NewReaderSize(r, 1<<20)
	reader := bedio.NewReader(br)

	var shardPaths []string
	defer func() {
		for _, p := range shardPaths {
			os.Remove(p)
		}
	}()

	var comments [][]byte
	batch := make([]sortKey, 0, opts.shardSize())
	lines := make([][]byte, 0, opts.shardSize())

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		order := sortKeys(batch, opts)
		path, err := writeShard(order, lines, opts.TmpDir)
		if err != nil {
			return err
		}
		shardPaths = append(shardPaths, path)
		batch = batch[:0]
		lines = lines[:0]
		return nil
	}

	for reader.Advance() {
		line := append([]byte(nil), reader.Bytes()...)
		if bedio.IsComment(line) {
			comments = append(comments, line)
			continue
		}
		chrom, start, end, _, err := bedio.FastParse(line, reader.LineNo())
		if err != nil {
			return err
		}
		idx := len(lines)
		lines = append(lines, line)
		batch = append(batch, makeSortKey(string(chrom), start, end, idx, idx))
		if len(batch) >= opts.shardSize() {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := reader.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	for _, c := range comments {
		if err := emit(c); err != nil {
			return err
		}
	}

	less := comparatorFor(opts)
	if opts.fastEligible() {
		less = byPositionLess
	}
	collected, err := mergeShards(shardPaths, less)
	if err != nil {
		return err
	}
	log.Printf("external sort: %d shard(s) merged, %d record(s) total.\n", len(shardPaths), len(collected))
	if opts.Reverse {
		for i := len(collected) - 1; i >= 0; i-- {
			if err := emit(collected[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, line := range collected {
		if err := emit(line); err != nil {
			return err
		}
	}
	return nil
}

// writeShard writes the lines referenced by order (already sorted by
// sortKeys), in that order, to a new temp file, one per line, returning
// its path.
func writeShard(order []sortKey, lines [][]byte, tmpDir string) (string, error) {
	f, err := ioutil.TempFile(tmpDir, "bedtk-sort-shard-")
	if err != nil {
		return "", err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, k := range order {
		if _, err := w.Write(lines[k.line]); err != nil {
			return "", err
		}
		if err := w.WriteByte('\n'); err != nil {
			return "", err
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// shardLeaf is one shard's current front record in the merge tree.
type shardLeaf struct {
	rec    sortKey
	line   []byte
	reader *bedio.Reader
	f      *os.File
	seq    int
	less   func(a, b sortKey) bool
}

func (l *shardLeaf) Compare(other llrb.Comparable) int {
	o := other.(*shardLeaf)
	switch {
	case l.less(l.rec, o.rec):
		return -1
	case l.less(o.rec, l.rec):
		return 1
	default:
		return l.seq - o.seq
	}
}

func newShardLeaf(path string, seq int, less func(a, b sortKey) bool) (*shardLeaf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	leaf := &shardLeaf{reader: bedio.NewReader(bufio.NewReader(f)), f: f, seq: seq, less: less}
	if !leaf.advance() {
		f.Close()
		return nil, nil
	}
	return leaf, nil
}

// advance loads the next record from the shard file into the leaf,
// reporting whether one was available.
func (l *shardLeaf) advance() bool {
	if !l.reader.Advance() {
		l.f.Close()
		return false
	}
	line := append([]byte(nil), l.reader.Bytes()...)
	chrom, start, end, _, err := bedio.FastParse(line, l.reader.LineNo())
	if err != nil {
		l.f.Close()
		return false
	}
	l.line = line
	l.rec = makeSortKey(string(chrom), start, end, 0, 0)
	return true
}

// mergeShards performs the k-way merge over the sorted shard files using
// an llrb.Tree as the merge-order structure, BED (chrom, start, end)
// order in place of BAM coordinate order.
func mergeShards(paths []string, less func(a, b sortKey) bool) ([][]byte, error) {
	tree := &llrb.Tree{}
	leaves := make(map[*shardLeaf]bool)
	for i, p := range paths {
		leaf, err := newShardLeaf(p, i, less)
		if err != nil {
			return nil, err
		}
		if leaf != nil {
			tree.Insert(leaf)
			leaves[leaf] = true
		}
	}

	var out [][]byte
	for tree.Len() > 0 {
		var top *shardLeaf
		tree.Do(func(item llrb.Comparable) bool {
			top = item.(*shardLeaf)
			return false
		})
		out = append(out, top.line)
		tree.Delete(top)
		if top.advance() {
			tree.Insert(top)
		}
	}
	return out, nil
}
