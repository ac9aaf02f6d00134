package extsort

import "github.com/grailbio/bedtk/bedrec"

// chromPrefixLen is how many leading chrom bytes get folded directly into
// the radix key. Names at or under this length sort correctly from the
// key alone; longer names that share this prefix fall back to a direct
// byte comparison during the final stable pass (sortKey keeps the
// original chrom string precisely for that purpose).
const chromPrefixLen = 16

// sortKey is the fixed-width radix key for one record: a memcmp-ordered
// encoding of (chrom prefix, start, end) plus a back-reference to the
// record's original position, so LSD radix sort can recover a byte-exact
// and stable ordering.
type sortKey struct {
	chrom    string // full chrom, for the exact-compare fallback on a shared prefix
	start    bedrec.Pos
	end      bedrec.Pos
	key      [chromPrefixLen + 16]byte
	line     int // offset into the owning line table
	original int // original input index, for stability on exact ties
}

func makeSortKey(chrom string, start, end bedrec.Pos, line, original int) sortKey {
	var k sortKey
	k.chrom = chrom
	k.start = start
	k.end = end
	n := copy(k.key[:chromPrefixLen], chrom)
	for i := n; i < chromPrefixLen; i++ {
		k.key[i] = 0
	}
	putBE64(k.key[chromPrefixLen:chromPrefixLen+8], uint64(start))
	putBE64(k.key[chromPrefixLen+8:chromPrefixLen+16], uint64(end))
	k.line = line
	k.original = original
	return k
}

func putBE64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// radixSortKeys performs an LSD radix sort over the fixed-width key bytes
// using a stable counting sort per byte, so that records whose keys tie
// (the common case: equal chrom names no longer than chromPrefixLen and
// equal start and end) settle by original input order — stability of
// counting sort guarantees it directly, matching the "equal (chrom, start,
// end) preserves input order" invariant. Longer chrom names that share the
// key's prefix are put in exact order afterwards by fixupTiedPrefixes.
func radixSortKeys(keys []sortKey) {
	n := len(keys)
	if n < 2 {
		return
	}
	buf := make([]sortKey, n)
	src, dst := keys, buf
	const keyLen = chromPrefixLen + 16
	var count [257]int
	for byteIdx := keyLen - 1; byteIdx >= 0; byteIdx-- {
		for i := range count {
			count[i] = 0
		}
		for _, k := range src {
			count[k.key[byteIdx]+1]++
		}
		for i := 1; i < len(count); i++ {
			count[i] += count[i-1]
		}
		for _, k := range src {
			b := k.key[byteIdx]
			dst[count[b]] = k
			count[b]++
		}
		src, dst = dst, src
	}
	if &src[0] != &keys[0] {
		copy(keys, src)
	}
}

// byPositionLess is the exact (chrom, start, end, original) comparator;
// used directly by the comparator-based path (genome order, size modes)
// and to resolve chrom names longer than chromPrefixLen that share a
// prefix with another name after the radix pass.
func byPositionLess(a, b sortKey) bool {
	if a.chrom != b.chrom {
		return a.chrom < b.chrom
	}
	if a.start != b.start {
		return a.start < b.start
	}
	if a.end != b.end {
		return a.end < b.end
	}
	return a.original < b.original
}
