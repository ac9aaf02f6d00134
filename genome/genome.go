// Package genome parses genome files (chrom\tlength) and exposes the
// chromosome rank order and lengths they define.
package genome

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Genome maps a chromosome name to its length and its rank (file line
// order). Rank order is the genome-defined chromosome ordering: unlike
// lexicographic order, chr9 can rank before chr10.
type Genome struct {
	names   []string
	rank    map[string]int
	lengths map[string]Pos
}

// Pos mirrors bedrec.Pos without importing it, to keep this package
// dependency-free of the record model (genome files are meaningful on
// their own, e.g. to a caller who only wants chromosome lengths).
type Pos = int64

// Load reads a genome file from r. Blank lines and lines beginning with
// '#' are skipped, matching the BED comment convention. Each remaining
// line must be "chrom\tlength" with length a non-negative integer;
// violations are reported with the offending line included.
func Load(r io.Reader) (*Genome, error) {
	g := &Genome{
		rank:    make(map[string]int),
		lengths: make(map[string]Pos),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<24)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			return nil, errors.Errorf("genome: line %d: expected \"chrom\\tlength\", got %q", lineNo, line)
		}
		chrom := line[:tab]
		if chrom == "" {
			return nil, errors.Errorf("genome: line %d: empty chromosome name", lineNo)
		}
		lengthStr := strings.TrimSpace(line[tab+1:])
		length, err := strconv.ParseInt(lengthStr, 10, 64)
		if err != nil || length < 0 {
			return nil, errors.Errorf("genome: line %d: invalid length %q for chromosome %q", lineNo, lengthStr, chrom)
		}
		if _, dup := g.rank[chrom]; dup {
			return nil, errors.Errorf("genome: line %d: chromosome %q repeated", lineNo, chrom)
		}
		g.rank[chrom] = len(g.names)
		g.names = append(g.names, chrom)
		g.lengths[chrom] = length
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "genome: reading genome file")
	}
	return g, nil
}

// Names returns chromosome names in file (rank) order.
func (g *Genome) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Length returns the length of chrom and whether it was present.
func (g *Genome) Length(chrom string) (Pos, bool) {
	l, ok := g.lengths[chrom]
	return l, ok
}

// Rank returns chrom's 0-based file-order rank and whether it was present.
func (g *Genome) Rank(chrom string) (int, bool) {
	r, ok := g.rank[chrom]
	return r, ok
}

// Order returns a ChromOrder-compatible comparator (see bedrec.ChromOrder)
// using this genome's rank order. Chromosomes absent from the genome
// compare greater than any ranked chromosome and are broken by
// lexicographic order among themselves.
func (g *Genome) Order() func(x, y string) int {
	return func(x, y string) int {
		rx, okx := g.rank[x]
		ry, oky := g.rank[y]
		switch {
		case okx && oky:
			switch {
			case rx < ry:
				return -1
			case rx > ry:
				return 1
			default:
				return 0
			}
		case okx && !oky:
			return -1
		case !okx && oky:
			return 1
		default:
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}
}

// NearestName returns the genome's chromosome name closest to query under
// Jaro-Winkler similarity, for use in "unknown chromosome" remediation
// hints. ok is false if the genome has no chromosomes at all.
func (g *Genome) NearestName(query string) (name string, ok bool) {
	if len(g.names) == 0 {
		return "", false
	}
	best := g.names[0]
	bestScore := -1.0
	for _, n := range g.names {
		score := jaroWinkler(query, n)
		if score > bestScore {
			bestScore = score
			best = n
		}
	}
	return best, true
}
