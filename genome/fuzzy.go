package genome

import "github.com/antzucaro/matchr"

// jaroWinkler scores similarity between two chromosome names for use in
// "unknown chromosome" remediation hints. Grounded on matchr's appearance
// in the example pack (github.com/antzucaro/matchr, exercised there for
// Levenshtein distance on sequencing barcodes); bedtk uses the package's
// Jaro-Winkler scorer instead, which is tuned for short prefix-heavy
// strings like "chr1" vs "chr10".
func jaroWinkler(a, b string) float64 {
	return matchr.JaroWinkler(a, b)
}
