package extsort

import "os"

// Sort dispatches to the mmap fast path when f is backed by a regular
// file (so mmap.Map can succeed) and to the shard-and-merge fallback
// otherwise — stdin, a pipe, a FIFO.
func Sort(f *os.File, opts Options, emit func(line []byte) error) error {
	if isRegular(f) {
		return SortFile(f, opts, emit)
	}
	return SortReader(f, opts, emit)
}

func isRegular(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
