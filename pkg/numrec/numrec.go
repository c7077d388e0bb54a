// 6 Mar 2024

// Package numrec counts the fasta records in a file without parsing
// it. The loader uses the count to size its slices before reading.
// Mapping the file is clearly faster than buffered reads for this,
// since we only look at each byte once.
package numrec

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Count returns the number of fasta records in fname, which is the
// number of ">" characters. A ">" buried in a comment will be
// counted too, so treat the result as a capacity hint, not a truth.
func Count(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Size() == 0 { // mmap of an empty file fails, but the
		return 0, nil //   answer is obviously zero
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return bytes.Count(mm, []byte(">")), nil
}
