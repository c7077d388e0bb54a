// 25 Mar 2024

// Package randaln makes random gapped alignments. Nothing in the
// cleaning path uses it. It exists for tests and benchmarks that want
// input of a chosen size without lugging fixture files around.
package randaln

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"

	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

const (
	ntAlpha = "ACGT"
	aaAlpha = "ACDEFGHIKLMNPQRSTVWY"
)

// Opts says what kind of alignment to make. The same seed always
// gives the same alignment.
type Opts struct {
	NSeq    int
	Len     int
	GapFrac float64 // chance of any one position being a gap
	Ntide   bool    // nucleotide alphabet, otherwise protein
	Seed    int64
}

// Wrt writes a random alignment in fasta format.
func Wrt(w io.Writer, o *Opts) error {
	r := rand.New(rand.NewSource(o.Seed))
	alpha := aaAlpha
	if o.Ntide {
		alpha = ntAlpha
	}
	bw := bufio.NewWriter(w)
	row := make([]byte, o.Len)
	for i := 0; i < o.NSeq; i++ {
		for j := range row {
			if o.GapFrac > 0 && r.Float64() < o.GapFrac {
				row[j] = GapChar
			} else {
				row[j] = alpha[r.Intn(len(alpha))]
			}
		}
		if _, err := fmt.Fprintf(bw, ">rand_%d\n%s\n", i, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WrtFile is the file-path wrapper around Wrt.
func WrtFile(fname string, o *Opts) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Wrt(fp, o)
}
