// 23 Mar 2024

// Package consensus builds a consensus row for an alignment, plus the
// per-column coverage that usually gets plotted next to it. The heavy
// lifting is the per-site tally in pkg/aln, which is also what the
// logos use, so everybody agrees on the numbers.
package consensus

import (
	"bufio"
	"fmt"
	"os"

	"github.com/andrew-torda/cleanaln/pkg/aln"
)

// Find returns the consensus row and the coverage of an alignment.
// With nongap set, gaps do not get a vote, so a column keeps its
// majority residue even when most rows are gap there. A gap-only
// column is a gap in the consensus either way. Coverage is the
// fraction of non-gap characters per column.
func Find(a *aln.Alignment, nongap bool) (cons []byte, coverage []float32) {
	c := a.Count()
	cons = c.Mode(nongap) // Mode wants raw tallies, GapFrac spoils them
	coverage = make([]float32, a.NCol())
	for i := range coverage {
		coverage[i] = 1
	}
	if gf := c.GapFrac(); gf != nil {
		for i, g := range gf {
			coverage[i] = 1 - g
		}
	}
	return cons, coverage
}

// Write writes the consensus as a single fasta record.
func Write(fname, name string, cons []byte) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating consensus file: %w", err)
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	fmt.Fprintf(w, ">%s\n%s\n", name, cons)
	return w.Flush()
}

// WriteWith writes the whole alignment with the consensus appended as
// one more record at the end.
func WriteWith(fname, name string, a *aln.Alignment, cons []byte) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating consensus file: %w", err)
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	for i, nam := range a.Names() {
		fmt.Fprintf(w, ">%s\n%s\n", nam, a.Rows()[i])
	}
	fmt.Fprintf(w, ">%s\n%s\n", name, cons)
	return w.Flush()
}
