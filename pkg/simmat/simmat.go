// 24 Mar 2024

// Package simmat computes a pairwise percent identity matrix for an
// alignment. The driver runs it on the freshly loaded alignment, the
// cleaned one, or both, and writes the result as tab separated text.
package simmat

import (
	"bufio"
	"fmt"
	"os"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// Options for the identity calculation. MinOverlap is the smallest
// number of columns in which both sequences must have a residue
// before the identity is worth reporting. Below it, the pair scores
// zero. With KeepGaps, every column counts and two gaps agree with
// each other. Without it, only columns where both sequences have a
// residue count. Dp is the number of decimal places in the output.
type Options struct {
	MinOverlap int
	KeepGaps   bool
	Dp         int
}

// Calc returns the NSeq by NSeq identity matrix. It is symmetric with
// ones on the diagonal, so we only compute the upper triangle.
func Calc(a *aln.Alignment, opt *Options) *matrix.FMatrix2d {
	rows := a.Rows()
	n := len(rows)
	m := matrix.NewFMatrix2d(n, n)
	for i := 0; i < n; i++ {
		m.Mat[i][i] = 1
		for j := i + 1; j < n; j++ {
			v := identity(rows[i], rows[j], opt)
			m.Mat[i][j] = v
			m.Mat[j][i] = v
		}
	}
	return m
}

func identity(p, q []byte, opt *Options) float32 {
	var match, denom, overlap int
	for k := range p {
		pGap, qGap := p[k] == GapChar, q[k] == GapChar
		if !pGap && !qGap {
			overlap++
		}
		if !opt.KeepGaps && (pGap || qGap) {
			continue
		}
		denom++
		if p[k] == q[k] {
			match++
		}
	}
	if overlap < opt.MinOverlap || denom == 0 {
		return 0
	}
	return float32(match) / float32(denom)
}

// WriteTSV writes the matrix with the sequence names along the top
// and down the side.
func WriteTSV(fname string, names []string, m *matrix.FMatrix2d, dp int) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating similarity file: %w", err)
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)

	for _, nam := range names {
		fmt.Fprintf(w, "\t%s", nam)
	}
	fmt.Fprintln(w)
	for i, nam := range names {
		fmt.Fprint(w, nam)
		for j := range names {
			fmt.Fprintf(w, "\t%.*f", dp, m.Mat[i][j])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
