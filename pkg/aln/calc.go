// 9 Mar 2024
// Simple, common calculations on an alignment. Everything downstream
// of the pipeline (consensus, coverage, logos) starts from the same
// per-site symbol tally, so it is built once here.

package aln

import (
	"math"

	"github.com/andrew-torda/matrix"

	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

const badMap = math.MaxUint8 // marks a symbol as not seen

// Counts is a per-site tally of symbol usage. mat.Mat looks like
// [number_of_symbol_types][length_of_alignment]. We store float32,
// since the tally is usually normalised to fractions later and we
// would rather not allocate a second matrix for that.
type Counts struct {
	mapping [MaxSym]uint8 // mapping['C'] tells me the row used for C
	revmap  []uint8       // revmap[2] tells me the symbol in row 2
	mat     *matrix.FMatrix2d
	frac    bool // tallies have been converted to fractions
}

// Count tallies how many of each symbol appear at each site.
func (a *Alignment) Count() *Counts {
	c := new(Counts)
	var symUsed [MaxSym]bool
	for _, row := range a.rows {
		for _, ch := range row {
			symUsed[ch] = true
		}
	}
	for i := range c.mapping { // initialise with bad value, to
		c.mapping[i] = badMap //  trap errors later
	}
	var n uint8
	for i := range symUsed {
		if symUsed[i] {
			c.mapping[i] = n
			if n >= badMap {
				panic("program bug in Count")
			}
			c.revmap = append(c.revmap, uint8(i))
			n++
		}
	}

	c.mat = matrix.NewFMatrix2d(len(c.revmap), a.NCol())
	for _, row := range a.rows {
		for i, ch := range row {
			c.mat.Mat[c.mapping[ch]][i] += 1
		}
	}
	return c
}

// Mat exposes the tally matrix.
func (c *Counts) Mat() *matrix.FMatrix2d { return c.mat }

// Revmap says which symbol each tally row belongs to.
func (c *Counts) Revmap() []uint8 { return c.revmap }

// MapOf says which tally row a symbol lives in, badMap if unseen.
func (c *Counts) MapOf(ch byte) uint8 { return c.mapping[ch] }

// NSym returns the number of distinct symbols seen.
func (c *Counts) NSym() int { return len(c.revmap) }

// Mode returns the most frequent symbol in each column, the smaller
// byte value on a tie so the answer is stable. If nongap is set, the
// gap character does not get a vote, and a gap-only column comes
// back as a gap anyway since there is nothing else to report.
// Call this before Frac. It wants raw tallies.
func (c *Counts) Mode(nongap bool) []byte {
	if c.frac {
		panic("program bug: Mode called after Frac")
	}
	nrow, ncol := c.mat.Size()
	gaprow := int(c.mapping[GapChar])
	mode := make([]byte, ncol)
	for icol := 0; icol < ncol; icol++ {
		best, bestn := GapChar, float32(0)
		for irow := 0; irow < nrow; irow++ {
			if nongap && irow == gaprow {
				continue
			}
			if v := c.mat.Mat[irow][icol]; v > bestn {
				best, bestn = c.revmap[irow], v
			}
		}
		mode[icol] = best
	}
	return mode
}

// Frac converts tallies to normalised frequencies, in place. If
// letter 'A' occurs 2 times in five rows, its entry changes from 2
// to 2/5 = 0.4.
// If gapsAreChar is true, gaps are just another symbol. Otherwise a
// symbol's fraction is the fraction of non-gaps in which you find
// it, while the gap's own fraction stays a fraction of the whole
// column. The non-gap fractions then add to 1, which is what you
// want when plotting.
func (c *Counts) Frac(gapsAreChar bool) {
	if c.frac {
		return
	}
	counts := c.mat
	gappos := c.mapping[GapChar]
	thereAreGaps := gappos != badMap
	nrow, ncol := counts.Size()

	total := make([]float32, ncol) // total observations in each column
	for icol := 0; icol < ncol; icol++ {
		for irow := 0; irow < nrow; irow++ {
			total[icol] += counts.Mat[irow][icol]
		}
	}
	var savedGapFrac []float32
	if thereAreGaps && !gapsAreChar {
		savedGapFrac = make([]float32, ncol)
		for icol := range savedGapFrac {
			if total[icol] != 0 {
				savedGapFrac[icol] = counts.Mat[gappos][icol] / total[icol]
			}
		}
		for icol := 0; icol < ncol; icol++ { // remove gaps from the totals
			total[icol] -= counts.Mat[gappos][icol]
		}
	}
	for icol := 0; icol < ncol; icol++ { // normalise the tallies
		for irow := 0; irow < nrow; irow++ {
			if total[icol] != 0 {
				counts.Mat[irow][icol] /= total[icol]
			}
		}
	}
	// The gaps have to be corrected. They have to be a fraction of
	// the original column totals.
	for icol := range savedGapFrac {
		counts.Mat[gappos][icol] = savedGapFrac[icol]
	}
	c.frac = true
}

// GapFrac returns the fraction of gap characters at each site. If
// there are no gaps at all there is no gap row, so we quietly return
// nil without signalling an error.
func (c *Counts) GapFrac() []float32 {
	if !c.frac {
		gapsAreChar := true // does not matter what we say here
		c.Frac(gapsAreChar)
	}
	gappos := c.mapping[GapChar]
	if gappos == badMap {
		return nil
	}
	return c.mat.Mat[gappos]
}

// LogBase returns the base to be used for entropy logarithms: the
// size of the residue alphabet, plus one if gaps count as a symbol.
func LogBase(t SeqType, gapsAreChar bool, nSymSeen int) int {
	var nSym int
	switch t {
	case Ntide:
		nSym = 4
	case Protein:
		nSym = 20
	default:
		return nSymSeen
	}
	if gapsAreChar {
		nSym++
	}
	return nSym
}

// Entropy calculates per-site entropy into out, which the caller
// sizes to the number of columns. Fractions are computed first if
// that has not happened yet.
func (c *Counts) Entropy(gapsAreChar bool, logbase int, out []float32) {
	if !c.frac {
		c.Frac(gapsAreChar)
	}
	logfac := 1.0 / math.Log(float64(logbase)) // to change base of logs
	nrow, ncol := c.mat.Size()
	gaprow := int(c.mapping[GapChar])

	for icol := 0; icol < ncol; icol++ {
		total := 0.0
		for irow := 0; irow < nrow; irow++ {
			if !gapsAreChar && irow == gaprow {
				continue
			}
			f := float64(c.mat.Mat[irow][icol])
			if f == 0.0 {
				continue
			}
			total += f * math.Log(f) * logfac
		}
		out[icol] = float32(math.Abs(total))
	}
}
