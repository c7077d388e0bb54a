// 7 Mar 2024

package aln

import "fmt"

// A marker to say what kind of residues an alignment holds.
type SeqType byte

const (
	Unknown SeqType = iota
	Ntide           // nucleotide, DNA or RNA
	Protein
)

func (t SeqType) String() string {
	switch t {
	case Ntide:
		return "nucleotide"
	case Protein:
		return "amino acid"
	}
	return "unknown"
}

// The recognised symbol sets. A, C, G, T and N live in both worlds,
// which is why the bucketing below asks the nucleotide question first.
var (
	ntSym = [MaxSym]bool{
		'A': true, 'C': true, 'G': true, 'T': true, 'U': true, 'N': true}
	aaSym = [MaxSym]bool{
		'A': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
		'H': true, 'I': true, 'K': true, 'L': true, 'M': true, 'N': true,
		'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'V': true,
		'W': true, 'Y': true, 'X': true}
)

// GetType decides whether an alignment is nucleotide or protein by
// looking at the first row only. Each residue is upper-cased and put
// in exactly one of three buckets: nucleotide symbol, amino acid
// symbol, or neither. A symbol in both sets counts as nucleotide.
// Then, in this order: if the nucleotide count is a maximum, even a
// tied one, the alignment is nucleotide. Otherwise if the amino acid
// count is a maximum, even tied, it is protein. Otherwise most of
// the row is junk and we give up.
// Nucleotide winning all ties is deliberate. An all ACGT protein is
// indistinguishable from DNA and downstream colour schemes expect
// the nucleotide answer, so do not be tempted to break ties the
// other way.
func (a *Alignment) GetType() (SeqType, error) {
	if len(a.rows) == 0 {
		return Unknown, ErrNoSeqs
	}
	var n, aa, x int
	for _, c := range a.rows[0] {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch {
		case c < byte(MaxSym) && ntSym[c]:
			n++
		case c < byte(MaxSym) && aaSym[c]:
			aa++
		default:
			x++
		}
	}
	switch {
	case n >= aa && n >= x:
		return Ntide, nil
	case aa >= x:
		return Protein, nil
	}
	return Unknown, fmt.Errorf("%w: %d of %d symbols unrecognised in first sequence",
		ErrSeqType, x, len(a.rows[0]))
}
