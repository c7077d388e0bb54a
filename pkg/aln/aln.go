// 3 Mar 2024

// Package aln holds a multiple sequence alignment as a matrix of
// residue bytes plus an ordered list of sequence names. The two are
// only connected by their order, so anything that removes a row has
// to remove the corresponding name at the same time. The cleaning
// stages live elsewhere. Here we only read, write, count and check.
package aln

import (
	"fmt"

	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

const cmmt_char byte = '>' // introduces names in fasta format

// Alignment is a set of rows, one per sequence, and the names that
// go with them. Row i belongs to name i. The rows should all be the
// same length, but we do not enforce that here. The degeneracy guard
// does it after loading and after every cleaning stage.
type Alignment struct {
	names []string
	rows  [][]byte
}

// New wraps names and rows up as an alignment. It does not copy.
func New(names []string, rows [][]byte) *Alignment {
	return &Alignment{names: names, rows: rows}
}

// Names returns the ordered name list.
func (a *Alignment) Names() []string { return a.names }

// Rows returns the residue matrix.
func (a *Alignment) Rows() [][]byte { return a.rows }

// NSeq returns the number of sequences.
func (a *Alignment) NSeq() int { return len(a.rows) }

// NCol returns the number of columns, taken from the first row.
// Zero if there are no rows.
func (a *Alignment) NCol() int {
	if len(a.rows) == 0 {
		return 0
	}
	return len(a.rows[0])
}

// Copy returns a deep copy. The pipeline takes one of these at load
// time, so later stages can never scribble on the original.
func (a *Alignment) Copy() *Alignment {
	names := make([]string, len(a.names))
	copy(names, a.names)
	rows := make([][]byte, len(a.rows))
	for i, r := range a.rows {
		rows[i] = make([]byte, len(r))
		copy(rows[i], r)
	}
	return &Alignment{names: names, rows: rows}
}

// NonGap counts the residues in row i that are not the gap character.
func (a *Alignment) NonGap(i int) int {
	n := 0
	for _, c := range a.rows[i] {
		if c != GapChar {
			n++
		}
	}
	return n
}

// Str2Aln takes some strings and returns them as an alignment.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names. If prefix is
// not given, sequences will be called "s0", "s1", ...
func Str2Aln(sIn []string, prefix ...string) *Alignment {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	a := new(Alignment)
	for i, s := range sIn {
		a.names = append(a.names, fmt.Sprint(base, i))
		a.rows = append(a.rows, []byte(s))
	}
	return a
}
