// 18 Mar 2024

package pipeline

import (
	"fmt"

	"github.com/andrew-torda/cleanaln/pkg/aln"
)

// Tracker is pure bookkeeping, no decisions. It keeps the surviving
// name list, the map from current column index to original column
// index, and the two monotonically growing removal sets. Together
// these are what lets the output reconciler and the markup plots
// talk about the original alignment after the matrix has been
// chopped about.
type Tracker struct {
	names  []string
	posmap []int // original index of each surviving column, increasing
	rmSeqs map[string]bool
	rmCols map[int]bool
	origW  int
	nOrig  int
}

// NewTracker starts tracking an alignment of the given names and
// width. The names are copied. Nothing here aliases the caller.
func NewTracker(names []string, width int) *Tracker {
	tk := &Tracker{
		names:  append([]string(nil), names...),
		posmap: make([]int, width),
		rmSeqs: make(map[string]bool),
		rmCols: make(map[int]bool),
		origW:  width,
		nOrig:  len(names),
	}
	for i := range tk.posmap {
		tk.posmap[i] = i
	}
	return tk
}

// Names returns the surviving names, in their original relative order.
func (tk *Tracker) Names() []string { return tk.names }

// PosMap returns the original index of each surviving column.
func (tk *Tracker) PosMap() []int { return tk.posmap }

// RemovedSeqs returns the set of removed names. Treat it as read-only.
func (tk *Tracker) RemovedSeqs() map[string]bool { return tk.rmSeqs }

// RemovedCols returns the set of removed original column indices.
func (tk *Tracker) RemovedCols() map[int]bool { return tk.rmCols }

// DropSeqs removes a set of names. Removing a name twice is a no-op,
// the set union sees to that. A name we have never heard of is
// different. That is a stage handing back garbage, and it gets an
// ErrInvariant rather than a shrug.
func (tk *Tracker) DropSeqs(rm map[string]bool) error {
	if len(rm) == 0 {
		return nil
	}
	here := make(map[string]bool, len(tk.names))
	for _, nam := range tk.names {
		here[nam] = true
	}
	for nam := range rm {
		if !here[nam] && !tk.rmSeqs[nam] {
			return fmt.Errorf("%w: dropping unknown sequence %q", aln.ErrInvariant, nam)
		}
	}
	keep := tk.names[:0:0]
	for _, nam := range tk.names {
		if !rm[nam] {
			keep = append(keep, nam)
		}
	}
	tk.names = keep
	for nam := range rm {
		tk.rmSeqs[nam] = true
	}
	return nil
}

// DropCols removes a set of original column indices from the
// position map. Same contract as DropSeqs: re-removal is harmless,
// an index that was never a column is a caller bug.
func (tk *Tracker) DropCols(rm map[int]bool) error {
	if len(rm) == 0 {
		return nil
	}
	here := make(map[int]bool, len(tk.posmap))
	for _, p := range tk.posmap {
		here[p] = true
	}
	for p := range rm {
		if !here[p] && !tk.rmCols[p] {
			return fmt.Errorf("%w: dropping unknown column %d", aln.ErrInvariant, p)
		}
	}
	keep := tk.posmap[:0:0]
	for _, p := range tk.posmap {
		if !rm[p] {
			keep = append(keep, p)
		}
	}
	tk.posmap = keep
	for p := range rm {
		tk.rmCols[p] = true
	}
	return nil
}

// check is the tracker's own consistency test, used by the guard and
// in testing. The two sums are the properties everything else leans
// on: columns are either surviving or removed, never both or
// neither, and the same for sequences.
func (tk *Tracker) check() error {
	if len(tk.posmap)+len(tk.rmCols) != tk.origW {
		return fmt.Errorf("%w: %d columns + %d removed != original %d",
			aln.ErrInvariant, len(tk.posmap), len(tk.rmCols), tk.origW)
	}
	if len(tk.names)+len(tk.rmSeqs) != tk.nOrig {
		return fmt.Errorf("%w: %d names + %d removed != original %d",
			aln.ErrInvariant, len(tk.names), len(tk.rmSeqs), tk.nOrig)
	}
	for _, p := range tk.posmap {
		if tk.rmCols[p] {
			return fmt.Errorf("%w: column %d both present and removed",
				aln.ErrInvariant, p)
		}
	}
	return nil
}
