// 14 Mar 2024

// Package trim holds the cleaning stages. Every stage takes the
// current matrix and hands back a freshly built one plus a record of
// what it removed. Nothing here touches the name list or the column
// position map. The pipeline does that bookkeeping, and it is the
// only one allowed to.
package trim

import (
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// A sequence end counts as badly aligned when only a small handful
// of residues sits out there, stranded behind a long gap. One tenth
// of the sequence is the cutoff for "small handful".
const cropMaxFrac = 10

// CropEnds looks at both ends of every sequence. Residues stranded
// on the far side of a gap run of at least mingap positions are
// replaced with gaps, when they make up under a tenth of the
// sequence's residues. The matrix shape does not change, so there is
// nothing for the tracker here. The markup says which original
// columns were blanked in which sequence.
func CropEnds(rows [][]byte, names []string, posmap []int, mingap int) ([][]byte, map[string][]int) {
	marked := make(map[string][]int)
	out := make([][]byte, len(rows))
	for i, row := range rows {
		var nongap []int
		for j, c := range row {
			if c != GapChar {
				nongap = append(nongap, j)
			}
		}
		lead := cropBoundary(nongap, mingap)
		trail := cropBoundary(reverseGaps(nongap, len(row)), mingap)

		if lead == 0 && trail == 0 {
			out[i] = rows[i]
			continue
		}
		newRow := make([]byte, len(row))
		copy(newRow, row)
		var hit []int
		for j := 0; j < lead; j++ {
			newRow[nongap[j]] = GapChar
			hit = append(hit, posmap[nongap[j]])
		}
		for j := 0; j < trail; j++ {
			k := nongap[len(nongap)-1-j]
			newRow[k] = GapChar
			hit = append(hit, posmap[k])
		}
		out[i] = newRow
		marked[names[i]] = hit
	}
	return out, marked
}

// cropBoundary returns how many leading residues to blank. nongap is
// the list of non-gap positions; we look for the last gap run of at
// least mingap sitting within the first tenth of the residues.
func cropBoundary(nongap []int, mingap int) int {
	crop := 0
	limit := len(nongap) / cropMaxFrac
	for j := 1; j <= limit; j++ {
		if nongap[j]-nongap[j-1]-1 >= mingap {
			crop = j
		}
	}
	return crop
}

// reverseGaps mirrors the non-gap positions, so the trailing end can
// be handled by the same boundary search as the leading one.
func reverseGaps(nongap []int, width int) []int {
	r := make([]int, len(nongap))
	for i, p := range nongap {
		r[len(nongap)-1-i] = width - 1 - p
	}
	return r
}
