// 15 Mar 2024

package trim

import (
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// RemoveBadlyAligned scores each sequence against the most common
// non-gap residue of each column. A sequence whose own residues
// agree with that majority in less than minperc of its non-gap
// positions is removed. Sequences that are nothing but gaps have no
// evidence either way and are left alone; the short-sequence stage
// is the one that should deal with those.
func RemoveBadlyAligned(rows [][]byte, names []string, minperc float64) ([][]byte, map[string]bool) {
	if len(rows) == 0 {
		return rows, nil
	}
	mode := colMode(rows)
	removed := make(map[string]bool)
	var out [][]byte
	for i, row := range rows {
		match, total := 0, 0
		for j, c := range row {
			if c == GapChar {
				continue
			}
			total++
			if c == mode[j] {
				match++
			}
		}
		if total > 0 && float64(match)/float64(total) < minperc {
			removed[names[i]] = true
			continue
		}
		out = append(out, rows[i])
	}
	return out, removed
}

// colMode returns the most common non-gap residue per column, the
// smaller byte on ties so the answer does not depend on row order.
func colMode(rows [][]byte) []byte {
	ncol := len(rows[0])
	mode := make([]byte, ncol)
	var tally [256]int
	for j := 0; j < ncol; j++ {
		for i := range tally {
			tally[i] = 0
		}
		for _, row := range rows {
			if j < len(row) && row[j] != GapChar {
				tally[row[j]]++
			}
		}
		best, bestn := GapChar, 0
		for c := 0; c < 256; c++ {
			if tally[c] > bestn {
				best, bestn = byte(c), tally[c]
			}
		}
		mode[j] = best
	}
	return mode
}
