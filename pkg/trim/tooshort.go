// 16 Mar 2024

package trim

import (
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// RemoveTooShort removes sequences with fewer than minlength
// residues that are not gaps. Fragments this short cannot be scored
// sensibly by anything else, so they go.
func RemoveTooShort(rows [][]byte, names []string, minlength int) ([][]byte, map[string]bool) {
	removed := make(map[string]bool)
	var out [][]byte
	for i, row := range rows {
		n := 0
		for _, c := range row {
			if c != GapChar {
				n++
			}
		}
		if n < minlength {
			removed[names[i]] = true
			continue
		}
		out = append(out, rows[i])
	}
	return out, removed
}
