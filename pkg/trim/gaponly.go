// 17 Mar 2024

package trim

import (
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// RemoveGapOnly removes the columns in which every surviving row
// holds a gap. It runs last in the pipeline, since removing
// sequences is exactly what turns columns into gap-only ones.
func RemoveGapOnly(rows [][]byte, posmap []int) ([][]byte, map[int]bool) {
	removed := make(map[int]bool)
	if len(rows) == 0 {
		return rows, removed
	}
	ncol := len(rows[0])
	drop := make([]bool, ncol)
	for j := 0; j < ncol; j++ {
		allGap := true
		for _, row := range rows {
			if row[j] != GapChar {
				allGap = false
				break
			}
		}
		if allGap {
			drop[j] = true
			removed[posmap[j]] = true
		}
	}
	if len(removed) == 0 {
		return rows, removed
	}
	return dropCols(rows, drop), removed
}
