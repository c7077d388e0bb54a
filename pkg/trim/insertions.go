// 16 Mar 2024

package trim

import (
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

// RemoveInsertions hunts for runs of columns in which gaps are the
// majority, of a length between minsize and maxsize, with at least
// minflank solid (non-gap-majority) columns on both sides. Such a
// run is an insertion carried by a minority of sequences and is
// alignment noise rather than signal. The removal record holds
// original column indices, mapped through posmap, since that is the
// coordinate system everything downstream reasons in.
func RemoveInsertions(rows [][]byte, posmap []int, minsize, maxsize, minflank int) ([][]byte, map[int]bool) {
	if len(rows) == 0 {
		return rows, nil
	}
	ncol := len(rows[0])
	gapMaj := make([]bool, ncol)
	for j := 0; j < ncol; j++ {
		ngap := 0
		for _, row := range rows {
			if row[j] == GapChar {
				ngap++
			}
		}
		gapMaj[j] = 2*ngap > len(rows)
	}

	drop := make([]bool, ncol)
	removed := make(map[int]bool)
	for j := 0; j < ncol; {
		if !gapMaj[j] {
			j++
			continue
		}
		k := j // run of gap-majority columns [j, k)
		for k < ncol && gapMaj[k] {
			k++
		}
		if k-j >= minsize && k-j <= maxsize &&
			solidFlank(gapMaj, j-minflank, j) &&
			solidFlank(gapMaj, k, k+minflank) {
			for m := j; m < k; m++ {
				drop[m] = true
				removed[posmap[m]] = true
			}
		}
		j = k
	}
	if len(removed) == 0 {
		return rows, removed
	}
	return dropCols(rows, drop), removed
}

// solidFlank says whether columns [lo, hi) exist and none of them is
// gap-majority.
func solidFlank(gapMaj []bool, lo, hi int) bool {
	if lo < 0 || hi > len(gapMaj) {
		return false
	}
	for j := lo; j < hi; j++ {
		if gapMaj[j] {
			return false
		}
	}
	return true
}

// dropCols builds fresh rows without the marked columns. The old
// rows are left alone. Earlier stages may still hold them.
func dropCols(rows [][]byte, drop []bool) [][]byte {
	nkeep := 0
	for _, d := range drop {
		if !d {
			nkeep++
		}
	}
	out := make([][]byte, len(rows))
	for i, row := range rows {
		r := make([]byte, 0, nkeep)
		for j, c := range row {
			if !drop[j] {
				r = append(r, c)
			}
		}
		out[i] = r
	}
	return out
}
