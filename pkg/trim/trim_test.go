// 22 Mar 2024

package trim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/cleanaln/pkg/trim"
)

func rows(ss ...string) [][]byte {
	r := make([][]byte, len(ss))
	for i, s := range ss {
		r[i] = []byte(s)
	}
	return r
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func TestCropEnds(t *testing.T) {
	// one residue stranded in front of a 4-gap run, 13 residues total
	in := rows(
		"A----CGTACGTACGTA",
		"ACGTACGTACGTACGTA",
	)
	out, marked := trim.CropEnds(in, names(2), identity(17), 4)

	require.Equal(t, "-----CGTACGTACGTA", string(out[0]))
	require.Equal(t, []int{0}, marked["a"])
	require.NotContains(t, marked, "b")
	// input must be untouched
	require.Equal(t, "A----CGTACGTACGTA", string(in[0]))
}

func TestCropEndsTrailing(t *testing.T) {
	in := rows("ACGTACGTACGTA----C")
	out, marked := trim.CropEnds(in, names(1), identity(18), 4)
	require.Equal(t, "ACGTACGTACGTA-----", string(out[0]))
	require.Equal(t, []int{17}, marked["a"])
}

func TestCropEndsRespectsMinGap(t *testing.T) {
	in := rows("A---CGTACGTACGTA") // gap run of 3, mingap 4
	out, marked := trim.CropEnds(in, names(1), identity(16), 4)
	require.Equal(t, string(in[0]), string(out[0]))
	require.Empty(t, marked)
}

func TestRemoveBadlyAligned(t *testing.T) {
	in := rows(
		"ACGTACGT",
		"ACGTACGT",
		"ACGTACGT",
		"TGCATGCA", // agrees nowhere
		"ACGTAC--", // agrees everywhere it has residues
	)
	out, rm := trim.RemoveBadlyAligned(in, names(5), 0.9)
	require.Equal(t, map[string]bool{"d": true}, rm)
	require.Len(t, out, 4)
	require.Equal(t, "ACGTAC--", string(out[3]))
}

func TestRemoveBadlyAlignedAllGapSeq(t *testing.T) {
	in := rows(
		"ACGT",
		"----", // no evidence, stays
	)
	_, rm := trim.RemoveBadlyAligned(in, names(2), 0.9)
	require.Empty(t, rm)
}

func TestRemoveInsertions(t *testing.T) {
	// columns 5 and 6 are a gap-majority insertion carried by one
	// sequence, with solid flanks either side
	in := rows(
		"ACGTA--CGTACG",
		"ACGTA--CGTACG",
		"ACGTAGGCGTACG",
	)
	out, rm := trim.RemoveInsertions(in, identity(13), 1, 5, 3)
	require.Equal(t, map[int]bool{5: true, 6: true}, rm)
	require.Equal(t, "ACGTACGTACG", string(out[0]))
	require.Equal(t, "ACGTACGTACG", string(out[2]))
	require.Equal(t, "ACGTA--CGTACG", string(in[0]), "input must not change")
}

func TestRemoveInsertionsOriginalCoords(t *testing.T) {
	// the position map says these columns are 100.. in the original
	in := rows(
		"ACGTA--CGTACG",
		"ACGTA--CGTACG",
		"ACGTAGGCGTACG",
	)
	posmap := make([]int, 13)
	for i := range posmap {
		posmap[i] = 100 + i
	}
	_, rm := trim.RemoveInsertions(in, posmap, 1, 5, 3)
	require.Equal(t, map[int]bool{105: true, 106: true}, rm)
}

func TestRemoveInsertionsTooBig(t *testing.T) {
	in := rows(
		"ACGTA--CGTACG",
		"ACGTA--CGTACG",
		"ACGTAGGCGTACG",
	)
	_, rm := trim.RemoveInsertions(in, identity(13), 1, 1, 3) // maxsize 1
	require.Empty(t, rm)
}

func TestRemoveInsertionsNeedsFlanks(t *testing.T) {
	// gap-majority run right at the start has no left flank
	in := rows(
		"--ACGT",
		"--ACGT",
		"GGACGT",
	)
	_, rm := trim.RemoveInsertions(in, identity(6), 1, 5, 2)
	require.Empty(t, rm)
}

func TestRemoveTooShort(t *testing.T) {
	in := rows(
		"ACGTACGT",
		"------GT",
		"A-C-G-T-",
	)
	out, rm := trim.RemoveTooShort(in, names(3), 4)
	require.Equal(t, map[string]bool{"b": true}, rm)
	require.Len(t, out, 2)
}

func TestRemoveGapOnly(t *testing.T) {
	in := rows(
		"-AC--T",
		"-AG--T",
	)
	out, rm := trim.RemoveGapOnly(in, identity(6))
	require.Equal(t, map[int]bool{0: true, 3: true, 4: true}, rm)
	require.Equal(t, "ACT", string(out[0]))
}

func TestRemoveGapOnlyNothingToDo(t *testing.T) {
	in := rows("ACGT", "AC-T")
	out, rm := trim.RemoveGapOnly(in, identity(4))
	require.Empty(t, rm)
	require.Equal(t, "ACGT", string(out[0]))
}
