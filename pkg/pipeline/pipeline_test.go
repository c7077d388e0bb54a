// 21 Mar 2024

package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	"github.com/andrew-torda/cleanaln/pkg/pipeline"
)

// mkAln builds a small alignment from strings.
func mkAln(rows ...string) *aln.Alignment {
	return aln.Str2Aln(rows)
}

func TestNothingEnabled(t *testing.T) {
	a := mkAln("ACGT", "AC-T")
	p := pipeline.New(a, &pipeline.Config{}, nil)
	require.NoError(t, p.Run())
	require.Len(t, p.Rows(), 2)
	require.Empty(t, p.Markup(), "disabled stages must not appear in markup")
}

func TestRemoveShort(t *testing.T) {
	a := mkAln(
		"ACGTACGT",
		"A-------",
		"ACGTAC-T",
	)
	cfg := &pipeline.Config{RemoveShort: true, ShortMinLength: 3}
	p := pipeline.New(a, cfg, nil)
	require.NoError(t, p.Run())
	require.Len(t, p.Rows(), 2)
	require.Equal(t, []string{"s0", "s2"}, p.Tracker().Names())
	require.True(t, p.Markup()[pipeline.StageShort].Names["s1"])
}

func TestRemoveGapOnly(t *testing.T) {
	a := mkAln(
		"AC--GT",
		"AG--TT",
	)
	cfg := &pipeline.Config{RemoveGapOnly: true}
	p := pipeline.New(a, cfg, nil)
	require.NoError(t, p.Run())
	require.Equal(t, "ACGT", string(p.Rows()[0]))
	require.Equal(t, []int{0, 1, 4, 5}, p.Tracker().PosMap())
	require.Equal(t, map[int]bool{2: true, 3: true},
		p.Markup()[pipeline.StageGapOnly].Cols)
}

// TestOrdering: remove-gap-only must see the post-crop matrix. The
// leading residue of every sequence sits alone behind a long gap, so
// crop-ends blanks it and only then does column 0 become gap-only.
func TestOrdering(t *testing.T) {
	row := "A---ACGTACGTACGT" // 13 residues, crop limit 1, gap run 3
	a := mkAln(row, row, row)
	cfg := &pipeline.Config{
		CropEnds:       true,
		CropEndsMinGap: 3,
		RemoveGapOnly:  true,
	}
	p := pipeline.New(a, cfg, nil)
	require.NoError(t, p.Run())

	gapOnly := p.Markup()[pipeline.StageGapOnly].Cols
	require.True(t, gapOnly[0], "column 0 is only gap-only after cropping")
	require.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true}, gapOnly)

	crops := p.Markup()[pipeline.StageCropEnds].Crops
	require.Equal(t, []int{0}, crops["s0"])

	// and without cropping, column 0 must survive
	p2 := pipeline.New(mkAln(row, row, row),
		&pipeline.Config{RemoveGapOnly: true}, nil)
	require.NoError(t, p2.Run())
	require.False(t, p2.Markup()[pipeline.StageGapOnly].Cols[0])
}

// TestGuardEmpty: a stage that removes every sequence still leaves a
// readable trace: the output file exists with no records, the report
// names everyone, and the error is the distinct "emptied" one.
func TestGuardEmpty(t *testing.T) {
	dir := t.TempDir()
	outfile := filepath.Join(dir, "out.fasta")
	rmfile := filepath.Join(dir, "removed.txt")

	a := mkAln("A---", "-C--", "--G-")
	cfg := &pipeline.Config{
		RemoveShort:    true,
		ShortMinLength: 5,
		Outfile:        outfile,
		Rmfile:         rmfile,
	}
	p := pipeline.New(a, cfg, nil)
	err := p.Run()
	require.ErrorIs(t, err, aln.ErrEmptied)

	out, rerr := os.ReadFile(outfile)
	require.NoError(t, rerr, "best-effort output must exist")
	require.Empty(t, out)

	rm, rerr := os.ReadFile(rmfile)
	require.NoError(t, rerr)
	for _, nam := range []string{"s0", "s1", "s2"} {
		require.Contains(t, string(rm), nam)
	}
	require.True(t, strings.HasPrefix(string(rm), aln.RmHeader))
}

// TestGuardRagged: ragged input dies before any stage and writes
// nothing at all.
func TestGuardRagged(t *testing.T) {
	dir := t.TempDir()
	outfile := filepath.Join(dir, "out.fasta")

	a := aln.New([]string{"a", "b", "c"},
		[][]byte{[]byte("ACGT"), []byte("ACGT"), []byte("ACGTA")})
	cfg := &pipeline.Config{
		RemoveGapOnly: true,
		Outfile:       outfile,
	}
	p := pipeline.New(a, cfg, nil)
	err := p.Run()
	require.ErrorIs(t, err, aln.ErrRagged)
	require.Empty(t, p.Markup(), "no stage may have run")

	_, serr := os.Stat(outfile)
	require.True(t, os.IsNotExist(serr), "ragged failure must not write output")
}

// TestPipelineInvariantsEveryStage runs everything at once and spot
// checks the counting identities after the run.
func TestPipelineInvariantsEveryStage(t *testing.T) {
	a := mkAln(
		"ACGTACGTAC--GTACGTACGT",
		"ACGTACGTAC--GTACGTACGT",
		"ACGTACGTAC--GTACGTACGT",
		"AC--------------------",
		"TTTTTTTTTT--TTTTTTTTTT",
	)
	origW := a.NCol()
	origN := a.NSeq()
	cfg := &pipeline.Config{
		CropEnds:            true,
		CropEndsMinGap:      3,
		RemoveBadlyAligned:  true,
		BadlyAlignedMinPerc: 0.5,
		RemoveShort:         true,
		ShortMinLength:      3,
		RemoveInsertions:    true,
		InsertionMinSize:    1,
		InsertionMaxSize:    10,
		InsertionMinFlank:   2,
		RemoveGapOnly:       true,
	}
	p := pipeline.New(a, cfg, nil)
	require.NoError(t, p.Run())

	tk := p.Tracker()
	require.Equal(t, origW, len(tk.PosMap())+len(tk.RemovedCols()))
	require.Equal(t, origN, len(tk.Names())+len(tk.RemovedSeqs()))
	require.Len(t, p.Rows(), len(tk.Names()))
	if len(p.Rows()) > 0 {
		require.Len(t, p.Rows()[0], len(tk.PosMap()))
	}
	// the all-T sequence disagrees with the majority everywhere
	require.True(t, tk.RemovedSeqs()["s4"])
	// the 2-residue fragment is gone too
	require.True(t, tk.RemovedSeqs()["s3"])
}
