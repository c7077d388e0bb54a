// 28 Mar 2024

package plot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	"github.com/andrew-torda/cleanaln/pkg/consensus"
	"github.com/andrew-torda/cleanaln/pkg/pipeline"
	"github.com/andrew-torda/cleanaln/pkg/plot"
)

// decodable opens the file and insists it is a real png of the
// expected size.
func decodable(t *testing.T, fname string, wantW, wantH int) {
	t.Helper()
	fp, err := os.Open(fname)
	require.NoError(t, err)
	defer fp.Close()
	img, err := png.Decode(fp)
	require.NoError(t, err)
	require.Equal(t, wantW, img.Bounds().Dx())
	require.Equal(t, wantH, img.Bounds().Dy())
}

func TestMini(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mini.png")
	a := aln.Str2Aln([]string{"ACGT-ACG", "ACGT-ACG", "AC---ACG"})
	require.NoError(t, plot.Mini(fname, a.Rows(), aln.Ntide))
	decodable(t, fname, 8*4, 3*4)
}

func TestMiniEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mini.png")
	require.Error(t, plot.Mini(fname, nil, aln.Ntide))
	_, err := os.Stat(fname)
	require.True(t, os.IsNotExist(err))
}

func TestMiniMarkup(t *testing.T) {
	dir := t.TempDir()
	a := aln.Str2Aln([]string{
		"ACGTAC--GT",
		"ACGTAC--GT",
		"A---AC--GT",
		"TTTTTTTTTT",
	})
	orig := a.Copy()
	cfg := &pipeline.Config{
		RemoveBadlyAligned:  true,
		BadlyAlignedMinPerc: 0.5,
		RemoveGapOnly:       true,
	}
	p := pipeline.New(a, cfg, nil)
	require.NoError(t, p.Run())

	fname := filepath.Join(dir, "markup.png")
	require.NoError(t, plot.MiniMarkup(fname, orig, p.Markup()))
	decodable(t, fname, 10*4, 4*4)
}

func TestCoverage(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "coverage.png")
	a := aln.Str2Aln([]string{"ACG-", "AC--", "A---"})
	_, cov := consensus.Find(a, true)
	require.NoError(t, plot.Coverage(fname, cov))
	decodable(t, fname, 4*3, 101)
}

func TestLogos(t *testing.T) {
	dir := t.TempDir()
	a := aln.Str2Aln([]string{
		"ACGTACGT",
		"ACGTACGA",
		"ACGT-CGT",
	})
	bar := filepath.Join(dir, "logo_bar.png")
	require.NoError(t, plot.LogoBar(bar, a, aln.Ntide))
	decodable(t, bar, 8*10, 61)

	txt := filepath.Join(dir, "logo_text.png")
	require.NoError(t, plot.LogoText(txt, a, aln.Ntide))
	decodable(t, txt, 8*10, 61)
}
