// 12 Mar 2024

package aln_test

import (
	"math"
	"testing"

	. "github.com/andrew-torda/cleanaln/pkg/aln"
)

// roughEql says if two numbers are roughly the same
func roughEql(a, b float32) bool {
	const eps float32 = 0.001
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestCountAndFrac(t *testing.T) {
	a := Str2Aln([]string{
		"AAAA",
		"ACA-",
		"AC--",
	})
	c := a.Count()
	if c.NSym() != 3 { // A, C, -, and nothing else
		t.Fatal("wanted 3 symbols, got", c.NSym())
	}
	mode := c.Mode(false)
	if string(mode) != "ACA-" {
		t.Fatal("mode got", string(mode))
	}

	gf := c.GapFrac()
	want := []float32{0, 0, 1. / 3, 2. / 3}
	for i := range want {
		if !roughEql(gf[i], want[i]) {
			t.Fatal("gapfrac site", i, "got", gf[i], "want", want[i])
		}
	}
}

func TestModeNoGapVote(t *testing.T) {
	a := Str2Aln([]string{
		"A--",
		"A-C",
		"ACC",
	})
	c := a.Count()
	if got := string(c.Mode(true)); got != "ACC" {
		t.Fatal("nongap mode got", got)
	}
	if got := string(c.Mode(false)); got != "A-C" {
		t.Fatal("gap mode got", got)
	}
}

func TestNoGapsAnywhere(t *testing.T) {
	a := Str2Aln([]string{"ACGT", "ACGT"})
	c := a.Count()
	if gf := c.GapFrac(); gf != nil {
		t.Fatal("no gaps, expected nil gap fractions")
	}
}

func TestEntropy(t *testing.T) {
	a := Str2Aln([]string{"aaaa", "abab", "acbb", "adbb"})
	c := a.Count()
	log4 := func(x float64) float64 { return math.Log(x) / math.Log(4.) }
	x3of4 := -float32((3./4)*log4(3./4) - 1./4)
	wantEnt := []float32{0, 1, 0.5, x3of4}

	got := make([]float32, a.NCol())
	logbase := LogBase(Unknown, false, c.NSym())
	c.Entropy(false, logbase, got)
	for i := range got {
		if !roughEql(got[i], wantEnt[i]) {
			t.Fatal("entropy site", i, "got", got[i], "want", wantEnt[i])
		}
	}
}
