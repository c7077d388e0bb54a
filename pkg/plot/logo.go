// 28 Mar 2024

package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

const (
	logoColW  = 10 // column width in pixels
	logoPlotH = 60 // full height, a perfectly conserved column
)

var logoFont = mustFont()

func mustFont() *truetype.Font {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil { // the font is compiled in, so this cannot
		panic(err) //  happen outside a broken build
	}
	return f
}

// drawString puts s on the image with its baseline at (x, y). size is
// in points, which at our 72 dpi is the same as pixels.
func drawString(img *image.RGBA, s string, x, y int, size float64, c color.RGBA) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(logoFont)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(c))
	_, err := ctx.DrawString(s, freetype.Pt(x, y))
	return err
}

// information returns the per-column information content on a 0 to 1
// scale, together with the tally, whose entries are fractions by the
// time we return. Gaps do not count as symbols here. Entropy is taken
// to the base of the alphabet size, so a column of one residue scores
// 1 and an evenly mixed column scores 0.
func information(a *aln.Alignment, t aln.SeqType) ([]float32, *aln.Counts) {
	c := a.Count()
	logbase := aln.LogBase(t, false, c.NSym())
	if logbase < 2 { // a one symbol alphabet has nothing to measure
		logbase = 2
	}
	ent := make([]float32, a.NCol())
	c.Entropy(false, logbase, ent)
	info := make([]float32, a.NCol())
	for i, e := range ent {
		v := 1 - e
		if v < 0 || math.IsNaN(float64(v)) {
			v = 0
		}
		info[i] = v
	}
	return info, c
}

// LogoBar draws the sequence logo as plain bars, one per column, bar
// height the information content of the column.
func LogoBar(fname string, a *aln.Alignment, t aln.SeqType) error {
	if a.NSeq() == 0 || a.NCol() == 0 {
		return fmt.Errorf("nothing to draw for %s", fname)
	}
	info, _ := information(a, t)
	img := image.NewRGBA(image.Rect(0, 0, len(info)*logoColW, logoPlotH+1))
	fill(img, img.Bounds(), white)
	for j, v := range info {
		h := int(v * logoPlotH)
		fill(img, image.Rect(j*logoColW+1, logoPlotH-h, (j+1)*logoColW-1, logoPlotH),
			ntColor['G'])
	}
	fill(img, image.Rect(0, logoPlotH, len(info)*logoColW, logoPlotH+1), black)
	return writePNG(fname, img)
}

// LogoText draws the classic logo: at each column the residues are
// stacked, each letter's height its frequency times the column's
// information content, the most frequent letter on top.
func LogoText(fname string, a *aln.Alignment, t aln.SeqType) error {
	if a.NSeq() == 0 || a.NCol() == 0 {
		return fmt.Errorf("nothing to draw for %s", fname)
	}
	info, c := information(a, t)
	img := image.NewRGBA(image.Rect(0, 0, len(info)*logoColW, logoPlotH+1))
	fill(img, img.Bounds(), white)

	type part struct {
		sym  byte
		frac float32
	}
	revmap := c.Revmap()
	for j := range info {
		var parts []part
		for irow, sym := range revmap {
			if sym == GapChar {
				continue
			}
			if f := c.Mat().Mat[irow][j]; f > 0 {
				parts = append(parts, part{sym, f})
			}
		}
		sort.Slice(parts, func(i, k int) bool { return parts[i].frac < parts[k].frac })

		y := logoPlotH // letters are stacked from the baseline up
		for _, p := range parts {
			h := float64(p.frac * info[j] * logoPlotH)
			if h < 1 {
				continue // too small to render legibly
			}
			if err := drawString(img, string(p.sym), j*logoColW+1, y, h,
				residueColor(p.sym, t)); err != nil {
				return err
			}
			y -= int(h)
		}
	}
	fill(img, image.Rect(0, logoPlotH, len(info)*logoColW, logoPlotH+1), black)
	return writePNG(fname, img)
}
