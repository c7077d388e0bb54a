// 26 Mar 2024

// Package plot draws the pictures: mini alignment images, a coverage
// plot and sequence logos. Everything comes out as png. The drawing
// here is deliberately plain. One coloured tile per residue is enough
// to see at a glance what the cleaning stages did.
package plot

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
)

const cell = 4 // tile edge in pixels for mini alignments

var (
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	lightGrey = color.RGBA{190, 190, 190, 255}
)

// The usual nucleotide colours.
var ntColor = map[byte]color.RGBA{
	'A': {0, 153, 0, 255},
	'C': {0, 0, 204, 255},
	'G': {255, 178, 0, 255},
	'T': {204, 0, 0, 255},
	'U': {204, 0, 0, 255},
	'N': {120, 120, 120, 255},
}

// A palette for everything else, mostly amino acids. Picking by the
// symbol value means a residue keeps its colour across plots, which
// is all that matters.
var aaPalette = []color.RGBA{
	{86, 180, 233, 255}, {230, 159, 0, 255}, {0, 158, 115, 255},
	{240, 228, 66, 255}, {0, 114, 178, 255}, {213, 94, 0, 255},
	{204, 121, 167, 255}, {148, 103, 189, 255},
}

func residueColor(ch byte, t aln.SeqType) color.RGBA {
	if ch == GapChar {
		return white
	}
	if t == aln.Ntide {
		if c, ok := ntColor[ch]; ok {
			return c
		}
		return lightGrey
	}
	return aaPalette[int(ch)%len(aaPalette)]
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

func tile(img *image.RGBA, irow, icol int, c color.RGBA) {
	fill(img, image.Rect(icol*cell, irow*cell, (icol+1)*cell, (irow+1)*cell), c)
}

func writePNG(fname string, img image.Image) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating plot file: %w", err)
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	if err := png.Encode(w, img); err != nil {
		return err
	}
	return w.Flush()
}
