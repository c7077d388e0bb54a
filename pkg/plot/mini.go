// 26 Mar 2024

package plot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
	"github.com/andrew-torda/cleanaln/pkg/pipeline"
)

// Mini draws the alignment as a grid of coloured tiles, one per
// residue, gaps left white. Good for eyeballing the shape of an
// alignment that is far too big to read.
func Mini(fname string, rows [][]byte, t aln.SeqType) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("nothing to draw for %s", fname)
	}
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0])*cell, len(rows)*cell))
	fill(img, img.Bounds(), white)
	for i, row := range rows {
		for j, ch := range row {
			if ch != GapChar {
				tile(img, i, j, residueColor(ch, t))
			}
		}
	}
	return writePNG(fname, img)
}

// Stage colours for the markup plot, one per cleaning stage.
var stageColor = map[string]color.RGBA{
	pipeline.StageCropEnds:     {230, 159, 0, 255},
	pipeline.StageBadlyAligned: {204, 0, 0, 255},
	pipeline.StageInsertions:   {0, 114, 178, 255},
	pipeline.StageShort:        {0, 158, 115, 255},
	pipeline.StageGapOnly:      {148, 103, 189, 255},
}

// MiniMarkup paints what each stage removed onto the original
// alignment. Surviving residues are grey, gaps white, and each
// removed row, column or cropped position gets its stage's colour.
// The markup records are in original coordinates, names for rows and
// original column indices for columns, which is exactly what we need
// here and the reason the pipeline stores them at all.
func MiniMarkup(fname string, orig *aln.Alignment, mk pipeline.Markup) error {
	rows := orig.Rows()
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("nothing to draw for %s", fname)
	}
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0])*cell, len(rows)*cell))
	fill(img, img.Bounds(), white)
	for i, row := range rows {
		for j, ch := range row {
			if ch != GapChar {
				tile(img, i, j, lightGrey)
			}
		}
	}

	idx := make(map[string]int, orig.NSeq())
	for i, nam := range orig.Names() {
		idx[nam] = i
	}
	stages := []string{pipeline.StageCropEnds, pipeline.StageBadlyAligned,
		pipeline.StageInsertions, pipeline.StageShort, pipeline.StageGapOnly}
	for _, stage := range stages {
		res, ok := mk[stage]
		if !ok {
			continue
		}
		c := stageColor[stage]
		for nam, positions := range res.Crops {
			for _, p := range positions {
				tile(img, idx[nam], p, c)
			}
		}
		for nam := range res.Names {
			i := idx[nam]
			for j := range rows[i] {
				tile(img, i, j, c)
			}
		}
		for p := range res.Cols {
			for i := range rows {
				tile(img, i, p, c)
			}
		}
	}
	return writePNG(fname, img)
}
