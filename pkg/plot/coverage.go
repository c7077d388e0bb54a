// 27 Mar 2024

package plot

import (
	"fmt"
	"image"
)

const (
	covBarW  = 3   // bar width in pixels
	covPlotH = 100 // plot height, so one pixel per percent
)

// Coverage draws the fraction of non-gap residues per column as a bar
// chart, one bar per column, full height meaning every sequence has a
// residue there.
func Coverage(fname string, cov []float32) error {
	if len(cov) == 0 {
		return fmt.Errorf("nothing to draw for %s", fname)
	}
	img := image.NewRGBA(image.Rect(0, 0, len(cov)*covBarW, covPlotH+1))
	fill(img, img.Bounds(), white)
	for j, v := range cov {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		h := int(v * covPlotH)
		fill(img, image.Rect(j*covBarW, covPlotH-h, (j+1)*covBarW, covPlotH),
			ntColor['C'])
	}
	fill(img, image.Rect(0, covPlotH, len(cov)*covBarW, covPlotH+1), black)
	return writePNG(fname, img)
}
