// Package preview renders paint weights as grayscale images.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"disp-alpha-tools/internal/alpha"
	"disp-alpha-tools/internal/brush"
	"disp-alpha-tools/internal/extract"
	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/sample"
)

const step = grid.Vertices - 1

// Gray renders img as it will be painted: every pixel holds its paint weight,
// which is the luminance composited over black. The canvas covers the whole
// grid; pixels past the image edge stay black.
func Gray(img sample.Sample, dims grid.Dimensions) *image.Gray {
	w, h := dims.Pixels()
	out := image.NewGray(image.Rect(0, 0, w, h))
	iw, ih := min(img.Width(), w), min(img.Height(), h)
	for y := 0; y < ih; y++ {
		for x := 0; x < iw; x++ {
			out.SetGray(x, y, color.Gray{Y: alpha.Weight(img.Pixel(x, y))})
		}
	}
	return out
}

// FromRecords rebuilds an image from extracted displacements. Each record is
// placed by its corner relative to the north-west-most one; records off the
// brush grid are snapped down to it. Rows are flipped back so row8 becomes the
// top image row of the cell.
func FromRecords(records []extract.Record) (*image.Gray, error) {
	if len(records) == 0 {
		return nil, errors.New("preview: no records")
	}

	minX, maxY := math.MaxInt, math.MinInt
	for _, r := range records {
		minX = min(minX, r.X)
		maxY = max(maxY, r.Y)
	}

	type placed struct {
		cell grid.Cell
		g    alpha.Grid
	}
	cells := make([]placed, 0, len(records))
	var dims grid.Dimensions
	for i, r := range records {
		g, err := r.Grid()
		if err != nil {
			return nil, fmt.Errorf("preview: record %d at (%d, %d): %w", i, r.X, r.Y, err)
		}
		c := grid.Cell{Col: (r.X - minX) / brush.Size, Row: (maxY - r.Y) / brush.Size}
		dims.X = max(dims.X, c.Col+1)
		dims.Y = max(dims.Y, c.Row+1)
		cells = append(cells, placed{cell: c, g: g})
	}

	w, h := dims.Pixels()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for _, p := range cells {
		x0, y0 := p.cell.Col*step, p.cell.Row*step
		for y := range p.g {
			for x, v := range p.g[y] {
				out.SetGray(x0+x, y0+step-y, color.Gray{Y: v})
			}
		}
	}
	return out, nil
}
