// Package alpha samples an image into per-vertex displacement paint weights.
package alpha

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/luma"
	"disp-alpha-tools/internal/sample"
)

const n = grid.Vertices

// RowIndent prefixes every row line of an alphas block.
const RowIndent = "\t\t\t\t\t"

// Grid holds one displacement's paint weights, indexed [row][column]. Row 0 is
// the south edge of the surface.
type Grid [n][n]uint8

// Weight is the paint weight of one pixel: its luminance scaled by its alpha.
func Weight(c color.NRGBA) uint8 {
	return uint8(int(luma.Luminance(c)) * int(c.A) / 255)
}

// Paint samples the 9x9 vertices of cell c from img.
//
// Neighbouring cells share their boundary column and row, so each cell starts
// 8 pixels after the previous one. Image rows run top to bottom while surface
// rows run south to north, hence the vertical flip. Vertices outside the image
// get weight 0.
func Paint(img sample.Sample, c grid.Cell) Grid {
	var g Grid
	w, h := img.Width(), img.Height()
	x0, y0 := c.Col*(n-1), c.Row*(n-1)
	for y := 0; y < n; y++ {
		sy := (n - 1 - y) + y0
		if sy >= h {
			continue
		}
		for x := 0; x < n; x++ {
			sx := x + x0
			if sx >= w {
				continue
			}
			g[y][x] = Weight(img.Pixel(sx, sy))
		}
	}
	return g
}

// Rows renders each row as nine space-terminated integers, e.g. "0 0 0 0 0 0 0 0 0 ".
func (g *Grid) Rows() []string {
	rows := make([]string, n)
	var sb strings.Builder
	for y := range g {
		sb.Reset()
		for _, v := range g[y] {
			sb.WriteString(strconv.Itoa(int(v)))
			sb.WriteByte(' ')
		}
		rows[y] = sb.String()
	}
	return rows
}

// Text renders the contents of an alphas block, one "rowN" field per line.
func (g *Grid) Text() string {
	var sb strings.Builder
	for y, row := range g.Rows() {
		fmt.Fprintf(&sb, "%s\"row%d\" \"%s\"\n", RowIndent, y, row)
	}
	return sb.String()
}

// Values flattens the grid in row order.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, n*n)
	for y := range g {
		for _, v := range g[y] {
			out = append(out, float64(v))
		}
	}
	return out
}

// ParseRow parses a row written by Rows.
func ParseRow(s string) ([n]uint8, error) {
	var row [n]uint8
	fields := strings.Fields(s)
	if len(fields) != n {
		return row, fmt.Errorf("alpha: row has %d values, want %d", len(fields), n)
	}
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return row, fmt.Errorf("alpha: row value %q: %w", f, err)
		}
		row[i] = uint8(v)
	}
	return row, nil
}

// ParseRows rebuilds a grid from nine rows.
func ParseRows(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != n {
		return g, fmt.Errorf("alpha: %d rows, want %d", len(rows), n)
	}
	for y, s := range rows {
		row, err := ParseRow(s)
		if err != nil {
			return g, fmt.Errorf("alpha: row%d: %w", y, err)
		}
		g[y] = row
	}
	return g, nil
}
