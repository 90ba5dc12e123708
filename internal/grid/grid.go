package grid

import (
	"errors"
	"fmt"
)

// Vertices is the number of vertices along one edge of a power-3 displacement.
const Vertices = 9

// ErrInvalidDimension is returned for non-positive image dimensions.
var ErrInvalidDimension = errors.New("invalid dimension")

// Dimensions is the number of displacement surfaces needed on each axis.
type Dimensions struct {
	X int // surfaces across (xRequired)
	Y int // surfaces down (yRequired)
}

// Cell addresses one surface of the grid.
type Cell struct {
	Col int
	Row int
}

// Required returns how many surfaces cover d pixels along one axis.
// Neighbouring surfaces share an edge, so every surface after the first adds 8 pixels.
func Required(d int) int {
	if d < Vertices {
		return 1
	}
	step := Vertices - 1
	return (d-Vertices+step-1)/step + 1
}

// Size returns the pixel extent covered by n surfaces along one axis.
func Size(n int) int {
	if n <= 1 {
		return Vertices
	}
	return Vertices + (Vertices-1)*(n-1)
}

// Compute derives the grid dimensions for an image of width x height pixels.
func Compute(width, height int) (Dimensions, error) {
	if width <= 0 || height <= 0 {
		return Dimensions{}, fmt.Errorf("grid: %dx%d: %w", width, height, ErrInvalidDimension)
	}
	return Dimensions{X: Required(width), Y: Required(height)}, nil
}

// Count returns the total number of surfaces.
func (d Dimensions) Count() int {
	return d.X * d.Y
}

// Cell maps a sequential index to its cell in row-major order.
func (d Dimensions) Cell(n int) Cell {
	return Cell{Col: n % d.X, Row: n / d.X}
}

// Index is the inverse of Cell.
func (d Dimensions) Index(c Cell) int {
	return c.Row*d.X + c.Col
}

// Cells lists every cell, row outer, column inner.
func (d Dimensions) Cells() []Cell {
	cells := make([]Cell, 0, d.Count())
	for n := 0; n < d.Count(); n++ {
		cells = append(cells, d.Cell(n))
	}
	return cells
}

// Pixels returns the image extent the grid covers.
func (d Dimensions) Pixels() (width, height int) {
	return Size(d.X), Size(d.Y)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.X, d.Y)
}
