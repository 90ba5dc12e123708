// Package brush generates the wedge solids that carry one displacement each.
package brush

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"disp-alpha-tools/internal/grid"
)

// Size is the edge length of one solid in map units.
const Size = 128

// Point is an integer map coordinate.
type Point struct {
	X, Y, Z int
}

func (p Point) String() string {
	return fmt.Sprintf("%d %d %d", p.X, p.Y, p.Z)
}

// Plane is a side plane given by three points.
type Plane [3]Point

// Side plane templates for the solid at cell (0, 0). The solid spans
// x in [0, Size], y in [-Size, 0] and z in [0, Size/2]. Point order sets the
// face normal and must not change.
var (
	Top    = Plane{{0, -Size, Size / 2}, {0, 0, Size / 2}, {Size, 0, Size / 2}}
	Bottom = Plane{{0, 0, 0}, {0, -Size, 0}, {Size, -Size, 0}}
	West   = Plane{{0, -Size, 0}, {0, 0, 0}, {0, 0, Size / 2}}
	East   = Plane{{Size, 0, 0}, {Size, -Size, 0}, {Size, -Size, Size / 2}}
	North  = Plane{{0, 0, 0}, {Size, 0, 0}, {Size, 0, Size / 2}}
	South  = Plane{{Size, -Size, 0}, {0, -Size, 0}, {0, -Size, Size / 2}}
)

// SidePlanes lists the templates in side order. The first side carries the
// displacement.
var SidePlanes = [6]Plane{Top, Bottom, West, East, North, South}

// Offset moves the plane x units east and y units south.
func (p Plane) Offset(x, y int) Plane {
	var out Plane
	for i, pt := range p {
		out[i] = Point{X: pt.X + x, Y: pt.Y - y, Z: pt.Z}
	}
	return out
}

// String renders the plane in map syntax: "(x1 y1 z1) (x2 y2 z2) (x3 y3 z3)".
func (p Plane) String() string {
	var sb strings.Builder
	for i, pt := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(pt.Y))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(pt.Z))
		sb.WriteByte(')')
	}
	return sb.String()
}

// Tint is the editor color of a solid.
type Tint struct {
	R, G, B uint8
}

// Tint channels are drawn from [TintMin, 255].
const TintMin = 96

// RandomTint draws a tint from r.
func RandomTint(r *rand.Rand) Tint {
	ch := func() uint8 { return uint8(TintMin + r.IntN(256-TintMin)) }
	return Tint{R: ch(), G: ch(), B: ch()}
}

func (t Tint) String() string {
	return fmt.Sprintf("%d %d %d", t.R, t.G, t.B)
}

// Solid is the geometry of one grid cell.
type Solid struct {
	ID     int
	Cell   grid.Cell
	Tint   Tint
	Planes [6]Plane
}

// NewSolid builds the solid for cell c.
func NewSolid(id int, c grid.Cell, tint Tint) Solid {
	s := Solid{ID: id, Cell: c, Tint: tint}
	x, y := c.Col*Size, c.Row*Size
	for i, p := range SidePlanes {
		s.Planes[i] = p.Offset(x, y)
	}
	return s
}

// StartPos is the displacement start position: the solid's south-west corner.
func StartPos(c grid.Cell) Point {
	return Point{X: c.Col * Size, Y: -Size * (c.Row + 1), Z: 0}
}

// Generate builds every solid of dims in row-major order with ids starting at 1.
// tints is indexed the same way and must hold dims.Count() entries.
func Generate(dims grid.Dimensions, tints []Tint) []Solid {
	solids := make([]Solid, dims.Count())
	for n := range solids {
		solids[n] = NewSolid(n+1, dims.Cell(n), tints[n])
	}
	return solids
}

// RandomTints draws n tints in order.
func RandomTints(r *rand.Rand, n int) []Tint {
	tints := make([]Tint, n)
	for i := range tints {
		tints[i] = RandomTint(r)
	}
	return tints
}
