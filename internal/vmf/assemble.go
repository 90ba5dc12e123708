// Package vmf assembles Valve Map File documents from boilerplate templates.
package vmf

import (
	"strconv"
	"strings"

	"disp-alpha-tools/internal/brush"
	"disp-alpha-tools/internal/grid"
)

// Separator follows the header and every solid.
const Separator = "\n"

// Fields are the per-solid values substituted into the solid template.
// The start position is derived from the cell by Assemble.
type Fields struct {
	ID     int
	Color  string
	Planes [6]string
	Alphas string
}

// CellFunc renders the fields of the n-th cell.
type CellFunc func(n int, c grid.Cell) Fields

// RenderSolid substitutes f into the solid template.
func (t Templates) RenderSolid(c grid.Cell, f Fields) string {
	pairs := []string{
		PlaceholderID, strconv.Itoa(f.ID),
		PlaceholderColor, f.Color,
		PlaceholderStartPos, brush.StartPos(c).String(),
		PlaceholderAlphas, f.Alphas,
	}
	for i, p := range f.Planes {
		pairs = append(pairs, PlanePlaceholder(i+1), p)
	}
	return strings.NewReplacer(pairs...).Replace(t.Solid)
}

// Assemble renders every cell of dims in row-major order and joins the solids
// between header and footer.
func Assemble(t Templates, dims grid.Dimensions, render CellFunc) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(t.Header)
	sb.WriteString(Separator)
	for n := 0; n < dims.Count(); n++ {
		c := dims.Cell(n)
		sb.WriteString(t.RenderSolid(c, render(n, c)))
		sb.WriteString(Separator)
	}
	sb.WriteString(t.Footer)
	return sb.String(), nil
}
