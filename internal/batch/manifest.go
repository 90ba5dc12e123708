package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"disp-alpha-tools/internal/grid"
)

// ManifestEntry summarizes the paint weights of one solid.
type ManifestEntry struct {
	ID     int     `json:"id"`
	Col    int     `json:"col"`
	Row    int     `json:"row"`
	Color  string  `json:"color"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Manifest describes one conversion.
type Manifest struct {
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	XRequired int             `json:"x_required"`
	YRequired int             `json:"y_required"`
	Solids    []ManifestEntry `json:"solids"`
}

// BuildManifest computes per-solid weight statistics for a run.
func BuildManifest(width, height int, dims grid.Dimensions, results []Result) Manifest {
	m := Manifest{
		Width:     width,
		Height:    height,
		XRequired: dims.X,
		YRequired: dims.Y,
		Solids:    make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		v := r.Alphas.Values()
		mean, std := stat.MeanStdDev(v, nil)
		m.Solids[i] = ManifestEntry{
			ID:     r.Solid.ID,
			Col:    r.Solid.Cell.Col,
			Row:    r.Solid.Cell.Row,
			Color:  r.Solid.Tint.String(),
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(v),
			Max:    floats.Max(v),
		}
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
