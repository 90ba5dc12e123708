package batch

import (
	"encoding/json"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disp-alpha-tools/internal/brush"
	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/sample"
)

// gradient varies luminance across the image so cells differ.
type gradient struct{ w, h int }

func (g gradient) Width() int  { return g.w }
func (g gradient) Height() int { return g.h }
func (g gradient) Pixel(x, y int) color.NRGBA {
	v := uint8((x*7 + y*3) % 256)
	return color.NRGBA{v, v, v, uint8(255 - y)}
}

func testConfig(workers int) Config {
	dims := grid.Dimensions{X: 5, Y: 4}
	return Config{
		Sample:  gradient{w: 41, h: 33},
		Dims:    dims,
		Tints:   brush.RandomTints(rand.New(rand.NewPCG(1, 1)), dims.Count()),
		Workers: workers,
	}
}

func TestRunIndexOrder(t *testing.T) {
	results := Run(testConfig(1))
	require.Len(t, results, 20)
	for n, r := range results {
		assert.Equal(t, n, r.Index)
		assert.Equal(t, n+1, r.Solid.ID)
		assert.Equal(t, grid.Cell{Col: n % 5, Row: n / 5}, r.Solid.Cell)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	seq := Run(testConfig(1))
	for _, workers := range []int{2, 3, 8, 64, 0} {
		par := Run(testConfig(workers))
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Errorf("workers=%d mismatch (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestBuildManifest(t *testing.T) {
	cfg := Config{
		Sample:  sample.Uniform{W: 17, H: 9, Color: color.NRGBA{255, 255, 255, 255}},
		Dims:    grid.Dimensions{X: 2, Y: 1},
		Tints:   []brush.Tint{{100, 110, 120}, {200, 210, 220}},
		Workers: 1,
	}
	m := BuildManifest(17, 9, cfg.Dims, Run(cfg))
	assert.Equal(t, 2, m.XRequired)
	assert.Equal(t, 1, m.YRequired)
	require.Len(t, m.Solids, 2)
	for _, e := range m.Solids {
		assert.Equal(t, 255.0, e.Mean)
		assert.Equal(t, 0.0, e.StdDev)
		assert.Equal(t, 255.0, e.Min)
		assert.Equal(t, 255.0, e.Max)
	}
	assert.Equal(t, "200 210 220", m.Solids[1].Color)
	assert.Equal(t, 1, m.Solids[1].Col)
}

func TestBuildManifestPartialCell(t *testing.T) {
	// 10 pixels wide: the second cell only covers two columns.
	cfg := Config{
		Sample:  sample.Uniform{W: 10, H: 9, Color: color.NRGBA{255, 255, 255, 255}},
		Dims:    grid.Dimensions{X: 2, Y: 1},
		Tints:   make([]brush.Tint, 2),
		Workers: 1,
	}
	m := BuildManifest(10, 9, cfg.Dims, Run(cfg))
	e := m.Solids[1]
	assert.Equal(t, 0.0, e.Min)
	assert.Equal(t, 255.0, e.Max)
	assert.InDelta(t, 255.0*2/9, e.Mean, 1e-9)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	m := Manifest{Width: 9, Height: 9, XRequired: 1, YRequired: 1,
		Solids: []ManifestEntry{{ID: 1, Mean: 3}}}
	require.NoError(t, WriteManifest(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Manifest
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)

	assert.Error(t, WriteManifest(filepath.Join(t.TempDir(), "missing", "m.json"), m))
}
