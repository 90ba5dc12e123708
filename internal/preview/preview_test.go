package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"disp-alpha-tools/internal/alpha"
	"disp-alpha-tools/internal/extract"
	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/sample"
)

// diag is bright where x == y, transparent below the diagonal.
type diag struct{ w, h int }

func (d diag) Width() int  { return d.w }
func (d diag) Height() int { return d.h }
func (d diag) Pixel(x, y int) color.NRGBA {
	switch {
	case x == y:
		return color.NRGBA{255, 255, 255, 255}
	case y > x:
		return color.NRGBA{255, 255, 255, 0}
	}
	return color.NRGBA{uint8(x * 10), uint8(y * 10), 90, 255}
}

func TestGray(t *testing.T) {
	img := diag{w: 12, h: 10}
	dims, err := grid.Compute(img.w, img.h)
	require.NoError(t, err)

	g := Gray(img, dims)
	assert.Equal(t, image.Rect(0, 0, 17, 17), g.Bounds())
	assert.Equal(t, uint8(255), g.GrayAt(3, 3).Y)
	assert.Equal(t, uint8(0), g.GrayAt(2, 5).Y)
	assert.Equal(t, alpha.Weight(img.Pixel(7, 1)), g.GrayAt(7, 1).Y)
	// Padding past the image.
	assert.Equal(t, uint8(0), g.GrayAt(16, 0).Y)
	assert.Equal(t, uint8(0), g.GrayAt(0, 16).Y)
}

func TestFromRecordsInvertsPaint(t *testing.T) {
	img := diag{w: 25, h: 17}
	dims, err := grid.Compute(img.w, img.h)
	require.NoError(t, err)

	var records []extract.Record
	for _, c := range dims.Cells() {
		g := alpha.Paint(img, c)
		records = append(records, extract.Record{
			X:    c.Col * 128,
			Y:    -128 * (c.Row + 1),
			Rows: g.Rows(),
		})
	}

	got, err := FromRecords(records)
	require.NoError(t, err)
	want := Gray(img, dims)
	assert.Equal(t, want.Bounds(), got.Bounds())
	assert.Equal(t, want.Pix, got.Pix)
}

func TestFromRecordsErrors(t *testing.T) {
	_, err := FromRecords(nil)
	assert.Error(t, err)

	_, err = FromRecords([]extract.Record{{X: 0, Y: 0, Rows: []string{"1 2"}}})
	assert.Error(t, err)
}

func TestUpscale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(1, 0, color.Gray{Y: 200})

	up := Upscale(src, 4)
	assert.Equal(t, image.Rect(0, 0, 8, 4), up.Bounds())
	r, _, _, _ := up.At(5, 3).RGBA()
	assert.Equal(t, uint32(200*0x101), r)
	r, _, _, _ = up.At(3, 3).RGBA()
	assert.Equal(t, uint32(0), r)

	assert.Same(t, src, Upscale(src, 1))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := Gray(sample.Uniform{W: 9, H: 9, Color: color.NRGBA{128, 128, 128, 255}}, grid.Dimensions{X: 1, Y: 1})

	pngPath := filepath.Join(dir, "p.png")
	require.NoError(t, Save(pngPath, img))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	back, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())

	webpPath := filepath.Join(dir, "p.webp")
	require.NoError(t, Save(webpPath, Upscale(img, 2)))
	wf, err := os.Open(webpPath)
	require.NoError(t, err)
	defer wf.Close()
	cfg, err := webp.DecodeConfig(wf)
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.Width)

	assert.Error(t, Save(filepath.Join(dir, "p.gif"), img))
}
