package luma

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuminanceExtremes(t *testing.T) {
	assert.Equal(t, uint8(255), Luminance(color.NRGBA{255, 255, 255, 255}))
	assert.Equal(t, uint8(0), Luminance(color.NRGBA{0, 0, 0, 255}))
}

func TestLuminanceIgnoresAlpha(t *testing.T) {
	c := color.NRGBA{R: 200, G: 40, B: 90}
	want := Luminance(c)
	for _, a := range []uint8{0, 1, 128, 255} {
		c.A = a
		assert.Equal(t, want, Luminance(c))
	}
}

func TestLuminanceWeighsGreen(t *testing.T) {
	red := Luminance(color.NRGBA{R: 255, A: 255})
	green := Luminance(color.NRGBA{G: 255, A: 255})
	blue := Luminance(color.NRGBA{B: 255, A: 255})
	assert.Greater(t, green, red)
	assert.Greater(t, red, blue)
}

func TestInverseGamma(t *testing.T) {
	assert.Equal(t, 0.0, InverseGamma(0))
	assert.InDelta(t, 1.0, InverseGamma(255), 1e-12)
	// 10/255 is below the 0.04045 knee.
	assert.InDelta(t, 10.0/255/12.92, InverseGamma(10), 1e-12)
	assert.InDelta(t, math.Pow((128.0/255+0.055)/1.055, 2.4), InverseGamma(128), 1e-12)
}

func TestGammaClamps(t *testing.T) {
	assert.Equal(t, uint8(0), Gamma(-1))
	assert.Equal(t, uint8(0), Gamma(0))
	assert.Equal(t, uint8(255), Gamma(1))
	assert.Equal(t, uint8(255), Gamma(4))
}

func TestGammaMonotonic(t *testing.T) {
	prev := Gamma(0)
	for i := 1; i <= 1000; i++ {
		cur := Gamma(float64(i) / 1000)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestGrayRoundTrip(t *testing.T) {
	// A gray pixel maps back onto itself, or one step above due to the encoder bias.
	for v := 0; v < 256; v++ {
		c := uint8(v)
		got := Luminance(color.NRGBA{c, c, c, 255})
		assert.InDelta(t, v, int(got), 1, "gray %d", v)
	}
}
