// Package luma computes gamma-correct perceptual luminance of sRGB pixels.
package luma

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// sRGB luminance (Y) coefficients.
const (
	RY = 0.212655
	GY = 0.715158
	BY = 0.072187
)

// InverseGamma converts an 8-bit sRGB channel to linear light.
func InverseGamma(c uint8) float64 {
	r, _, _ := colorful.Color{R: float64(c) / 255}.LinearRgb()
	return r
}

// Gamma converts linear light back to an 8-bit sRGB channel.
// The +0.5 bias and half-to-even rounding match the legacy encoder.
func Gamma(v float64) uint8 {
	v = colorful.LinearRgb(v, 0, 0).R
	n := math.RoundToEven(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Luminance returns the gray value of c. Alpha is ignored.
func Luminance(c color.NRGBA) uint8 {
	r, g, b := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.LinearRgb()
	return Gamma(RY*r + GY*g + BY*b)
}
