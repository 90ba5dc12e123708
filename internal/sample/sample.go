// Package sample exposes decoded images as read-only pixel samples.
package sample

import (
	"image"
	"image/color"
)

// Sample is a read-only view of an image. Pixel returns non-premultiplied
// channels; x and y are relative to the top-left corner.
type Sample interface {
	Width() int
	Height() int
	Pixel(x, y int) color.NRGBA
}

// Bitmap is a Sample backed by an NRGBA buffer.
type Bitmap struct {
	img *image.NRGBA
}

// FromImage wraps img, converting it to NRGBA when needed.
func FromImage(img image.Image) *Bitmap {
	return &Bitmap{img: toNRGBA(img)}
}

func (b *Bitmap) Width() int  { return b.img.Bounds().Dx() }
func (b *Bitmap) Height() int { return b.img.Bounds().Dy() }

func (b *Bitmap) Pixel(x, y int) color.NRGBA {
	return b.img.NRGBAAt(x, y)
}

// Image returns the underlying buffer. Callers must not modify it.
func (b *Bitmap) Image() *image.NRGBA {
	return b.img
}

// Uniform is a Sample of a single color, handy for fills and tests.
type Uniform struct {
	W, H  int
	Color color.NRGBA
}

func (u Uniform) Width() int                 { return u.W }
func (u Uniform) Height() int                { return u.H }
func (u Uniform) Pixel(_, _ int) color.NRGBA { return u.Color }
