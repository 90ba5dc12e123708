package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor without smoothing, so every
// vertex stays a crisp square.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
