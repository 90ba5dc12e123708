package main

import (
	"fmt"
	"os"

	"disp-alpha-tools/internal/alpha"
	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/sample"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: alphadump image")
		os.Exit(2)
	}
	img, err := sample.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	dims, err := grid.Compute(img.Width(), img.Height())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Image: %dx%d, grid %s (%d solids)\n", img.Width(), img.Height(), dims, dims.Count())

	// Alpha range over the whole image
	var minA, maxA uint8 = 255, 0
	opaque := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			a := img.Pixel(x, y).A
			minA = min(minA, a)
			maxA = max(maxA, a)
			if a == 255 {
				opaque++
			}
		}
	}
	total := img.Width() * img.Height()
	fmt.Printf("Alpha: min=%d max=%d opaque=%d/%d (%.0f%%)\n",
		minA, maxA, opaque, total, 100*float64(opaque)/float64(total))

	// Rows are printed north first, the way the image reads.
	for n, c := range dims.Cells() {
		g := alpha.Paint(img, c)
		fmt.Printf("\nSolid %d (col %d, row %d)\n", n+1, c.Col, c.Row)
		rows := g.Rows()
		for y := len(rows) - 1; y >= 0; y-- {
			fmt.Printf("  row%d: %s\n", y, rows[y])
		}
	}
}
