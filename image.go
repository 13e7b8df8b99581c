package qrgrid

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image renders the symbol and its quiet zone as a paletted image with
// scale pixels per module. Palette index 0 is white, index 1 is black.
func (c *Code) Image(scale int) image.Image {
	if scale < 1 {
		scale = 1
	}

	dimension := c.matrix.width
	side := (dimension + 2*c.margin) * scale

	img := image.NewPaletted(image.Rect(0, 0, side, side), color.Palette{
		color.White,
		color.Black,
	})

	for y := 0; y < dimension; y++ {
		for x := 0; x < dimension; x++ {
			if c.matrix.get(x, y) != 1 {
				continue
			}
			startX := (x + c.margin) * scale
			startY := (y + c.margin) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1)
				}
			}
		}
	}

	return img
}

// WritePNG writes the symbol to w as a PNG with scale pixels per module.
func (c *Code) WritePNG(w io.Writer, scale int) error {
	return png.Encode(w, c.Image(scale))
}
