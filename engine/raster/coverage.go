package raster

import (
	"image"
	"image/color"
)

// Coverage is a gray-scale raster of sampled glyph coverage. The gray value is
// replicated into R, G and B; pixels which received ink have alpha 255, all
// other pixels are transparent black.
type Coverage struct {
	img *image.RGBA
}

// NewCoverage creates an empty raster of w × h pixels. Dimensions are clamped
// to at least 1.
func NewCoverage(w, h int) *Coverage {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Coverage{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Width returns the width of the raster in pixels.
func (c *Coverage) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the raster in pixels.
func (c *Coverage) Height() int {
	return c.img.Rect.Dy()
}

// Intensity returns the coverage at (x, y). Positions outside the raster
// are background.
func (c *Coverage) Intensity(x, y int) uint8 {
	if !(image.Point{x, y}.In(c.img.Rect)) {
		return 0
	}
	return c.img.Pix[c.img.PixOffset(x, y)]
}

// Set stores a coverage value at (x, y), if it is inside the raster and
// greater than the value already present.
func (c *Coverage) Set(x, y int, v uint8) {
	if !(image.Point{x, y}.In(c.img.Rect)) || v == 0 {
		return
	}
	if c.Intensity(x, y) >= v {
		return
	}
	c.img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
}

// Image returns the underlying image.
func (c *Coverage) Image() *image.RGBA {
	return c.img
}
