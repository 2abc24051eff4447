// Package ports defines interfaces for external dependencies.
package ports

import (
	"image/color"
)

// Image is the pixel buffer shapes are rasterized onto.
//
// SetPixel owns the behavior for coordinates outside [0, Width) x [0, Height):
// implementations may clip, record or panic. Callers never pre-filter.
type Image interface {
	// SetPixel writes a single pixel.
	SetPixel(x, y int, c color.RGBA)

	// Width returns the buffer width in pixels.
	Width() int

	// Height returns the buffer height in pixels.
	Height() int
}
