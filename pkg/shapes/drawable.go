// Package shapes rasterizes primitive 2-D shapes onto a ports.Image.
//
// Shapes are immutable values. Every Draw call samples a fresh opaque color
// from the supplied ports.Random, so drawing the same shape twice produces
// the same pixels in (usually) different colors.
package shapes

import (
	"image/color"

	"github.com/user/shapedraw/pkg/ports"
)

// Drawable is implemented by every shape.
type Drawable interface {
	// Draw writes the shape's pixels into img using one color sampled from rnd.
	Draw(img ports.Image, rnd ports.Random)

	// Color samples a color for the shape.
	Color(rnd ports.Random) color.RGBA
}

// RandomColor returns a color with independently uniform r, g and b channels
// in [0, 255] and alpha fixed at 255.
func RandomColor(rnd ports.Random) color.RGBA {
	return color.RGBA{
		R: uint8(rnd.IntRange(0, 255)),
		G: uint8(rnd.IntRange(0, 255)),
		B: uint8(rnd.IntRange(0, 255)),
		A: 255,
	}
}

// randomInt32 returns a value in [0, n).
func randomInt32(rnd ports.Random, n int32) int32 {
	return int32(rnd.IntN(int(n)))
}
