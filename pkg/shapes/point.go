package shapes

import (
	"fmt"
	"image/color"

	"github.com/user/shapedraw/pkg/ports"
)

// Point is an integer pixel coordinate.
type Point struct {
	X int32
	Y int32
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point uniformly distributed in [0, width) x [0, height).
func RandomPoint(rnd ports.Random, width, height int32) Point {
	x := randomInt32(rnd, width)
	y := randomInt32(rnd, height)
	return Point{X: x, Y: y}
}

// Draw writes a single pixel.
func (p Point) Draw(img ports.Image, rnd ports.Random) {
	img.SetPixel(int(p.X), int(p.Y), p.Color(rnd))
}

// Color samples a random opaque color.
func (p Point) Color(rnd ports.Random) color.RGBA {
	return RandomColor(rnd)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

var _ Drawable = Point{}
