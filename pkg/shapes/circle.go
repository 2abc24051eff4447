package shapes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/user/shapedraw/pkg/ports"
)

// circleStepDegrees is the angular sampling step of Circle.Draw.
const circleStepDegrees = 0.1

// Circle is a circle outline. Radius is not validated.
type Circle struct {
	Center Point
	Radius int32
}

// NewCircle creates a circle around center.
func NewCircle(center Point, radius int32) Circle {
	return Circle{Center: center, Radius: radius}
}

// RandomCircle returns a circle with its center uniform in
// [0, width) x [0, height) and its radius uniform in [0, height).
// The radius may exceed width.
func RandomCircle(rnd ports.Random, width, height int32) Circle {
	center := RandomPoint(rnd, width, height)
	radius := randomInt32(rnd, height)
	return Circle{Center: center, Radius: radius}
}

// Draw samples the boundary every 0.1 degrees, starting at 0 and stopping once
// the accumulated angle passes 360, truncating each offset toward zero. Large circles
// show gaps and small ones get repeated writes of the same pixel.
func (c Circle) Draw(img ports.Image, rnd ports.Random) {
	col := c.Color(rnd)
	r := float64(c.Radius)
	cx, cy := int(c.Center.X), int(c.Center.Y)

	for angle := 0.0; ; {
		rad := angle * math.Pi / 180
		x := int(r * math.Cos(rad))
		y := int(r * math.Sin(rad))
		img.SetPixel(cx+x, cy+y, col)

		angle += circleStepDegrees
		if angle > 360 {
			break
		}
	}
}

// Color samples a random opaque color.
func (c Circle) Color(rnd ports.Random) color.RGBA {
	return RandomColor(rnd)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle %v r=%d", c.Center, c.Radius)
}

// MidpointCircle draws the same circle with the integer midpoint algorithm,
// giving a gap-free outline with one write per boundary pixel per octant.
type MidpointCircle struct {
	Circle
}

// Draw rasterizes the outline by walking one octant and mirroring it.
// A negative radius is treated as its absolute value.
func (m MidpointCircle) Draw(img ports.Image, rnd ports.Random) {
	col := m.Color(rnd)
	cx, cy := int(m.Center.X), int(m.Center.Y)

	x := abs(int(m.Radius))
	y := 0
	err := 0
	for x >= y {
		img.SetPixel(cx+x, cy+y, col)
		img.SetPixel(cx+y, cy+x, col)
		img.SetPixel(cx-y, cy+x, col)
		img.SetPixel(cx-x, cy+y, col)
		img.SetPixel(cx-x, cy-y, col)
		img.SetPixel(cx-y, cy-x, col)
		img.SetPixel(cx+y, cy-x, col)
		img.SetPixel(cx+x, cy-y, col)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

func (m MidpointCircle) String() string {
	return fmt.Sprintf("midpoint %v", m.Circle)
}

var (
	_ Drawable = Circle{}
	_ Drawable = MidpointCircle{}
)
