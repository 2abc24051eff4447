package shapes

import (
	"fmt"
	"image/color"

	"github.com/user/shapedraw/pkg/ports"
)

// Triangle is the outline through three points. Collinear points are allowed.
type Triangle struct {
	A Point
	B Point
	C Point
}

// NewTriangle creates a triangle from three points.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// RandomTriangle returns a triangle with three independently uniform vertices
// in [0, width) x [0, height).
func RandomTriangle(rnd ports.Random, width, height int32) Triangle {
	a := RandomPoint(rnd, width, height)
	b := RandomPoint(rnd, width, height)
	c := RandomPoint(rnd, width, height)
	return Triangle{A: a, B: b, C: c}
}

// Draw rasterizes the edges (A,B), (B,C) and (C,A). The color is sampled once
// for the whole outline.
func (t Triangle) Draw(img ports.Image, rnd ports.Random) {
	c := t.Color(rnd)
	DrawLine(img, t.A, t.B, c)
	DrawLine(img, t.B, t.C, c)
	DrawLine(img, t.C, t.A, c)
}

// Color samples a random opaque color.
func (t Triangle) Color(rnd ports.Random) color.RGBA {
	return RandomColor(rnd)
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle %v %v %v", t.A, t.B, t.C)
}

var _ Drawable = Triangle{}
