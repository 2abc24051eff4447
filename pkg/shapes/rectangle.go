package shapes

import (
	"fmt"
	"image/color"

	"github.com/user/shapedraw/pkg/ports"
)

// Rectangle is an outline defined by two corner points, stored as given.
type Rectangle struct {
	A Point
	B Point
}

// NewRectangle creates a rectangle from two corners.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{A: a, B: b}
}

// RandomRectangle returns a rectangle with both corners independently uniform
// in [0, width) x [0, height).
func RandomRectangle(rnd ports.Random, width, height int32) Rectangle {
	a := RandomPoint(rnd, width, height)
	b := RandomPoint(rnd, width, height)
	return Rectangle{A: a, B: b}
}

// Corners returns the four vertices of the drawn outline in drawing order.
//
// The first vertical coordinate is taken from A.X, not A.Y, so the outline is
// only the expected axis-aligned rectangle when A.X == A.Y. Existing images
// depend on this, see DESIGN.md.
func (r Rectangle) Corners() [4]Point {
	x0 := r.A.X
	x1 := r.B.X
	y0 := r.A.X
	y1 := r.B.Y
	return [4]Point{
		{X: x0, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
		{X: x1, Y: y0},
	}
}

// Draw rasterizes the four edges of Corners as a closed loop in one color.
func (r Rectangle) Draw(img ports.Image, rnd ports.Random) {
	corners := r.Corners()
	c := r.Color(rnd)
	for i := range corners {
		DrawLine(img, corners[i], corners[(i+1)%len(corners)], c)
	}
}

// Color samples a random opaque color.
func (r Rectangle) Color(rnd ports.Random) color.RGBA {
	return RandomColor(rnd)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("rectangle %v %v", r.A, r.B)
}

var _ Drawable = Rectangle{}
