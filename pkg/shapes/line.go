package shapes

import (
	"fmt"
	"image/color"

	"github.com/user/shapedraw/pkg/ports"
)

// DrawLine writes the pixels of the segment from a to b, both ends included,
// using an integer error-accumulation (Bresenham) walk valid in all eight
// octants. If a == b exactly one pixel is written. Coordinates are passed to
// img unfiltered.
func DrawLine(img ports.Image, a, b Point, c color.RGBA) {
	// int keeps 2*err from overflowing for extreme int32 coordinates.
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	// Never zero, even for vertical or horizontal lines.
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	var err int
	if dx > dy {
		err = dx / 2
	} else {
		err = -dy / 2
	}

	for {
		img.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		err2 := 2 * err
		if err2 > -dx {
			err -= dy
			x0 += sx
		}
		if err2 < dy {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Line is a segment between two points. The points may coincide.
type Line struct {
	A Point
	B Point
}

// NewLine creates a line from a to b.
func NewLine(a, b Point) Line {
	return Line{A: a, B: b}
}

// RandomLine returns a line with both endpoints independently uniform in
// [0, width) x [0, height). The result may be degenerate.
func RandomLine(rnd ports.Random, width, height int32) Line {
	a := RandomPoint(rnd, width, height)
	b := RandomPoint(rnd, width, height)
	return Line{A: a, B: b}
}

// Draw rasterizes the segment in one random color.
func (l Line) Draw(img ports.Image, rnd ports.Random) {
	DrawLine(img, l.A, l.B, l.Color(rnd))
}

// Color samples a random opaque color.
func (l Line) Color(rnd ports.Random) color.RGBA {
	return RandomColor(rnd)
}

func (l Line) String() string {
	return fmt.Sprintf("line %v-%v", l.A, l.B)
}

var _ Drawable = Line{}
