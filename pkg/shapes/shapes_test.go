package shapes

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/shapedraw/pkg/adapters/mathrandom"
	"github.com/user/shapedraw/pkg/mocks"
)

func TestRandomColor(t *testing.T) {
	rnd := &mocks.Random{IntRangeFunc: mocks.Sequence(0, 128, 255)}
	got := RandomColor(rnd)

	want := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRandomColor_Opaque(t *testing.T) {
	rnd := mathrandom.New(7)
	for i := 0; i < 1000; i++ {
		if c := RandomColor(rnd); c.A != 255 {
			t.Fatalf("expected alpha 255, got %d", c.A)
		}
	}
}

func TestPoint_Draw(t *testing.T) {
	img := mocks.NewImage(10, 10)
	rnd := &mocks.Random{}

	NewPoint(4, 6).Draw(img, rnd)

	want := []mocks.PixelWrite{{X: 4, Y: 6, Color: color.RGBA{255, 255, 255, 255}}}
	if d := cmp.Diff(want, img.Writes()); d != "" {
		t.Errorf("writes mismatch (-want +got):\n%s", d)
	}
}

func TestTriangle_Draw(t *testing.T) {
	img := mocks.NewImage(20, 20)
	rnd := &mocks.Random{IntRangeFunc: mocks.Sequence(1, 2, 3, 4, 5, 6, 7, 8, 9)}

	NewTriangle(NewPoint(0, 0), NewPoint(10, 0), NewPoint(0, 10)).Draw(img, rnd)

	if rnd.IntRangeCalls != 3 {
		t.Errorf("expected exactly one color sample per draw, got %d channel draws", rnd.IntRangeCalls)
	}
	colors := img.Colors()
	if len(colors) != 1 || !colors[color.RGBA{1, 2, 3, 255}] {
		t.Errorf("expected a single color for all edges, got %v", colors)
	}

	set := img.PointSet()
	for i := 0; i <= 10; i++ {
		for _, p := range []image.Point{{i, 0}, {0, i}, {10 - i, i}} {
			if !set[p] {
				t.Errorf("expected edge pixel %v", p)
			}
		}
	}
	// the even-length diagonal edge is a 21-pixel staircase
	if n := len(img.Writes()); n != 43 {
		t.Errorf("expected 43 writes, got %d", n)
	}
}

func TestTriangle_Collinear(t *testing.T) {
	img := mocks.NewImage(20, 20)
	NewTriangle(NewPoint(0, 0), NewPoint(5, 0), NewPoint(10, 0)).Draw(img, &mocks.Random{})

	set := img.PointSet()
	if len(set) != 11 {
		t.Errorf("expected 11 distinct pixels on the degenerate outline, got %d", len(set))
	}
}

func rectBorder(x0, y0, x1, y1 int) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for x := x0; x <= x1; x++ {
		set[image.Pt(x, y0)] = true
		set[image.Pt(x, y1)] = true
	}
	for y := y0; y <= y1; y++ {
		set[image.Pt(x0, y)] = true
		set[image.Pt(x1, y)] = true
	}
	return set
}

func TestRectangle_Draw(t *testing.T) {
	img := mocks.NewImage(10, 10)
	rnd := &mocks.Random{}

	NewRectangle(NewPoint(0, 0), NewPoint(4, 4)).Draw(img, rnd)

	if d := cmp.Diff(rectBorder(0, 0, 4, 4), img.PointSet()); d != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", d)
	}
	// four edges of five pixels each
	if n := len(img.Writes()); n != 20 {
		t.Errorf("expected 20 writes, got %d", n)
	}
	if rnd.IntRangeCalls != 3 {
		t.Errorf("expected one color sample, got %d channel draws", rnd.IntRangeCalls)
	}
}

func TestRectangle_CornersUseAXForTop(t *testing.T) {
	r := NewRectangle(NewPoint(2, 5), NewPoint(6, 9))

	want := [4]Point{{2, 2}, {2, 9}, {6, 9}, {6, 2}}
	if got := r.Corners(); got != want {
		t.Errorf("expected corners %v, got %v", want, got)
	}

	img := mocks.NewImage(10, 10)
	r.Draw(img, &mocks.Random{})
	if d := cmp.Diff(rectBorder(2, 2, 6, 9), img.PointSet()); d != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", d)
	}
}

func TestRectangle_CornersNotNormalized(t *testing.T) {
	r := NewRectangle(NewPoint(8, 1), NewPoint(3, 4))

	want := [4]Point{{8, 8}, {8, 4}, {3, 4}, {3, 8}}
	if got := r.Corners(); got != want {
		t.Errorf("expected corners %v, got %v", want, got)
	}
}

func TestCircle_ZeroRadius(t *testing.T) {
	img := mocks.NewImage(10, 10)
	NewCircle(NewPoint(3, 4), 0).Draw(img, &mocks.Random{})

	set := img.PointSet()
	if len(set) != 1 || !set[image.Pt(3, 4)] {
		t.Errorf("expected only the center to be written, got %v", set)
	}
}

func TestCircle_Draw(t *testing.T) {
	img := mocks.NewImage(100, 100)
	rnd := &mocks.Random{}
	c := NewCircle(NewPoint(50, 50), 10)

	c.Draw(img, rnd)

	writes := img.Writes()
	// accumulated 0.1 steps pass 360 after 3600 samples
	if n := len(writes); n != 3600 {
		t.Errorf("expected 3600 samples, got %d", n)
	}
	if first := image.Pt(writes[0].X, writes[0].Y); first != image.Pt(60, 50) {
		t.Errorf("expected first sample at angle 0 to be (60,50), got %v", first)
	}
	for _, w := range writes {
		d := math.Hypot(float64(w.X-50), float64(w.Y-50))
		if d > 10 || d < 10-math.Sqrt2 {
			t.Fatalf("pixel (%d,%d) at distance %.2f from center", w.X, w.Y, d)
		}
	}
	if rnd.IntRangeCalls != 3 {
		t.Errorf("expected one color sample, got %d channel draws", rnd.IntRangeCalls)
	}
}

func TestCircle_NegativeRadius(t *testing.T) {
	img := mocks.NewImage(10, 10)
	NewCircle(NewPoint(5, 5), -3).Draw(img, &mocks.Random{})

	if first := img.Points()[0]; first != image.Pt(2, 5) {
		t.Errorf("expected negative radius to mirror the start to (2,5), got %v", first)
	}
}

func TestMidpointCircle_Draw(t *testing.T) {
	img := mocks.NewImage(100, 100)
	MidpointCircle{NewCircle(NewPoint(50, 50), 20)}.Draw(img, &mocks.Random{})

	set := img.PointSet()
	for _, p := range []image.Point{{70, 50}, {30, 50}, {50, 70}, {50, 30}} {
		if !set[p] {
			t.Errorf("expected axis pixel %v", p)
		}
	}
	for p := range set {
		d := math.Hypot(float64(p.X-50), float64(p.Y-50))
		if math.Abs(d-20) > 1 {
			t.Errorf("pixel %v at distance %.2f from center", p, d)
		}
		mirror := image.Pt(100-p.X, 100-p.Y)
		if !set[mirror] {
			t.Errorf("pixel %v has no mirror %v", p, mirror)
		}
	}
}

func TestRandomConstructorsStayInBounds(t *testing.T) {
	const w, h = 13, 7
	rnd := mathrandom.New(99)

	in := func(p Point) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}

	for i := 0; i < 5000; i++ {
		if p := RandomPoint(rnd, w, h); !in(p) {
			t.Fatalf("RandomPoint out of bounds: %v", p)
		}
		if l := RandomLine(rnd, w, h); !in(l.A) || !in(l.B) {
			t.Fatalf("RandomLine out of bounds: %v", l)
		}
		if tr := RandomTriangle(rnd, w, h); !in(tr.A) || !in(tr.B) || !in(tr.C) {
			t.Fatalf("RandomTriangle out of bounds: %v", tr)
		}
		if r := RandomRectangle(rnd, w, h); !in(r.A) || !in(r.B) {
			t.Fatalf("RandomRectangle out of bounds: %v", r)
		}
		c := RandomCircle(rnd, w, h)
		if !in(c.Center) || c.Radius < 0 || c.Radius >= h {
			t.Fatalf("RandomCircle out of bounds: %v", c)
		}
	}
}

func TestRandomCircle_RadiusBoundedByHeight(t *testing.T) {
	rnd := &mocks.Random{}
	c := RandomCircle(rnd, 5, 50)

	// default mock returns n-1
	if c.Radius != 49 {
		t.Errorf("expected radius drawn from [0, height), got %d", c.Radius)
	}
	if c.Center != NewPoint(4, 49) {
		t.Errorf("expected center (4,49), got %v", c.Center)
	}
}
