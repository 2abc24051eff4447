package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/shapedraw/pkg/ports"
)

// PixelWrite records one SetPixel call.
type PixelWrite struct {
	X, Y  int
	Color color.RGBA
}

// Image is a mock implementation of ports.Image that records every write
// in order. Out-of-range writes are recorded like any other.
type Image struct {
	mu     sync.Mutex
	width  int
	height int
	writes []PixelWrite
}

// NewImage creates a recording image with the given reported dimensions.
func NewImage(width, height int) *Image {
	return &Image{width: width, height: height}
}

func (m *Image) SetPixel(x, y int, c color.RGBA) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, PixelWrite{X: x, Y: y, Color: c})
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

// Writes returns a copy of all recorded writes.
func (m *Image) Writes() []PixelWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PixelWrite(nil), m.writes...)
}

// Points returns the coordinates of all recorded writes, in order.
func (m *Image) Points() []image.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	pts := make([]image.Point, len(m.writes))
	for i, w := range m.writes {
		pts[i] = image.Pt(w.X, w.Y)
	}
	return pts
}

// PointSet returns the distinct coordinates written.
func (m *Image) PointSet() map[image.Point]bool {
	set := make(map[image.Point]bool)
	for _, p := range m.Points() {
		set[p] = true
	}
	return set
}

// Colors returns the distinct colors written.
func (m *Image) Colors() map[color.RGBA]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(map[color.RGBA]bool)
	for _, w := range m.writes {
		set[w.Color] = true
	}
	return set
}

// Reset discards all recorded writes.
func (m *Image) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}

var _ ports.Image = (*Image)(nil)
