package pipeline

import (
	"image"

	"github.com/user/shapedraw/pkg/ports"
	"github.com/user/shapedraw/pkg/shapes"
)

// =============================================================================
// Scene Description
// =============================================================================

// ShapeKind names a shape variant.
type ShapeKind string

const (
	KindPoint     ShapeKind = "point"
	KindLine      ShapeKind = "line"
	KindTriangle  ShapeKind = "triangle"
	KindRectangle ShapeKind = "rectangle"
	KindCircle    ShapeKind = "circle"
)

// PointCount returns how many points a shape of this kind is defined by,
// or 0 for an unknown kind.
func (k ShapeKind) PointCount() int {
	switch k {
	case KindPoint, KindCircle:
		return 1
	case KindLine, KindRectangle:
		return 2
	case KindTriangle:
		return 3
	default:
		return 0
	}
}

// Coord is an (x, y) pair as written in scene files.
type Coord [2]int32

// ShapeSpec describes one explicit shape.
type ShapeSpec struct {
	Kind   ShapeKind `yaml:"kind"`
	Points []Coord   `yaml:"points,flow"`
	Radius int32     `yaml:"radius,omitempty"`
}

// RandomCounts is the number of randomly generated shapes per kind.
type RandomCounts struct {
	Points     int `yaml:"points"`
	Lines      int `yaml:"lines"`
	Triangles  int `yaml:"triangles"`
	Rectangles int `yaml:"rectangles"`
	Circles    int `yaml:"circles"`
}

// Total returns the number of random shapes requested.
func (c RandomCounts) Total() int {
	return c.Points + c.Lines + c.Triangles + c.Rectangles + c.Circles
}

// CircleMode selects the circle rasterizer.
type CircleMode string

const (
	// CircleSample samples the boundary at fixed angular steps.
	CircleSample CircleMode = "sample"
	// CircleMidpoint uses the integer midpoint algorithm.
	CircleMidpoint CircleMode = "midpoint"
)

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput describes the shapes to build.
type ComposeInput struct {
	Width      int32 // bounds for random shapes
	Height     int32
	Shapes     []ShapeSpec
	Random     RandomCounts
	CircleMode CircleMode
}

// ComposeResult contains the shapes in drawing order.
type ComposeResult struct {
	Drawables []shapes.Drawable

	// Resolved lists every shape, including the realized random ones,
	// in the same order as Drawables.
	Resolved []ShapeSpec
}

// =============================================================================
// Raster Stage Types
// =============================================================================

// RasterInput contains the shapes and the image to draw them on.
type RasterInput struct {
	Image     ports.Image
	Drawables []shapes.Drawable
	Workers   int // <= 1 draws sequentially in order
}

// RasterResult reports what was drawn.
type RasterResult struct {
	Shapes      int
	PixelWrites int64
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the image and output settings.
type EncodeInput struct {
	Image   image.Image
	Format  ports.ImageFormat
	Quality int     // JPEG quality 1-100
	Scale   float64 // 1 keeps the original size
}

// EncodeResult contains the encoded image.
type EncodeResult struct {
	Data   []byte
	Width  int
	Height int
}
