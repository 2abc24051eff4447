// Package compose implements the scene composition stage.
package compose

import (
	"context"
	"fmt"

	"github.com/user/shapedraw/pkg/pipeline"
	"github.com/user/shapedraw/pkg/ports"
	"github.com/user/shapedraw/pkg/shapes"
)

// Stage turns explicit shape descriptions and random shape counts into
// drawables. Explicit shapes come first, followed by random points, lines,
// triangles, rectangles and circles.
type Stage struct {
	rnd    ports.Random
	logger ports.Logger
}

// NewStage creates a new compose stage drawing random shapes from rnd.
func NewStage(rnd ports.Random, logger ports.Logger) *Stage {
	return &Stage{
		rnd:    rnd,
		logger: logger.WithComponent("compose"),
	}
}

// Execute builds the drawables.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if input.Random.Total() > 0 && (input.Width <= 0 || input.Height <= 0) {
		return pipeline.ComposeResult{}, fmt.Errorf("random shapes need a positive canvas, got %dx%d", input.Width, input.Height)
	}

	specs := make([]pipeline.ShapeSpec, 0, len(input.Shapes)+input.Random.Total())
	specs = append(specs, input.Shapes...)
	specs = append(specs, s.randomSpecs(input.Random, input.Width, input.Height)...)

	result := pipeline.ComposeResult{
		Drawables: make([]shapes.Drawable, 0, len(specs)),
		Resolved:  specs,
	}
	for i, spec := range specs {
		d, err := Build(spec, input.CircleMode)
		if err != nil {
			return pipeline.ComposeResult{}, fmt.Errorf("shape %d: %w", i, err)
		}
		s.logger.Debug("Shape %d: %v", i, d)
		result.Drawables = append(result.Drawables, d)
	}

	s.logger.Debug("Composed %d explicit and %d random shapes", len(input.Shapes), input.Random.Total())
	return result, nil
}

func (s *Stage) randomSpecs(counts pipeline.RandomCounts, w, h int32) []pipeline.ShapeSpec {
	var specs []pipeline.ShapeSpec
	for i := 0; i < counts.Points; i++ {
		specs = append(specs, Spec(shapes.RandomPoint(s.rnd, w, h)))
	}
	for i := 0; i < counts.Lines; i++ {
		specs = append(specs, Spec(shapes.RandomLine(s.rnd, w, h)))
	}
	for i := 0; i < counts.Triangles; i++ {
		specs = append(specs, Spec(shapes.RandomTriangle(s.rnd, w, h)))
	}
	for i := 0; i < counts.Rectangles; i++ {
		specs = append(specs, Spec(shapes.RandomRectangle(s.rnd, w, h)))
	}
	for i := 0; i < counts.Circles; i++ {
		specs = append(specs, Spec(shapes.RandomCircle(s.rnd, w, h)))
	}
	return specs
}

// Build converts a shape description into a drawable.
func Build(spec pipeline.ShapeSpec, mode pipeline.CircleMode) (shapes.Drawable, error) {
	want := spec.Kind.PointCount()
	if want == 0 {
		return nil, fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
	if len(spec.Points) != want {
		return nil, fmt.Errorf("%s needs %d points, got %d", spec.Kind, want, len(spec.Points))
	}

	p := make([]shapes.Point, len(spec.Points))
	for i, c := range spec.Points {
		p[i] = shapes.NewPoint(c[0], c[1])
	}

	switch spec.Kind {
	case pipeline.KindPoint:
		return p[0], nil
	case pipeline.KindLine:
		return shapes.NewLine(p[0], p[1]), nil
	case pipeline.KindTriangle:
		return shapes.NewTriangle(p[0], p[1], p[2]), nil
	case pipeline.KindRectangle:
		return shapes.NewRectangle(p[0], p[1]), nil
	default:
		c := shapes.NewCircle(p[0], spec.Radius)
		if mode == pipeline.CircleMidpoint {
			return shapes.MidpointCircle{Circle: c}, nil
		}
		return c, nil
	}
}

// Spec converts a shape back into its description.
func Spec(d shapes.Drawable) pipeline.ShapeSpec {
	coord := func(p shapes.Point) pipeline.Coord { return pipeline.Coord{p.X, p.Y} }

	switch v := d.(type) {
	case shapes.Point:
		return pipeline.ShapeSpec{Kind: pipeline.KindPoint, Points: []pipeline.Coord{coord(v)}}
	case shapes.Line:
		return pipeline.ShapeSpec{Kind: pipeline.KindLine, Points: []pipeline.Coord{coord(v.A), coord(v.B)}}
	case shapes.Triangle:
		return pipeline.ShapeSpec{Kind: pipeline.KindTriangle, Points: []pipeline.Coord{coord(v.A), coord(v.B), coord(v.C)}}
	case shapes.Rectangle:
		return pipeline.ShapeSpec{Kind: pipeline.KindRectangle, Points: []pipeline.Coord{coord(v.A), coord(v.B)}}
	case shapes.Circle:
		return pipeline.ShapeSpec{Kind: pipeline.KindCircle, Points: []pipeline.Coord{coord(v.Center)}, Radius: v.Radius}
	case shapes.MidpointCircle:
		return Spec(v.Circle)
	default:
		panic(fmt.Sprintf("compose: unsupported drawable %T", d))
	}
}
