// Package summarizer produces human-readable summaries of drawing runs.
package summarizer

import "time"

// Summary contains the data collected during one run.
type Summary struct {
	GeneratedAt time.Time

	Scene  SceneInfo
	Output OutputInfo
}

// SceneInfo describes what was drawn.
type SceneInfo struct {
	CanvasWidth  int
	CanvasHeight int
	Seed         uint64
	CircleMode   string
	Workers      int

	ExplicitShapes int
	RandomShapes   int
	PixelWrites    int64
}

// OutputInfo describes the written image.
type OutputInfo struct {
	Path     string
	Format   string
	Width    int
	Height   int
	FileSize int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithScene sets scene information.
func (b *Builder) WithScene(scene SceneInfo) *Builder {
	b.summary.Scene = scene
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
