// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/user/shapedraw/pkg/pipeline"
	"github.com/user/shapedraw/pkg/ports"
)

// Config contains all configuration for a single drawing run.
type Config struct {
	// Output
	OutputPath string
	Format     ports.ImageFormat
	Quality    int
	Scale      float64
	Overwrite  bool

	// Canvas
	Width      int
	Height     int
	Background color.Color

	// Scene
	Shapes     []pipeline.ShapeSpec
	Random     pipeline.RandomCounts
	CircleMode pipeline.CircleMode

	// Rasterization
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format:     ports.FormatPNG,
		Quality:    90,
		Scale:      1,
		Width:      1000,
		Height:     1000,
		Background: color.Black,
		CircleMode: pipeline.CircleSample,
		Workers:    1,
	}
}

// RunResult summarizes a completed run.
type RunResult struct {
	Shapes       int
	PixelWrites  int64
	OutputWidth  int
	OutputHeight int
	OutputBytes  int
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	rasterStage  pipeline.Stage[pipeline.RasterInput, pipeline.RasterResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	renderer     ports.Renderer
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	rasterStage pipeline.Stage[pipeline.RasterInput, pipeline.RasterResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		composeStage: composeStage,
		rasterStage:  rasterStage,
		encodeStage:  encodeStage,
		renderer:     renderer,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// sceneDump is the debug representation of a resolved scene.
type sceneDump struct {
	Width  int                  `yaml:"width"`
	Height int                  `yaml:"height"`
	Shapes []pipeline.ShapeSpec `yaml:"shapes"`
}

// Run composes, rasterizes and encodes the scene, then writes the output file.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if config.Width < 0 || config.Width > math.MaxInt32 || config.Height < 0 || config.Height > math.MaxInt32 {
		return RunResult{}, fmt.Errorf("canvas %dx%d out of range", config.Width, config.Height)
	}

	if !config.Overwrite {
		exists, err := o.fs.Exists(config.OutputPath)
		if err != nil {
			return RunResult{}, fmt.Errorf("check output: %w", err)
		}
		if exists {
			o.logger.Error("Output %s already exists", config.OutputPath)
			return RunResult{}, fmt.Errorf("output %s already exists", config.OutputPath)
		}
	}

	// 1. Compose
	o.logger.Info("Composing scene")
	composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
		Width:      int32(config.Width),
		Height:     int32(config.Height),
		Shapes:     config.Shapes,
		Random:     config.Random,
		CircleMode: config.CircleMode,
	})
	if err != nil {
		o.logger.Error("Failed to compose scene: %s", err)
		return RunResult{}, fmt.Errorf("compose stage: %w", err)
	}

	if o.sink.Enabled() {
		dump := sceneDump{Width: config.Width, Height: config.Height, Shapes: composed.Resolved}
		if err := o.saveScene(dump); err != nil {
			o.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	// 2. Rasterize
	o.logger.Info("Drawing %d shapes on %dx%d canvas", len(composed.Drawables), config.Width, config.Height)
	canvas := o.renderer.CreateCanvas(config.Width, config.Height, config.Background)
	drawn, err := o.rasterStage.Execute(ctx, pipeline.RasterInput{
		Image:     canvas,
		Drawables: composed.Drawables,
		Workers:   config.Workers,
	})
	if err != nil {
		o.logger.Error("Failed to draw shapes: %s", err)
		return RunResult{}, fmt.Errorf("raster stage: %w", err)
	}

	if o.sink.Enabled() {
		if err := o.sink.SaveSnapshot(canvas.ToImage()); err != nil {
			o.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	// 3. Encode
	o.logger.Info("Encoding %s", config.Format)
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Image:   canvas.ToImage(),
		Format:  config.Format,
		Quality: config.Quality,
		Scale:   config.Scale,
	})
	if err != nil {
		o.logger.Error("Failed to encode image: %s", err)
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	// 4. Write
	if err := o.fs.WriteFile(config.OutputPath, encoded.Data); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	return RunResult{
		Shapes:       drawn.Shapes,
		PixelWrites:  drawn.PixelWrites,
		OutputWidth:  encoded.Width,
		OutputHeight: encoded.Height,
		OutputBytes:  len(encoded.Data),
	}, nil
}

func (o *Orchestrator) saveScene(dump sceneDump) error {
	data, err := yaml.Marshal(dump)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	return o.sink.SaveScene(data)
}
