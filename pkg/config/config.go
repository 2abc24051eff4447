// Package config provides scene file loading and validation.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/shapedraw/pkg/orchestrator"
	"github.com/user/shapedraw/pkg/pipeline"
	"github.com/user/shapedraw/pkg/ports"
)

// MaxCanvasPixels bounds width*height so a canvas fits in memory.
const MaxCanvasPixels = 1 << 28

// Config is the YAML scene file.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Seed   uint64       `yaml:"seed"`

	// Output
	Output  string  `yaml:"output"`
	Format  string  `yaml:"format"`
	Quality int     `yaml:"quality"`
	Scale   float64 `yaml:"scale"`

	// Rasterization
	Workers    int    `yaml:"workers"`
	CircleMode string `yaml:"circle_mode"`

	// Scene
	Shapes []pipeline.ShapeSpec  `yaml:"shapes"`
	Random pipeline.RandomCounts `yaml:"random"`
}

// CanvasConfig describes the image buffer.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      1000,
			Height:     1000,
			Background: "#000000",
		},
		Output:     "image.png",
		Quality:    90,
		Scale:      1,
		Workers:    1,
		CircleMode: string(pipeline.CircleSample),
	}
}

// Load reads a YAML scene file on top of Defaults.
func Load(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// OutputFormat returns the configured format, falling back to the output
// file extension and then PNG.
func (c Config) OutputFormat() (ports.ImageFormat, error) {
	if c.Format != "" {
		f, ok := ports.ParseImageFormat(strings.ToLower(c.Format))
		if !ok {
			return f, fmt.Errorf("unknown format %q", c.Format)
		}
		return f, nil
	}
	f, _ := ports.ParseImageFormat(filepath.Ext(c.Output))
	return f, nil
}

// Validate checks the values the core itself accepts without question.
func (c Config) Validate() error {
	var errs []error

	switch w, h := c.Canvas.Width, c.Canvas.Height; {
	case w <= 0 || h <= 0:
		errs = append(errs, fmt.Errorf("canvas must be positive, got %dx%d", w, h))
	case w > math.MaxInt32 || h > math.MaxInt32:
		errs = append(errs, fmt.Errorf("canvas side must not exceed %d, got %dx%d", math.MaxInt32, w, h))
	case int64(w)*int64(h) > MaxCanvasPixels:
		errs = append(errs, fmt.Errorf("canvas %dx%d exceeds %d pixels", w, h, MaxCanvasPixels))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if _, err := c.OutputFormat(); err != nil {
		errs = append(errs, err)
	}
	if c.Quality < 1 || c.Quality > 100 {
		errs = append(errs, fmt.Errorf("quality must be 1-100, got %d", c.Quality))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", c.Scale))
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		errs = append(errs, err)
	}
	switch pipeline.CircleMode(c.CircleMode) {
	case pipeline.CircleSample, pipeline.CircleMidpoint:
	default:
		errs = append(errs, fmt.Errorf("unknown circle mode %q", c.CircleMode))
	}

	r := c.Random
	if r.Points < 0 || r.Lines < 0 || r.Triangles < 0 || r.Rectangles < 0 || r.Circles < 0 {
		errs = append(errs, errors.New("random shape counts must not be negative"))
	}

	for i, s := range c.Shapes {
		want := s.Kind.PointCount()
		switch {
		case want == 0:
			errs = append(errs, fmt.Errorf("shapes[%d]: unknown kind %q", i, s.Kind))
		case len(s.Points) != want:
			errs = append(errs, fmt.Errorf("shapes[%d]: %s needs %d points, got %d", i, s.Kind, want, len(s.Points)))
		}
	}

	return errors.Join(errs...)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ToOrchestratorConfig converts a validated Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	format, _ := c.OutputFormat()
	bg, _ := ParseColor(c.Canvas.Background)

	return orchestrator.Config{
		OutputPath: c.Output,
		Format:     format,
		Quality:    c.Quality,
		Scale:      c.Scale,

		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Background: bg,

		Shapes:     c.Shapes,
		Random:     c.Random,
		CircleMode: pipeline.CircleMode(c.CircleMode),

		Workers: c.Workers,
	}
}
