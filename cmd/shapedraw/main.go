// Package main provides the CLI entry point for shapedraw.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/shapedraw/pkg/adapters/filesink"
	"github.com/user/shapedraw/pkg/adapters/ggrenderer"
	"github.com/user/shapedraw/pkg/adapters/logger"
	"github.com/user/shapedraw/pkg/adapters/mathrandom"
	"github.com/user/shapedraw/pkg/adapters/nullsink"
	"github.com/user/shapedraw/pkg/adapters/osfilesystem"
	"github.com/user/shapedraw/pkg/config"
	"github.com/user/shapedraw/pkg/orchestrator"
	"github.com/user/shapedraw/pkg/ports"
	"github.com/user/shapedraw/pkg/stages/compose"
	"github.com/user/shapedraw/pkg/stages/encode"
	"github.com/user/shapedraw/pkg/stages/raster"
	"github.com/user/shapedraw/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "shapedraw",
		Usage:   l10n.T("Draw points, lines and shapes onto a raster image"),
		Version: version,
		Commands: []*cli.Command{
			drawCommand(),
			randomCommand(),
			versionCommand(),
		},
	}
}

func drawCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("Scene file (YAML)"),
			Required: true,
			Category: l10n.T("Scene"),
		},
	}
	return &cli.Command{
		Name:        "draw",
		Usage:       l10n.T("Draw the shapes described in a scene file"),
		Description: l10n.T("Load a YAML scene file, draw its shapes and save the image."),
		Flags:       append(flags, commonFlags()...),
		Action: func(c *cli.Context) error {
			fs := osfilesystem.New()
			cfg, err := config.Load(fs, c.String("config"))
			if err != nil {
				return err
			}
			return run(c, fs, cfg)
		},
	}
}

func randomCommand() *cli.Command {
	counts := []struct {
		name  string
		usage string
		value int
	}{
		{"points", "Number of random points", 0},
		{"lines", "Number of random lines", 10},
		{"triangles", "Number of random triangles", 0},
		{"rectangles", "Number of random rectangles", 0},
		{"circles", "Number of random circles", 0},
	}

	var flags []cli.Flag
	for _, n := range counts {
		flags = append(flags, &cli.IntFlag{
			Name:     n.name,
			Usage:    l10n.T(n.usage),
			Value:    n.value,
			Category: l10n.T("Scene"),
		})
	}

	return &cli.Command{
		Name:        "random",
		Usage:       l10n.T("Draw randomly generated shapes"),
		Description: l10n.T("Generate random shapes within the canvas and save the image."),
		Flags:       append(flags, commonFlags()...),
		Action: func(c *cli.Context) error {
			cfg := config.Defaults()
			cfg.Random.Points = c.Int("points")
			cfg.Random.Lines = c.Int("lines")
			cfg.Random.Triangles = c.Int("triangles")
			cfg.Random.Rectangles = c.Int("rectangles")
			cfg.Random.Circles = c.Int("circles")
			return run(c, osfilesystem.New(), cfg)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("shapedraw version %s", version))
			return nil
		},
	}
}

// commonFlags are shared by draw and random. Values set on the command line
// override the scene file.
func commonFlags() []cli.Flag {
	output := l10n.T("Output")
	canvas := l10n.T("Canvas")
	drawing := l10n.T("Drawing")
	debug := l10n.T("Debug")
	logging := l10n.T("Logging")

	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output image path"), Category: output},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: l10n.T("Output format (png, jpeg, bmp, tiff; default from extension)"), Category: output},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)"), Category: output},
		&cli.Float64Flag{Name: "scale", Usage: l10n.T("Output scale factor"), Category: output},
		&cli.BoolFlag{Name: "force", Usage: l10n.T("Overwrite an existing output file"), Category: output},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output run summary to file (Markdown format)"), Category: output},

		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Canvas width in pixels"), Category: canvas},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Canvas height in pixels"), Category: canvas},
		&cli.StringFlag{Name: "background", Usage: l10n.T("Background color (hex, e.g., #000000)"), Category: canvas},

		&cli.Uint64Flag{Name: "seed", Usage: l10n.T("Random seed (0 = time-based)"), Category: drawing},
		&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: l10n.T("Number of drawing workers"), Category: drawing},
		&cli.StringFlag{Name: "circle-mode", Usage: l10n.T("Circle algorithm (sample, midpoint)"), Category: drawing},

		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: debug},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output"), Category: debug},

		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)"), Category: logging},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: logging},
	}
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}
	if c.IsSet("width") {
		cfg.Canvas.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Canvas.Height = c.Int("height")
	}
	if c.IsSet("background") {
		cfg.Canvas.Background = c.String("background")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("circle-mode") {
		cfg.CircleMode = c.String("circle-mode")
	}
}

func run(c *cli.Context, fs ports.FileSystem, cfg config.Config) error {
	applyFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	renderer := ggrenderer.New()
	rnd := mathrandom.New(cfg.Seed)

	var sink ports.DebugSink
	if c.Bool("debug") {
		dir := c.String("debug-dir")
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(dir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		compose.NewStage(rnd, log),
		raster.NewStage(rnd, log),
		encode.NewStage(renderer, log),
		renderer,
		fs,
		sink,
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.Overwrite = c.Bool("force")

	log.Info("Drawing with seed %d", rnd.Seed())

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	log.Info("Output saved to %s", cfg.Output)

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithScene(summarizer.SceneInfo{
				CanvasWidth:    cfg.Canvas.Width,
				CanvasHeight:   cfg.Canvas.Height,
				Seed:           rnd.Seed(),
				CircleMode:     cfg.CircleMode,
				Workers:        cfg.Workers,
				ExplicitShapes: len(cfg.Shapes),
				RandomShapes:   cfg.Random.Total(),
				PixelWrites:    result.PixelWrites,
			}).
			WithOutput(summarizer.OutputInfo{
				Path:     cfg.Output,
				Format:   orchConfig.Format.String(),
				Width:    result.OutputWidth,
				Height:   result.OutputHeight,
				FileSize: result.OutputBytes,
			}).
			Build()

		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := w.Write(path, summary); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}

	return nil
}
