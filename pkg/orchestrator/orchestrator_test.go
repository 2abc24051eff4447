package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/shapedraw/pkg/adapters/ggrenderer"
	"github.com/user/shapedraw/pkg/adapters/logger"
	"github.com/user/shapedraw/pkg/mocks"
	"github.com/user/shapedraw/pkg/pipeline"
	"github.com/user/shapedraw/pkg/ports"
	"github.com/user/shapedraw/pkg/shapes"
	"github.com/user/shapedraw/pkg/stages/compose"
	"github.com/user/shapedraw/pkg/stages/encode"
	"github.com/user/shapedraw/pkg/stages/raster"
)

// mockComposeStage is a mock for the compose stage.
type mockComposeStage struct {
	result pipeline.ComposeResult
	err    error
	input  pipeline.ComposeInput
}

func (m *mockComposeStage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.ComposeResult{}, m.err
	}
	return m.result, nil
}

// mockRasterStage is a mock for the raster stage.
type mockRasterStage struct {
	result pipeline.RasterResult
	err    error
	input  pipeline.RasterInput
}

func (m *mockRasterStage) Execute(ctx context.Context, input pipeline.RasterInput) (pipeline.RasterResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.RasterResult{}, m.err
	}
	return m.result, nil
}

// mockEncodeStage is a mock for the encode stage.
type mockEncodeStage struct {
	result pipeline.EncodeResult
	err    error
	input  pipeline.EncodeInput
}

func (m *mockEncodeStage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.EncodeResult{}, m.err
	}
	return m.result, nil
}

func newMockStages() (*mockComposeStage, *mockRasterStage, *mockEncodeStage) {
	composeStage := &mockComposeStage{
		result: pipeline.ComposeResult{
			Drawables: []shapes.Drawable{shapes.NewPoint(1, 1)},
			Resolved: []pipeline.ShapeSpec{
				{Kind: pipeline.KindPoint, Points: []pipeline.Coord{{1, 1}}},
			},
		},
	}
	rasterStage := &mockRasterStage{
		result: pipeline.RasterResult{Shapes: 1, PixelWrites: 1},
	}
	encodeStage := &mockEncodeStage{
		result: pipeline.EncodeResult{Data: []byte{0x89, 'P', 'N', 'G'}, Width: 10, Height: 10},
	}
	return composeStage, rasterStage, encodeStage
}

func TestOrchestrator_Run(t *testing.T) {
	composeStage, rasterStage, encodeStage := newMockStages()
	mockFS := mocks.NewFileSystem()
	mockSink := mocks.NewDebugSink(false)

	orch := New(composeStage, rasterStage, encodeStage, &mocks.Renderer{}, mockFS, mockSink, logger.NewNoop())

	config := DefaultConfig()
	config.OutputPath = "out.png"
	config.Width = 10
	config.Height = 10
	config.Random = pipeline.RandomCounts{Lines: 2}

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if composeStage.input.Width != 10 || composeStage.input.Random.Lines != 2 {
		t.Errorf("compose stage got unexpected input %+v", composeStage.input)
	}
	if rasterStage.input.Image == nil || len(rasterStage.input.Drawables) != 1 {
		t.Errorf("raster stage got unexpected input %+v", rasterStage.input)
	}
	if encodeStage.input.Scale != 1 {
		t.Errorf("expected scale 1, got %g", encodeStage.input.Scale)
	}

	data, ok := mockFS.GetFile("out.png")
	if !ok {
		t.Fatal("expected output file to be written")
	}
	if string(data) != "\x89PNG" {
		t.Errorf("unexpected output %q", data)
	}

	if result.Shapes != 1 || result.OutputBytes != 4 || result.OutputWidth != 10 {
		t.Errorf("unexpected result %+v", result)
	}
	if mockSink.Scene != nil || mockSink.Snapshot != nil {
		t.Error("expected disabled sink to receive nothing")
	}
}

func TestOrchestrator_Run_DebugSink(t *testing.T) {
	composeStage, rasterStage, encodeStage := newMockStages()
	mockSink := mocks.NewDebugSink(true)

	orch := New(composeStage, rasterStage, encodeStage, &mocks.Renderer{}, mocks.NewFileSystem(), mockSink, logger.NewNoop())

	config := DefaultConfig()
	config.OutputPath = "out.png"

	if _, err := orch.Run(context.Background(), config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(mockSink.Scene), "kind: point") {
		t.Errorf("expected resolved scene YAML, got %q", mockSink.Scene)
	}
	if mockSink.Snapshot == nil {
		t.Error("expected snapshot to be saved")
	}
}

func TestOrchestrator_Run_RefusesOverwrite(t *testing.T) {
	composeStage, rasterStage, encodeStage := newMockStages()
	mockFS := mocks.NewFileSystem()
	mockFS.WriteFile("out.png", []byte("old"))

	orch := New(composeStage, rasterStage, encodeStage, &mocks.Renderer{}, mockFS, mocks.NewDebugSink(false), logger.NewNoop())

	config := DefaultConfig()
	config.OutputPath = "out.png"

	if _, err := orch.Run(context.Background(), config); err == nil {
		t.Fatal("expected error for existing output")
	}
	if data, _ := mockFS.GetFile("out.png"); string(data) != "old" {
		t.Error("expected existing output to be left alone")
	}

	config.Overwrite = true
	if _, err := orch.Run(context.Background(), config); err != nil {
		t.Fatalf("unexpected error with Overwrite: %v", err)
	}
	if data, _ := mockFS.GetFile("out.png"); string(data) == "old" {
		t.Error("expected output to be replaced")
	}
}

func TestOrchestrator_Run_StageErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *mockComposeStage, r *mockRasterStage, e *mockEncodeStage)
		want  string
	}{
		{"compose", func(c *mockComposeStage, r *mockRasterStage, e *mockEncodeStage) { c.err = errors.New("bad shape") }, "compose stage"},
		{"raster", func(c *mockComposeStage, r *mockRasterStage, e *mockEncodeStage) { r.err = context.Canceled }, "raster stage"},
		{"encode", func(c *mockComposeStage, r *mockRasterStage, e *mockEncodeStage) { e.err = errors.New("no encoder") }, "encode stage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composeStage, rasterStage, encodeStage := newMockStages()
			tt.setup(composeStage, rasterStage, encodeStage)
			mockFS := mocks.NewFileSystem()

			orch := New(composeStage, rasterStage, encodeStage, &mocks.Renderer{}, mockFS, mocks.NewDebugSink(false), logger.NewNoop())

			config := DefaultConfig()
			config.OutputPath = "out.png"

			_, err := orch.Run(context.Background(), config)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q error, got %v", tt.want, err)
			}
			if _, ok := mockFS.GetFile("out.png"); ok {
				t.Error("expected no output on failure")
			}
		})
	}
}

func TestOrchestrator_Run_RealStages(t *testing.T) {
	rnd := &mocks.Random{}
	log := logger.NewNoop()
	renderer := &mocks.Renderer{}
	var canvas *mocks.Canvas
	renderer.CreateCanvasFunc = func(width, height int, bg color.Color) ports.Canvas {
		canvas = mocks.NewCanvas(width, height)
		return canvas
	}

	orch := New(
		compose.NewStage(rnd, log),
		raster.NewStage(rnd, log),
		encode.NewStage(renderer, log),
		renderer,
		mocks.NewFileSystem(),
		mocks.NewDebugSink(false),
		log,
	)

	config := DefaultConfig()
	config.OutputPath = "scene.bmp"
	config.Format = ports.FormatBMP
	config.Width = 16
	config.Height = 16
	config.Shapes = []pipeline.ShapeSpec{
		{Kind: pipeline.KindLine, Points: []pipeline.Coord{{0, 0}, {5, 0}}},
	}

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PixelWrites != 6 {
		t.Errorf("expected 6 pixel writes, got %d", result.PixelWrites)
	}
	if n := len(canvas.Writes()); n != 6 {
		t.Errorf("expected 6 writes on the canvas, got %d", n)
	}
	if len(renderer.Formats) != 1 || renderer.Formats[0] != ports.FormatBMP {
		t.Errorf("expected one BMP encode, got %v", renderer.Formats)
	}
}

func TestOrchestrator_Run_CanvasOutOfRange(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"width beyond int32", math.MaxInt32 + 1, 10},
		{"height beyond int32", 10, math.MaxInt32 + 1},
		{"negative", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composeStage, rasterStage, encodeStage := newMockStages()
			mockFS := mocks.NewFileSystem()
			orch := New(composeStage, rasterStage, encodeStage, &mocks.Renderer{}, mockFS, mocks.NewDebugSink(false), logger.NewNoop())

			config := DefaultConfig()
			config.OutputPath = "out.png"
			config.Width = tt.width
			config.Height = tt.height
			config.Random = pipeline.RandomCounts{Points: 1}

			if _, err := orch.Run(context.Background(), config); err == nil {
				t.Fatal("expected error for out-of-range canvas")
			}
			if composeStage.input.Random.Points != 0 {
				t.Error("expected compose stage not to run")
			}
			if len(mockFS.Paths()) != 0 {
				t.Errorf("expected no files, got %v", mockFS.Paths())
			}
		})
	}
}

func TestOrchestrator_Run_DebugSaveFailureIsLogged(t *testing.T) {
	composeStage, rasterStage, encodeStage := newMockStages()
	mockSink := mocks.NewDebugSink(true)
	mockSink.SaveSceneFunc = func(data []byte) error { return errors.New("disk full") }

	var out, errOut bytes.Buffer
	log := logger.NewConsoleWriter(ports.LevelWarn, &out, &errOut)
	mockFS := mocks.NewFileSystem()

	orch := New(composeStage, rasterStage, encodeStage, &mocks.Renderer{}, mockFS, mockSink, log)

	config := DefaultConfig()
	config.OutputPath = "out.png"

	if _, err := orch.Run(context.Background(), config); err != nil {
		t.Fatalf("debug failures must not fail the run: %v", err)
	}
	if !strings.Contains(errOut.String(), "disk full") {
		t.Errorf("expected warning on stderr, got %q", errOut.String())
	}
	if _, ok := mockFS.GetFile("out.png"); !ok {
		t.Error("expected output to be written")
	}
}

func TestOrchestrator_Run_EncodedOutput(t *testing.T) {
	rnd := &mocks.Random{}
	log := logger.NewNoop()
	renderer := ggrenderer.New()
	mockFS := mocks.NewFileSystem()

	orch := New(
		compose.NewStage(rnd, log),
		raster.NewStage(rnd, log),
		encode.NewStage(renderer, log),
		renderer,
		mockFS,
		mocks.NewDebugSink(false),
		log,
	)

	config := DefaultConfig()
	config.OutputPath = "out/scene.bmp"
	config.Format = ports.FormatBMP
	config.Width = 8
	config.Height = 4
	config.Shapes = []pipeline.ShapeSpec{
		{Kind: pipeline.KindLine, Points: []pipeline.Coord{{0, 0}, {5, 0}}},
	}

	if _, err := orch.Run(context.Background(), config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d := cmp.Diff([]string{"out/scene.bmp"}, mockFS.Writes()); d != "" {
		t.Errorf("writes mismatch (-want +got):\n%s", d)
	}

	img, format, err := mockFS.DecodeImage("out/scene.bmp")
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "bmp" {
		t.Errorf("expected bmp, got %s", format)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}

	// The default mock random source yields white.
	white := color.RGBAModel.Convert(color.White)
	black := color.RGBAModel.Convert(color.Black)
	for x := 0; x < 8; x++ {
		want := black
		if x <= 5 {
			want = white
		}
		if got := color.RGBAModel.Convert(img.At(x, 0)); got != want {
			t.Errorf("pixel (%d,0): expected %v, got %v", x, want, got)
		}
	}
}
