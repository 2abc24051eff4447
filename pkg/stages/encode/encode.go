// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"fmt"
	"math"

	"github.com/user/shapedraw/pkg/pipeline"
	"github.com/user/shapedraw/pkg/ports"
)

// Stage scales and encodes the rendered image.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes input.Image. A Scale other than 0 or 1 resizes the image
// first, rounding each dimension and keeping at least one pixel.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	if input.Image == nil {
		return pipeline.EncodeResult{}, fmt.Errorf("no image to encode")
	}
	if input.Scale < 0 {
		return pipeline.EncodeResult{}, fmt.Errorf("invalid scale %g", input.Scale)
	}

	img := input.Image
	if input.Scale != 0 && input.Scale != 1 {
		b := img.Bounds()
		w := max(1, int(math.Round(float64(b.Dx())*input.Scale)))
		h := max(1, int(math.Round(float64(b.Dy())*input.Scale)))
		s.logger.Debug("Scaling %dx%d to %dx%d", b.Dx(), b.Dy(), w, h)
		img = s.renderer.ResizeImage(img, w, h)
	}

	if err := ctx.Err(); err != nil {
		return pipeline.EncodeResult{}, err
	}

	data, err := s.renderer.EncodeImage(img, input.Format, input.Quality)
	if err != nil {
		return pipeline.EncodeResult{}, err
	}

	b := img.Bounds()
	s.logger.Debug("Encoded %s: %d bytes", input.Format, len(data))
	return pipeline.EncodeResult{
		Data:   data,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
