// Package raster implements the rasterization stage.
package raster

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/user/shapedraw/pkg/pipeline"
	"github.com/user/shapedraw/pkg/ports"
	"github.com/user/shapedraw/pkg/shapes"
	"github.com/user/shapedraw/pkg/syncimage"
)

// Stage draws shapes onto an image.
type Stage struct {
	rnd    ports.Random
	logger ports.Logger
}

// NewStage creates a new raster stage sampling shape colors from rnd.
func NewStage(rnd ports.Random, logger ports.Logger) *Stage {
	return &Stage{
		rnd:    rnd,
		logger: logger.WithComponent("raster"),
	}
}

// Execute draws every drawable. With one worker shapes are drawn in order,
// so later shapes overwrite earlier ones. With more workers the image and
// the random source are serialized and overlap order is unspecified.
func (s *Stage) Execute(ctx context.Context, input pipeline.RasterInput) (pipeline.RasterResult, error) {
	img := &countingImage{Image: input.Image}

	var err error
	if input.Workers <= 1 || len(input.Drawables) <= 1 {
		s.logger.Debug("Drawing %d shapes", len(input.Drawables))
		err = s.executeSequential(ctx, img, s.rnd, input.Drawables)
	} else {
		s.logger.Debug("Drawing %d shapes with %d workers", len(input.Drawables), input.Workers)
		err = s.executeParallel(ctx, img, input)
	}
	if err != nil {
		return pipeline.RasterResult{}, err
	}

	writes := img.writes.Load()
	s.logger.Debug("Drew %d shapes, %d pixel writes", len(input.Drawables), writes)
	return pipeline.RasterResult{
		Shapes:      len(input.Drawables),
		PixelWrites: writes,
	}, nil
}

func (s *Stage) executeSequential(ctx context.Context, img ports.Image, rnd ports.Random, drawables []shapes.Drawable) error {
	for i, d := range drawables {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("draw shape %d: %w", i, err)
		}
		d.Draw(img, rnd)
	}
	return nil
}

func (s *Stage) executeParallel(ctx context.Context, img ports.Image, input pipeline.RasterInput) error {
	shared := syncimage.New(img)
	rnd := syncimage.NewRandom(s.rnd)

	jobs := make(chan int, len(input.Drawables))
	errChan := make(chan error, input.Workers)

	var wg sync.WaitGroup
	for w := 0; w < input.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					select {
					case errChan <- fmt.Errorf("draw shape %d: %w", idx, err):
					default:
					}
					return
				}
				input.Drawables[idx].Draw(shared, rnd)
			}
		}()
	}

	for i := range input.Drawables {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errChan)

	return <-errChan
}

// countingImage counts pixel writes passed to the wrapped image.
type countingImage struct {
	ports.Image
	writes atomic.Int64
}

func (c *countingImage) SetPixel(x, y int, col color.RGBA) {
	c.writes.Add(1)
	c.Image.SetPixel(x, y, col)
}
