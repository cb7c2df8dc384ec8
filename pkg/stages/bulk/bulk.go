// Package bulk implements the batch generation stage.
package bulk

import (
	"context"
	"fmt"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/user/placeholder/pkg/palette"
	"github.com/user/placeholder/pkg/pipeline"
	"github.com/user/placeholder/pkg/ports"
)

// Stage composes a batch of images from one template.
type Stage struct {
	composer   pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	colors     *palette.Resolver
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new bulk stage.
// numWorkers <= 0 uses one worker per CPU.
func NewStage(
	composer pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	colors *palette.Resolver,
	logger ports.Logger,
	numWorkers int,
) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		composer:   composer,
		colors:     colors,
		logger:     logger.WithComponent("bulk"),
		numWorkers: numWorkers,
	}
}

// Execute composes input.Count images numbered 1..Count.
// The result keeps generation order whatever order the workers finish in.
func (s *Stage) Execute(ctx context.Context, input pipeline.BulkInput) (pipeline.BulkResult, error) {
	result := pipeline.BulkResult{Size: input.Template.Size, Mode: input.Mode}
	if input.Count <= 0 {
		result.Images = []pipeline.EncodedImage{}
		return result, nil
	}

	backgrounds := s.backgrounds(input)
	images := make([]pipeline.EncodedImage, input.Count)

	workers := min(s.numWorkers, input.Count)
	s.logger.Debug("Composing %d images with %d workers", input.Count, workers)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range input.Count {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			req := input.Template
			req.Index = i + 1
			req.Shared = &backgrounds[i]

			composed, err := s.composer.Execute(egCtx, req)
			if err != nil {
				return fmt.Errorf("compose image %d: %w", req.Index, err)
			}
			images[i] = composed.Image
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return pipeline.BulkResult{}, err
	}

	s.logger.Debug("Composed %d images", len(images))
	result.Images = images
	return result, nil
}

// backgrounds resolves every image's color before any work is scheduled.
// Draws happen sequentially in index order so a seeded source gives the same
// colors regardless of worker scheduling.
func (s *Stage) backgrounds(input pipeline.BulkInput) []color.RGBA {
	out := make([]color.RGBA, input.Count)
	if input.SameBackground {
		shared := s.colors.Resolve(input.Template.Color)
		for i := range out {
			out[i] = shared
		}
		return out
	}
	for i := range out {
		out[i] = s.colors.Resolve(input.Template.Color)
	}
	return out
}
