// Package orchestrator validates requests and coordinates the image stages.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/user/placeholder/pkg/pipeline"
	"github.com/user/placeholder/pkg/ports"
)

// Config contains the request limits enforced by the orchestrator.
type Config struct {
	MaxDimension int // largest accepted width or height
	MaxCount     int // largest accepted bulk count
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MaxDimension: 3000,
		MaxCount:     50,
	}
}

// ImageRequest describes a single image.
type ImageRequest struct {
	Width  int
	Height int
	Text   string // optional, blank means none
	Color  string // optional hex color, malformed means random
}

// BulkRequest describes a batch of images.
type BulkRequest struct {
	ImageRequest
	Count     int
	Download  bool // archive instead of preview
	SameBG    bool // one background for every image
	Numbering bool // append " #<n>" to each image

	// Raw query spellings of SameBG and Numbering, repeated in the
	// preview's download link. Empty means "true".
	SameBGParam    string
	NumberingParam string
}

// BulkOutput contains a packaged batch.
type BulkOutput struct {
	Size    pipeline.Dimension
	Images  []pipeline.EncodedImage
	Pack    pipeline.PackResult
	Elapsed time.Duration
}

// Orchestrator coordinates the execution of the image stages.
type Orchestrator struct {
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	bulkStage    pipeline.Stage[pipeline.BulkInput, pipeline.BulkResult]
	packStage    pipeline.Stage[pipeline.PackInput, pipeline.PackResult]
	config       Config
	logger       ports.Logger
}

// New creates a new Orchestrator. Limits that are unset or above
// DefaultConfig are replaced by the defaults' values.
func New(
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	bulkStage pipeline.Stage[pipeline.BulkInput, pipeline.BulkResult],
	packStage pipeline.Stage[pipeline.PackInput, pipeline.PackResult],
	config Config,
	logger ports.Logger,
) *Orchestrator {
	defaults := DefaultConfig()
	if config.MaxDimension <= 0 {
		config.MaxDimension = defaults.MaxDimension
	}
	config.MaxDimension = min(config.MaxDimension, defaults.MaxDimension)
	if config.MaxCount <= 0 {
		config.MaxCount = defaults.MaxCount
	}
	config.MaxCount = min(config.MaxCount, defaults.MaxCount)
	return &Orchestrator{
		composeStage: composeStage,
		bulkStage:    bulkStage,
		packStage:    packStage,
		config:       config,
		logger:       logger,
	}
}

// Config returns the limits in effect.
func (o *Orchestrator) Config() Config {
	return o.config
}

// Image validates req and renders one PNG.
func (o *Orchestrator) Image(ctx context.Context, req ImageRequest) (pipeline.EncodedImage, error) {
	if err := ValidateDimensions(req.Width, req.Height, o.config.MaxDimension); err != nil {
		return pipeline.EncodedImage{}, err
	}

	composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
		Size:  pipeline.Dimension{Width: req.Width, Height: req.Height},
		Text:  req.Text,
		Color: req.Color,
	})
	if err != nil {
		o.logger.Error("Failed to compose image: %s", err)
		return pipeline.EncodedImage{}, fmt.Errorf("compose stage: %w", err)
	}

	o.logger.Debug("Image %dx%d rendered: %d bytes", req.Width, req.Height, len(composed.Image.Data))
	return composed.Image, nil
}

// Bulk validates req, renders req.Count images and packages them.
func (o *Orchestrator) Bulk(ctx context.Context, req BulkRequest) (BulkOutput, error) {
	if err := ValidateDimensions(req.Width, req.Height, o.config.MaxDimension); err != nil {
		return BulkOutput{}, err
	}
	if err := ValidateCount(req.Count, o.config.MaxCount); err != nil {
		return BulkOutput{}, err
	}

	start := time.Now()
	size := pipeline.Dimension{Width: req.Width, Height: req.Height}
	mode := pipeline.ModePreview
	if req.Download {
		mode = pipeline.ModeArchive
	}

	o.logger.Info("Generating %d images of %s", req.Count, size.Label())

	bulk, err := o.bulkStage.Execute(ctx, pipeline.BulkInput{
		Count: req.Count,
		Template: pipeline.ComposeInput{
			Size:      size,
			Text:      req.Text,
			Color:     req.Color,
			Numbering: req.Numbering,
		},
		SameBackground: req.SameBG,
		Mode:           mode,
	})
	if err != nil {
		o.logger.Error("Failed to generate images: %s", err)
		return BulkOutput{}, fmt.Errorf("bulk stage: %w", err)
	}

	packed, err := o.packStage.Execute(ctx, pipeline.PackInput{
		Bulk:      bulk,
		Text:      req.Text,
		Color:     req.Color,
		SameBG:    req.SameBG,
		Numbering: req.Numbering,

		SameBGParam:    req.SameBGParam,
		NumberingParam: req.NumberingParam,
	})
	if err != nil {
		o.logger.Error("Failed to package images: %s", err)
		return BulkOutput{}, fmt.Errorf("pack stage: %w", err)
	}

	elapsed := time.Since(start)
	o.logger.Info("Generated %d images in %d ms", len(bulk.Images), elapsed.Milliseconds())

	return BulkOutput{
		Size:    size,
		Images:  bulk.Images,
		Pack:    packed,
		Elapsed: elapsed,
	}, nil
}
