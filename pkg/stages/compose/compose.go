// Package compose implements the single image composition stage.
package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"github.com/user/placeholder/pkg/palette"
	"github.com/user/placeholder/pkg/pipeline"
	"github.com/user/placeholder/pkg/ports"
	"github.com/user/placeholder/pkg/stages/layout"
	"github.com/user/placeholder/pkg/typeface"
)

// Stage renders one placeholder image and encodes it as PNG.
// It holds no per-image state, so one Stage may serve concurrent calls.
type Stage struct {
	renderer ports.Renderer
	fonts    ports.FontProvider
	colors   *palette.Resolver
	layout   pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutPlan]
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(
	renderer ports.Renderer,
	fonts ports.FontProvider,
	colors *palette.Resolver,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		renderer: renderer,
		fonts:    fonts,
		colors:   colors,
		layout:   layout.NewStage(),
		sink:     sink,
		logger:   logger.WithComponent("compose"),
	}
}

// Execute composes one image.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ComposeResult{}, err
	}

	bg := s.background(input)
	size := input.Size
	canvas := s.renderer.CreateCanvas(size.Width, size.Height, bg)

	fontSize := typeface.Size(size.Width, size.Height)
	face := s.fonts.Load(fontSize)
	defer face.Close()

	label, text := DisplayText(input)

	plan, err := s.layout.Execute(ctx, pipeline.LayoutInput{
		Label:  label,
		Text:   text,
		Width:  size.Width,
		Height: size.Height,
		Face:   face,
	})
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("layout text: %w", err)
	}

	for _, line := range plan.Lines {
		DrawOutlined(canvas, line.X, line.Y, line.Text, face)
	}

	data, err := s.renderer.EncodeImage(canvas.ToImage(), ports.FormatPNG)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("encode image %d: %w", input.Index, err)
	}

	s.logger.Debug("Composed %s image #%d: %d lines, font size %d, %d bytes",
		size.Label(), input.Index, len(plan.Lines), fontSize, len(data))

	if s.sink.Enabled() {
		if raw, err := json.MarshalIndent(plan, "", "  "); err == nil {
			if err := s.sink.SaveLayoutJSON(input.Index, raw); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err)
			}
		}
		if err := s.sink.SaveImage(input.Index, data); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	return pipeline.ComposeResult{
		Image: pipeline.EncodedImage{
			Index:       input.Index,
			Data:        data,
			ContentType: ports.FormatPNG.ContentType(),
			Background:  bg,
		},
		Plan: plan,
	}, nil
}

func (s *Stage) background(input pipeline.ComposeInput) color.RGBA {
	if input.Shared != nil {
		return *input.Shared
	}
	return s.colors.Resolve(input.Color)
}

// DisplayText returns the label and custom text to lay out. With numbering,
// " #<index>" is appended to whichever line is primary: the custom text when
// present, otherwise the label.
func DisplayText(input pipeline.ComposeInput) (label, text string) {
	label = input.Size.Label()
	text = input.Text
	if strings.TrimSpace(text) == "" {
		text = ""
	}
	if !input.Numbering {
		return label, text
	}

	suffix := fmt.Sprintf(" #%d", input.Index)
	if text != "" {
		return label, text + suffix
	}
	return label + suffix, text
}
