// Package layout implements the text layout stage.
package layout

import (
	"context"
	"strings"

	"github.com/user/placeholder/pkg/pipeline"
	"github.com/user/placeholder/pkg/typeface"
)

const (
	// LineGap is the vertical space between the custom text and the label.
	LineGap = 10

	// TinySide is the shorter-side length below which only one line fits.
	TinySide = 100
)

// Stage calculates where text lines are drawn.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute calculates the layout based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutPlan, error) {
	return ComputeLayout(input), nil
}

// ComputeLayout performs the layout calculation.
// This is exposed as a standalone function for testing and reuse.
//
// Without custom text the label is centered alone. On images whose shorter
// side is below TinySide the custom text replaces the label. Otherwise the
// custom text sits above the label, LineGap apart, and the pair is centered
// vertically while each line is centered horizontally on its own width.
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutPlan {
	labelW, labelH := typeface.Measure(input.Face, input.Label)

	if strings.TrimSpace(input.Text) == "" {
		return pipeline.LayoutPlan{Lines: []pipeline.TextLine{
			centered(pipeline.LineLabel, input.Label, labelW, labelH, input.Width, input.Height),
		}}
	}

	textW, textH := typeface.Measure(input.Face, input.Text)

	if min(input.Width, input.Height) < TinySide {
		return pipeline.LayoutPlan{Lines: []pipeline.TextLine{
			centered(pipeline.LineCustom, input.Text, textW, textH, input.Width, input.Height),
		}}
	}

	totalHeight := textH + labelH + LineGap
	startY := floorDiv(input.Height-totalHeight, 2)

	return pipeline.LayoutPlan{Lines: []pipeline.TextLine{
		{
			Kind:   pipeline.LineCustom,
			Text:   input.Text,
			X:      floorDiv(input.Width-textW, 2),
			Y:      startY,
			Width:  textW,
			Height: textH,
		},
		{
			Kind:   pipeline.LineLabel,
			Text:   input.Label,
			X:      floorDiv(input.Width-labelW, 2),
			Y:      startY + textH + LineGap,
			Width:  labelW,
			Height: labelH,
		},
	}}
}

func centered(kind pipeline.LineKind, text string, w, h, areaW, areaH int) pipeline.TextLine {
	return pipeline.TextLine{
		Kind:   kind,
		Text:   text,
		X:      floorDiv(areaW-w, 2),
		Y:      floorDiv(areaH-h, 2),
		Width:  w,
		Height: h,
	}
}

// floorDiv divides rounding toward negative infinity, so text wider than
// the image is offset the same way on every platform.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
