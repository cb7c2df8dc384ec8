package compose

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/user/placeholder/pkg/ports"
)

var (
	// OutlineColor is drawn around every glyph.
	OutlineColor color.Color = color.Black
	// FillColor is drawn on top of the outline.
	FillColor color.Color = color.White
)

// outlineOffsets surround the origin: corners and edges at distance 2, then
// diagonals at distance 1 to fill the gaps.
var outlineOffsets = [...]image.Point{
	{-2, -2}, {2, -2}, {-2, 2}, {2, 2},
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// DrawOutlined draws text at (x, y) in FillColor over a ~2px OutlineColor border.
// All outline passes are drawn before the fill.
func DrawOutlined(canvas ports.Canvas, x, y int, text string, face font.Face) {
	for _, off := range outlineOffsets {
		canvas.DrawText(text, x+off.X, y+off.Y, face, OutlineColor)
	}
	canvas.DrawText(text, x, y, face, FillColor)
}
