// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/user/placeholder/pkg/ports"
	"github.com/user/placeholder/pkg/typeface"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	encoder png.Encoder
}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{encoder: png.Encoder{CompressionLevel: png.DefaultCompression}}
}

// CreateCanvas creates a new drawing canvas filled with bg.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := r.encoder.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawText draws text with the line box top-left at (x, y).
func (c *Canvas) DrawText(text string, x, y int, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(x), float64(y+typeface.Ascent(face)))
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
