// Package ports defines interfaces for external dependencies of the image engine.
package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Renderer abstracts canvas creation and raster encoding.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat) ([]byte, error)
}

// Canvas provides drawing operations for a single placeholder image.
type Canvas interface {
	// DrawText draws text with its line box top-left corner at (x, y).
	// The line box top is the face's ascender line, so y + ascent is the baseline.
	DrawText(text string, x, y int, face font.Face, c color.Color)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
)

// ContentType returns the MIME type for the format.
func (f ImageFormat) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension for the format, without a dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	default:
		return "bin"
	}
}
