package mocks

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"

	"github.com/user/placeholder/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
// Canvases it creates record their draw calls.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat) ([]byte, error)

	mu       sync.Mutex
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{Width: width, Height: height, Background: bg}
	m.mu.Lock()
	m.Canvases = append(m.Canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format)
	}
	return []byte("encoded"), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// TextCall is one recorded Canvas.DrawText call.
type TextCall struct {
	Text  string
	X, Y  int
	Color color.Color
}

// Canvas is a mock implementation of ports.Canvas.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color
	Calls      []TextCall
}

func (m *Canvas) DrawText(text string, x, y int, face font.Face, c color.Color) {
	m.Calls = append(m.Calls, TextCall{Text: text, X: x, Y: y, Color: c})
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
