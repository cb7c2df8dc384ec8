package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/user/placeholder/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	canvas := r.CreateCanvas(120, 80, bg)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("expected 120x80, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	if got != bg {
		t.Errorf("expected background %v, got %v", bg, got)
	}
}

func TestRenderer_EncodePNG_RoundTrip(t *testing.T) {
	r := New()

	bg := color.RGBA{R: 255, A: 255}
	canvas := r.CreateCanvas(30, 20, bg)

	data, err := r.EncodeImage(canvas.ToImage(), ports.FormatPNG)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	got := color.RGBAModel.Convert(decoded.At(29, 19)).(color.RGBA)
	if got != bg {
		t.Errorf("expected %v at corner, got %v", bg, got)
	}
}

func TestRenderer_EncodeUnsupportedFormat(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, err := r.EncodeImage(img, ports.ImageFormat(99)); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCanvas_DrawText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 40, color.Black)

	canvas.DrawText("HHHH", 10, 10, basicfont.Face7x13, color.White)

	img := canvas.ToImage()

	lit := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			rr, _, _, _ := img.At(x, y).RGBA()
			if rr > 0 {
				lit++
				if x < 9 || y < 9 || x > 10+28 || y > 10+13 {
					t.Fatalf("pixel (%d, %d) drawn outside the line box", x, y)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("expected text pixels to be drawn")
	}
}
