package compose

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/user/placeholder/pkg/mocks"
)

func TestDrawOutlined_Order(t *testing.T) {
	canvas := &mocks.Canvas{Width: 100, Height: 100}

	DrawOutlined(canvas, 40, 30, "Hi", basicfont.Face7x13)

	if len(canvas.Calls) != 13 {
		t.Fatalf("expected 13 draw calls, got %d", len(canvas.Calls))
	}

	for i, call := range canvas.Calls[:12] {
		if call.Color != OutlineColor {
			t.Errorf("call %d: color = %v, want outline", i, call.Color)
		}
		dx, dy := call.X-40, call.Y-30
		if dx == 0 && dy == 0 {
			t.Errorf("call %d: outline drawn at origin", i)
		}
		if dx < -2 || dx > 2 || dy < -2 || dy > 2 {
			t.Errorf("call %d: offset (%d,%d) out of range", i, dx, dy)
		}
	}

	last := canvas.Calls[12]
	if last.Color != FillColor || last.X != 40 || last.Y != 30 {
		t.Errorf("fill call = %+v, want white at (40,30)", last)
	}
	for _, call := range canvas.Calls {
		if call.Text != "Hi" {
			t.Errorf("text = %q, want Hi", call.Text)
		}
	}
}

func TestDrawOutlined_DistinctOffsets(t *testing.T) {
	canvas := &mocks.Canvas{}
	DrawOutlined(canvas, 0, 0, "x", basicfont.Face7x13)

	seen := make(map[[2]int]bool)
	for _, call := range canvas.Calls[:12] {
		key := [2]int{call.X, call.Y}
		if seen[key] {
			t.Errorf("duplicate outline offset %v", key)
		}
		seen[key] = true
	}
}

func TestColors(t *testing.T) {
	if OutlineColor != color.Color(color.Black) {
		t.Error("outline should be black")
	}
	if FillColor != color.Color(color.White) {
		t.Error("fill should be white")
	}
}
