package typeface

import (
	"golang.org/x/image/font"
)

// Measure returns the ink bounding box size of s drawn with face.
// An empty string measures 0x0.
func Measure(face font.Face, s string) (width, height int) {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// Ascent returns the distance in pixels from the line box top to the baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
