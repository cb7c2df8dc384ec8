package ports

import "golang.org/x/image/font"

// FontProvider resolves a renderable font face for a point size.
type FontProvider interface {
	// Load returns a face at the given size. It never fails: when no
	// candidate font can be loaded a built-in bitmap face is returned.
	// Faces are not safe for concurrent use, so each caller gets its own
	// and should Close it when done.
	Load(size int) font.Face
}
