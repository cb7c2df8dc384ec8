package mocks

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/placeholder/pkg/ports"
)

// FontProvider is a mock implementation of ports.FontProvider.
// By default it returns the 7x13 bitmap face and records requested sizes.
type FontProvider struct {
	LoadFunc func(size int) font.Face

	mu    sync.Mutex
	Sizes []int
}

func (m *FontProvider) Load(size int) font.Face {
	m.mu.Lock()
	m.Sizes = append(m.Sizes, size)
	m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc(size)
	}
	return basicfont.Face7x13
}

var _ ports.FontProvider = (*FontProvider)(nil)
