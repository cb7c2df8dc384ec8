package mocks

import (
	"sync"

	"github.com/user/placeholder/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Layouts  map[int][]byte
	Images   map[int][]byte
	Archives map[string][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:  enabled,
		Layouts:  make(map[int][]byte),
		Images:   make(map[int][]byte),
		Archives: make(map[string][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layouts[index] = data
	return nil
}

func (m *DebugSink) SaveImage(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Images[index] = data
	return nil
}

func (m *DebugSink) SaveArchive(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Archives[name] = data
	return nil
}

// ImageCount returns the number of saved images.
func (m *DebugSink) ImageCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Images)
}

var _ ports.DebugSink = (*DebugSink)(nil)
