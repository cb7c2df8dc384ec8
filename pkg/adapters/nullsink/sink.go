// Package nullsink provides a no-op debug sink implementation.
package nullsink

import "github.com/user/placeholder/pkg/ports"

// Sink discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false so stages skip building debug payloads.
func (s *Sink) Enabled() bool { return false }

func (s *Sink) SaveLayoutJSON(index int, data []byte) error { return nil }
func (s *Sink) SaveImage(index int, data []byte) error      { return nil }
func (s *Sink) SaveArchive(name string, data []byte) error  { return nil }

var _ ports.DebugSink = (*Sink)(nil)
