// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/placeholder/pkg/ports"
)

// Sink saves debug output under a base directory:
//
//	images/image-0001.png
//	layouts/image-0001.json
//	archives/<name>
//
// Single images use index 0.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayoutJSON saves an image's layout plan.
func (s *Sink) SaveLayoutJSON(index int, data []byte) error {
	return s.save("layouts", imageName(index, "json"), data)
}

// SaveImage saves an encoded image.
func (s *Sink) SaveImage(index int, data []byte) error {
	return s.save("images", imageName(index, ports.FormatPNG.Extension()), data)
}

// SaveArchive saves a packed bulk archive.
func (s *Sink) SaveArchive(name string, data []byte) error {
	return s.save("archives", filepath.Base(name), data)
}

func (s *Sink) save(subdir, name string, data []byte) error {
	dir := filepath.Join(s.baseDir, subdir)
	if err := s.fs.MkdirAll(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return s.fs.WriteFile(filepath.Join(dir, name), data)
}

func imageName(index int, ext string) string {
	return fmt.Sprintf("image-%04d.%s", index, ext)
}

var _ ports.DebugSink = (*Sink)(nil)
