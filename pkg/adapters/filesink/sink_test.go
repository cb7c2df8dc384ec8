package filesink

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/placeholder/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem())
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_Paths(t *testing.T) {
	tests := []struct {
		name string
		save func(s *Sink) error
		path string
	}{
		{
			name: "image",
			save: func(s *Sink) error { return s.SaveImage(7, []byte("data")) },
			path: filepath.Join(testBaseDir, "images", "image-0007.png"),
		},
		{
			name: "single image",
			save: func(s *Sink) error { return s.SaveImage(0, []byte("data")) },
			path: filepath.Join(testBaseDir, "images", "image-0000.png"),
		},
		{
			name: "layout",
			save: func(s *Sink) error { return s.SaveLayoutJSON(12, []byte("data")) },
			path: filepath.Join(testBaseDir, "layouts", "image-0012.json"),
		},
		{
			name: "archive",
			save: func(s *Sink) error { return s.SaveArchive("images_300x200.zip", []byte("data")) },
			path: filepath.Join(testBaseDir, "archives", "images_300x200.zip"),
		},
		{
			name: "archive name is not a path",
			save: func(s *Sink) error { return s.SaveArchive("../../etc/x.zip", []byte("data")) },
			path: filepath.Join(testBaseDir, "archives", "x.zip"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			if err := tt.save(New(testBaseDir, fs)); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			saved, ok := fs.GetFile(tt.path)
			if !ok {
				t.Fatalf("expected file at %s", tt.path)
			}
			if string(saved) != "data" {
				t.Errorf("content = %q", saved)
			}
		})
	}
}

func TestSink_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("read-only")
	}

	if err := New(testBaseDir, fs).SaveImage(1, []byte("x")); err == nil {
		t.Error("expected write error")
	}
}
