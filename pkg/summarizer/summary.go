// Package summarizer provides summary generation for bulk runs.
package summarizer

import (
	"time"

	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/palette"
	"github.com/user/placeholder/pkg/stages/pack"
)

// Summary contains the data collected from one bulk run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// What was asked for
	Request RequestInfo

	// One entry per image, in generation order
	Images []ImageInfo

	// Packaging results
	Output OutputInfo
}

// RequestInfo echoes the bulk request parameters.
type RequestInfo struct {
	Width     int
	Height    int
	Count     int
	Text      string
	Color     string
	SameBG    bool
	Numbering bool
}

// ImageInfo describes one generated image.
type ImageInfo struct {
	Index      int
	Filename   string
	Background string // hex, e.g. "#1a2b3c"
	Bytes      int64
}

// OutputInfo describes the packaged batch.
type OutputInfo struct {
	Archive      string // empty in preview mode
	ArchiveBytes int64
	ElapsedMs    int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRequest sets the request parameters.
func (b *Builder) WithRequest(req orchestrator.BulkRequest) *Builder {
	b.summary.Request = RequestInfo{
		Width:     req.Width,
		Height:    req.Height,
		Count:     req.Count,
		Text:      req.Text,
		Color:     req.Color,
		SameBG:    req.SameBG,
		Numbering: req.Numbering,
	}
	return b
}

// WithOutput sets the per-image details and packaging results.
func (b *Builder) WithOutput(out orchestrator.BulkOutput) *Builder {
	images := make([]ImageInfo, len(out.Images))
	for i, img := range out.Images {
		images[i] = ImageInfo{
			Index:      img.Index,
			Filename:   pack.EntryName(img.Index),
			Background: palette.Hex(img.Background),
			Bytes:      int64(len(img.Data)),
		}
	}
	b.summary.Images = images
	b.summary.Output = OutputInfo{
		Archive:      out.Pack.Filename,
		ArchiveBytes: int64(len(out.Pack.Archive)),
		ElapsedMs:    out.Elapsed.Milliseconds(),
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

// TotalBytes returns the summed size of all images.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, img := range s.Images {
		total += img.Bytes
	}
	return total
}

// DistinctBackgrounds returns how many different background colors were used.
func (s *Summary) DistinctBackgrounds() int {
	seen := make(map[string]struct{}, len(s.Images))
	for _, img := range s.Images {
		seen[img.Background] = struct{}{}
	}
	return len(seen)
}
