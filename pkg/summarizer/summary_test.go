package summarizer

import (
	"errors"
	"image/color"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tenntenn/golden"

	"github.com/user/placeholder/pkg/mocks"
	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/pipeline"
)

func sampleRun() (orchestrator.BulkRequest, orchestrator.BulkOutput) {
	req := orchestrator.BulkRequest{
		ImageRequest: orchestrator.ImageRequest{Width: 300, Height: 200, Text: "a|b"},
		Count:        3,
		Download:     true,
		SameBG:       true,
	}
	bg := color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}
	out := orchestrator.BulkOutput{
		Size: pipeline.Dimension{Width: 300, Height: 200},
		Images: []pipeline.EncodedImage{
			{Index: 1, Data: make([]byte, 100), Background: bg},
			{Index: 2, Data: make([]byte, 200), Background: bg},
			{Index: 3, Data: make([]byte, 2048), Background: bg},
		},
		Pack: pipeline.PackResult{
			Mode:     pipeline.ModeArchive,
			Archive:  make([]byte, 1536),
			Filename: "images_300x200.zip",
		},
		Elapsed: 42 * time.Millisecond,
	}
	return req, out
}

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	req, out := sampleRun()
	summary := NewBuilder().WithRequest(req).WithOutput(out).Build()

	if summary.Request.Width != 300 || summary.Request.Count != 3 || !summary.Request.SameBG {
		t.Errorf("request = %+v", summary.Request)
	}
	if len(summary.Images) != 3 {
		t.Fatalf("images = %d, want 3", len(summary.Images))
	}
	if img := summary.Images[2]; img.Filename != "image_3.png" || img.Background != "#1a2b3c" || img.Bytes != 2048 {
		t.Errorf("image 3 = %+v", img)
	}
	if summary.Output.Archive != "images_300x200.zip" || summary.Output.ArchiveBytes != 1536 || summary.Output.ElapsedMs != 42 {
		t.Errorf("output = %+v", summary.Output)
	}
	if summary.TotalBytes() != 2348 {
		t.Errorf("TotalBytes() = %d", summary.TotalBytes())
	}
	if summary.DistinctBackgrounds() != 1 {
		t.Errorf("DistinctBackgrounds() = %d", summary.DistinctBackgrounds())
	}
}

func TestWriter(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "report" }), fs)

	if err := w.Write("out/summary.md", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, ok := fs.GetFile("out/summary.md")
	if !ok || string(data) != "report" {
		t.Errorf("written = %q, %v", data, ok)
	}
}

func TestWriter_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error { return errors.New("denied") }

	w := NewWriter(FormatFunc(func(s *Summary) string { return "" }), fs)
	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected error")
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	req, out := sampleRun()
	summary := NewBuilder().WithRequest(req).WithOutput(out).Build()
	summary.GeneratedAt = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	result := NewMarkdownFormatter().Format(summary)

	checks := []string{
		"# Bulk Summary",
		"| Dimensions | 300 x 200 |",
		"| Count | 3 |",
		`| Text | a\|b |`,
		"| Color | - |",
		"| Same Background | Yes |",
		"| Numbering | No |",
		"| 3 | image_3.png | `#1a2b3c` | 2.00 KB |",
		"Archive: images_300x200.zip (1.50 KB)",
		"Distinct Backgrounds: 1",
		"Elapsed: 42 ms",
		"2026-01-15T10:30:00Z",
	}
	for _, want := range checks {
		if !strings.Contains(result, want) {
			t.Errorf("output missing %q\n%s", want, result)
		}
	}
}

func TestMarkdownFormatter_Golden(t *testing.T) {
	req, out := sampleRun()
	summary := NewBuilder().WithRequest(req).WithOutput(out).Build()
	summary.GeneratedAt = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	got := NewMarkdownFormatter(WithVersion("v1.0.0")).Format(summary)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		golden.Update(t, "testdata", "bulk_summary.md", got)
		return
	}
	if diff := golden.Diff(t, "testdata", "bulk_summary.md", got); diff != "" {
		t.Error(diff)
	}
}

func TestMarkdownFormatter_PreviewHasNoArchive(t *testing.T) {
	req, out := sampleRun()
	out.Pack = pipeline.PackResult{Mode: pipeline.ModePreview}

	result := NewMarkdownFormatter().Format(NewBuilder().WithRequest(req).WithOutput(out).Build())
	if strings.Contains(result, "Archive:") {
		t.Error("preview summary should not list an archive")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Bulk Summary": "一括生成サマリー",
			"Dimensions":   "サイズ",
			"Yes":          "はい",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	summary := &Summary{
		GeneratedAt: time.Now(),
		Request:     RequestInfo{Width: 10, Height: 10, SameBG: true},
	}
	result := NewMarkdownFormatter(WithTranslator(translator)).Format(summary)

	for _, want := range []string{"# 一括生成サマリー", "| サイズ | 10 x 10 |", "| Same Background | はい |"} {
		if !strings.Contains(result, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(&Summary{GeneratedAt: time.Now()})
	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatBytes(tt.bytes); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
