package pack

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/placeholder/pkg/adapters/logger"
	"github.com/user/placeholder/pkg/mocks"
	"github.com/user/placeholder/pkg/pipeline"
)

func batch(n int, mode pipeline.BulkMode) pipeline.BulkResult {
	images := make([]pipeline.EncodedImage, n)
	for i := range images {
		images[i] = pipeline.EncodedImage{
			Index:       i + 1,
			Data:        []byte{'p', 'n', 'g', byte('0' + i + 1)},
			ContentType: "image/png",
		}
	}
	return pipeline.BulkResult{
		Size:   pipeline.Dimension{Width: 300, Height: 200},
		Images: images,
		Mode:   mode,
	}
}

func TestStage_Archive(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.PackInput{Bulk: batch(3, pipeline.ModeArchive)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Mode != pipeline.ModeArchive {
		t.Errorf("mode = %v, want archive", result.Mode)
	}
	if result.ContentType != "application/zip" {
		t.Errorf("content type = %q", result.ContentType)
	}
	if result.Filename != "images_300x200.zip" {
		t.Errorf("filename = %q", result.Filename)
	}

	zr, err := zip.NewReader(bytes.NewReader(result.Archive), int64(len(result.Archive)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"image_1.png", "image_2.png", "image_3.png"}, names); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	rc, err := zr.File[1].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "png2" {
		t.Errorf("entry 2 = %q, want png2", data)
	}

	if _, ok := sink.Archives["images_300x200.zip"]; !ok {
		t.Error("archive should be saved to the debug sink")
	}
}

func TestStage_Preview(t *testing.T) {
	stage := NewStage(mocks.NewDebugSink(false), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.PackInput{
		Bulk:      batch(2, pipeline.ModePreview),
		Text:      "Hello World",
		Color:     "#FF0000",
		SameBG:    true,
		Numbering: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []pipeline.PreviewImage{
		{Index: 1, Filename: "image_1.png", DataURI: "data:image/png;base64,cG5nMQ=="},
		{Index: 2, Filename: "image_2.png", DataURI: "data:image/png;base64,cG5nMg=="},
	}
	if diff := cmp.Diff(want, result.Previews); diff != "" {
		t.Errorf("previews mismatch (-want +got):\n%s", diff)
	}
	if result.Archive != nil {
		t.Error("preview mode should not build an archive")
	}

	u, err := url.Parse(result.DownloadURL)
	if err != nil {
		t.Fatalf("parse download url: %v", err)
	}
	if u.Path != "/bulk/300/200" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	checks := map[string]string{
		"count":     "2",
		"download":  "true",
		"text":      "Hello World",
		"color":     "#FF0000",
		"samebg":    "true",
		"numbering": "true",
	}
	for key, val := range checks {
		if got := q.Get(key); got != val {
			t.Errorf("query %s = %q, want %q", key, got, val)
		}
	}
}

func TestDownloadURL_OmitsUnsetParameters(t *testing.T) {
	got := DownloadURL(pipeline.PackInput{Bulk: batch(4, pipeline.ModePreview)})
	want := "/bulk/300/200?count=4&download=true"
	if got != want {
		t.Errorf("DownloadURL() = %q, want %q", got, want)
	}
}

func TestDownloadURL_EchoesFlagSpelling(t *testing.T) {
	got := DownloadURL(pipeline.PackInput{
		Bulk:           batch(2, pipeline.ModePreview),
		SameBG:         true,
		SameBGParam:    "1",
		Numbering:      true,
		NumberingParam: "yes",
	})
	want := "/bulk/300/200?count=2&download=true&numbering=yes&samebg=1"
	if got != want {
		t.Errorf("DownloadURL() = %q, want %q", got, want)
	}
}

func TestDataURI_DefaultsToPNG(t *testing.T) {
	got := DataURI(pipeline.EncodedImage{Data: []byte("x")})
	if got != "data:image/png;base64,eA==" {
		t.Errorf("DataURI() = %q", got)
	}
}

func TestStage_Cancelled(t *testing.T) {
	stage := NewStage(mocks.NewDebugSink(false), logger.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := stage.Execute(ctx, pipeline.PackInput{Bulk: batch(1, pipeline.ModeArchive)}); err == nil {
		t.Error("expected error after cancellation")
	}
}
