// Package pack implements the bulk packaging stage.
package pack

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"

	"github.com/user/placeholder/pkg/pipeline"
	"github.com/user/placeholder/pkg/ports"
)

// ArchiveContentType is the media type of packed archives.
const ArchiveContentType = "application/zip"

// EntryName returns the archive entry name of the image at a 1-based index.
func EntryName(index int) string {
	return fmt.Sprintf("image_%d.%s", index, ports.FormatPNG.Extension())
}

// ArchiveName returns the suggested download filename for a batch.
func ArchiveName(size pipeline.Dimension) string {
	return fmt.Sprintf("images_%dx%d.zip", size.Width, size.Height)
}

// Stage packages a finished batch as a zip archive or as inline previews.
type Stage struct {
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new pack stage.
func NewStage(sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("pack"),
	}
}

// Execute packages the batch according to its mode.
func (s *Stage) Execute(ctx context.Context, input pipeline.PackInput) (pipeline.PackResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.PackResult{}, err
	}

	if input.Bulk.Mode == pipeline.ModeArchive {
		return s.archive(input.Bulk)
	}
	return s.preview(input), nil
}

func (s *Stage) archive(bulk pipeline.BulkResult) (pipeline.PackResult, error) {
	data, err := Archive(bulk.Images)
	if err != nil {
		return pipeline.PackResult{}, err
	}

	name := ArchiveName(bulk.Size)
	s.logger.Debug("Packed %d images into %s (%d bytes)", len(bulk.Images), name, len(data))

	if s.sink.Enabled() {
		if err := s.sink.SaveArchive(name, data); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	return pipeline.PackResult{
		Mode:        pipeline.ModeArchive,
		Archive:     data,
		ContentType: ArchiveContentType,
		Filename:    name,
	}, nil
}

func (s *Stage) preview(input pipeline.PackInput) pipeline.PackResult {
	previews := make([]pipeline.PreviewImage, len(input.Bulk.Images))
	for i, img := range input.Bulk.Images {
		previews[i] = pipeline.PreviewImage{
			Index:    img.Index,
			Filename: EntryName(img.Index),
			DataURI:  DataURI(img),
		}
	}

	s.logger.Debug("Prepared %d preview images", len(previews))

	return pipeline.PackResult{
		Mode:        pipeline.ModePreview,
		Previews:    previews,
		DownloadURL: DownloadURL(input),
	}
}

// Archive writes images into a deflated zip, one entry per image in slice order.
func Archive(images []pipeline.EncodedImage) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, img := range images {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   EntryName(img.Index),
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("create entry %d: %w", img.Index, err)
		}
		if _, err := w.Write(img.Data); err != nil {
			return nil, fmt.Errorf("write entry %d: %w", img.Index, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI encodes an image as an inlineable data URI.
func DataURI(img pipeline.EncodedImage) string {
	contentType := img.ContentType
	if contentType == "" {
		contentType = ports.FormatPNG.ContentType()
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// DownloadURL returns the request path that fetches the same batch as an archive.
// Text, color and flag values are echoed as given; flags only appear when set.
func DownloadURL(input pipeline.PackInput) string {
	q := url.Values{}
	q.Set("count", strconv.Itoa(len(input.Bulk.Images)))
	q.Set("download", "true")
	if input.Text != "" {
		q.Set("text", input.Text)
	}
	if input.Color != "" {
		q.Set("color", input.Color)
	}
	if input.SameBG {
		q.Set("samebg", orTrue(input.SameBGParam))
	}
	if input.Numbering {
		q.Set("numbering", orTrue(input.NumberingParam))
	}

	u := url.URL{
		Path:     fmt.Sprintf("/bulk/%d/%d", input.Bulk.Size.Width, input.Bulk.Size.Height),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func orTrue(raw string) string {
	if raw == "" {
		return "true"
	}
	return raw
}
