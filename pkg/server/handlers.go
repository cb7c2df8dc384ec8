package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/user/placeholder/pkg/orchestrator"
)

// errorBody is the JSON error payload.
type errorBody struct {
	Detail string `json:"detail"`
}

// paramError is a malformed path or query parameter.
type paramError struct {
	name string
	msg  string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.name, e.msg)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "index.html", map[string]int{
		"MaxDimension": s.config.MaxDimension,
		"MaxCount":     s.config.MaxCount,
		"DefaultCount": DefaultCount,
	})
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := parseImageRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	img, err := s.engine.Image(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "no-cache")
	_, err = w.Write(img.Data)
	s.logWriteError(r, err)
}

func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request) {
	req, err := parseBulkRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.engine.Bulk(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if req.Download {
		w.Header().Set("Content-Type", out.Pack.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Pack.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(out.Pack.Archive)))
		_, err = w.Write(out.Pack.Archive)
		s.logWriteError(r, err)
		return
	}

	type previewImage struct {
		Filename string
		Src      template.URL
	}
	images := make([]previewImage, len(out.Pack.Previews))
	for i, p := range out.Pack.Previews {
		// Data URIs are produced locally from encoded PNG bytes.
		images[i] = previewImage{Filename: p.Filename, Src: template.URL(p.DataURI)}
	}

	s.render(w, r, "preview.html", struct {
		Label       string
		DownloadURL string
		Images      []previewImage
	}{
		Label:       out.Size.Label(),
		DownloadURL: out.Pack.DownloadURL,
		Images:      images,
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.writeError(w, fmt.Errorf("render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	s.logWriteError(r, err)
}

// logWriteError records a response body that did not reach the client,
// usually because it disconnected.
func (s *Server) logWriteError(r *http.Request, err error) {
	if err != nil {
		s.logger.Debug("Failed to write response for %s: %s", r.URL.RequestURI(), err)
	}
}

// writeError maps err to a status code and a JSON detail body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	var verr *orchestrator.ValidationError
	var perr *paramError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		detail = verr.Message
	case errors.As(err, &perr):
		status = http.StatusUnprocessableEntity
		detail = perr.Error()
	default:
		s.logger.Error("Request failed: %s", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Detail: detail}); err != nil {
		s.logger.Debug("Failed to write error response: %s", err)
	}
}

func parseImageRequest(r *http.Request) (orchestrator.ImageRequest, error) {
	width, err := pathInt(r, "width")
	if err != nil {
		return orchestrator.ImageRequest{}, err
	}
	height, err := pathInt(r, "height")
	if err != nil {
		return orchestrator.ImageRequest{}, err
	}

	q := r.URL.Query()
	return orchestrator.ImageRequest{
		Width:  width,
		Height: height,
		Text:   q.Get("text"),
		Color:  q.Get("color"),
	}, nil
}

func parseBulkRequest(r *http.Request) (orchestrator.BulkRequest, error) {
	image, err := parseImageRequest(r)
	if err != nil {
		return orchestrator.BulkRequest{}, err
	}

	req := orchestrator.BulkRequest{ImageRequest: image, Count: DefaultCount}
	q := r.URL.Query()

	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, &paramError{name: "count", msg: "must be an integer"}
		}
		req.Count = n
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"download", &req.Download},
		{"samebg", &req.SameBG},
		{"numbering", &req.Numbering},
	}
	for _, f := range flags {
		v, err := queryBool(q.Get(f.name))
		if err != nil {
			return req, &paramError{name: f.name, msg: "must be a boolean"}
		}
		*f.dst = v
	}
	req.SameBGParam = q.Get("samebg")
	req.NumberingParam = q.Get("numbering")

	return req, nil
}

func pathInt(r *http.Request, name string) (int, error) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, &paramError{name: name, msg: "must be an integer"}
	}
	return n, nil
}

// queryBool accepts the usual spellings of a boolean; empty is false.
func queryBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "f", "no", "n", "off":
		return false, nil
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	}
	return false, errors.New("not a boolean")
}
