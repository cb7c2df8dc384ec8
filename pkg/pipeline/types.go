package pipeline

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// Label returns the dimension label drawn on every image, e.g. "300 x 200".
func (d Dimension) Label() string {
	return fmt.Sprintf("%d x %d", d.Width, d.Height)
}

// EncodedImage is one finished raster image in its encoded form.
type EncodedImage struct {
	Index       int // 1-based position in a batch, 0 for single images
	Data        []byte
	ContentType string
	Background  color.RGBA
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains the text and geometry to lay out.
type LayoutInput struct {
	Label  string    // dimension label, possibly numbered
	Text   string    // custom text, possibly numbered; blank means absent
	Width  int       // image width
	Height int       // image height
	Face   font.Face // face used for measurement
}

// LineKind identifies which text a layout line carries.
type LineKind int

const (
	LineLabel LineKind = iota
	LineCustom
)

// String returns the line kind name.
func (k LineKind) String() string {
	if k == LineCustom {
		return "custom"
	}
	return "label"
}

// TextLine is one measured and positioned line of text.
type TextLine struct {
	Kind   LineKind `json:"kind"`
	Text   string   `json:"text"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// LayoutPlan is the ordered list of lines to draw, top to bottom.
type LayoutPlan struct {
	Lines []TextLine `json:"lines"`
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput describes one image to render.
type ComposeInput struct {
	Size      Dimension
	Text      string      // optional custom text
	Color     string      // optional hex color
	Numbering bool        // append " #<Index>" to the primary line
	Index     int         // 1-based image number, used when Numbering is set
	Shared    *color.RGBA // pre-resolved background; overrides Color when set
}

// ComposeResult contains one finished image.
type ComposeResult struct {
	Image EncodedImage
	Plan  LayoutPlan
}

// =============================================================================
// Bulk Stage Types
// =============================================================================

// BulkMode selects how a bulk result is packaged.
type BulkMode int

const (
	ModePreview BulkMode = iota
	ModeArchive
)

// BulkInput describes a batch of images generated from one template.
type BulkInput struct {
	Count          int
	Template       ComposeInput // Index and Shared are ignored
	SameBackground bool
	Mode           BulkMode
}

// BulkResult contains the batch in generation order.
type BulkResult struct {
	Size   Dimension
	Images []EncodedImage
	Mode   BulkMode
}

// =============================================================================
// Pack Stage Types
// =============================================================================

// PackInput contains a finished batch and the request parameters to echo.
type PackInput struct {
	Bulk      BulkResult
	Text      string
	Color     string
	SameBG    bool
	Numbering bool

	SameBGParam    string // raw samebg value as sent, echoed in the download link
	NumberingParam string // raw numbering value as sent
}

// PackResult is either an archive or a preview payload, depending on the mode.
type PackResult struct {
	Mode BulkMode

	// Archive mode
	Archive     []byte
	ContentType string
	Filename    string

	// Preview mode
	Previews    []PreviewImage
	DownloadURL string
}

// PreviewImage is one inlineable image of a preview payload.
type PreviewImage struct {
	Index    int
	Filename string
	DataURI  string
}
