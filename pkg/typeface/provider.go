package typeface

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	tdfont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/user/placeholder/pkg/ports"
)

// BuiltinName is the Source of fonts that fell back to the built-in bitmap face.
const BuiltinName = "builtin:7x13"

// Font is a resolved font at a fixed size. It is immutable and safe to
// share; faces created from it are not.
type Font struct {
	Source string // candidate path, or BuiltinName
	Size   int

	parsed *opentype.Font
}

// Builtin reports whether this font is the built-in bitmap fallback.
func (f *Font) Builtin() bool {
	return f.parsed == nil
}

// NewFace creates a face for exclusive use by the caller.
func (f *Font) NewFace() font.Face {
	if f.parsed == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    float64(f.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// parsedFont is a memoized parse attempt; font is nil when the file was unusable.
type parsedFont struct {
	font *opentype.Font
}

// Provider resolves fonts from an ordered candidate list with a built-in
// fallback. Results are cached per size, so a Provider should be created
// once and shared.
type Provider struct {
	fs         ports.FileSystem
	logger     ports.Logger
	candidates []string

	parsed sync.Map // path -> parsedFont
	sized  sync.Map // size -> *Font
}

// NewProvider creates a Provider trying candidates in order.
func NewProvider(fs ports.FileSystem, logger ports.Logger, candidates []string) *Provider {
	return &Provider{
		fs:         fs,
		logger:     logger.WithComponent("fonts"),
		candidates: candidates,
	}
}

// Load returns a new face at size.
func (p *Provider) Load(size int) font.Face {
	return p.Resolve(size).NewFace()
}

// Resolve returns the first candidate that loads at size, or the built-in font.
func (p *Provider) Resolve(size int) *Font {
	if v, ok := p.sized.Load(size); ok {
		return v.(*Font)
	}

	resolved := &Font{Source: BuiltinName, Size: size}
	for _, path := range p.candidates {
		parsed := p.parse(path)
		if parsed == nil {
			continue
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: float64(size), DPI: 72})
		if err != nil {
			p.logger.Warn("Font %s cannot be used at size %d: %s", path, size, err)
			continue
		}
		face.Close()
		resolved = &Font{Source: path, Size: size, parsed: parsed}
		break
	}

	if resolved.Builtin() {
		p.logger.Debug("No system font available, using built-in font at size %d", size)
	} else {
		p.logger.Debug("Resolved font %s at size %d", resolved.Source, size)
	}

	actual, _ := p.sized.LoadOrStore(size, resolved)
	return actual.(*Font)
}

// parse reads and parses one candidate, remembering failures.
func (p *Provider) parse(path string) *opentype.Font {
	if v, ok := p.parsed.Load(path); ok {
		return v.(parsedFont).font
	}

	f, err := p.readFont(path)
	if err != nil {
		p.logger.Debug("Skipping font %s: %s", path, err)
	}
	p.parsed.Store(path, parsedFont{font: f})
	return f
}

func (p *Provider) readFont(path string) (*opentype.Font, error) {
	exists, err := p.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("stat font: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("not found")
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	if isWOFF(path, data) {
		data, err = tdfont.ToSFNT(data)
		if err != nil {
			return nil, fmt.Errorf("convert woff to sfnt: %w", err)
		}
	}

	if isCollection(data) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection: %w", err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("font collection: %w", err)
		}
		return f, nil
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// isWOFF checks for WOFF or WOFF2 by extension or magic bytes ("wOFF", "wOF2").
func isWOFF(path string, data []byte) bool {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".woff") || strings.HasSuffix(lower, ".woff2") {
		return true
	}
	return bytes.HasPrefix(data, []byte("wOFF")) || bytes.HasPrefix(data, []byte("wOF2"))
}

// isCollection checks for the TrueType collection tag "ttcf".
func isCollection(data []byte) bool {
	return bytes.HasPrefix(data, []byte("ttcf"))
}

var _ ports.FontProvider = (*Provider)(nil)
