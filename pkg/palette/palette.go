// Package palette resolves background colors from optional hex strings.
//
// Malformed color strings are not errors: they are treated as if no color
// was given and a random color is drawn instead.
package palette

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/user/placeholder/pkg/ports"
)

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Valid reports whether s is six hex digits with an optional leading '#'.
func Valid(s string) bool {
	return hexPattern.MatchString(s)
}

// Parse converts "#RRGGBB" or "RRGGBB" to an opaque color.
// ok is false when s is not Valid.
func Parse(s string) (c color.RGBA, ok bool) {
	if !Valid(s) {
		return color.RGBA{}, false
	}
	hex := strings.TrimPrefix(s, "#")
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, true
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Resolver turns optional color specs into concrete colors.
// It is safe for concurrent use.
type Resolver struct {
	mu  sync.Mutex
	rng ports.RandomSource
}

// NewResolver creates a Resolver drawing random colors from rng.
func NewResolver(rng ports.RandomSource) *Resolver {
	return &Resolver{rng: rng}
}

// NewSource returns a random source. A zero seed yields an entropy-seeded source.
func NewSource(seed uint64) ports.RandomSource {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Resolve returns the parsed color for value, or a random color when value
// is empty or malformed.
func (r *Resolver) Resolve(value string) color.RGBA {
	if c, ok := Parse(value); ok {
		return c
	}
	return r.Random()
}

// Random draws each channel independently from [0, 255].
func (r *Resolver) Random() color.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return color.RGBA{
		R: uint8(r.rng.IntN(256)),
		G: uint8(r.rng.IntN(256)),
		B: uint8(r.rng.IntN(256)),
		A: 255,
	}
}
