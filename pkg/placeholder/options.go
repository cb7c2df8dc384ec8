// Package placeholder provides a high-level API for generating placeholder images.
package placeholder

import (
	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/ports"
)

// Options configures an Engine.
type Options struct {
	// Limits
	MaxDimension int // largest accepted width or height (default: 3000)
	MaxCount     int // largest accepted bulk count (default: 50)

	// Rendering
	Workers int      // bulk composition workers (0 = one per CPU)
	Fonts   []string // font files tried before the system candidates
	Seed    uint64   // random background seed (0 = entropy)

	// Debug output directory; empty disables the debug sink
	DebugDir string

	// Logger receives engine logs; nil discards them
	Logger ports.Logger
}

// OptionsBuilder provides a fluent interface for building Options.
type OptionsBuilder struct {
	opts Options
}

// NewOptionsBuilder creates a builder holding the default options.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{opts: DefaultOptions()}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	limits := orchestrator.DefaultConfig()
	return Options{
		MaxDimension: limits.MaxDimension,
		MaxCount:     limits.MaxCount,
	}
}

// Build returns the final Options with constraints applied.
// Limits never exceed the defaults: 3000 pixels per side and 50 images.
func (b *OptionsBuilder) Build() Options {
	opts := b.opts
	defaults := DefaultOptions()
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaults.MaxDimension
	}
	opts.MaxDimension = min(opts.MaxDimension, defaults.MaxDimension)
	if opts.MaxCount <= 0 {
		opts.MaxCount = defaults.MaxCount
	}
	opts.MaxCount = min(opts.MaxCount, defaults.MaxCount)
	if opts.Workers < 0 {
		opts.Workers = 0
	}
	opts.Fonts = append([]string(nil), opts.Fonts...)
	return opts
}

// WithMaxDimension sets the largest accepted side length.
func (b *OptionsBuilder) WithMaxDimension(px int) *OptionsBuilder {
	b.opts.MaxDimension = px
	return b
}

// WithMaxCount sets the largest accepted bulk count.
func (b *OptionsBuilder) WithMaxCount(n int) *OptionsBuilder {
	b.opts.MaxCount = n
	return b
}

// WithWorkers sets the number of bulk composition workers.
func (b *OptionsBuilder) WithWorkers(n int) *OptionsBuilder {
	b.opts.Workers = n
	return b
}

// WithFonts adds font files tried before the system candidates.
func (b *OptionsBuilder) WithFonts(paths ...string) *OptionsBuilder {
	b.opts.Fonts = append(b.opts.Fonts, paths...)
	return b
}

// WithSeed makes random backgrounds reproducible.
func (b *OptionsBuilder) WithSeed(seed uint64) *OptionsBuilder {
	b.opts.Seed = seed
	return b
}

// WithDebugDir enables the debug sink under dir.
func (b *OptionsBuilder) WithDebugDir(dir string) *OptionsBuilder {
	b.opts.DebugDir = dir
	return b
}

// WithLogger sets the logger.
func (b *OptionsBuilder) WithLogger(logger ports.Logger) *OptionsBuilder {
	b.opts.Logger = logger
	return b
}

// ToOrchestratorConfig converts Options to orchestrator.Config.
func (o Options) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		MaxDimension: o.MaxDimension,
		MaxCount:     o.MaxCount,
	}
}
