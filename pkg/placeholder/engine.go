package placeholder

import (
	"github.com/user/placeholder/pkg/adapters/filesink"
	"github.com/user/placeholder/pkg/adapters/ggrenderer"
	"github.com/user/placeholder/pkg/adapters/logger"
	"github.com/user/placeholder/pkg/adapters/nullsink"
	"github.com/user/placeholder/pkg/adapters/osfilesystem"
	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/palette"
	"github.com/user/placeholder/pkg/ports"
	"github.com/user/placeholder/pkg/stages/bulk"
	"github.com/user/placeholder/pkg/stages/compose"
	"github.com/user/placeholder/pkg/stages/pack"
	"github.com/user/placeholder/pkg/typeface"
)

// Engine renders placeholder images with the default adapters:
// gg for drawing, system fonts from disk and an optional file debug sink.
// It is safe for concurrent use.
type Engine struct {
	*orchestrator.Orchestrator

	fonts *typeface.Provider
}

// New wires an Engine from opts.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}

	fs := osfilesystem.New()

	var sink ports.DebugSink = nullsink.New()
	if opts.DebugDir != "" {
		sink = filesink.New(opts.DebugDir, fs)
	}

	candidates := append(append([]string(nil), opts.Fonts...), typeface.DefaultCandidates()...)
	fonts := typeface.NewProvider(fs, log, typeface.ExpandGlobs(candidates))
	colors := palette.NewResolver(palette.NewSource(opts.Seed))

	composeStage := compose.NewStage(ggrenderer.New(), fonts, colors, sink, log)
	bulkStage := bulk.NewStage(composeStage, colors, log, opts.Workers)
	packStage := pack.NewStage(sink, log)

	return &Engine{
		Orchestrator: orchestrator.New(composeStage, bulkStage, packStage, opts.ToOrchestratorConfig(), log),
		fonts:        fonts,
	}
}

// FontFor reports which font source serves the given pixel size.
func (e *Engine) FontFor(size int) string {
	return e.fonts.Resolve(size).Source
}
