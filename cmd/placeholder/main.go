// Package main provides the CLI entry point for placeholder.
package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/browser"

	"github.com/user/placeholder/pkg/adapters/logger"
	"github.com/user/placeholder/pkg/adapters/osfilesystem"
	"github.com/user/placeholder/pkg/config"
	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/placeholder"
	"github.com/user/placeholder/pkg/ports"
	"github.com/user/placeholder/pkg/server"
	"github.com/user/placeholder/pkg/summarizer"
)

// Globals are flags shared by every command. Set flags override the config file.
type Globals struct {
	Config   string   `short:"C" type:"existingfile" help:"YAML or TOML configuration file."`
	Workers  *int     `short:"w" help:"Bulk composition workers (0 = one per CPU)."`
	Font     []string `short:"f" help:"Font file tried before the system fonts (repeatable)."`
	Seed     *uint64  `help:"Seed for random backgrounds (0 = random)."`
	Debug    bool     `short:"d" help:"Save every image, layout and archive to the debug directory."`
	DebugDir *string  `help:"Directory for debug output (default: ./debug)."`
	LogLevel *string  `short:"l" help:"Log level (debug, info, warn, error, quiet)."`
	LogFile  *string  `help:"Write logs to a rotating file instead of the console."`
	Quiet    bool     `short:"Q" help:"Suppress all log output."`
}

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"withargs" help:"Serve placeholder images over HTTP."`
	Image   ImageCmd   `cmd:"" help:"Write one placeholder PNG."`
	Bulk    BulkCmd    `cmd:"" help:"Write a zip archive of placeholder PNGs."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ServeCmd defines the serve subcommand.
type ServeCmd struct {
	Listen *string `short:"a" help:"Listen address (default: :8000)."`
	Open   bool    `help:"Open the index page in a browser once listening."`
}

// ImageCmd defines the image subcommand.
type ImageCmd struct {
	Width  int    `arg:"" help:"Image width in pixels."`
	Height int    `arg:"" help:"Image height in pixels."`
	Output string `short:"o" required:"" help:"Output PNG file path."`
	Text   string `short:"t" help:"Text shown above the dimensions."`
	Color  string `short:"c" help:"Background color in hex (random when omitted)."`
}

// BulkCmd defines the bulk subcommand.
type BulkCmd struct {
	Width     int    `arg:"" help:"Image width in pixels."`
	Height    int    `arg:"" help:"Image height in pixels."`
	Output    string `short:"o" required:"" help:"Output zip file path."`
	Count     int    `short:"n" default:"10" help:"Number of images."`
	Text      string `short:"t" help:"Text shown above the dimensions."`
	Color     string `short:"c" help:"Background color in hex (random when omitted)."`
	SameBG    bool   `name:"samebg" help:"Use one background color for every image."`
	Numbering bool   `help:"Append #1, #2, ... to each image."`
	Summary   string `short:"s" help:"Output run summary to file (Markdown format)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("placeholder"),
		kong.Description(l10n.T("Generate placeholder images by size, over HTTP or from the command line.")),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// settings loads the config file and applies flag overrides.
func (g *Globals) settings() (config.Config, error) {
	cfg := config.Defaults()
	if g.Config != "" {
		loaded, err := config.LoadFromFile(g.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if g.Workers != nil {
		cfg.Workers = *g.Workers
	}
	cfg.Fonts = append(cfg.Fonts, g.Font...)
	if g.Seed != nil {
		cfg.Seed = *g.Seed
	}
	if g.Debug {
		cfg.Debug = true
	}
	if g.DebugDir != nil {
		cfg.DebugDir = *g.DebugDir
	}
	if g.LogLevel != nil {
		cfg.LogLevel = *g.LogLevel
	}
	if g.LogFile != nil {
		cfg.LogFile = *g.LogFile
	}
	if g.Quiet {
		cfg.LogLevel = ports.LevelQuiet.String()
	}
	return cfg, nil
}

// setup builds the logger and engine from cfg.
// The returned closer flushes the log file, if any.
func setup(cfg config.Config) (ports.Logger, *placeholder.Engine, io.Closer) {
	var log ports.Logger
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" && cfg.Level() < ports.LevelQuiet {
		log, closer = logger.NewFile(cfg.Level(), cfg.LogFile, cfg.LogMaxSizeMB)
	} else {
		log = logger.New(cfg.Level())
	}

	builder := placeholder.NewOptionsBuilder().
		WithMaxDimension(cfg.MaxDimension).
		WithMaxCount(cfg.MaxCount).
		WithWorkers(cfg.Workers).
		WithFonts(cfg.Fonts...).
		WithSeed(cfg.Seed).
		WithLogger(log)
	if cfg.Debug {
		builder.WithDebugDir(cfg.DebugDir)
	}

	return log, placeholder.New(builder.Build()), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// Run executes the serve command.
func (cmd *ServeCmd) Run(g *Globals) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}
	if cmd.Listen != nil {
		cfg.Listen = *cmd.Listen
	}

	log, engine, closer := setup(cfg)
	defer closer.Close()
	ctx, cancel := signalContext(log)
	defer cancel()

	log.Info("Using font %s", engine.FontFor(24))

	srvConfig := server.DefaultConfig()
	srvConfig.Addr = cfg.Listen
	limits := engine.Config()
	srvConfig.MaxDimension = limits.MaxDimension
	srvConfig.MaxCount = limits.MaxCount
	srv := server.New(engine, srvConfig, log)

	if !cmd.Open {
		return srv.ListenAndServe(ctx)
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}
	url := localURL(ln.Addr())
	if err := browser.OpenURL(url); err != nil {
		log.Warn("Failed to open browser for %s: %s", url, err)
	}
	return srv.Serve(ctx, ln)
}

// localURL is the index URL of a listener, reachable from this machine.
func localURL(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d/", tcp.Port)
	}
	return "http://" + addr.String() + "/"
}

// Run executes the image command.
func (cmd *ImageCmd) Run(g *Globals) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}

	log, engine, closer := setup(cfg)
	defer closer.Close()
	ctx, cancel := signalContext(log)
	defer cancel()

	img, err := engine.Image(ctx, orchestrator.ImageRequest{
		Width:  cmd.Width,
		Height: cmd.Height,
		Text:   cmd.Text,
		Color:  cmd.Color,
	})
	if err != nil {
		return err
	}

	if err := osfilesystem.New().WriteFile(cmd.Output, img.Data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("Output saved to %s", cmd.Output)
	return nil
}

// Run executes the bulk command.
func (cmd *BulkCmd) Run(g *Globals) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}

	log, engine, closer := setup(cfg)
	defer closer.Close()
	ctx, cancel := signalContext(log)
	defer cancel()

	req := orchestrator.BulkRequest{
		ImageRequest: orchestrator.ImageRequest{
			Width:  cmd.Width,
			Height: cmd.Height,
			Text:   cmd.Text,
			Color:  cmd.Color,
		},
		Count:     cmd.Count,
		Download:  true,
		SameBG:    cmd.SameBG,
		Numbering: cmd.Numbering,
	}

	stop := startSpinner(l10n.F("Generating %d images...", cmd.Count))
	out, err := engine.Bulk(ctx, req)
	stop()
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	if err := fs.WriteFile(cmd.Output, out.Pack.Archive); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("Output saved to %s", cmd.Output)

	if cmd.Summary != "" {
		summary := summarizer.NewBuilder().WithRequest(req).WithOutput(out).Build()
		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)
		if err := summarizer.NewWriter(formatter, fs).Write(cmd.Summary, summary); err != nil {
			log.Error("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cmd.Summary)
		}
	}

	return nil
}

// startSpinner shows progress on an interactive stderr and returns
// a function that clears it.
func startSpinner(suffix string) func() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(colorable.NewColorableStderr()))
	s.Suffix = " " + suffix
	if err := s.Color("yellow"); err != nil {
		return func() {}
	}
	s.Start()
	return s.Stop
}

// Run executes the version command.
func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Println(l10n.F("placeholder version %s", version))
	return nil
}
