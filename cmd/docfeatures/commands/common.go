package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docfeatures/internal/config"
	"git.home.luguber.info/inful/docfeatures/internal/events"
	"git.home.luguber.info/inful/docfeatures/internal/features"
	"git.home.luguber.info/inful/docfeatures/internal/hooks"
	"git.home.luguber.info/inful/docfeatures/internal/metrics"
)

// Global carries shared state into subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer

	// Verbose mirrors the parsed --verbose flag for error reporting in main.
	Verbose bool
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (docfeatures.yaml or mkdocs.yml). Defaults to ./docfeatures.yaml when present." type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text|json). Overrides logging.format."`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Copy  CopyCmd  `cmd:"" help:"Copy <docs_dir>/features/*.json into <site_dir>/features"`
	Hook  HookCmd  `cmd:"" help:"Dispatch a named build hook event (e.g. on_post_build)"`
	List  ListCmd  `cmd:"" help:"List the feature files that would be copied"`
	Watch WatchCmd `cmd:"" help:"Copy on every feature file change (for live preview)"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; set up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.NormalizeLogLevel(os.Getenv(config.EnvLogLevel))
	if c.Verbose {
		level = config.LogLevelDebug
	}
	format := config.NormalizeLogFormat(c.LogFormat)
	if c.LogFormat == "" {
		format = config.NormalizeLogFormat(os.Getenv(config.EnvLogFormat))
	}
	slog.SetDefault(newLogger(level, format))
	return nil
}

func newLogger(level config.LogLevel, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// PathFlags are the per-command overrides for the two roots.
type PathFlags struct {
	DocsDir string `name:"docs-dir" help:"Documentation source root (overrides docs_dir)" type:"path"`
	SiteDir string `name:"site-dir" help:"Generated site root (overrides site_dir)" type:"path"`
}

// loadConfig resolves the configuration, applies CLI overrides and re-installs
// the logger when the file asks for a different level or format.
func loadConfig(root *CLI, flags PathFlags) (*config.Config, error) {
	cfg, err := config.Resolve(root.Config)
	if err != nil {
		return nil, err
	}
	if flags.DocsDir != "" {
		cfg.DocsDir = flags.DocsDir
	}
	if flags.SiteDir != "" {
		cfg.SiteDir = flags.SiteDir
	}
	if root.LogFormat != "" {
		cfg.Logging.Format = config.NormalizeLogFormat(root.LogFormat)
	}
	if root.Verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(cfg.Logging.Level, cfg.Logging.Format))
	return cfg, nil
}

// pipeline wires the hook registry to metrics and event publishing for one command run.
type pipeline struct {
	cfg         *config.Config
	registry    *hooks.Registry
	gatherer    *prometheus.Registry
	metricsFile string
	publisher   events.Publisher
}

func newPipeline(cfg *config.Config, dryRun bool, metricsFile string) *pipeline {
	if metricsFile == "" {
		metricsFile = cfg.Metrics.Textfile
	}
	p := &pipeline{
		cfg:         cfg,
		registry:    hooks.NewRegistry(),
		metricsFile: metricsFile,
		publisher:   events.NoopPublisher{},
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if metricsFile != "" {
		p.gatherer = prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(p.gatherer)
	}

	if !dryRun {
		pub, err := events.FromConfig(cfg.Events)
		if err != nil {
			slog.Warn("Event publishing disabled", "error", err)
		} else {
			p.publisher = pub
		}
	}

	hooks.RegisterDefaults(p.registry, &hooks.FeatureCopyOptions{
		Recorder:  recorder,
		Publisher: p.publisher,
		DryRun:    dryRun,
	})
	return p
}

// dispatch runs every hook bound to ev against the configured roots.
func (p *pipeline) dispatch(ctx context.Context, ev hooks.Event) (*features.Result, error) {
	hc := hooks.NewContext(p.cfg, p.cfg.DocsDir, p.cfg.SiteDir, slog.Default())
	err := p.registry.Dispatch(ctx, ev, hc)
	p.flushMetrics()
	return hooks.FeatureResult(hc), err
}

func (p *pipeline) flushMetrics() {
	if p.gatherer == nil {
		return
	}
	if err := metrics.WriteTextfile(p.metricsFile, p.gatherer); err != nil {
		slog.Warn("Failed to write metrics textfile", "path", p.metricsFile, "error", err)
	}
}

func (p *pipeline) Close() {
	if err := p.publisher.Close(); err != nil {
		slog.Warn("Failed to close event publisher", "error", err)
	}
}
