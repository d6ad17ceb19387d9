package config

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = "docfeatures.yaml"

const (
	DefaultDocsDir      = "docs"
	DefaultSiteDir      = "site"
	DefaultEventSubject = "docfeatures.features.copied"
	DefaultDebounce     = 500 * time.Millisecond
)

// Config represents the application configuration. The top-level docs_dir and
// site_dir keys use the same names as mkdocs.yml, so an mkdocs.yml can be passed
// as the configuration file directly (unknown keys are ignored).
type Config struct {
	DocsDir string        `yaml:"docs_dir"`
	SiteDir string        `yaml:"site_dir"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
	Events  EventsConfig  `yaml:"events,omitempty"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`

	// path is the file this config was loaded from ("" when built from defaults).
	path string
}

// LoggingConfig controls the slog handler installed by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// MetricsConfig enables Prometheus textfile output after each copy run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// EventsConfig enables NATS notifications after each successful copy.
type EventsConfig struct {
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// Enabled reports whether a NATS URL is configured.
func (e EventsConfig) Enabled() bool { return e.NATSURL != "" }

// WatchConfig tunes watch mode.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
	Resync   time.Duration `yaml:"resync,omitempty"` // 0 disables periodic resync
}

// UnmarshalYAML accepts the mapping form used by docfeatures.yaml and ignores
// the mkdocs.yml form of watch, which is a list of extra paths to serve.
func (w *WatchConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return nil
	}
	type plain WatchConfig
	return node.Decode((*plain)(w))
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string { return c.path }

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	loadEnvFile()
	applyEnvOverrides(cfg)
	applyDefaults(cfg, "")
	return cfg
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigNotFound(configPath)
		}
		return nil, errors.ConfigInvalid(configPath, fmt.Errorf("failed to read config file: %w", err))
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, errors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	// Paths in the file are relative to the file, like mkdocs does it.
	baseDir := filepath.Dir(configPath)
	cfg.DocsDir = resolve(baseDir, cfg.DocsDir)
	cfg.SiteDir = resolve(baseDir, cfg.SiteDir)
	cfg.Metrics.Textfile = resolve(baseDir, cfg.Metrics.Textfile)

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg, baseDir)
	cfg.path = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads configPath when given. Otherwise it loads DefaultFileName from
// the working directory if present, falling back to Default().
func Resolve(configPath string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config, baseDir string) {
	if cfg.DocsDir == "" {
		cfg.DocsDir = resolve(baseDir, DefaultDocsDir)
	}
	if cfg.SiteDir == "" {
		cfg.SiteDir = resolve(baseDir, DefaultSiteDir)
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
	if cfg.Events.Subject == "" {
		cfg.Events.Subject = DefaultEventSubject
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
}

func resolve(baseDir, p string) string {
	if p == "" || baseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.New(errors.CategoryConfig, errors.SeverityFatal,
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath)
	}

	example := &Config{
		DocsDir: DefaultDocsDir,
		SiteDir: DefaultSiteDir,
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Watch:   WatchConfig{Debounce: DefaultDebounce},
	}
	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.InternalError("failed to marshal example config", err)
	}

	header := "# docfeatures configuration\n" +
		"# Paths are relative to this file. Copies <docs_dir>/features/*.json to <site_dir>/features/.\n" +
		"# Optional sections:\n" +
		"#   metrics: {textfile: ./metrics/docfeatures.prom}\n" +
		"#   events:  {nats_url: nats://localhost:4222, subject: " + DefaultEventSubject + "}\n"

	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.FileSystemError("create config dir", dir, err)
		}
	}
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o600); err != nil {
		return errors.FileSystemError("write config", configPath, err)
	}
	return nil
}
