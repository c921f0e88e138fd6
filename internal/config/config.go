// Package config loads the bracemend configuration and repair plan.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/bracemend/internal/model"
)

// DefaultFile is picked up from the working directory when no config path is given.
const DefaultFile = ".bracemend.yaml"

// Config holds the settings shared by all commands.
type Config struct {
	Parallel   int           `yaml:"parallel"`
	Extensions []string      `yaml:"extensions"`
	DryRun     bool          `yaml:"dry_run"`
	Force      bool          `yaml:"force"`
	Context    int           `yaml:"context"` // excerpt radius for check/watch
	Logging    LoggingConfig `yaml:"logging"`
	Files      []FileRule    `yaml:"files"`

	// dir is where relative file rule paths are resolved from.
	dir string
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// FileRule is one planned repair.
type FileRule struct {
	Path     string   `yaml:"path"`
	Strategy string   `yaml:"strategy"`
	Markers  []string `yaml:"markers"`
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log formats.
var ValidFormats = []string{"console", "json"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Parallel: 1,
		Context:  3,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		dir: ".",
	}
}

// Load reads configuration from a YAML file. The file must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	cfg.dir = filepath.Dir(abs)
	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadDefault reads DefaultFile from the working directory, falling back to
// the defaults when it does not exist.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		cfg.applyEnvOverrides()

		return cfg, nil
	}

	return cfg, err
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("BRACEMEND_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if format := os.Getenv("BRACEMEND_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	if parallel := os.Getenv("BRACEMEND_PARALLEL"); parallel != "" {
		if n, err := strconv.Atoi(parallel); err == nil {
			c.Parallel = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	if c.Context < 0 {
		return fmt.Errorf("context must not be negative, got %d", c.Context)
	}

	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}

	for i, rule := range c.Files {
		if rule.Path == "" {
			return fmt.Errorf("files[%d]: path is required", i)
		}

		strategy, err := m.ParseStrategy(rule.Strategy)
		if err != nil {
			return fmt.Errorf("files[%d] %s: %w", i, rule.Path, err)
		}

		if strategy.NeedsMarkers() && len(rule.Markers) == 0 {
			return fmt.Errorf("files[%d] %s: strategy %s requires markers", i, rule.Path, strategy)
		}
	}

	return nil
}

// Jobs converts file rules to repair jobs with absolute paths. Relative
// paths are resolved against the directory of the config file.
func (c *Config) Jobs() ([]m.Job, error) {
	jobs := make([]m.Job, 0, len(c.Files))

	for _, rule := range c.Files {
		strategy, err := m.ParseStrategy(rule.Strategy)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule.Path, err)
		}

		path := rule.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.dir, path)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule.Path, err)
		}

		jobs = append(jobs, m.Job{
			Path:     m.Path(abs),
			Strategy: strategy,
			Markers:  rule.Markers,
		})
	}

	return jobs, nil
}
