// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/flight-desk/internal/domain/services"
)

const (
	// DefaultConfigDir is the directory name for flight configuration.
	DefaultConfigDir = ".flight"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default resolution log file name.
	DefaultDatabaseFile = "resolutions.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	LLM      LLMConfig      `yaml:"llm,omitempty"`
	Catalog  CatalogConfig  `yaml:"catalog,omitempty"`
	Resolver ResolverConfig `yaml:"resolver,omitempty"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// LLMConfig holds configuration for the LLM provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider,omitempty"`
	Model       string  `yaml:"model,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty"` // OpenAI-compatible endpoint
	Temperature float32 `yaml:"temperature,omitempty"`
	// RequestsPerSecond throttles outbound completions; 0 disables throttling.
	RequestsPerSecond float64 `yaml:"requests_per_second,omitempty"`
	MaxToolRounds     int     `yaml:"max_tool_rounds,omitempty"`
}

// CatalogConfig selects the destination catalog.
type CatalogConfig struct {
	// Path is a YAML, JSON or CSV catalog file. Empty uses the built-in catalog.
	Path string `yaml:"path,omitempty"`
}

// ResolverConfig tunes destination matching. Zero values use the defaults.
type ResolverConfig struct {
	Threshold            float64 `yaml:"threshold,omitempty"`
	OverlapFloor         float64 `yaml:"overlap_floor,omitempty"`
	SubstitutionScore    float64 `yaml:"substitution_score,omitempty"`
	MinContainmentLength int     `yaml:"min_containment_length,omitempty"`
	MinOverlapLength     int     `yaml:"min_overlap_length,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite resolution log.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	// Empty means .flight/resolutions.db under the base path.
	Path string `yaml:"path,omitempty"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // console or json
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:          "openai",
			Model:             "gpt-4o-mini",
			Temperature:       0.7,
			RequestsPerSecond: 2,
			MaxToolRounds:     services.DefaultMaxToolRounds,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from the .flight directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'flight init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file when one exists and falls back to
// defaults (with environment overrides) otherwise.
func LoadOrDefault(basePath string) (*Config, error) {
	if !Exists(basePath) {
		cfg := Default()
		cfg.applyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return Load(basePath)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = key
		}
	}
	if level := os.Getenv("FLIGHT_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if addr := os.Getenv("FLIGHT_HTTP_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate checks value ranges that yaml decoding cannot.
func (c *Config) Validate() error {
	var errs []error

	r := c.Resolver
	ratios := []struct {
		name  string
		value float64
	}{
		{"resolver.threshold", r.Threshold},
		{"resolver.overlap_floor", r.OverlapFloor},
		{"resolver.substitution_score", r.SubstitutionScore},
	}
	for _, ratio := range ratios {
		if ratio.value < 0 || ratio.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %v", ratio.name, ratio.value))
		}
	}
	if r.MinContainmentLength < 0 {
		errs = append(errs, errors.New("resolver.min_containment_length must not be negative"))
	}
	if r.MinOverlapLength < 0 {
		errs = append(errs, errors.New("resolver.min_overlap_length must not be negative"))
	}
	if c.LLM.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("llm.requests_per_second must not be negative"))
	}
	if c.LLM.MaxToolRounds < 0 {
		errs = append(errs, errors.New("llm.max_tool_rounds must not be negative"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Options maps the resolver section onto resolver options, using defaults
// for unset fields.
func (r ResolverConfig) Options() services.ResolverOptions {
	opts := services.DefaultResolverOptions()
	if r.Threshold != 0 {
		opts.Threshold = r.Threshold
	}
	if r.OverlapFloor != 0 {
		opts.OverlapFloor = r.OverlapFloor
	}
	if r.SubstitutionScore != 0 {
		opts.SubstitutionScore = r.SubstitutionScore
	}
	if r.MinContainmentLength != 0 {
		opts.MinContainmentLength = r.MinContainmentLength
	}
	if r.MinOverlapLength != 0 {
		opts.MinOverlapLength = r.MinOverlapLength
	}
	return opts
}

// ConfigDir returns the path to the .flight config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SQLitePath returns the resolution log path, relative paths resolved
// against basePath.
func (c *Config) SQLitePath(basePath string) string {
	if c.SQLite.Path == "" {
		return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
	}
	if filepath.IsAbs(c.SQLite.Path) {
		return c.SQLite.Path
	}
	return filepath.Join(basePath, c.SQLite.Path)
}

// CatalogPath returns the catalog file path, or "" for the built-in catalog.
func (c *Config) CatalogPath(basePath string) string {
	if c.Catalog.Path == "" || filepath.IsAbs(c.Catalog.Path) {
		return c.Catalog.Path
	}
	return filepath.Join(basePath, c.Catalog.Path)
}

// Exists checks if a flight config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
