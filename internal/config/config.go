package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/qfind/internal/fileutil"
	"github.com/harrison/qfind/internal/logger"
)

// Config represents qfind configuration options
type Config struct {
	// Extensions is the default include filter; ["*"] disables filtering
	Extensions []string `yaml:"extensions"`

	// ExcludeExtensions is the default exclude filter (optional)
	ExcludeExtensions []string `yaml:"exclude_extensions"`

	// Workers is the number of job slots per batch (0 = one per CPU)
	Workers int `yaml:"workers"`

	// ContextLines is the number of lines shown around each match
	ContextLines int `yaml:"context_lines"`

	// TabWidth is the number of spaces a tab expands to
	TabWidth int `yaml:"tab_width"`

	// Sentinel is the marker filename that excludes its directory ("" disables)
	Sentinel string `yaml:"sentinel"`

	// Width overrides the detected terminal width (0 = detect)
	Width int `yaml:"width"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// IgnoreCase makes matching case-insensitive
	IgnoreCase bool `yaml:"ignore_case"`

	// IncludeHidden walks hidden files and directories
	IncludeHidden bool `yaml:"include_hidden"`

	// Simple suppresses context lines
	Simple bool `yaml:"simple"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Extensions:   append([]string(nil), fileutil.DefaultExtensions...),
		Workers:      0, // One per CPU
		ContextLines: 5,
		TabWidth:     4,
		Sentinel:     fileutil.DefaultSentinel,
		Width:        0, // Detect
		LogLevel:     logger.DefaultLevel,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Keys present in the file override defaults, even when set to zero values
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, ok := rawMap["extensions"]; ok {
		cfg.Extensions = normalizeExtensions(fileCfg.Extensions, true)
	}
	if _, ok := rawMap["exclude_extensions"]; ok {
		cfg.ExcludeExtensions = normalizeExtensions(fileCfg.ExcludeExtensions, false)
	}
	if _, ok := rawMap["workers"]; ok {
		cfg.Workers = fileCfg.Workers
	}
	if _, ok := rawMap["context_lines"]; ok {
		cfg.ContextLines = fileCfg.ContextLines
	}
	if _, ok := rawMap["tab_width"]; ok {
		cfg.TabWidth = fileCfg.TabWidth
	}
	if _, ok := rawMap["sentinel"]; ok {
		cfg.Sentinel = fileCfg.Sentinel
	}
	if _, ok := rawMap["width"]; ok {
		cfg.Width = fileCfg.Width
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(fileCfg.LogLevel))
	}
	cfg.IgnoreCase = fileCfg.IgnoreCase
	cfg.IncludeHidden = fileCfg.IncludeHidden
	cfg.Simple = fileCfg.Simple

	return cfg, nil
}

// normalizeExtensions tokenizes config entries the way --ext values are parsed,
// so "*.go" and "go, md" become plain extension names. A lone "*" is kept when
// allowAll is set.
func normalizeExtensions(entries []string, allowAll bool) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if allowAll && strings.TrimSpace(entry) == fileutil.AllExtensions {
			out = append(out, fileutil.AllExtensions)
			continue
		}
		out = append(out, fileutil.ParseExtensionList(entry)...)
	}
	return out
}

// Flags carries CLI values. Nil fields were not given on the command line.
type Flags struct {
	Extensions        []string
	ExcludeExtensions []string
	Workers           *int
	ContextLines      *int
	Width             *int
	LogLevel          *string
	IgnoreCase        *bool
	IncludeHidden     *bool
	Simple            *bool
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.Extensions != nil {
		c.Extensions = f.Extensions
	}
	if f.ExcludeExtensions != nil {
		c.ExcludeExtensions = f.ExcludeExtensions
	}
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if f.ContextLines != nil {
		c.ContextLines = *f.ContextLines
	}
	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.LogLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*f.LogLevel))
	}
	if f.IgnoreCase != nil {
		c.IgnoreCase = *f.IgnoreCase
	}
	if f.IncludeHidden != nil {
		c.IncludeHidden = *f.IncludeHidden
	}
	if f.Simple != nil {
		c.Simple = *f.Simple
	}
}

// FilterAll reports whether the include filter is disabled.
func (c *Config) FilterAll() bool {
	for _, ext := range c.Extensions {
		if ext == fileutil.AllExtensions {
			return true
		}
	}
	return false
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.ContextLines < 1 {
		return fmt.Errorf("context_lines must be > 0, got %d", c.ContextLines)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be > 0, got %d", c.TabWidth)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	return nil
}
