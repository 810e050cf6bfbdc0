package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Engine names.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Log levels, from quietest to noisiest.
const (
	LogNone   = "none"
	LogQuiet  = "quiet" // errors only
	LogNormal = "normal"
	LogDebug  = "debug"
)

// Default directory layout, relative to the working directory.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
)

// Limits.
const (
	MaxPathLength  = 4096
	MaxStyleLength = 100
	MaxWorkers     = 32
)

// configDirName is the directory under the user config dir searched for named configs.
const configDirName = "go-mdsite"

// Config holds all configuration for a site build.
type Config struct {
	Content      string          `yaml:"content"`      // Markdown source tree
	Static       string          `yaml:"static"`       // Static assets tree, mirrored verbatim
	Output       string          `yaml:"output"`       // Destination, cleared on every build
	Assets       string          `yaml:"assets"`       // Directory with styles/ and templates/ overriding built-ins
	Template     string          `yaml:"template"`     // Template name or .html path (empty = default)
	Style        string          `yaml:"style"`        // Style name or .css path (empty = none)
	Engine       string          `yaml:"engine"`       // "native" or "goldmark"
	HeadingIDs   bool            `yaml:"headingIDs"`   // Add slug ids to headings
	RewriteLinks bool            `yaml:"rewriteLinks"` // Rewrite relative .md links to .html
	FailFast     bool            `yaml:"failFast"`     // Abort on the first page error
	Workers      int             `yaml:"workers"`      // 0 = auto
	Highlight    HighlightConfig `yaml:"highlight"`
	Log          LogConfig       `yaml:"log"`
}

// HighlightConfig defines code block highlighting options.
type HighlightConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Style    string `yaml:"style"`    // chroma style name (default: "github")
	Language string `yaml:"language"` // fallback lexer when the language cannot be guessed
}

// LogConfig defines console logging options.
type LogConfig struct {
	Level string `yaml:"level"` // "none", "quiet", "normal", "debug"
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:  DefaultContentDir,
		Static:   DefaultStaticDir,
		Output:   DefaultOutputDir,
		Engine:   EngineNative,
		FailFast: true,
		Log:      LogConfig{Level: LogNormal},
	}
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for callers that
// construct Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"content", c.Content, MaxPathLength},
		{"static", c.Static, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"assets", c.Assets, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"style", c.Style, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
		{"highlight.language", c.Highlight.Language, MaxStyleLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Content == "" {
		return fmt.Errorf("%w: content: required", ErrInvalidValue)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output: required", ErrInvalidValue)
	}
	if fileutil.Overlaps(c.Output, c.Content) || (c.Static != "" && fileutil.Overlaps(c.Output, c.Static)) {
		return fmt.Errorf("%w: output: %q would be cleared but overlaps a source directory", ErrInvalidValue, c.Output)
	}

	switch strings.ToLower(c.Engine) {
	case "", EngineNative, EngineGoldmark:
	default:
		return fmt.Errorf("%w: engine: %q (must be native or goldmark)", ErrInvalidValue, c.Engine)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", LogNone, LogQuiet, LogNormal, LogDebug:
	default:
		return fmt.Errorf("%w: log.level: %q (must be none, quiet, normal or debug)", ErrInvalidValue, c.Log.Level)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// EngineName returns the normalized engine name, defaulting to native.
func (c *Config) EngineName() string {
	if c.Engine == "" {
		return EngineNative
	}
	return strings.ToLower(c.Engine)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the locations tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same names under the user config
// directory (~/.config/go-mdsite/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
