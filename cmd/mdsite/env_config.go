package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
)

const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR
	StaticDir  string // MDSITE_STATIC_DIR
	OutputDir  string // MDSITE_OUTPUT_DIR
	Style      string // MDSITE_STYLE: style name or CSS path
	Engine     string // MDSITE_ENGINE: native or goldmark
	Workers    int    // MDSITE_WORKERS
}

// knownEnvVars lists valid MDSITE_* environment variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_STYLE":       true,
	"MDSITE_ENGINE":      true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads the recognized MDSITE_* values.
// Unparsable or non-positive MDSITE_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDSITE_CONFIG"),
		ContentDir: getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  getenv("MDSITE_STATIC_DIR"),
		OutputDir:  getenv("MDSITE_OUTPUT_DIR"),
		Style:      getenv("MDSITE_STYLE"),
		Engine:     getenv("MDSITE_ENGINE"),
	}

	if workers := getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars reports unrecognized MDSITE_* variables, which are
// most likely typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content = env.ContentDir
	}
	if env.StaticDir != "" {
		cfg.Static = env.StaticDir
	}
	if env.OutputDir != "" {
		cfg.Output = env.OutputDir
	}
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.Engine != "" {
		cfg.Engine = env.Engine
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
