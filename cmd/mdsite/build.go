package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/logging"
	"github.com/alnah/go-mdsite/internal/site"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// defaultConfigName is loaded automatically when present in the working directory.
const defaultConfigName = "mdsite"

// runBuild orchestrates a site build.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printBuildUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		out, err := yamlutil.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	log, err := logging.New(cfg.Log.Level, env.Stdout, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("Configuration resolved",
		zap.String("content", cfg.Content),
		zap.String("output", cfg.Output),
		zap.String("engine", cfg.EngineName()),
		zap.Int("workers", site.ResolveWorkers(cfg.Workers)))

	builder, err := site.NewFromConfig(cfg, log)
	if err != nil {
		return err
	}

	_, err = builder.Build(ctx)
	return err
}

// loadConfig picks the config source: --config, then MDSITE_CONFIG, then
// ./mdsite.yaml or ./mdsite.yml when present, then built-in defaults.
// An explicitly named config must exist.
func loadConfig(flagConfig, envConfig string) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfig
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	for _, p := range config.SearchPaths(defaultConfigName)[:2] {
		if fileutil.FileExists(p) {
			return config.LoadConfig(p)
		}
	}
	return config.DefaultConfig(), nil
}

// mergeFlags applies explicitly set CLI flags to cfg (CLI wins).
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.changed("content") {
		cfg.Content = flags.layout.content
	}
	if flags.changed("static") {
		cfg.Static = flags.layout.static
	}
	if flags.changed("output") {
		cfg.Output = flags.layout.output
	}
	if flags.changed("template") {
		cfg.Template = flags.assets.template
	}
	if flags.changed("style") {
		cfg.Style = flags.assets.style
	}
	if flags.changed("asset-path") {
		cfg.Assets = flags.assets.assetPath
	}
	if flags.changed("engine") {
		cfg.Engine = flags.render.engine
	}
	if flags.changed("heading-ids") {
		cfg.HeadingIDs = flags.render.headingIDs
	}
	if flags.changed("rewrite-links") {
		cfg.RewriteLinks = flags.render.rewriteLinks
	}
	if flags.changed("highlight") {
		cfg.Highlight.Enabled = flags.render.highlight
	}
	if flags.changed("highlight-style") {
		cfg.Highlight.Style = flags.render.highlightStyle
		cfg.Highlight.Enabled = true
	}
	if flags.changed("workers") {
		cfg.Workers = flags.workers
	}
	if flags.keepGoing {
		cfg.FailFast = false
	}

	switch {
	case flags.common.quiet:
		cfg.Log.Level = config.LogQuiet
	case flags.common.verbose:
		cfg.Log.Level = config.LogDebug
	}
}
