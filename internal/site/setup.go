package site

import (
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// NewFromConfig resolves the template, stylesheet and engine named by cfg
// and returns a Builder for them.
func NewFromConfig(cfg *config.Config, log *zap.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets)
	if err != nil {
		return nil, err
	}
	if resolver.HasCustomLoader() {
		log.Debug("Using asset overrides", zap.String("assets", cfg.Assets))
	}

	tmplText, err := resolver.ResolveTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}

	css, err := resolver.ResolveStyle(cfg.Style)
	if err != nil {
		return nil, err
	}

	engineOpts := pipeline.EngineOptions{
		HeadingIDs:        cfg.HeadingIDs,
		Highlight:         cfg.Highlight.Enabled,
		HighlightStyle:    cfg.Highlight.Style,
		HighlightLanguage: cfg.Highlight.Language,
	}

	if cfg.Highlight.Enabled {
		highlightCSS, err := highlightStylesheet(cfg.Highlight)
		if err != nil {
			return nil, err
		}
		css = joinCSS(css, highlightCSS)
	}

	conv, err := NewConverter(cfg.EngineName(), engineOpts)
	if err != nil {
		return nil, err
	}

	tmpl, err := pipeline.NewPageTemplate(tmplText, css)
	if err != nil {
		return nil, err
	}

	return New(Options{
		ContentDir:   cfg.Content,
		StaticDir:    cfg.Static,
		OutputDir:    cfg.Output,
		Converter:    conv,
		Template:     tmpl,
		RewriteLinks: cfg.RewriteLinks,
		FailFast:     cfg.FailFast,
		Workers:      cfg.Workers,
		Logger:       log,
	})
}

// NewConverter returns the HTMLConverter for an engine name.
func NewConverter(engine string, opts pipeline.EngineOptions) (pipeline.HTMLConverter, error) {
	switch engine {
	case config.EngineGoldmark:
		return pipeline.NewGoldmarkConverter(opts), nil
	default:
		return pipeline.NewNativeConverter(opts)
	}
}

func highlightStylesheet(hc config.HighlightConfig) (string, error) {
	h, err := mdsite.NewChromaHighlighter(hc.Style, hc.Language)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := h.WriteCSS(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func joinCSS(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
