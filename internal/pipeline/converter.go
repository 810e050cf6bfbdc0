package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-mdsite"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// EngineOptions configures either conversion engine.
type EngineOptions struct {
	HeadingIDs     bool
	Highlight      bool
	HighlightStyle string
	// HighlightLanguage is used by the native engine when the language
	// of a code block cannot be guessed.
	HighlightLanguage string
}

// NativeConverter converts Markdown with the mdsite core dialect.
type NativeConverter struct {
	conv *mdsite.Converter
}

// NewNativeConverter creates a NativeConverter from engine options.
func NewNativeConverter(opts EngineOptions) (*NativeConverter, error) {
	var convOpts []mdsite.Option
	if opts.HeadingIDs {
		convOpts = append(convOpts, mdsite.WithHeadingIDs())
	}
	if opts.Highlight {
		h, err := mdsite.NewChromaHighlighter(opts.HighlightStyle, opts.HighlightLanguage)
		if err != nil {
			return nil, err
		}
		convOpts = append(convOpts, mdsite.WithHighlighter(h))
	}
	return &NativeConverter{conv: mdsite.NewConverter(convOpts...)}, nil
}

// ToHTML converts content to a <div>-rooted fragment.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return c.conv.ToHTML(ctx, content)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md  goldmark.Markdown
	pre *CommonMarkPreprocessor
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and,
// when enabled, chroma syntax highlighting.
func NewGoldmarkConverter(opts EngineOptions) *GoldmarkConverter {
	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if opts.Highlight {
		style := opts.HighlightStyle
		if style == "" {
			style = mdsite.DefaultHighlightStyle
		}
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(strings.ToLower(style)),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // classes match the stylesheet written by ChromaHighlighter
			),
		))
	}

	var parserOpts []parser.Option
	if opts.HeadingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not used; ==marks== go through placeholders instead.
		),
	)
	return &GoldmarkConverter{md: md, pre: &CommonMarkPreprocessor{}}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", mdsite.ErrEmptyMarkdown
	}

	content = c.pre.PreprocessMarkdown(ctx, content)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: ConvertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
