package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Page template placeholders. Each is replaced once.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplatePlaceholder indicates a page template lacks a required placeholder.
var ErrTemplatePlaceholder = errors.New("template placeholder missing")

// PageTemplate substitutes a page title and content fragment into a template.
type PageTemplate struct {
	text string
	css  string
	inj  CSSInjector
}

// NewPageTemplate validates text and returns a PageTemplate. css, when
// non-empty, is injected as a <style> block into every rendered page.
func NewPageTemplate(text, css string) (*PageTemplate, error) {
	for _, p := range []string{TitlePlaceholder, ContentPlaceholder} {
		if !strings.Contains(text, p) {
			return nil, fmt.Errorf("%w: %s", ErrTemplatePlaceholder, p)
		}
	}
	return &PageTemplate{text: text, css: css, inj: &CSSInjection{}}, nil
}

// Render returns the page for title and content. Placeholders are located
// in the template itself, so placeholder text inside title or content is
// never expanded.
func (t *PageTemplate) Render(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ti := strings.Index(t.text, TitlePlaceholder)
	ci := strings.Index(t.text, ContentPlaceholder)

	var b strings.Builder
	b.Grow(len(t.text) + len(title) + len(content))
	if ti < ci {
		b.WriteString(t.text[:ti])
		b.WriteString(title)
		b.WriteString(t.text[ti+len(TitlePlaceholder) : ci])
		b.WriteString(content)
		b.WriteString(t.text[ci+len(ContentPlaceholder):])
	} else {
		b.WriteString(t.text[:ci])
		b.WriteString(content)
		b.WriteString(t.text[ci+len(ContentPlaceholder) : ti])
		b.WriteString(title)
		b.WriteString(t.text[ti+len(TitlePlaceholder):])
	}

	return t.inj.InjectCSS(ctx, b.String(), t.css), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot close the style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot end the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
