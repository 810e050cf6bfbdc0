package mdsite

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ChromaHighlighter highlights code blocks with chroma. The language is
// guessed from the code itself since fenced blocks keep their info string
// as literal content.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
	fallback  chroma.Lexer
}

// Compile-time interface implementation check.
var _ Highlighter = (*ChromaHighlighter)(nil)

// NewChromaHighlighter creates a highlighter for the named chroma style.
// fallbackLanguage, when non-empty, is used if the language cannot be guessed.
func NewChromaHighlighter(styleName, fallbackLanguage string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown style %q", ErrHighlightConfig, styleName)
	}

	h := &ChromaHighlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
	if fallbackLanguage != "" {
		h.fallback = lexers.Get(fallbackLanguage)
		if h.fallback == nil {
			return nil, fmt.Errorf("%w: unknown language %q", ErrHighlightConfig, fallbackLanguage)
		}
	}
	return h, nil
}

// Highlight implements Highlighter. It declines when no lexer fits.
func (h *ChromaHighlighter) Highlight(code string) (string, bool, error) {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		lexer = h.fallback
	}
	if lexer == nil {
		return "", false, nil
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false, err
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", false, err
	}
	return b.String(), true, nil
}

// WriteCSS writes the stylesheet for the highlighter's CSS classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
