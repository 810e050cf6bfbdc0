package mdsite

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

var (
	quoteMarker  = regexp.MustCompile(`^> ?`)
	titlePattern = regexp.MustCompile(`^#\s+(.*)$`)
)

// Highlighter renders the literal interior of a fenced code block as markup.
// ok is false when the highlighter declines, in which case the code is
// emitted as plain text.
type Highlighter interface {
	Highlight(code string) (markup string, ok bool, err error)
}

// Option configures a Converter.
type Option func(*Converter)

// WithHeadingIDs adds a slug id attribute to every heading.
// Repeated slugs within one document get a numeric suffix.
func WithHeadingIDs() Option {
	return func(c *Converter) {
		c.headingIDs = true
	}
}

// WithHighlighter routes fenced code block content through h.
func WithHighlighter(h Highlighter) Option {
	return func(c *Converter) {
		c.highlighter = h
	}
}

// Converter turns Markdown documents into node trees.
// A Converter is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	headingIDs  bool
	highlighter Highlighter
}

// NewConverter creates a Converter. Without options the output is the plain
// dialect: no heading ids, no highlighting.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// RenderDocument converts markdown to a tree using the default Converter.
func RenderDocument(markdown string) (*Parent, error) {
	return defaultConverter.Render(markdown)
}

// Render converts markdown to a root <div> holding one node per block.
// Returns ErrMalformedNode when the document has no blocks or a block
// produces an invalid node (for example an empty **** run).
func (c *Converter) Render(markdown string) (*Parent, error) {
	blocks := SplitBlocks(markdown)
	children := make([]Node, 0, len(blocks))
	ids := make(map[string]int)

	for _, block := range blocks {
		node, err := c.blockToNode(block, ids)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}

	if len(children) == 0 {
		return nil, fmt.Errorf("%w: document has no blocks", ErrMalformedNode)
	}
	return NewParent("div", children, nil)
}

// ToHTML renders markdown and serializes the tree.
// The context is checked before work starts; rendering itself does not block.
func (c *Converter) ToHTML(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", ErrEmptyMarkdown
	}
	root, err := c.Render(markdown)
	if err != nil {
		return "", err
	}
	return root.HTML(), nil
}

func (c *Converter) blockToNode(block string, ids map[string]int) (Node, error) {
	switch ClassifyBlock(block) {
	case BlockHeading:
		return c.headingToNode(block, ids)
	case BlockCode:
		return c.codeToNode(block)
	case BlockQuote:
		return quoteToNode(block)
	case BlockUnorderedList:
		return listToNode(block, "ul", func(int, string) string { return "- " })
	case BlockOrderedList:
		return listToNode(block, "ol", func(i int, _ string) string { return orderedMarker(i + 1) })
	case BlockParagraph:
		return inlineParent("p", block, nil)
	}
	return inlineParent("p", block, nil)
}

// inlineParent tokenizes text and wraps the resulting leaves in tag.
func inlineParent(tag, text string, attrs Attributes) (*Parent, error) {
	children, err := TokensToNodes(Tokenize(text))
	if err != nil {
		return nil, err
	}
	return NewParent(tag, children, attrs)
}

func (c *Converter) headingToNode(block string, ids map[string]int) (Node, error) {
	level, text := headingLevel(block)

	var attrs Attributes
	if c.headingIDs {
		attrs = Attributes{{Name: "id", Value: uniqueID(slug.Make(text), ids)}}
	}
	return inlineParent("h"+strconv.Itoa(level), text, attrs)
}

// headingLevel returns the number of leading '#' and the text after the
// marker and its space. block must already be classified as a heading.
func headingLevel(block string) (int, string) {
	level := len(block) - len(strings.TrimLeft(block, "#"))
	return level, block[level+1:]
}

func uniqueID(id string, seen map[string]int) string {
	if id == "" {
		id = "section"
	}
	n := seen[id]
	seen[id] = n + 1
	if n == 0 {
		return id
	}
	return id + "-" + strconv.Itoa(n)
}

func quoteToNode(block string) (Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = quoteMarker.ReplaceAllString(line, "")
	}
	return inlineParent("blockquote", strings.Join(lines, "\n"), nil)
}

// listToNode builds one <li> per line, stripping the marker returned by
// marker for the line index.
func listToNode(block, tag string, marker func(i int, line string) string) (Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		item, err := inlineParent("li", strings.TrimPrefix(line, marker(i, line)), nil)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return NewParent(tag, items, nil)
}

// codeToNode wraps the literal fence interior in <pre><code>.
// Inline syntax is not interpreted inside code blocks.
func (c *Converter) codeToNode(block string) (Node, error) {
	code := ""
	if len(block) >= 2*len(codeFence) {
		code = block[len(codeFence) : len(block)-len(codeFence)]
	}
	code = strings.TrimPrefix(code, "\n")
	code = strings.TrimSuffix(code, "\n")

	var leaf Node
	var err error
	if markup, ok, herr := c.highlight(code); herr != nil {
		return nil, herr
	} else if ok {
		leaf, err = NewLeaf("code", markup, nil)
	} else {
		leaf, err = TokenToNode(NewToken(TokenCode, code))
	}
	if err != nil {
		return nil, err
	}
	return NewParent("pre", []Node{leaf}, nil)
}

func (c *Converter) highlight(code string) (string, bool, error) {
	if c.highlighter == nil || code == "" {
		return "", false, nil
	}
	markup, ok, err := c.highlighter.Highlight(code)
	if err != nil {
		return "", false, fmt.Errorf("highlighting code block: %w", err)
	}
	return markup, ok && markup != "", nil
}

// ExtractTitle returns the text of the first line starting with a single
// '#' and whitespace, trimmed. Returns ErrTitleNotFound when there is none.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(normalizeLineEndings(markdown), "\n") {
		if m := titlePattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), nil
		}
	}
	return "", ErrTitleNotFound
}
