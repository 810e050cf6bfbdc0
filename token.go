package mdsite

import "fmt"

// TokenKind classifies a run of inline text.
type TokenKind int

// Token kinds. The set is closed: every switch over TokenKind handles all of them.
const (
	TokenText TokenKind = iota
	TokenBold
	TokenItalic
	TokenCode
	TokenLink
	TokenImage
)

// String returns the lowercase name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenBold:
		return "bold"
	case TokenItalic:
		return "italic"
	case TokenCode:
		return "code"
	case TokenLink:
		return "link"
	case TokenImage:
		return "image"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is an immutable piece of inline Markdown.
// Target is only meaningful for TokenLink and TokenImage.
type Token struct {
	Kind   TokenKind
	Text   string // display text, alt text for images
	Target string // link href or image src
}

// NewToken creates a token of a kind that carries no target.
func NewToken(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// NewLinkToken creates a link or image token pointing at target.
func NewLinkToken(kind TokenKind, text, target string) Token {
	return Token{Kind: kind, Text: text, Target: target}
}

// HasTarget reports whether the token kind carries a URL.
func (t Token) HasTarget() bool {
	return t.Kind == TokenLink || t.Kind == TokenImage
}

// String implements fmt.Stringer for debugging and test failure output.
func (t Token) String() string {
	if t.HasTarget() {
		return fmt.Sprintf("%s(%q, %q)", t.Kind, t.Text, t.Target)
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
