package mdsite

import (
	"regexp"
	"strings"
)

// Inline delimiters, applied in this order.
const (
	boldDelimiter   = "**"
	italicDelimiter = "_"
	codeDelimiter   = "`"
)

// Precompiled inline patterns. Bracket and paren contents may not nest.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Tokenize splits inline Markdown into tokens.
//
// Stages run in fixed precedence: bold, italic, code, images, links. Each
// stage only refines tokens that are still plain text, so styled content is
// never re-parsed. Empty plain text tokens are dropped at the end.
// Tokenize never fails; unmatched delimiters degrade to plain text.
func Tokenize(text string) []Token {
	tokens := []Token{NewToken(TokenText, text)}
	tokens = splitDelimiter(tokens, boldDelimiter, TokenBold)
	tokens = splitDelimiter(tokens, italicDelimiter, TokenItalic)
	tokens = splitDelimiter(tokens, codeDelimiter, TokenCode)
	tokens = splitImages(tokens)
	tokens = splitLinks(tokens)
	return pruneEmptyText(tokens)
}

// splitDelimiter splits plain text tokens on delim. Parts alternate between
// plain and styled, starting with plain. When the delimiter count is odd the
// last delimiter has no partner, so it is glued back onto the preceding plain
// part instead of opening a styled run.
func splitDelimiter(tokens []Token, delim string, kind TokenKind) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != TokenText {
			out = append(out, tok)
			continue
		}

		parts := strings.Split(tok.Text, delim)
		if n := len(parts); n%2 == 0 {
			parts[n-2] += delim + parts[n-1]
			parts = parts[:n-1]
		}

		for i, part := range parts {
			if i%2 == 0 {
				out = append(out, NewToken(TokenText, part))
			} else {
				out = append(out, NewToken(kind, part))
			}
		}
	}
	return out
}

// splitImages extracts ![alt](src) from plain text tokens.
func splitImages(tokens []Token) []Token {
	return splitMatches(tokens, TokenImage, findImage)
}

// splitLinks extracts [text](href) from plain text tokens.
func splitLinks(tokens []Token) []Token {
	return splitMatches(tokens, TokenLink, findLink)
}

// matchFinder returns the submatch index of the first match at or after
// from, or nil. Indexes are absolute offsets into s.
type matchFinder func(s string, from int) []int

func findImage(s string, from int) []int {
	return offsetMatch(imagePattern.FindStringSubmatchIndex(s[from:]), from)
}

// findLink skips candidates directly preceded by '!', which are images.
func findLink(s string, from int) []int {
	for from < len(s) {
		loc := offsetMatch(linkPattern.FindStringSubmatchIndex(s[from:]), from)
		if loc == nil {
			return nil
		}
		if loc[0] == 0 || s[loc[0]-1] != '!' {
			return loc
		}
		from = loc[0] + 1
	}
	return nil
}

func offsetMatch(loc []int, off int) []int {
	if loc == nil {
		return nil
	}
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += off
		}
	}
	return loc
}

// splitMatches walks each plain text token left to right, emitting the text
// before every match as plain text and the match itself as a kind token.
func splitMatches(tokens []Token, kind TokenKind, find matchFinder) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != TokenText {
			out = append(out, tok)
			continue
		}

		s := tok.Text
		pos := 0
		for {
			loc := find(s, pos)
			if loc == nil {
				break
			}
			if loc[0] > pos {
				out = append(out, NewToken(TokenText, s[pos:loc[0]]))
			}
			out = append(out, NewLinkToken(kind, s[loc[2]:loc[3]], s[loc[4]:loc[5]]))
			pos = loc[1]
		}
		if pos < len(s) || pos == 0 {
			out = append(out, NewToken(TokenText, s[pos:]))
		}
	}
	return out
}

func pruneEmptyText(tokens []Token) []Token {
	out := tokens[:0]
	for _, tok := range tokens {
		if tok.Kind == TokenText && tok.Text == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
