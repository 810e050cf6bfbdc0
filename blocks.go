package mdsite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockKind is the structural kind of a Markdown block.
type BlockKind int

// Block kinds, in no particular order. Classification precedence is defined
// by ClassifyBlock, not by these values.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

// String returns the snake_case name of the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

const codeFence = "```"

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A newline, optional whitespace-only lines, and a newline
	blankLineRun = regexp.MustCompile(`\n(?:[ \t\f\v\r]*\n)+`)

	headingPattern = regexp.MustCompile(`^#{1,6} `)
)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitBlocks splits a document into trimmed, non-empty blocks separated by
// one or more blank lines. An empty document yields no blocks.
func SplitBlocks(document string) []string {
	if document == "" {
		return nil
	}

	raw := blankLineRun.Split(normalizeLineEndings(document), -1)
	blocks := make([]string, 0, len(raw))
	for _, block := range raw {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// ClassifyBlock returns the kind of a single block. The first matching rule
// wins: heading, code, quote, unordered list, ordered list. Anything else is
// a paragraph.
func ClassifyBlock(block string) BlockKind {
	if headingPattern.MatchString(block) {
		return BlockHeading
	}
	if isCodeBlock(block) {
		return BlockCode
	}

	lines := strings.Split(block, "\n")
	if allLinesHavePrefix(lines, ">") {
		return BlockQuote
	}
	if allLinesHavePrefix(lines, "- ") {
		return BlockUnorderedList
	}
	if isOrderedList(lines) {
		return BlockOrderedList
	}
	return BlockParagraph
}

func isCodeBlock(block string) bool {
	return strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence)
}

func allLinesHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isOrderedList requires line i (1-based) to start with "i. ".
// No lines means no list.
func isOrderedList(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
