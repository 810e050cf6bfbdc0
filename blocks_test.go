package mdsite

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t\n ",
			want:  nil,
		},
		{
			name:  "heading and paragraph",
			input: "# Title\n\nThis is **bold** and _italic_.",
			want:  []string{"# Title", "This is **bold** and _italic_."},
		},
		{
			name:  "single newline keeps lines together",
			input: "line one\nline two",
			want:  []string{"line one\nline two"},
		},
		{
			name:  "vertical tab line is blank",
			input: "a\n\v\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "form feed and tab line is blank",
			input: "a\n\f\t \n\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "blank line runs collapse",
			input: "a\n\n\n\n  \n\t\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "windows line endings",
			input: "a\r\n\r\nb\r\nc",
			want:  []string{"a", "b\nc"},
		},
		{
			name:  "old mac line endings",
			input: "a\r\rb",
			want:  []string{"a", "b"},
		},
		{
			name:  "chunks are trimmed",
			input: "\n\n   padded   \n\n",
			want:  []string{"padded"},
		},
		{
			name: "list block",
			input: "- This is a list\n- with items\n\n" +
				"This is another paragraph with _italic_ text and `code` here\n" +
				"This is the same paragraph on a new line",
			want: []string{
				"- This is a list\n- with items",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitBlocks(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitBlocks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitBlocks_KeepsEveryLineInOrder(t *testing.T) {
	t.Parallel()

	doc := "# T\n\n\npara one\npara two\n  \n- a\n- b\n\n\n\n> q\n\n```\nx\n```\n"

	var want []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.TrimSpace(line) != "" {
			want = append(want, strings.TrimSpace(line))
		}
	}

	var got []string
	for _, block := range SplitBlocks(doc) {
		for _, line := range strings.Split(block, "\n") {
			got = append(got, strings.TrimSpace(line))
		}
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestClassifyBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  BlockKind
	}{
		{name: "h1", block: "# Heading", want: BlockHeading},
		{name: "h6", block: "###### Heading", want: BlockHeading},
		{name: "seven hashes", block: "####### Heading", want: BlockParagraph},
		{name: "hash without space", block: "#Heading", want: BlockParagraph},
		{name: "code fence", block: "```\ncode here\n```", want: BlockCode},
		{name: "code fence with heading inside", block: "```\n# not a heading\n```", want: BlockCode},
		{name: "unterminated fence", block: "```\ncode", want: BlockParagraph},
		{name: "quote", block: "> line one\n> line two", want: BlockQuote},
		{name: "quote without space", block: ">tight", want: BlockQuote},
		{name: "partial quote", block: "> line one\nline two", want: BlockParagraph},
		{name: "unordered list", block: "- one\n- two", want: BlockUnorderedList},
		{name: "dash without space", block: "-one", want: BlockParagraph},
		{name: "partial unordered list", block: "- one\ntwo", want: BlockParagraph},
		{name: "ordered list", block: "1. a\n2. b", want: BlockOrderedList},
		{name: "ordered list past nine", block: "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", want: BlockOrderedList},
		{name: "non consecutive", block: "1. a\n3. b", want: BlockParagraph},
		{name: "not starting at one", block: "2. a\n3. b", want: BlockParagraph},
		{name: "missing space after number", block: "1.a", want: BlockParagraph},
		{name: "paragraph", block: "just text", want: BlockParagraph},
		{name: "empty", block: "", want: BlockParagraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClassifyBlock(tt.block); got != tt.want {
				t.Errorf("ClassifyBlock(%q) = %s, want %s", tt.block, got, tt.want)
			}
		})
	}
}

func TestIsOrderedList_NoLines(t *testing.T) {
	t.Parallel()

	if isOrderedList(nil) {
		t.Error("isOrderedList(nil) = true, want false")
	}
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	if got := BlockUnorderedList.String(); got != "unordered_list" {
		t.Errorf("String() = %q, want %q", got, "unordered_list")
	}
	if got := BlockKind(-1).String(); got != "BlockKind(-1)" {
		t.Errorf("String() = %q, want %q", got, "BlockKind(-1)")
	}
}
