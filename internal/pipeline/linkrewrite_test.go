package pipeline

import (
	"strings"
	"testing"
)

func TestRewriteMarkdownLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative md link",
			html:         `<p><a href="guide.md">Guide</a></p>`,
			wantContains: []string{`href="guide.html"`},
		},
		{
			name:         "nested path with fragment",
			html:         `<a href="../docs/setup.md#install">x</a>`,
			wantContains: []string{`href="../docs/setup.html#install"`},
		},
		{
			name:         "markdown extension",
			html:         `<a href="notes.markdown">x</a>`,
			wantContains: []string{`href="notes.html"`},
		},
		{
			name:         "uppercase extension",
			html:         `<a href="README.MD">x</a>`,
			wantContains: []string{`href="README.html"`},
		},
		{
			name:         "external link unchanged",
			html:         `<a href="https://example.com/a.md">x</a>`,
			wantContains: []string{`href="https://example.com/a.md"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<a href="/a.md">x</a>`,
			wantContains: []string{`href="/a.md"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#top">x</a>`,
			wantContains: []string{`href="#top"`},
		},
		{
			name:         "image source unchanged",
			html:         `<img src="diagram.md"/><a href="a.md">x</a>`,
			wantContains: []string{`src="diagram.md"`, `href="a.html"`},
		},
		{
			name:         "full document",
			html:         `<!DOCTYPE html><html><head></head><body><a href="a.md">x</a></body></html>`,
			wantContains: []string{"<html>", `href="a.html"`},
		},
		{
			name:         "fragment not wrapped",
			html:         `<div><a href="a.md">x</a></div>`,
			wantExcludes: []string{"<html", "<body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteMarkdownLinks(tt.html)
			if err != nil {
				t.Fatalf("RewriteMarkdownLinks() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should not contain %q: %s", exclude, got)
				}
			}
		})
	}
}

func TestRewriteMarkdownLinks_Unchanged(t *testing.T) {
	t.Parallel()

	// Serializing through x/net/html would alter this markup.
	in := `<div><p>a & b</p><a href="https://x.io">x</a></div>`
	got, err := RewriteMarkdownLinks(in)
	if err != nil {
		t.Fatalf("RewriteMarkdownLinks() error = %v", err)
	}
	if got != in {
		t.Errorf("content without md links should be returned as-is, got %q", got)
	}
}
