package site

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"a.md", true},
		{"a.markdown", true},
		{"A.MD", true},
		{"a.txt", false},
		{"a.html", false},
		{"md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := IsMarkdown(tt.path); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", filepath.Join("public", "index.html")},
		{"blog/post.md", filepath.Join("public", "blog", "post.html")},
		{"a/b/c.markdown", filepath.Join("public", "a", "b", "c.html")},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			t.Parallel()

			if got := OutputPath("public", tt.rel); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	content := t.TempDir()
	for _, rel := range []string{"page10.md", "page2.md", "index.md", "notes.txt", "blog/post.markdown", "img/logo.png"} {
		writeFile(t, filepath.Join(content, filepath.FromSlash(rel)), "# x")
	}

	pages, err := DiscoverPages(content, "out")
	if err != nil {
		t.Fatalf("DiscoverPages() error = %v", err)
	}

	want := []string{"blog/post.markdown", "index.md", "page2.md", "page10.md"}
	if len(pages) != len(want) {
		t.Fatalf("DiscoverPages() found %d pages, want %d: %+v", len(pages), len(want), pages)
	}
	for i, rel := range want {
		if pages[i].Rel != rel {
			t.Errorf("pages[%d].Rel = %q, want %q", i, pages[i].Rel, rel)
		}
	}
	if got, want := pages[0].Output, filepath.Join("out", "blog", "post.html"); got != want {
		t.Errorf("pages[0].Output = %q, want %q", got, want)
	}
	if got, want := pages[0].Source, filepath.Join(content, "blog", "post.markdown"); got != want {
		t.Errorf("pages[0].Source = %q, want %q", got, want)
	}
}

func TestDiscoverPages_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := DiscoverPages(filepath.Join(t.TempDir(), "missing"), "out")
	if err == nil {
		t.Fatal("expected error for missing content directory")
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := ResolveWorkers(3); got != 3 {
		t.Errorf("ResolveWorkers(3) = %d, want 3", got)
	}
	got := ResolveWorkers(0)
	if got < MinWorkers || got > MaxWorkers {
		t.Errorf("ResolveWorkers(0) = %d, want between %d and %d", got, MinWorkers, MaxWorkers)
	}
}
