package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "default.css", "/* custom default */")

	resolver, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("default")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "/* custom default */" {
			t.Errorf("LoadStyle() = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("dark")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got == "" {
			t.Error("LoadStyle() returned empty content")
		}
	})

	t.Run("template falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(got, "{{ Content }}") {
			t.Error("expected embedded default template")
		}
	})

	t.Run("invalid name is not masked", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("a/b")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestAssetResolver_Resolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := filepath.Join(dir, "site.css")
	if err := os.WriteFile(cssPath, []byte("h1{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	tmplPath := filepath.Join(dir, "page.html")
	if err := os.WriteFile(tmplPath, []byte("{{ Title }}{{ Content }}"), 0o600); err != nil {
		t.Fatal(err)
	}

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name    string
		resolve func(string) (string, error)
		ref     string
		want    string
		wantErr error
	}{
		{"empty style", resolver.ResolveStyle, "", "", nil},
		{"style file", resolver.ResolveStyle, cssPath, "h1{}", nil},
		{"missing style file", resolver.ResolveStyle, filepath.Join(dir, "nope.css"), "", ErrStyleNotFound},
		{"template file", resolver.ResolveTemplate, tmplPath, "{{ Title }}{{ Content }}", nil},
		{"missing template file", resolver.ResolveTemplate, filepath.Join(dir, "nope.html"), "", ErrTemplateNotFound},
		{"unknown template name", resolver.ResolveTemplate, "nope", "", ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.resolve(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("empty template selects default", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.ResolveTemplate("")
		if err != nil {
			t.Fatalf("ResolveTemplate() error = %v", err)
		}
		if !strings.Contains(got, "{{ Title }}") {
			t.Error("expected default template")
		}
	})
}
