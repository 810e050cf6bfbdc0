package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "default", false},
		{"hyphenated", "dark-mode", false},
		{"underscore", "my_style", false},
		{"empty", "", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot dot", "..", true},
		{"extension", "default.css", true},
		{"traversal", "../etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestLoadTemplate_Default(t *testing.T) {
	t.Parallel()

	got, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
	}
	for _, placeholder := range []string{"{{ Title }}", "{{ Content }}", "</head>"} {
		if !strings.Contains(got, placeholder) {
			t.Errorf("default template missing %q", placeholder)
		}
	}
}

func TestLoadStyle_Default(t *testing.T) {
	t.Parallel()

	got, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyleName, err)
	}
	if !strings.Contains(got, "body") {
		t.Error("default style should style body")
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	want := []string{"dark", "default"}
	if len(names) != len(want) {
		t.Fatalf("StyleNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("StyleNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestEmbeddedLoader_NotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadStyle("nonexistent-xyz"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadTemplate("nonexistent-xyz"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadTemplate("../default"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
	}
}
