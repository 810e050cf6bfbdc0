package yamlutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

type siteDoc struct {
	Content string `yaml:"content"`
	Workers int    `yaml:"workers"`
	Strict  bool   `yaml:"strict"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		anyErr  bool
	}{
		{
			name: "valid document",
			data: []byte("content: docs\nworkers: 4\nstrict: true"),
			dest: &siteDoc{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &siteDoc{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("content: docs"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:   "unknown field",
			data:   []byte("content: docs\nbogus: 1"),
			dest:   &siteDoc{},
			anyErr: true,
		},
		{
			name:   "type mismatch",
			data:   []byte("workers: many"),
			dest:   &siteDoc{},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("UnmarshalStrict() expected error, got nil")
				}
			default:
				if err != nil {
					t.Errorf("UnmarshalStrict() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestUnmarshalStrict_Decodes(t *testing.T) {
	t.Parallel()

	var doc siteDoc
	if err := yamlutil.UnmarshalStrict([]byte("content: docs\nworkers: 4\nstrict: true"), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Content != "docs" || doc.Workers != 4 || !doc.Strict {
		t.Errorf("decoded = %+v", doc)
	}
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	// Not parallel: mutates MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 8
	defer func() { yamlutil.MaxInputSize = orig }()

	err := yamlutil.UnmarshalStrict([]byte("content: a-long-value"), &siteDoc{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestReadFileStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte("content: pages\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var doc siteDoc
	if err := yamlutil.ReadFileStrict(path, &doc); err != nil {
		t.Fatalf("ReadFileStrict() error: %v", err)
	}
	if doc.Content != "pages" {
		t.Errorf("Content = %q, want pages", doc.Content)
	}

	err := yamlutil.ReadFileStrict(filepath.Join(dir, "missing.yaml"), &doc)
	if !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, want not-exist", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(siteDoc{Content: "docs", Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "content: docs") {
		t.Errorf("Marshal() = %q", out)
	}
}

func TestReadFileStrict_TooLarge(t *testing.T) {
	// Not parallel: mutates MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 4
	defer func() { yamlutil.MaxInputSize = orig }()

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("content: pages\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := yamlutil.ReadFileStrict(path, &siteDoc{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}
