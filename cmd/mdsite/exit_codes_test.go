package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/site"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown", errors.New("boom"), ExitGeneral},
		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"template placeholder", pipeline.ErrTemplatePlaceholder, ExitUsage},
		{"unsafe reset", fileutil.ErrUnsafeReset, ExitUsage},
		{"output overlaps sources", site.ErrOutputDir, ExitUsage},
		{"content dir", site.ErrContentDir, ExitIO},
		{"write page", &site.PageError{Path: "a.md", Err: site.ErrWritePage}, ExitIO},
		{"not exist", fmt.Errorf("x: %w", os.ErrNotExist), ExitIO},
		{"title not found", &site.PageError{Path: "a.md", Err: mdsite.ErrTitleNotFound}, ExitContent},
		{"malformed", mdsite.ErrMalformedNode, ExitContent},
		{
			"combined page errors",
			multierr.Combine(
				&site.PageError{Path: "a.md", Err: site.ErrReadPage},
				&site.PageError{Path: "b.md", Err: mdsite.ErrTitleNotFound},
			),
			ExitContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config not found", config.ErrConfigNotFound, "--config"},
		{"content dir", site.ErrContentDir, "--content"},
		{"style", assets.ErrStyleNotFound, "available: "},
		{"title", mdsite.ErrTitleNotFound, "# Title"},
		{"none", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
