package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Options configures a Builder.
type Options struct {
	ContentDir   string
	StaticDir    string // optional; a missing directory is logged and skipped
	OutputDir    string // cleared at the start of every build
	Converter    pipeline.HTMLConverter
	Template     *pipeline.PageTemplate
	RewriteLinks bool
	FailFast     bool
	Workers      int // 0 = auto
	Logger       *zap.Logger
}

// Builder generates a site from Options.
type Builder struct {
	opts Options
	log  *zap.Logger
}

// PageResult holds the outcome of a single page.
type PageResult struct {
	Page     Page
	Title    string
	Err      error
	Duration time.Duration
}

// Report summarizes a build.
type Report struct {
	StaticFiles int
	Pages       []PageResult
	Duration    time.Duration
}

// Succeeded returns the number of pages written.
func (r *Report) Succeeded() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of pages not written, including pages skipped
// after a fail-fast abort.
func (r *Report) Failed() int {
	return len(r.Pages) - r.Succeeded()
}

// New validates opts and returns a Builder.
func New(opts Options) (*Builder, error) {
	if opts.Converter == nil {
		return nil, ErrNoConverter
	}
	if opts.Template == nil {
		return nil, ErrNoTemplate
	}
	// The output tree is removed on every build.
	if fileutil.Overlaps(opts.OutputDir, opts.ContentDir) ||
		(opts.StaticDir != "" && fileutil.Overlaps(opts.OutputDir, opts.StaticDir)) {
		return nil, fmt.Errorf("%w: %s", ErrOutputDir, opts.OutputDir)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{opts: opts, log: log}, nil
}

// Build copies static files and generates every page. The returned report
// is non-nil whenever page generation started. With FailFast the first page
// failure is returned and remaining pages are skipped; otherwise all page
// failures are combined into one error.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fileutil.DirExists(b.opts.ContentDir) {
		return nil, fmt.Errorf("%w: %s", ErrContentDir, b.opts.ContentDir)
	}

	report := &Report{}

	copied, err := b.copyStatic()
	if err != nil {
		return nil, err
	}
	report.StaticFiles = copied

	pages, err := DiscoverPages(b.opts.ContentDir, b.opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		b.log.Warn("No pages found", zap.String("content", b.opts.ContentDir))
	}

	report.Pages = b.buildPages(ctx, pages)
	report.Duration = time.Since(start)

	b.log.Info("Build finished",
		zap.Int("pages", report.Succeeded()),
		zap.Int("failed", report.Failed()),
		zap.Int("static", report.StaticFiles),
		zap.Duration("elapsed", report.Duration.Round(time.Millisecond)))

	return report, b.collectErrors(ctx, report.Pages)
}

// copyStatic clears the output directory and mirrors the static tree into it.
func (b *Builder) copyStatic() (int, error) {
	if err := fileutil.ResetDir(b.opts.OutputDir); err != nil {
		return 0, err
	}
	b.log.Debug("Output directory reset", zap.String("output", b.opts.OutputDir))

	if b.opts.StaticDir == "" {
		return 0, nil
	}
	if !fileutil.DirExists(b.opts.StaticDir) {
		b.log.Warn("Static directory not found, skipping copy", zap.String("static", b.opts.StaticDir))
		return 0, nil
	}

	copied := 0
	err := fileutil.CopyTree(b.opts.StaticDir, b.opts.OutputDir, func(from, to string) {
		copied++
		b.log.Debug("Copied", zap.String("from", from), zap.String("to", to))
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

// buildPages renders pages on a worker pool. Results keep discovery order.
func (b *Builder) buildPages(ctx context.Context, pages []Page) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	concurrency := ResolveWorkers(b.opts.Workers)
	if concurrency > len(pages) {
		concurrency = len(pages)
	}

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{Page: pages[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = b.buildPage(ctx, pages[idx])
				if results[idx].Err != nil && b.opts.FailFast {
					cancel()
				}
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts one page and writes it atomically.
func (b *Builder) buildPage(ctx context.Context, p Page) PageResult {
	start := time.Now()
	result := PageResult{Page: p}

	title, err := b.renderPage(ctx, p)
	result.Title = title
	result.Err = err
	result.Duration = time.Since(start)

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			b.log.Error("Page failed", zap.String("page", p.Rel), zap.Error(err))
		}
		return result
	}

	b.log.Info("Generated page", zap.String("page", p.Rel), zap.String("output", p.Output))
	b.log.Debug("Page details",
		zap.String("page", p.Rel),
		zap.String("title", title),
		zap.Duration("elapsed", result.Duration.Round(time.Microsecond)))
	return result
}

func (b *Builder) renderPage(ctx context.Context, p Page) (string, error) {
	content, err := os.ReadFile(p.Source) // #nosec G304 -- discovered path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadPage, err)
	}
	markdown := string(content)

	body, err := b.opts.Converter.ToHTML(ctx, markdown)
	if err != nil {
		return "", err
	}

	title, err := mdsite.ExtractTitle(markdown)
	if err != nil {
		return "", err
	}

	if b.opts.RewriteLinks {
		if body, err = pipeline.RewriteMarkdownLinks(body); err != nil {
			return "", fmt.Errorf("rewriting links: %w", err)
		}
	}

	html, err := b.opts.Template.Render(ctx, title, body)
	if err != nil {
		return "", err
	}

	if err := fileutil.WriteFileAtomic(p.Output, []byte(html)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return title, nil
}

// collectErrors turns page results into the build error.
func (b *Builder) collectErrors(ctx context.Context, results []PageResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs error
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		// Pages canceled by a fail-fast abort are not failures of their own.
		if errors.Is(r.Err, context.Canceled) {
			continue
		}
		pageErr := &PageError{Path: r.Page.Source, Err: r.Err}
		if b.opts.FailFast {
			return pageErr
		}
		errs = multierr.Append(errs, pageErr)
	}
	return errs
}
