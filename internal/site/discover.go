package site

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Page is a Markdown source and the HTML file generated from it.
type Page struct {
	Source string // path of the Markdown file
	Output string // path of the generated HTML file
	Rel    string // source path relative to the content directory, slash separated
}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// OutputPath maps a content-relative Markdown path to its HTML path under
// outputDir: a/b/c.md becomes outputDir/a/b/c.html.
func OutputPath(outputDir, rel string) string {
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outputDir, filepath.FromSlash(base)+".html")
}

// DiscoverPages finds Markdown files under contentDir, sorted in natural
// order of their relative paths so page2 precedes page10.
func DiscoverPages(contentDir, outputDir string) ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !IsMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		pages = append(pages, Page{
			Source: path,
			Output: OutputPath(outputDir, rel),
			Rel:    rel,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return natural.Less(pages[i].Rel, pages[j].Rel)
	})
	return pages, nil
}
