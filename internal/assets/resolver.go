package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying custom loader first if available.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadStyle(name)
	})
}

// LoadTemplate loads a page template, trying custom loader first if available.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadTemplate(name)
	})
}

// ResolveStyle returns CSS for a style reference that is either a path to a
// .css file or the name of a style known to the resolver. Empty means no style.
func (r *AssetResolver) ResolveStyle(ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if looksLikePath(ref, ".css") {
		return readAssetFile(ref, ErrStyleNotFound)
	}
	return r.LoadStyle(ref)
}

// ResolveTemplate returns a page template for a reference that is either a
// path to an .html file or a template name. Empty selects the default template.
func (r *AssetResolver) ResolveTemplate(ref string) (string, error) {
	if ref == "" {
		return r.LoadTemplate(DefaultTemplateName)
	}
	if looksLikePath(ref, ".html") || looksLikePath(ref, ".htm") {
		return readAssetFile(ref, ErrTemplateNotFound)
	}
	return r.LoadTemplate(ref)
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
func (r *AssetResolver) loadWithFallback(loadFn func(AssetLoader) (string, error)) (string, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	content, err := loadFn(r.custom)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors are not masked by the embedded copy.
	if !isNotFoundError(err) {
		return "", err
	}

	return loadFn(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

func looksLikePath(ref, ext string) bool {
	return strings.ContainsAny(ref, `/\`) || strings.EqualFold(filepath.Ext(ref), ext)
}

func readAssetFile(path string, notFound error) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided asset path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", notFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
