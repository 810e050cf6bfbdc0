package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/logging"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/site"
)

// ErrUnknownCommand indicates an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // A page could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, including every error
// combined into a multi-page build failure.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, mdsite.ErrTitleNotFound) ||
		errors.Is(err, mdsite.ErrMalformedNode) ||
		errors.Is(err, mdsite.ErrUnsupportedKind) ||
		errors.Is(err, mdsite.ErrEmptyMarkdown) ||
		errors.Is(err, pipeline.ErrHTMLConversion) {
		return ExitContent
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, pipeline.ErrTemplatePlaceholder) ||
		errors.Is(err, mdsite.ErrHighlightConfig) ||
		errors.Is(err, logging.ErrUnknownLevel) ||
		errors.Is(err, fileutil.ErrUnsafeReset) ||
		errors.Is(err, site.ErrOutputDir) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, site.ErrContentDir) ||
		errors.Is(err, site.ErrReadPage) ||
		errors.Is(err, site.ErrWritePage) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, site.ErrContentDir):
		return hints.ForContentDir()
	case errors.Is(err, fileutil.ErrUnsafeReset), errors.Is(err, site.ErrOutputDir):
		return hints.ForUnsafeOutput()
	case errors.Is(err, site.ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, pipeline.ErrTemplatePlaceholder):
		return hints.ForTemplatePlaceholder()
	case errors.Is(err, mdsite.ErrTitleNotFound):
		return hints.ForTitleNotFound()
	case errors.Is(err, mdsite.ErrMalformedNode):
		return hints.ForMalformedPage()
	}
	return ""
}
