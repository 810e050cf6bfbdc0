package site

import (
	"errors"
	"fmt"
)

// Sentinel errors for site builds.
var (
	ErrContentDir  = errors.New("content directory not found")
	ErrNoConverter = errors.New("no HTML converter configured")
	ErrNoTemplate  = errors.New("no page template configured")
	ErrReadPage    = errors.New("failed to read page")
	ErrWritePage   = errors.New("failed to write page")
	ErrOutputDir   = errors.New("output directory overlaps a source directory")
)

// PageError attaches the source path to a page failure.
type PageError struct {
	Path string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
