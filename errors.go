package mdsite

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Tree construction errors. A conversion that hits one of these aborts.
	ErrMalformedNode   = errors.New("malformed node")
	ErrUnsupportedKind = errors.New("unsupported token kind")

	// Title extraction errors.
	ErrTitleNotFound = errors.New("no H1 header found")

	ErrHighlightConfig = errors.New("invalid highlight configuration")
)
