// Package site builds a static HTML site from a content tree of Markdown
// files.
//
// A build runs in two steps:
//
//  1. The output directory is cleared and the static tree is copied into it.
//  2. Every Markdown page is converted, wrapped in the page template and
//     written to the same relative path with an .html extension.
//
// Pages are rendered concurrently. Failures are either fatal on first
// occurrence (FailFast) or collected and returned together once all pages
// have been attempted.
package site
