// Package pipeline implements the per-page Markdown-to-HTML stages used by
// the site builder.
//
// A page goes through three stages:
//   - Markdown to an HTML fragment via an HTMLConverter (native or goldmark)
//   - optional rewriting of relative .md links to their generated .html pages
//   - substitution of title and fragment into the page template, with the
//     site stylesheet injected before </head>
//
// Reading and writing files is handled by internal/site. The stages here are
// pure string transformations and safe for concurrent use.
package pipeline
