// Package mdsite converts Markdown documents to HTML through a small,
// self-contained pipeline.
//
// # Quick Start
//
//	root, err := mdsite.RenderDocument("# Hello\n\nThis is **bold**.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(root.HTML())
//	// <div><h1>Hello</h1><p>This is <b>bold</b>.</p></div>
//
// # Conversion Pipeline
//
//  1. Block splitting: the document is cut on blank lines (SplitBlocks)
//  2. Block classification: heading, code, quote, lists or paragraph (ClassifyBlock)
//  3. Inline tokenization: bold, italic, code spans, images, links (Tokenize)
//  4. Tree assembly: tokens become Leaf nodes, blocks become Parent nodes
//     under a root <div> (Converter.Render)
//  5. Serialization: Node.HTML renders the tree recursively
//
// # Dialect
//
// The supported subset is deliberately small:
//
//	**bold**  _italic_  `code`  ![alt](src)  [text](href)
//	# .. ###### headings, > quotes, - lists, 1. lists, ``` fences
//
// Inline styles do not nest. Unmatched delimiters stay as literal text.
// Text is emitted verbatim; HTML in the source passes through unescaped.
//
// # Options
//
//	conv := mdsite.NewConverter(
//	    mdsite.WithHeadingIDs(),
//	    mdsite.WithHighlighter(highlighter),
//	)
//
// A Converter holds no per-document state and may be shared by goroutines.
//
// # Titles
//
// ExtractTitle finds the first "# " line of a document, used to fill page
// templates. It returns ErrTitleNotFound when the document has no H1.
package mdsite
