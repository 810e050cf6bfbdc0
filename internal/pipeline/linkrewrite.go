package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// markdownExts are the link suffixes that point at other pages of the site.
var markdownExts = []string{".md", ".markdown"}

// RewriteMarkdownLinks rewrites relative a[href] links to Markdown sources so
// they point at the generated .html pages. Query strings and fragments are
// kept. Content without such links is returned unchanged.
//
// Does NOT rewrite:
//   - URLs with a scheme (http, mailto, ...) or protocol-relative URLs
//   - absolute paths and pure fragments
//   - img[src] and other attributes
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	if !strings.Contains(htmlContent, "href") {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteNode(doc) {
		return htmlContent, nil
	}

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Parse with body context to avoid wrapping.
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and reports whether any link changed.
func rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if href, ok := pageHref(attr.Val); ok {
				n.Attr[i].Val = href
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

// pageHref maps a relative link to a Markdown file onto its .html page.
func pageHref(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") || fileutil.IsURL(href) {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || path.IsAbs(u.Path) {
		return "", false
	}

	for _, ext := range markdownExts {
		if strings.HasSuffix(strings.ToLower(u.Path), ext) {
			u.Path = u.Path[:len(u.Path)-len(ext)] + ".html"
			return u.String(), true
		}
	}
	return "", false
}
