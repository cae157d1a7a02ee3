// internal/selector/selector.go

// Package selector computes stable, minimal CSS locators for elements of a
// parsed document. A locator produced here is verified to resolve to exactly
// the element it was derived from at generation time.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoSelector is returned when no strategy yields a unique locator.
var ErrNoSelector = errors.New("selector: no unique locator found")

// Generate returns a CSS selector that uniquely resolves to node within doc.
// Strategies are tried in priority order; the first verified-unique candidate
// wins:
//
//  1. #id (assumed unique per HTML semantics, not re-verified)
//  2. tag[name="..."]
//  3. tag[data-*="..."] from the element's first data attribute
//  4. tag.class from the element's first CSS class
//  5. positional: parentTag > tag:nth-of-type(n)
func Generate(doc *goquery.Document, node *html.Node) (string, error) {
	if node == nil || node.Type != html.ElementNode {
		return "", ErrNoSelector
	}
	tag := node.Data

	// 1. ID attribute.
	if id := attrVal(node, "id"); id != "" {
		return "#" + escapeIdent(id), nil
	}

	// 2. Name attribute.
	if name := attrVal(node, "name"); name != "" {
		cand := fmt.Sprintf(`%s[name=%q]`, tag, name)
		if unique(doc, cand, node) {
			return cand, nil
		}
	}

	// 3. First data-* attribute.
	for _, a := range node.Attr {
		if strings.HasPrefix(a.Key, "data-") && a.Val != "" {
			cand := fmt.Sprintf(`%s[%s=%q]`, tag, a.Key, a.Val)
			if unique(doc, cand, node) {
				return cand, nil
			}
			break
		}
	}

	// 4. First CSS class.
	if cls := attrVal(node, "class"); cls != "" {
		if fields := strings.Fields(cls); len(fields) > 0 {
			cand := tag + "." + escapeIdent(fields[0])
			if unique(doc, cand, node) {
				return cand, nil
			}
		}
	}

	// 5. Positional fallback scoped to the immediate parent.
	if cand := positional(node); cand != "" {
		if unique(doc, cand, node) {
			return cand, nil
		}
	}

	return "", ErrNoSelector
}

// Verify re-resolves locator within doc and checks identity with node. Used
// internally and by callers needing to confirm a locator still targets the
// intended element.
func Verify(doc *goquery.Document, locator string, node *html.Node) bool {
	return unique(doc, locator, node)
}

// unique reports whether cand matches exactly one element and that element is
// node itself.
func unique(doc *goquery.Document, cand string, node *html.Node) bool {
	sel := doc.Find(cand)
	return sel.Length() == 1 && sel.Get(0) == node
}

// positional builds parentTag > tag:nth-of-type(n). The index is omitted when
// the element is the only one of its tag among its siblings.
func positional(node *html.Node) string {
	parent := node.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return ""
	}

	index, total := 0, 0
	for sib := parent.FirstChild; sib != nil; sib = sib.NextSibling {
		if sib.Type != html.ElementNode || sib.Data != node.Data {
			continue
		}
		total++
		if sib == node {
			index = total
		}
	}
	if total <= 1 {
		return fmt.Sprintf("%s > %s", parent.Data, node.Data)
	}
	return fmt.Sprintf("%s > %s:nth-of-type(%d)", parent.Data, node.Data, index)
}

// attrVal returns the trimmed value of the named attribute, or "".
func attrVal(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// escapeIdent escapes characters that would break a CSS identifier. A
// conservative subset of CSS.escape: anything outside [a-zA-Z0-9_-] is
// backslash-escaped.
func escapeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
