// internal/extract/labels.go
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// shortTextLimit bounds how long a loose text node may be before it stops
// looking like a label.
const shortTextLimit = 100

// discoverLabel finds the human-readable question text for a control.
// Strategies are tried in order; the first non-empty result wins:
//
//  1. <label for=id> referencing the element's id
//  2. an ancestor <label> wrapping the element
//  3. an immediately preceding sibling <label>
//  4. the parent container's preceding sibling, when it is a <label>
//  5. the first short text node among the parent's children, document order
//  6. humanized form of the name or id attribute
//  7. "Field <type>" as the final fallback
func discoverLabel(doc *goquery.Document, sel *goquery.Selection) string {
	node := sel.Get(0)

	// 1. label[for].
	if id, ok := sel.Attr("id"); ok && id != "" {
		if txt := CleanText(doc.Find(fmt.Sprintf(`label[for=%q]`, id)).First().Text()); txt != "" {
			return txt
		}
	}

	// 2. Wrapping label.
	if txt := CleanText(sel.Closest("label").Text()); txt != "" {
		return txt
	}

	// 3. Immediately preceding sibling label.
	if prev := sel.Prev(); prev.Is("label") {
		if txt := CleanText(prev.Text()); txt != "" {
			return txt
		}
	}

	// 4. Parent's preceding sibling, if it is a label.
	if prev := sel.Parent().Prev(); prev.Is("label") {
		if txt := CleanText(prev.Text()); txt != "" {
			return txt
		}
	}

	// 5. First short text node among the parent's children.
	if parent := node.Parent; parent != nil {
		if txt := firstShortText(parent, node); txt != "" {
			return txt
		}
	}

	// 6. Humanized name/id.
	if name, _ := sel.Attr("name"); name != "" {
		if txt := HumanizeAttr(name); txt != "" {
			return txt
		}
	}
	if id, _ := sel.Attr("id"); id != "" {
		if txt := HumanizeAttr(id); txt != "" {
			return txt
		}
	}

	// 7. Last resort.
	typ, _ := sel.Attr("type")
	if typ == "" {
		typ = goquery.NodeName(sel)
	}
	return "Field " + typ
}

// firstShortText walks parent's subtree in document order and returns the
// first cleaned text node shorter than shortTextLimit, skipping text inside
// the control itself.
func firstShortText(parent, control *html.Node) string {
	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n == control {
			return false
		}
		if n.Type == html.TextNode {
			raw := strings.TrimSpace(n.Data)
			if raw != "" && len([]rune(raw)) < shortTextLimit {
				if txt := CleanText(raw); txt != "" {
					found = txt
					return true
				}
			}
			return false
		}
		// script/style text is never a label.
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "option") {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(parent)
	return found
}

// radioOptionLabel derives the display text of one radio input. Tried in
// order: label[for], wrapping label, following-sibling text, then the raw
// value attribute.
func radioOptionLabel(doc *goquery.Document, radio *goquery.Selection) string {
	if id, ok := radio.Attr("id"); ok && id != "" {
		if txt := CleanText(doc.Find(fmt.Sprintf(`label[for=%q]`, id)).First().Text()); txt != "" {
			return txt
		}
	}
	if txt := CleanText(radio.Closest("label").Text()); txt != "" {
		return txt
	}
	if node := radio.Get(0); node != nil {
		for sib := node.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type == html.TextNode {
				if txt := CleanText(sib.Data); txt != "" {
					return txt
				}
				continue
			}
			if sib.Type == html.ElementNode {
				if txt := CleanText(goquery.NewDocumentFromNode(sib).Text()); txt != "" {
					return txt
				}
				break
			}
		}
	}
	if val, ok := radio.Attr("value"); ok {
		return CleanText(val)
	}
	return ""
}
