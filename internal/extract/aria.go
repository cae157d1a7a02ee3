// internal/extract/aria.go
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/selector"
)

// questionContainerHint marks class/attribute fragments that identify a
// survey-style question wrapper when walking up from a radiogroup.
var questionContainerHints = []string{"question", "form-group", "field", "survey-item"}

// maxAncestorWalk bounds the upward search for a question container.
const maxAncestorWalk = 4

// extractAriaRadioGroups scans role="radiogroup" containers. Each group
// becomes exactly one field of kind ariaRadioGroup whose options come from
// the accessible labels of its role="radio" children.
func (e *Extractor) extractAriaRadioGroups() []schemas.FormField {
	var fields []schemas.FormField

	e.doc.Find(`[role="radiogroup"]`).Each(func(_ int, group *goquery.Selection) {
		if staticallyHidden(group) {
			return
		}
		node := group.Get(0)
		loc, err := selector.Generate(e.doc, node)
		if err != nil {
			e.log.Debug("no unique locator for radiogroup, skipping", zap.Error(err))
			return
		}

		f := schemas.FormField{
			Locator:   loc,
			Kind:      schemas.KindAriaRadioGroup,
			AriaLabel: strings.TrimSpace(group.AttrOr("aria-label", "")),
			Required:  group.AttrOr("aria-required", "") == "true",
		}

		group.Find(`[role="radio"]`).Each(func(_ int, radio *goquery.Selection) {
			if txt := ariaOptionText(radio); txt != "" {
				f.Options = append(f.Options, txt)
			}
			if radio.AttrOr("aria-checked", "") == "true" {
				f.CurrentValue = ariaOptionText(radio)
			}
		})
		if len(f.Options) == 0 {
			return
		}

		f.Label = e.ariaGroupLabel(group)
		fields = append(fields, f)
	})

	return fields
}

// ariaOptionText returns the accessible label of one role="radio" child:
// aria-label when present, otherwise its text content.
func ariaOptionText(radio *goquery.Selection) string {
	if l := CleanText(radio.AttrOr("aria-label", "")); l != "" {
		return l
	}
	return CleanText(radio.Text())
}

// ariaGroupLabel discovers the group's question text: aria-labelledby
// references first, then the group's own aria-label, then a nearby heading,
// then a walk up to a recognizable question-container ancestor.
func (e *Extractor) ariaGroupLabel(group *goquery.Selection) string {
	// aria-labelledby may reference several ids.
	if refs := strings.Fields(group.AttrOr("aria-labelledby", "")); len(refs) > 0 {
		var parts []string
		for _, id := range refs {
			if txt := CleanText(e.doc.Find(fmt.Sprintf("#%s", id)).First().Text()); txt != "" {
				parts = append(parts, txt)
			}
		}
		if len(parts) > 0 {
			return CleanText(strings.Join(parts, " "))
		}
	}

	if l := CleanText(group.AttrOr("aria-label", "")); l != "" {
		return l
	}

	// Heading immediately preceding the group.
	if prev := group.Prev(); prev.Is("h1, h2, h3, h4, h5, h6, legend, label, p") {
		if txt := CleanText(prev.Text()); txt != "" {
			return txt
		}
	}

	// Walk up looking for a question container carrying a heading.
	cur := group.Parent()
	for depth := 0; depth < maxAncestorWalk && cur.Length() > 0; depth++ {
		if isQuestionContainer(cur) {
			if h := cur.Find("h1, h2, h3, h4, h5, h6, legend, label").First(); h.Length() > 0 {
				if txt := CleanText(h.Text()); txt != "" {
					return txt
				}
			}
			if node := cur.Get(0); node != nil {
				if txt := firstShortText(node, group.Get(0)); txt != "" {
					return txt
				}
			}
		}
		cur = cur.Parent()
	}

	return ""
}

func isQuestionContainer(sel *goquery.Selection) bool {
	probe := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("data-testid", "") + " " + sel.AttrOr("id", ""))
	for _, hint := range questionContainerHints {
		if strings.Contains(probe, hint) {
			return true
		}
	}
	return false
}
