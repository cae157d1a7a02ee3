// internal/extract/extractor.go

// Package extract walks a parsed page snapshot, finds candidate input-like
// elements, and normalizes them into schemas.FormField records. All
// heuristics run on the static document; computed-style visibility is
// delegated to an optional live-page Prober.
package extract

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/selector"
)

// skippedInputTypes are input types that are not fillable questions.
var skippedInputTypes = map[string]bool{
	"hidden": true,
	"submit": true,
	"button": true,
	"image":  true,
	"reset":  true,
}

// Prober answers computed-style visibility questions against the live page.
// Locators absent from the returned map are treated as visible (the static
// filter already removed the obvious cases).
type Prober interface {
	Visible(ctx context.Context, locators []string) (map[string]bool, error)
}

// Extractor produces FormField records from one document snapshot. Fields are
// created fresh on every pass and never persisted.
type Extractor struct {
	doc    *goquery.Document
	prober Prober
	log    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithProber attaches a live-page visibility prober.
func WithProber(p Prober) Option {
	return func(e *Extractor) { e.prober = p }
}

// New creates an Extractor over an already-parsed document.
func New(doc *goquery.Document, logger *zap.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		doc: doc,
		log: logger.Named("extractor"),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ExtractAll scans the document and returns every eligible field. Password
// controls, statically hidden controls, and controls without a stable locator
// or discoverable label are dropped.
func (e *Extractor) ExtractAll(ctx context.Context) ([]schemas.FormField, error) {
	var fields []schemas.FormField
	seenRadioNames := map[string]bool{}

	e.doc.Find("input, textarea, select").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		typ := strings.ToLower(strings.TrimSpace(sel.AttrOr("type", "")))

		if tag == "input" && skippedInputTypes[typ] {
			return
		}
		if staticallyHidden(sel) {
			return
		}

		// A native radio group is one logical question; only the first
		// member of each name produces a field.
		if tag == "input" && typ == "radio" {
			name := sel.AttrOr("name", "")
			if name != "" {
				if seenRadioNames[name] {
					return
				}
				seenRadioNames[name] = true
			}
			if f, ok := e.buildRadioGroup(sel, name); ok {
				fields = append(fields, f)
			}
			return
		}

		if f, ok := e.buildField(sel, tag, typ); ok {
			fields = append(fields, f)
		}
	})

	fields = append(fields, e.extractAriaRadioGroups()...)

	fields = e.postFilter(fields)

	if e.prober != nil {
		var err error
		fields, err = e.filterByLiveVisibility(ctx, fields)
		if err != nil {
			// The static filter already ran; degrade rather than fail.
			e.log.Warn("live visibility probe failed, keeping static results", zap.Error(err))
		}
	}

	e.log.Debug("extraction pass complete", zap.Int("fields", len(fields)))
	return fields, nil
}

// buildField normalizes one non-radio control.
func (e *Extractor) buildField(sel *goquery.Selection, tag, typ string) (schemas.FormField, bool) {
	node := sel.Get(0)
	loc, err := selector.Generate(e.doc, node)
	if err != nil {
		e.log.Debug("no unique locator for element, skipping", zap.String("tag", tag), zap.Error(err))
		return schemas.FormField{}, false
	}

	f := schemas.FormField{
		Locator:      loc,
		Kind:         kindOf(tag, typ, sel),
		Placeholder:  strings.TrimSpace(sel.AttrOr("placeholder", "")),
		Name:         strings.TrimSpace(sel.AttrOr("name", "")),
		AriaLabel:    strings.TrimSpace(sel.AttrOr("aria-label", "")),
		CurrentValue: currentValueOf(sel, tag),
		Required:     sel.AttrOr("required", "absent") != "absent" || sel.AttrOr("aria-required", "") == "true",
	}
	f.Label = discoverLabel(e.doc, sel)

	if tag == "select" {
		sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
			if txt := CleanText(opt.Text()); txt != "" {
				f.Options = append(f.Options, txt)
			}
		})
	}

	if f.Kind == schemas.KindNumber || f.Kind == schemas.KindRange {
		if v, ok := parseBound(sel, "min"); ok {
			f.Min, f.HasMin = v, true
		}
		if v, ok := parseBound(sel, "max"); ok {
			f.Max, f.HasMax = v, true
		}
	}

	return f, true
}

// buildRadioGroup normalizes a whole native radio group into one field,
// anchored at its first member.
func (e *Extractor) buildRadioGroup(first *goquery.Selection, name string) (schemas.FormField, bool) {
	node := first.Get(0)
	loc, err := selector.Generate(e.doc, node)
	if err != nil {
		return schemas.FormField{}, false
	}

	f := schemas.FormField{
		Locator:   loc,
		Kind:      schemas.KindRadio,
		Name:      name,
		AriaLabel: strings.TrimSpace(first.AttrOr("aria-label", "")),
		Required:  first.AttrOr("required", "absent") != "absent",
	}

	group := first
	if name != "" {
		group = e.doc.Find(`input[type="radio"][name=` + strconv.Quote(name) + `]`)
	}
	group.Each(func(_ int, radio *goquery.Selection) {
		if txt := radioOptionLabel(e.doc, radio); txt != "" {
			f.Options = append(f.Options, txt)
		}
		if _, checked := radio.Attr("checked"); checked {
			f.CurrentValue = CleanText(radio.AttrOr("value", ""))
		}
	})

	// The group's question text usually lives above the first member, not on
	// it; the shared label chain handles both shapes.
	f.Label = discoverLabel(e.doc, first)
	return f, true
}

// postFilter drops fields that cannot be safely classified or re-found:
// password kinds, empty locators, empty labels.
func (e *Extractor) postFilter(in []schemas.FormField) []schemas.FormField {
	out := in[:0]
	for _, f := range in {
		switch {
		case f.Kind == schemas.KindPassword:
			// Password controls are never surfaced.
		case f.Locator == "":
		case f.Label == "":
		default:
			out = append(out, f)
		}
	}
	return out
}

// filterByLiveVisibility asks the prober which locators are visible under
// computed styles and drops the rest.
func (e *Extractor) filterByLiveVisibility(ctx context.Context, fields []schemas.FormField) ([]schemas.FormField, error) {
	if len(fields) == 0 {
		return fields, nil
	}
	locators := make([]string, len(fields))
	for i, f := range fields {
		locators[i] = f.Locator
	}
	visible, err := e.prober.Visible(ctx, locators)
	if err != nil {
		return fields, err
	}
	out := fields[:0]
	for _, f := range fields {
		if v, known := visible[f.Locator]; known && !v {
			e.log.Debug("dropping field hidden under computed style", zap.String("locator", f.Locator))
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// staticallyHidden applies the visibility checks expressible on a snapshot:
// the hidden attribute, inline display/visibility, and zero inline size.
func staticallyHidden(sel *goquery.Selection) bool {
	if _, hidden := sel.Attr("hidden"); hidden {
		return true
	}
	style := strings.ToLower(sel.AttrOr("style", ""))
	if style == "" {
		return false
	}
	style = strings.ReplaceAll(style, " ", "")
	if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
		return true
	}
	return strings.Contains(style, "width:0") && strings.Contains(style, "height:0")
}

// kindOf maps tag/type to the normalized FieldKind. Unrecognized native
// types default to text.
func kindOf(tag, typ string, sel *goquery.Selection) schemas.FieldKind {
	switch tag {
	case "textarea":
		return schemas.KindTextarea
	case "select":
		if _, multiple := sel.Attr("multiple"); multiple {
			return schemas.KindSelectMultiple
		}
		return schemas.KindSelect
	}

	switch typ {
	case "email":
		return schemas.KindEmail
	case "tel":
		return schemas.KindTel
	case "number":
		return schemas.KindNumber
	case "url":
		return schemas.KindURL
	case "date":
		return schemas.KindDate
	case "time":
		return schemas.KindTime
	case "datetime-local":
		return schemas.KindDatetime
	case "range":
		return schemas.KindRange
	case "checkbox":
		return schemas.KindCheckbox
	case "password":
		return schemas.KindPassword
	default:
		return schemas.KindText
	}
}

// currentValueOf reads the control's present value from the snapshot.
func currentValueOf(sel *goquery.Selection, tag string) string {
	switch tag {
	case "textarea":
		return strings.TrimSpace(sel.Text())
	case "select":
		if opt := sel.Find("option[selected]").First(); opt.Length() > 0 {
			return CleanText(opt.Text())
		}
		return ""
	default:
		return strings.TrimSpace(sel.AttrOr("value", ""))
	}
}

func parseBound(sel *goquery.Selection, attr string) (float64, bool) {
	raw, ok := sel.Attr(attr)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
