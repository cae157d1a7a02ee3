// api/schemas/field.go
package schemas

// FieldKind is the normalized category of a form control. Controls with an
// unrecognized native type are reported as KindText.
type FieldKind string

const (
	KindText           FieldKind = "text"
	KindEmail          FieldKind = "email"
	KindTel            FieldKind = "tel"
	KindNumber         FieldKind = "number"
	KindURL            FieldKind = "url"
	KindDate           FieldKind = "date"
	KindTime           FieldKind = "time"
	KindDatetime       FieldKind = "datetime"
	KindRange          FieldKind = "range"
	KindTextarea       FieldKind = "textarea"
	KindSelect         FieldKind = "select"
	KindSelectMultiple FieldKind = "select-multiple"
	KindRadio          FieldKind = "radio"
	KindCheckbox       FieldKind = "checkbox"
	KindAriaRadioGroup FieldKind = "ariaRadioGroup"

	// KindPassword only exists during extraction; fields of this kind are
	// dropped before they leave the extractor and must never be filled.
	KindPassword FieldKind = "password"
)

// FreeText reports whether the kind carries a typed string value rather than a
// choice among declared options.
func (k FieldKind) FreeText() bool {
	switch k {
	case KindText, KindEmail, KindTel, KindNumber, KindURL,
		KindDate, KindTime, KindDatetime, KindTextarea:
		return true
	}
	return false
}

// FormField is the normalized, DOM-independent representation of one fillable
// control. It is fully serializable; the live element is only ever re-found
// through Locator.
type FormField struct {
	// Locator is a CSS selector verified unique within the document at
	// extraction time.
	Locator string `json:"locator"`
	// Label is the human-readable question text discovered near the control.
	Label        string    `json:"label"`
	Kind         FieldKind `json:"kind"`
	Placeholder  string    `json:"placeholder,omitempty"`
	Name         string    `json:"name,omitempty"`
	AriaLabel    string    `json:"ariaLabel,omitempty"`
	CurrentValue string    `json:"currentValue,omitempty"`
	// Options holds the cleaned choice texts for select/radio/ARIA kinds,
	// in document order. Empty for free-text kinds.
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`

	// Declared numeric bounds, populated for number and range controls.
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	HasMin bool    `json:"hasMin,omitempty"`
	HasMax bool    `json:"hasMax,omitempty"`
}

// SearchText returns the lowercased concatenation of label, name and
// placeholder, the haystack every classification rule matches against.
func (f *FormField) SearchText() string {
	return lowerJoin(f.Label, f.Name, f.Placeholder)
}
