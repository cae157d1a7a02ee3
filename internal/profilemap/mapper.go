// internal/profilemap/mapper.go

// Package profilemap resolves field values from a saved profile, falling
// back to the synthetic generator for anything the profile does not cover.
// Custom fields win over the built-in attributes so a user-defined
// "Employee ID" entry beats the generic identifier heuristics.
package profilemap

import (
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/generate"
)

// ErrNoProfileData indicates the selected profile has no usable attributes
// or custom fields, so a profile-mode fill would silently degrade to a fully
// random one.
var ErrNoProfileData = errors.New("profile has no fillable data")

// Mapper resolves a value for each extracted field.
type Mapper struct {
	profile *schemas.Profile
	gen     *generate.Generator
	log     *zap.Logger
}

// New builds a Mapper over the given profile. The generator backs every
// field the profile has no answer for.
func New(profile *schemas.Profile, gen *generate.Generator, logger *zap.Logger) (*Mapper, error) {
	if profile == nil || !profile.HasData() {
		return nil, ErrNoProfileData
	}
	return &Mapper{
		profile: profile,
		gen:     gen,
		log:     logger.Named("profilemap"),
	}, nil
}

// Resolve returns the value to write into f. Resolution order: custom
// fields by name match, then the profile's built-in attributes by keyword,
// then the generator. Custom fields apply to every kind; a verbatim custom
// value on a choice control is resolved against the option list by the
// injector's matching cascade. The built-in attribute cascade only covers
// free-text kinds, so unmatched choice controls go straight to the
// generator's option-picking policy.
func (m *Mapper) Resolve(f *schemas.FormField) string {
	text := f.SearchText()

	if v, name := m.customFieldValue(text); v != "" {
		m.log.Debug("custom field matched",
			zap.String("customField", name),
			zap.String("locator", f.Locator),
		)
		return v
	}

	if !f.Kind.FreeText() {
		return m.gen.Generate(f)
	}

	if v := m.attributeValue(f, text); v != "" {
		return v
	}

	return m.gen.Generate(f)
}

// customFieldValue finds the first custom field whose normalized name
// occurs in the field's search text. Definition order breaks ties.
func (m *Mapper) customFieldValue(text string) (value, name string) {
	for _, cf := range m.profile.CustomFields {
		needle := strings.ToLower(strings.TrimSpace(cf.Name))
		if needle == "" || cf.Value == "" {
			continue
		}
		if strings.Contains(text, needle) {
			return cf.Value, cf.Name
		}
	}
	return "", ""
}

// attributeValue maps keyword families onto the profile's built-in
// attributes. An empty attribute falls through so the generator can cover
// it; the keyword families mirror the generator's own identity rules.
func (m *Mapper) attributeValue(f *schemas.FormField, text string) string {
	p := m.profile
	words := tokenize(text)
	switch {
	case f.Kind == schemas.KindEmail || containsAny(text, "email", "e-mail"):
		return p.Email
	case f.Kind == schemas.KindTel || containsAny(text, "phone", "mobile", "cell", "telephone"):
		return p.Phone
	case containsAny(text, "first name", "firstname", "given name") || words["fname"]:
		return p.FirstName()
	case containsAny(text, "last name", "lastname", "surname", "family name") || words["lname"]:
		return p.LastName()
	case containsAny(text, "company", "employer", "organization", "organisation"):
		return p.Company
	case containsAny(text, "job title", "jobtitle", "position", "occupation", "role"):
		return p.JobTitle
	case containsAny(text, "username", "user name", "nickname", "login", "handle"):
		// Account handles are not the person's name; let the generator
		// synthesize one.
		return ""
	case containsAny(text, "name"):
		return p.Name
	case containsAny(text, "address", "street"):
		return p.Address
	case containsAny(text, "bio", "about you", "about yourself", "introduce yourself"):
		return p.Bio
	}
	if f.Kind == schemas.KindTextarea && p.Bio != "" {
		return p.Bio
	}
	return ""
}

func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// tokenize splits text into a lowercase word set so short abbreviations like
// "lname" match only as whole words, never inside "fullname".
func tokenize(text string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[strings.ToLower(w)] = true
	}
	return words
}
