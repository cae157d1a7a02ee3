// api/schemas/profile.go
package schemas

import "strings"

// CustomField is a user-defined answer attached to a profile. Names are
// unique within a profile; resaving an existing name replaces its value.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Profile is a named bundle of user-supplied answers. Exactly one profile in
// a stored collection is active at a time; the store enforces that on write.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	IsActive    bool   `json:"isActive"`

	// Standard attributes, all optional.
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Company  string `json:"company,omitempty"`
	JobTitle string `json:"jobTitle,omitempty"`
	Bio      string `json:"bio,omitempty"`

	CustomFields []CustomField `json:"customFields,omitempty"`
}

// HasData reports whether the profile holds anything usable for mapping. A
// profile-mode fill against a profile with no data is a pass-level error, not
// a silent fallback to random values.
func (p *Profile) HasData() bool {
	for _, v := range []string{p.Name, p.Email, p.Phone, p.Address, p.Company, p.JobTitle, p.Bio} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return len(p.CustomFields) > 0
}

// FirstName returns the first whitespace-separated token of Name.
func (p *Profile) FirstName() string {
	parts := strings.Fields(p.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns the final token of Name when it holds more than one.
func (p *Profile) LastName() string {
	parts := strings.Fields(p.Name)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// SetCustomField upserts a custom field by name. Last write for a given name
// wins; matching is case-insensitive on the trimmed name.
func (p *Profile) SetCustomField(cf CustomField) {
	cf.Name = strings.TrimSpace(cf.Name)
	for i := range p.CustomFields {
		if strings.EqualFold(p.CustomFields[i].Name, cf.Name) {
			p.CustomFields[i] = cf
			return
		}
	}
	p.CustomFields = append(p.CustomFields, cf)
}

// RemoveCustomField deletes a custom field by name, reporting whether it
// existed.
func (p *Profile) RemoveCustomField(name string) bool {
	name = strings.TrimSpace(name)
	for i := range p.CustomFields {
		if strings.EqualFold(p.CustomFields[i].Name, name) {
			p.CustomFields = append(p.CustomFields[:i], p.CustomFields[i+1:]...)
			return true
		}
	}
	return false
}
