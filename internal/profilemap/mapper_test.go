// internal/profilemap/mapper_test.go

package profilemap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/generate"
)

func testProfile() *schemas.Profile {
	return &schemas.Profile{
		ID:          "p1",
		DisplayName: "Work",
		Name:        "Jordan Reyes",
		Email:       "jordan.reyes@example.com",
		Phone:       "5125550142",
		Address:     "400 Oak Avenue",
		Company:     "Summit Labs",
		JobTitle:    "Data Analyst",
		Bio:         "Analyst focused on reporting pipelines and dashboard automation.",
	}
}

func newTestMapper(t *testing.T, p *schemas.Profile) *Mapper {
	t.Helper()
	gen := generate.New(zap.NewNop(), generate.WithRand(rand.New(rand.NewSource(1))))
	m, err := New(p, gen, zap.NewNop())
	require.NoError(t, err)
	return m
}

func field(label string, kind schemas.FieldKind) *schemas.FormField {
	return &schemas.FormField{Locator: "#f", Label: label, Kind: kind}
}

func TestNew_RejectsEmptyProfile(t *testing.T) {
	gen := generate.New(zap.NewNop(), generate.WithRand(rand.New(rand.NewSource(1))))

	_, err := New(&schemas.Profile{ID: "p1", DisplayName: "Empty"}, gen, zap.NewNop())
	assert.ErrorIs(t, err, ErrNoProfileData)

	_, err = New(nil, gen, zap.NewNop())
	assert.ErrorIs(t, err, ErrNoProfileData)
}

func TestResolve_BuiltInAttributes(t *testing.T) {
	m := newTestMapper(t, testProfile())

	tests := []struct {
		label string
		kind  schemas.FieldKind
		want  string
	}{
		{"Email Address", schemas.KindEmail, "jordan.reyes@example.com"},
		{"Work Email", schemas.KindText, "jordan.reyes@example.com"},
		{"Phone", schemas.KindTel, "5125550142"},
		{"First Name", schemas.KindText, "Jordan"},
		{"Last Name", schemas.KindText, "Reyes"},
		{"Full Name", schemas.KindText, "Jordan Reyes"},
		{"Street Address", schemas.KindText, "400 Oak Avenue"},
		{"Company", schemas.KindText, "Summit Labs"},
		{"Job Title", schemas.KindText, "Data Analyst"},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Resolve(field(tc.label, tc.kind)))
		})
	}
}

func TestResolve_CustomFieldWinsOverAttributes(t *testing.T) {
	p := testProfile()
	p.CustomFields = []schemas.CustomField{
		{Name: "Employee ID", Value: "E-20113"},
		{Name: "Work Email", Value: "jr@corp.example"},
	}
	m := newTestMapper(t, p)

	assert.Equal(t, "E-20113", m.Resolve(field("Employee ID", schemas.KindText)))
	// Custom field match also beats the built-in email attribute.
	assert.Equal(t, "jr@corp.example", m.Resolve(field("Work Email", schemas.KindText)))
	// Unrelated fields still resolve normally.
	assert.Equal(t, "Jordan Reyes", m.Resolve(field("Full Name", schemas.KindText)))
}

func TestResolve_CustomFieldMatchIsCaseInsensitive(t *testing.T) {
	p := testProfile()
	p.CustomFields = []schemas.CustomField{{Name: "BADGE NUMBER", Value: "7731"}}
	m := newTestMapper(t, p)

	assert.Equal(t, "7731", m.Resolve(field("Badge Number", schemas.KindText)))
}

func TestResolve_TextareaFallsBackToBio(t *testing.T) {
	p := testProfile()
	m := newTestMapper(t, p)

	got := m.Resolve(field("Anything we should know?", schemas.KindTextarea))
	assert.Equal(t, p.Bio, got)
}

func TestResolve_EmptyAttributeFallsToGenerator(t *testing.T) {
	p := &schemas.Profile{ID: "p1", DisplayName: "Partial", Name: "Jordan Reyes"}
	m := newTestMapper(t, p)

	// No email saved: a synthetic one is generated rather than writing "".
	v := m.Resolve(field("Email", schemas.KindEmail))
	assert.NotEmpty(t, v)
	assert.Contains(t, v, "@")
	assert.NotEqual(t, "jordan.reyes@example.com", v)
}

func TestResolve_UsernameNotMappedToName(t *testing.T) {
	m := newTestMapper(t, testProfile())

	v := m.Resolve(field("Username", schemas.KindText))
	assert.NotEqual(t, "Jordan Reyes", v)
	assert.Regexp(t, `^[a-z]+\d{2,4}$`, v)
}

func TestResolve_AbbreviationsMatchWholeWordsOnly(t *testing.T) {
	m := newTestMapper(t, testProfile())

	// A camel-cased fullName control is the person's full name, not the
	// last name the embedded "lname" letters suggest.
	f := &schemas.FormField{Locator: "#f", Name: "fullName", Kind: schemas.KindText}
	assert.Equal(t, "Jordan Reyes", m.Resolve(f))

	assert.Equal(t, "Reyes", m.Resolve(&schemas.FormField{Locator: "#f", Name: "lname", Kind: schemas.KindText}))
	assert.Equal(t, "Jordan", m.Resolve(&schemas.FormField{Locator: "#f", Name: "fname", Kind: schemas.KindText}))
}

func TestResolve_CustomFieldAppliesToChoiceControls(t *testing.T) {
	p := testProfile()
	p.CustomFields = []schemas.CustomField{{Name: "Country", Value: "Germany"}}
	m := newTestMapper(t, p)

	f := &schemas.FormField{
		Locator: "#f",
		Label:   "Country",
		Kind:    schemas.KindSelect,
		Options: []string{"Select...", "France", "Germany", "Spain"},
	}
	// The verbatim value is returned; option matching happens at injection.
	assert.Equal(t, "Germany", m.Resolve(f))
}

func TestResolve_ChoiceControlsUseGenerator(t *testing.T) {
	m := newTestMapper(t, testProfile())

	f := &schemas.FormField{
		Locator: "#f",
		Label:   "Company Size",
		Kind:    schemas.KindSelect,
		Options: []string{"Select...", "1-10", "11-50", "51-200"},
	}
	for i := 0; i < 50; i++ {
		v := m.Resolve(f)
		assert.Contains(t, []string{"1-10", "11-50", "51-200"}, v)
	}
}

func TestResolve_UnmatchedFieldUsesGenerator(t *testing.T) {
	m := newTestMapper(t, testProfile())

	v := m.Resolve(field("Favorite Color", schemas.KindText))
	assert.NotEmpty(t, v)
}
