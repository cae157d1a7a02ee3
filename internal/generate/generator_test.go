// internal/generate/generator_test.go

package generate

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	return New(zap.NewNop(), WithRand(rand.New(rand.NewSource(seed))))
}

func textField(label string) *schemas.FormField {
	return &schemas.FormField{Locator: "#f", Label: label, Kind: schemas.KindText}
}

func selectField(label string, options ...string) *schemas.FormField {
	return &schemas.FormField{Locator: "#f", Label: label, Kind: schemas.KindSelect, Options: options}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := newTestGenerator(t, 42)
	b := newTestGenerator(t, 42)
	fields := []*schemas.FormField{
		textField("First Name"),
		textField("Email Address"),
		textField("Your feedback"),
		selectField("Age Range", "Select...", "18-24", "25-34"),
	}
	for _, f := range fields {
		assert.Equal(t, a.Generate(f), b.Generate(f), "label %q", f.Label)
	}
}

func TestGenerate_EmailShape(t *testing.T) {
	g := newTestGenerator(t, 1)
	re := regexp.MustCompile(`^[a-z]+\.[a-z]+\d{2}@[a-z.-]+$`)
	for i := 0; i < 50; i++ {
		v := g.Generate(&schemas.FormField{Label: "Email", Kind: schemas.KindEmail})
		assert.Regexp(t, re, v)
	}
}

func TestGenerate_PhoneIsTenBareDigits(t *testing.T) {
	g := newTestGenerator(t, 1)
	re := regexp.MustCompile(`^[2-9]\d{9}$`)
	for i := 0; i < 50; i++ {
		v := g.Generate(&schemas.FormField{Label: "Phone Number", Kind: schemas.KindTel})
		assert.Regexp(t, re, v)
	}
}

func TestGenerate_NPSStaysInPromoterBand(t *testing.T) {
	g := newTestGenerator(t, 7)
	f := textField("How likely are you to recommend us to a friend?")
	f.Kind = schemas.KindNumber
	for i := 0; i < 200; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 7)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestGenerate_RangeSliderUpperBand(t *testing.T) {
	g := newTestGenerator(t, 7)
	f := &schemas.FormField{
		Label: "Volume", Kind: schemas.KindRange,
		Min: 0, Max: 100, HasMin: true, HasMax: true,
	}
	for i := 0; i < 200; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 60)
		assert.LessOrEqual(t, n, 90)
	}
}

func TestGenerate_RangeSliderCustomBounds(t *testing.T) {
	g := newTestGenerator(t, 7)
	f := &schemas.FormField{
		Label: "Budget", Kind: schemas.KindRange,
		Min: 200, Max: 400, HasMin: true, HasMax: true,
	}
	for i := 0; i < 200; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 320)
		assert.LessOrEqual(t, n, 380)
	}
}

func TestGenerate_AgeSelectSkipsPlaceholder(t *testing.T) {
	g := newTestGenerator(t, 3)
	f := selectField("What is your age?", "Select your age...", "18-24", "25-34", "35-44")
	for i := 0; i < 200; i++ {
		v := g.Generate(f)
		assert.NotEqual(t, "Select your age...", v)
		assert.Contains(t, f.Options, v)
	}
}

func TestGenerate_AgeNumberStaysAdult(t *testing.T) {
	g := newTestGenerator(t, 3)
	f := &schemas.FormField{Label: "Age", Kind: schemas.KindNumber}
	for i := 0; i < 200; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 18)
		assert.LessOrEqual(t, n, 65)
	}
}

func TestGenerate_YesNoDistribution(t *testing.T) {
	g := newTestGenerator(t, 11)
	f := textField("Do you currently use our product?")
	yes := 0
	const n = 1000
	for i := 0; i < n; i++ {
		v := g.Generate(f)
		require.Contains(t, []string{"Yes", "No"}, v)
		if v == "Yes" {
			yes++
		}
	}
	ratio := float64(yes) / n
	assert.InDelta(t, 0.70, ratio, 0.05)
}

func TestGenerate_SatisfactionSkew(t *testing.T) {
	g := newTestGenerator(t, 13)
	f := textField("How satisfied are you with our service?")
	counts := map[string]int{}
	const n = 1000
	for i := 0; i < n; i++ {
		counts[g.Generate(f)]++
	}
	assert.InDelta(t, 0.45, float64(counts["Very Satisfied"])/n, 0.05)
	assert.InDelta(t, 0.30, float64(counts["Satisfied"])/n, 0.05)
	positive := counts["Very Satisfied"] + counts["Satisfied"]
	assert.Greater(t, positive, n/2, "distribution should skew positive")
}

func TestGenerate_LikertSkew(t *testing.T) {
	g := newTestGenerator(t, 17)
	f := textField("I agree with the following statement")
	counts := map[string]int{}
	const n = 1000
	for i := 0; i < n; i++ {
		counts[g.Generate(f)]++
	}
	assert.InDelta(t, 0.35, float64(counts["Strongly Agree"])/n, 0.05)
	assert.InDelta(t, 0.35, float64(counts["Agree"])/n, 0.05)
	assert.InDelta(t, 0.05, float64(counts["Strongly Disagree"])/n, 0.05)
}

func TestGenerate_RatingNumberNearMax(t *testing.T) {
	g := newTestGenerator(t, 19)

	f := &schemas.FormField{Label: "Rate your experience", Kind: schemas.KindNumber, Max: 10, HasMax: true}
	for i := 0; i < 100; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 8)
		assert.LessOrEqual(t, n, 10)
	}

	// Without a declared max, assume a five star scale and never go below 3.
	f = &schemas.FormField{Label: "Rating", Kind: schemas.KindNumber}
	for i := 0; i < 100; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestGenerate_WeightedDrawSelectsMatchingOption(t *testing.T) {
	g := newTestGenerator(t, 23)
	f := selectField("How often do you shop online?",
		"-- choose --", "Always", "Often", "Sometimes", "Rarely", "Never")
	for i := 0; i < 200; i++ {
		v := g.Generate(f)
		assert.Contains(t, f.Options[1:], v)
	}
}

func TestGenerate_FeedbackLength(t *testing.T) {
	g := newTestGenerator(t, 29)

	long := &schemas.FormField{Label: "Please explain your feedback in detail", Kind: schemas.KindTextarea}
	v := g.Generate(long)
	assert.Greater(t, len(v), 60, "textarea feedback should be multi-sentence")

	short := &schemas.FormField{Label: "Feedback", Kind: schemas.KindText}
	v = g.Generate(short)
	assert.Less(t, len(v), 80)
	assert.NotEmpty(t, v)
}

func TestGenerate_IdentityRules(t *testing.T) {
	g := newTestGenerator(t, 31)

	tests := []struct {
		label string
		check func(t *testing.T, v string)
	}{
		{"First Name", func(t *testing.T, v string) {
			assert.Contains(t, firstNames, v)
		}},
		{"Last Name", func(t *testing.T, v string) {
			assert.Contains(t, lastNames, v)
		}},
		{"Full Name", func(t *testing.T, v string) {
			parts := strings.Fields(v)
			require.Len(t, parts, 2)
			assert.Contains(t, firstNames, parts[0])
			assert.Contains(t, lastNames, parts[1])
		}},
		{"Username", func(t *testing.T, v string) {
			assert.Regexp(t, `^[a-z]+\d{2,4}$`, v)
		}},
		{"ZIP Code", func(t *testing.T, v string) {
			assert.Regexp(t, `^\d{5}$`, v)
		}},
		{"Street Address", func(t *testing.T, v string) {
			assert.Regexp(t, `^\d{1,3} `, v)
		}},
		{"City", func(t *testing.T, v string) {
			assert.Contains(t, cities, v)
		}},
		{"Company Name", func(t *testing.T, v string) {
			assert.Regexp(t, `^\w+ \w+$`, v)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			tc.check(t, g.Generate(textField(tc.label)))
		})
	}
}

func TestGenerate_CompanyBeforeName(t *testing.T) {
	g := newTestGenerator(t, 37)
	v := g.Generate(textField("Company Name"))
	parts := strings.Fields(v)
	require.Len(t, parts, 2)
	assert.Contains(t, companyPrefixes, parts[0])
	assert.Contains(t, companySuffixes, parts[1])
}

func TestGenerate_FinancialValuesAreSynthetic(t *testing.T) {
	g := newTestGenerator(t, 41)

	card := g.Generate(textField("Credit Card Number"))
	assert.True(t, strings.HasPrefix(card, "0000 "), "card prefix must be non-issuable, got %q", card)

	ssn := g.Generate(textField("SSN"))
	assert.True(t, strings.HasPrefix(ssn, "000-"), "ssn area must be unassigned, got %q", ssn)
	assert.Regexp(t, `^000-\d{2}-\d{4}$`, ssn)

	cvv := g.Generate(textField("CVV"))
	assert.Regexp(t, `^\d{3}$`, cvv)
}

func TestGenerate_DateShapes(t *testing.T) {
	g := newTestGenerator(t, 43)
	dateRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	for i := 0; i < 50; i++ {
		dob := g.Generate(&schemas.FormField{Label: "Date of Birth", Kind: schemas.KindDate})
		require.Regexp(t, dateRe, dob)
		year, err := strconv.Atoi(dob[:4])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, 1960)
		assert.LessOrEqual(t, year, 2005)
		day, err := strconv.Atoi(dob[8:])
		require.NoError(t, err)
		assert.LessOrEqual(t, day, 28)
	}

	generic := g.Generate(&schemas.FormField{Label: "Appointment Date", Kind: schemas.KindDate})
	require.Regexp(t, dateRe, generic)
	year, _ := strconv.Atoi(generic[:4])
	assert.GreaterOrEqual(t, year, 2022)

	clock := g.Generate(&schemas.FormField{Label: "Preferred Time", Kind: schemas.KindTime})
	assert.Regexp(t, `^(0[89]|1[0-8]):[0-5]\d$`, clock)

	dt := g.Generate(&schemas.FormField{Label: "Meeting", Kind: schemas.KindDatetime})
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`, dt)
}

func TestGenerate_WordBoundaryMatching(t *testing.T) {
	g := newTestGenerator(t, 47)

	// "Language" and "Page" must not trip the age rule.
	v := g.Generate(selectField("Preferred Language", "English", "Spanish", "French"))
	assert.Contains(t, []string{"English", "Spanish", "French"}, v)

	v = g.Generate(textField("Landing Page"))
	assert.NotRegexp(t, `^\d{2}$`, v)

	// "Candidate" must not trip the date rule.
	v = g.Generate(textField("Candidate Summary"))
	assert.NotRegexp(t, `^\d{4}-\d{2}-\d{2}$`, v)

	// "fullName" must not trip the lname abbreviation; the abbreviations
	// still fire as standalone words.
	v = g.Generate(&schemas.FormField{Locator: "#f", Name: "fullName", Kind: schemas.KindText})
	parts := strings.Fields(v)
	require.Len(t, parts, 2)
	assert.Contains(t, firstNames, parts[0])
	assert.Contains(t, lastNames, parts[1])

	v = g.Generate(&schemas.FormField{Locator: "#f", Name: "lname", Kind: schemas.KindText})
	assert.Contains(t, lastNames, v)

	v = g.Generate(&schemas.FormField{Locator: "#f", Name: "fname", Kind: schemas.KindText})
	assert.Contains(t, firstNames, v)
}

func TestGenerate_GenericChoiceAndCheckbox(t *testing.T) {
	g := newTestGenerator(t, 53)

	f := selectField("Favorite Color", "-- Select --", "Red", "Green", "Blue")
	for i := 0; i < 100; i++ {
		v := g.Generate(f)
		assert.Contains(t, []string{"Red", "Green", "Blue"}, v)
	}

	cb := &schemas.FormField{Label: "Subscribe to newsletter", Kind: schemas.KindCheckbox}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := g.Generate(cb)
		require.Contains(t, []string{"true", "false"}, v)
		seen[v] = true
	}
	assert.Len(t, seen, 2, "a fair checkbox should produce both values")
}

func TestGenerate_GenericNumberBounds(t *testing.T) {
	g := newTestGenerator(t, 59)

	f := &schemas.FormField{Label: "Widgets", Kind: schemas.KindNumber, Min: 5, Max: 9, HasMin: true, HasMax: true}
	for i := 0; i < 100; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 9)
	}

	f = &schemas.FormField{Label: "Quantity", Kind: schemas.KindNumber}
	for i := 0; i < 100; i++ {
		n, err := strconv.Atoi(g.Generate(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestGenerate_DefaultFallback(t *testing.T) {
	g := newTestGenerator(t, 61)
	v := g.Generate(textField("Zorblatt Configuration"))
	assert.Contains(t, genericSentences, v)
}

func TestGenerate_YesNoOptionsMatched(t *testing.T) {
	g := newTestGenerator(t, 67)
	f := &schemas.FormField{
		Label:   "Newsletter",
		Kind:    schemas.KindRadio,
		Options: []string{"Yes", "No"},
	}
	yes := 0
	const n = 1000
	for i := 0; i < n; i++ {
		v := g.Generate(f)
		require.Contains(t, f.Options, v)
		if v == "Yes" {
			yes++
		}
	}
	assert.InDelta(t, 0.70, float64(yes)/n, 0.05)
}
