// internal/generate/rules.go

package generate

import (
	"strings"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

// ruleTable is evaluated top to bottom; the first matching rule produces the
// value. Survey-question rules come first because their keywords are more
// specific than the identity and generic rules below them, and a question
// like "How satisfied are you with your account manager?" must not fall
// through to a name rule.
var ruleTable = []rule{
	{
		name: "age",
		match: func(c *matchCtx) bool {
			return c.hasWord("age") || c.hasAny("how old")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			if f.Kind == schemas.KindNumber || f.Kind == schemas.KindRange {
				return itoa(g.intIn(18, 65))
			}
			return g.pickWeighted([]weightedChoice{
				{"18-24", 15}, {"25-34", 25}, {"35-44", 30},
				{"45-54", 20}, {"55-64", 5}, {"65+", 5},
			})
		},
	},
	{
		name: "gender",
		match: func(c *matchCtx) bool {
			return c.hasWord("gender", "sex")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick([]string{"Male", "Female", "Other", "Prefer not to say"})
		},
	},
	{
		name: "nps",
		match: func(c *matchCtx) bool {
			return c.hasWord("nps") || c.hasAny("recommend", "how likely")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			v := itoa(g.intIn(7, 10))
			if len(f.Options) > 0 {
				if m, ok := matchOption(f.Options, v); ok {
					return m
				}
				return g.pickOption(f.Options)
			}
			return v
		},
	},
	{
		name: "satisfaction",
		match: func(c *matchCtx) bool {
			return c.hasAny("satisf")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pickWeighted([]weightedChoice{
				{"Very Satisfied", 45}, {"Satisfied", 30}, {"Neutral", 15},
				{"Dissatisfied", 6}, {"Very Dissatisfied", 4},
			})
		},
	},
	{
		name: "rating",
		match: func(c *matchCtx) bool {
			return c.hasWord("rating", "rate", "stars", "score")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if f.Kind == schemas.KindNumber || f.Kind == schemas.KindRange {
				max := 5
				if f.HasMax {
					max = int(f.Max)
				}
				lo := max - 2
				if lo < 3 {
					lo = 3
				}
				if lo > max {
					lo = max
				}
				return itoa(g.intIn(lo, max))
			}
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pickWeighted([]weightedChoice{
				{"Excellent", 40}, {"Great", 30}, {"Good", 15},
				{"Average", 10}, {"Fair", 5},
			})
		},
	},
	{
		name: "likert",
		match: func(c *matchCtx) bool {
			return c.hasWord("agree", "disagree") || c.hasAny("the following statement")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			v := g.pickWeighted([]weightedChoice{
				{"Strongly Agree", 35}, {"Agree", 35}, {"Neutral", 15},
				{"Disagree", 10}, {"Strongly Disagree", 5},
			})
			if len(f.Options) > 0 {
				if m, ok := matchOption(f.Options, v); ok {
					return m
				}
				return g.pickOption(f.Options)
			}
			return v
		},
	},
	{
		name: "frequency",
		match: func(c *matchCtx) bool {
			return c.hasAny("how often", "how frequently", "frequency")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			v := g.pickWeighted([]weightedChoice{
				{"Always", 15}, {"Often", 30}, {"Sometimes", 30},
				{"Rarely", 17}, {"Never", 8},
			})
			if len(f.Options) > 0 {
				if m, ok := matchOption(f.Options, v); ok {
					return m
				}
				return g.pickOption(f.Options)
			}
			return v
		},
	},
	{
		name: "yes-no",
		match: func(c *matchCtx) bool {
			if optionsLookYesNo(c.field.Options) {
				return true
			}
			for _, p := range []string{"do you", "did you", "have you", "has your", "are you", "were you", "would you", "will you", "can you", "is this your"} {
				if strings.HasPrefix(c.text, p) {
					return true
				}
			}
			return false
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			v := "Yes"
			if g.rng.Intn(100) >= 70 {
				v = "No"
			}
			if len(f.Options) > 0 {
				if m, ok := matchOption(f.Options, v); ok {
					return m
				}
				return g.pickOption(f.Options)
			}
			return v
		},
	},
	{
		name: "traffic-source",
		match: func(c *matchCtx) bool {
			return c.hasAny("hear about", "how did you find", "how did you hear", "referral source")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(trafficSources)
		},
	},
	{
		name: "visit-reason",
		match: func(c *matchCtx) bool {
			return c.hasWord("reason", "why") || c.hasAny("purpose of")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(visitReasons)
		},
	},
	{
		name: "feedback",
		match: func(c *matchCtx) bool {
			return c.hasWord("feedback", "comments", "comment", "review", "suggestions", "suggestion", "testimonial", "thoughts", "opinion") ||
				c.hasAny("tell us", "describe your", "your experience", "anything else")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			long := f.Kind == schemas.KindTextarea
			t := f.SearchText()
			for _, cue := range []string{"detail", "explain", "describe", "elaborate"} {
				if strings.Contains(t, cue) {
					long = true
				}
			}
			if long {
				return g.pick(longFeedback)
			}
			return g.pick(shortFeedback)
		},
	},
	{
		name: "range-slider",
		match: func(c *matchCtx) bool {
			return c.field.Kind == schemas.KindRange
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			min, max := 0.0, 100.0
			if f.HasMin {
				min = f.Min
			}
			if f.HasMax {
				max = f.Max
			}
			if max <= min {
				return itoa(int(min))
			}
			span := max - min
			lo := int(min + 0.6*span)
			hi := int(min + 0.9*span)
			return itoa(g.intIn(lo, hi))
		},
	},

	// -- identity and contact --
	{
		name: "email",
		match: func(c *matchCtx) bool {
			return c.kind(schemas.KindEmail) || c.hasWord("email") || c.hasAny("e-mail")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.email() },
	},
	{
		name: "phone",
		match: func(c *matchCtx) bool {
			return c.kind(schemas.KindTel) || c.hasWord("phone", "mobile", "cell", "telephone", "fax")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.phone() },
	},
	{
		name: "username",
		match: func(c *matchCtx) bool {
			return c.hasWord("username", "login", "handle", "nickname") || c.hasAny("user name")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.username() },
	},
	{
		name: "first-name",
		match: func(c *matchCtx) bool {
			return c.hasAny("first name", "firstname", "given name", "forename") || c.hasWord("fname")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.pick(firstNames) },
	},
	{
		name: "middle-name",
		match: func(c *matchCtx) bool {
			return c.hasAny("middle name", "middle initial", "middlename")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if strings.Contains(f.SearchText(), "initial") {
				return g.letters(1)
			}
			return g.pick(firstNames)
		},
	},
	{
		name: "last-name",
		match: func(c *matchCtx) bool {
			return c.hasAny("last name", "lastname", "surname", "family name") || c.hasWord("lname")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.pick(lastNames) },
	},
	{
		name: "company",
		match: func(c *matchCtx) bool {
			return c.hasWord("company", "employer", "organization", "organisation") || c.hasAny("business name")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.companyName() },
	},
	{
		name: "job-title",
		match: func(c *matchCtx) bool {
			return c.hasAny("job title", "jobtitle", "position", "occupation", "profession") || c.hasWord("role", "designation")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.pick(jobTitles) },
	},
	{
		name: "department",
		match: func(c *matchCtx) bool {
			return c.hasWord("department", "team", "division")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.pick(departments) },
	},
	{
		name: "full-name",
		match: func(c *matchCtx) bool {
			return c.hasWord("name") || c.hasAny("full name", "fullname")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.fullName() },
	},
	{
		name: "address-line2",
		match: func(c *matchCtx) bool {
			return c.hasAny("address 2", "address line 2", "address2", "line 2") || c.hasWord("apt", "apartment", "suite", "unit")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return g.pick(unitDesignators)
		},
	},
	{
		name: "address",
		match: func(c *matchCtx) bool {
			return c.hasWord("address", "street")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return itoa(g.intIn(1, 999)) + " " + g.pick(streetNames)
		},
	},
	{
		name: "city",
		match: func(c *matchCtx) bool {
			return c.hasWord("city", "town")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(cities)
		},
	},
	{
		name: "state",
		match: func(c *matchCtx) bool {
			return c.hasWord("state", "province", "region")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(states)
		},
	},
	{
		name: "zip",
		match: func(c *matchCtx) bool {
			return c.hasWord("zip", "zipcode", "postcode", "postal")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.digits(5) },
	},
	{
		name: "country",
		match: func(c *matchCtx) bool {
			return c.hasWord("country", "nationality")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(countries)
		},
	},

	// -- social and web --
	{
		name: "linkedin",
		match: func(c *matchCtx) bool {
			return c.hasWord("linkedin")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return "https://www.linkedin.com/in/" + g.username()
		},
	},
	{
		name: "twitter",
		match: func(c *matchCtx) bool {
			return c.hasWord("twitter")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return "https://twitter.com/" + g.username()
		},
	},
	{
		name: "github",
		match: func(c *matchCtx) bool {
			return c.hasWord("github")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return "https://github.com/" + g.username()
		},
	},
	{
		name: "website",
		match: func(c *matchCtx) bool {
			return c.kind(schemas.KindURL) || c.hasWord("website", "url", "homepage", "site", "portfolio", "blog")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			host := strings.ToLower(strings.ReplaceAll(g.companyName(), " ", ""))
			return "https://www." + host + ".com"
		},
	},

	// -- dates and times --
	{
		name: "birth-date",
		match: func(c *matchCtx) bool {
			return c.hasWord("birth", "birthday", "dob") || c.hasAny("date of birth", "born")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.date(1960, 2005) },
	},
	{
		name: "datetime",
		match: func(c *matchCtx) bool {
			return c.field.Kind == schemas.KindDatetime
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return g.date(2022, 2025) + "T" + g.timeOfDay()
		},
	},
	{
		name: "time",
		match: func(c *matchCtx) bool {
			return c.kind(schemas.KindTime) || c.hasWord("time")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.timeOfDay() },
	},
	{
		name: "date",
		match: func(c *matchCtx) bool {
			return c.kind(schemas.KindDate) || c.hasWord("date")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.date(2022, 2025) },
	},

	// -- education --
	{
		name: "university",
		match: func(c *matchCtx) bool {
			return c.hasWord("university", "college", "school")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(universities)
		},
	},
	{
		name: "degree",
		match: func(c *matchCtx) bool {
			return c.hasWord("degree", "qualification", "education")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return g.pick(degrees)
		},
	},
	{
		name: "major",
		match: func(c *matchCtx) bool {
			return c.hasWord("major") || c.hasAny("field of study")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.pick(majors) },
	},

	// -- financial: structurally valid but never issuable --
	{
		name: "salary",
		match: func(c *matchCtx) bool {
			return c.hasWord("salary", "income", "compensation")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if len(f.Options) > 0 {
				return g.pickOption(f.Options)
			}
			return itoa(g.intIn(40, 180) * 1000)
		},
	},
	{
		name: "card-number",
		match: func(c *matchCtx) bool {
			return c.hasAny("card number", "credit card", "cardnumber", "cc number")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			// 0000 is not an issuable prefix.
			return "0000 0000 " + g.digits(4) + " " + g.digits(4)
		},
	},
	{
		name: "cvv",
		match: func(c *matchCtx) bool {
			return c.hasWord("cvv", "cvc") || c.hasAny("security code")
		},
		generate: func(g *Generator, f *schemas.FormField) string { return g.digits(3) },
	},
	{
		name: "ssn",
		match: func(c *matchCtx) bool {
			return c.hasWord("ssn") || c.hasAny("social security")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			// Area 000 is never assigned.
			return "000-" + g.digits(2) + "-" + g.digits(4)
		},
	},

	// -- government and regional identifiers: shape-valid, checksum-invalid --
	{
		name: "tax-id",
		match: func(c *matchCtx) bool {
			return c.hasWord("pan", "tin", "ein") || c.hasAny("tax id", "taxpayer")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return g.letters(5) + g.digits(4) + g.letters(1)
		},
	},
	{
		name: "national-id",
		match: func(c *matchCtx) bool {
			return c.hasWord("passport", "aadhaar") || c.hasAny("national id", "id number", "identity number")
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return g.letters(2) + g.digits(7)
		},
	},

	// -- generic by kind --
	{
		name: "generic-choice",
		match: func(c *matchCtx) bool {
			return c.hasOptions() && c.kind(
				schemas.KindSelect, schemas.KindSelectMultiple,
				schemas.KindRadio, schemas.KindAriaRadioGroup,
			)
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			return g.pickOption(f.Options)
		},
	},
	{
		name: "generic-checkbox",
		match: func(c *matchCtx) bool {
			return c.field.Kind == schemas.KindCheckbox
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			if g.rng.Intn(2) == 0 {
				return "true"
			}
			return "false"
		},
	},
	{
		name: "generic-number",
		match: func(c *matchCtx) bool {
			return c.numeric()
		},
		generate: func(g *Generator, f *schemas.FormField) string {
			t := f.SearchText()
			switch {
			case strings.Contains(t, "year"):
				return itoa(g.intIn(1990, 2024))
			case strings.Contains(t, "month"):
				return itoa(g.intIn(1, 12))
			case strings.Contains(t, "day"):
				return itoa(g.intIn(1, 28))
			case strings.Contains(t, "quantity") || strings.Contains(t, "qty") || strings.Contains(t, "count"):
				return itoa(g.intIn(1, 10))
			case strings.Contains(t, "price") || strings.Contains(t, "amount") || strings.Contains(t, "cost"):
				return itoa(g.intIn(10, 500))
			}
			if f.HasMin && f.HasMax && f.Max > f.Min {
				return itoa(g.intIn(int(f.Min), int(f.Max)))
			}
			if f.HasMin {
				return itoa(g.intIn(int(f.Min), int(f.Min)+100))
			}
			if f.HasMax && f.Max >= 1 {
				return itoa(g.intIn(1, int(f.Max)))
			}
			return itoa(g.intIn(1, 100))
		},
	},

	// Fallback: a plausible sentence for anything unclassified.
	{
		name:  "default",
		match: func(c *matchCtx) bool { return true },
		generate: func(g *Generator, f *schemas.FormField) string {
			return g.pick(genericSentences)
		},
	},
}

// matchOption looks for an option whose text matches the drawn value, so a
// weighted draw like "Agree" selects the form's own "Agree" entry rather
// than injecting free text into a choice control.
func matchOption(options []string, value string) (string, bool) {
	lv := strings.ToLower(value)
	for _, o := range options {
		if strings.ToLower(strings.TrimSpace(o)) == lv {
			return o, true
		}
	}
	for _, o := range options {
		if strings.Contains(strings.ToLower(o), lv) {
			return o, true
		}
	}
	return "", false
}

// optionsLookYesNo reports whether the option set is a yes/no pair, which is
// the strongest signal a boolean question rule should handle the field.
func optionsLookYesNo(options []string) bool {
	if len(options) < 2 || len(options) > 3 {
		return false
	}
	var yes, no bool
	for _, o := range options {
		switch strings.ToLower(strings.TrimSpace(o)) {
		case "yes", "y":
			yes = true
		case "no", "n":
			no = true
		}
	}
	return yes && no
}
