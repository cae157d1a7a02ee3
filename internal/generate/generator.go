// internal/generate/generator.go

// Package generate classifies a form field by semantic purpose and produces
// a plausible synthetic value for it. Classification is an ordered table of
// keyword rules; order encodes priority, with survey-specific rules checked
// before generic field-name rules. Randomness comes from an injectable
// source so tests can fix the seed and assert exact distributions.
package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

// Generator turns classified fields into values.
type Generator struct {
	rng *rand.Rand
	log *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects a deterministic random source. Production callers omit
// this and get a time-seeded source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// New creates a Generator.
func New(logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: logger.Named("generator"),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// matchCtx is the normalized view of a field the rule predicates run over.
type matchCtx struct {
	field *schemas.FormField
	text  string
	words map[string]bool
}

// rule pairs a predicate with a value producer. The table in rules.go is
// evaluated in order; the first match wins.
type rule struct {
	name     string
	match    func(c *matchCtx) bool
	generate func(g *Generator, f *schemas.FormField) string
}

// Generate classifies f and returns a synthetic value for it. The final
// table entry always matches, so the result is never empty for a field with
// a generatable kind.
func (g *Generator) Generate(f *schemas.FormField) string {
	c := &matchCtx{
		field: f,
		text:  f.SearchText(),
		words: tokenize(f.SearchText()),
	}
	for i := range ruleTable {
		r := &ruleTable[i]
		if !r.match(c) {
			continue
		}
		v := g.constrainToOptions(f, r.generate(g, f))
		g.log.Debug("rule matched",
			zap.String("rule", r.name),
			zap.String("kind", string(f.Kind)),
			zap.String("locator", f.Locator),
		)
		return v
	}
	// Unreachable: the fallback rule matches everything.
	return g.pick(genericSentences)
}

// constrainToOptions snaps a generated value to the field's option list for
// choice controls. Free text cannot be written into a select or radio group,
// so a value with no matching option is replaced by a policy pick.
func (g *Generator) constrainToOptions(f *schemas.FormField, v string) string {
	switch f.Kind {
	case schemas.KindSelect, schemas.KindSelectMultiple,
		schemas.KindRadio, schemas.KindAriaRadioGroup:
	default:
		return v
	}
	if len(f.Options) == 0 {
		return v
	}
	if m, ok := matchOption(f.Options, v); ok {
		return m
	}
	return g.pickOption(f.Options)
}

// -- match helpers --

// tokenize splits text into a lowercase word set. Word-boundary matching
// keeps short keywords like "age" from firing inside "page" or "language".
func tokenize(text string) map[string]bool {
	words := map[string]bool{}
	cur := strings.Builder{}
	flush := func() {
		if cur.Len() > 0 {
			words[cur.String()] = true
			cur.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return words
}

func (c *matchCtx) hasAny(substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(c.text, s) {
			return true
		}
	}
	return false
}

func (c *matchCtx) hasWord(words ...string) bool {
	for _, w := range words {
		if c.words[w] {
			return true
		}
	}
	return false
}

func (c *matchCtx) kind(kinds ...schemas.FieldKind) bool {
	for _, k := range kinds {
		if c.field.Kind == k {
			return true
		}
	}
	return false
}

func (c *matchCtx) hasOptions() bool { return len(c.field.Options) > 0 }

func (c *matchCtx) numeric() bool {
	return c.field.Kind == schemas.KindNumber || c.field.Kind == schemas.KindRange
}

// -- value helpers --

// intIn returns a uniform integer in [lo, hi] inclusive.
func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + g.rng.Intn(10))
	}
	return string(b)
}

func (g *Generator) letters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + g.rng.Intn(26))
	}
	return string(b)
}

func (g *Generator) fullName() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *Generator) username() string {
	return strings.ToLower(g.pick(firstNames)) + g.digits(g.intIn(2, 4))
}

func (g *Generator) email() string {
	return fmt.Sprintf("%s.%s%s@%s",
		strings.ToLower(g.pick(firstNames)),
		strings.ToLower(g.pick(lastNames)),
		g.digits(2),
		g.pick(emailDomains),
	)
}

// phone is ten bare digits with no separators; the first digit stays
// non-zero so the value survives numeric coercion intact.
func (g *Generator) phone() string {
	return fmt.Sprintf("%d%s", g.intIn(2, 9), g.digits(9))
}

func (g *Generator) companyName() string {
	return g.pick(companyPrefixes) + " " + g.pick(companySuffixes)
}

// date renders YYYY-MM-DD with the year in [yearLo, yearHi]. Days cap at 28
// so the result is valid in every month.
func (g *Generator) date(yearLo, yearHi int) string {
	return fmt.Sprintf("%04d-%02d-%02d", g.intIn(yearLo, yearHi), g.intIn(1, 12), g.intIn(1, 28))
}

// timeOfDay renders HH:MM within working hours.
func (g *Generator) timeOfDay() string {
	return fmt.Sprintf("%02d:%02d", g.intIn(8, 18), g.intIn(0, 59))
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }
