// internal/extract/clean.go
package extract

import (
	"strings"
	"unicode"
)

// maxLabelLen caps cleaned label/option text. Anything longer is question
// prose, not a label.
const maxLabelLen = 200

// CleanText normalizes label/option text scraped from markup: newlines and
// runs of whitespace collapse to single spaces, trailing '*' and ':' markers
// are stripped, and the result is trimmed and capped at maxLabelLen runes.
func CleanText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, " *:")
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxLabelLen {
		s = strings.TrimSpace(string(runes[:maxLabelLen]))
	}
	return s
}

// HumanizeAttr turns a name or id attribute into readable words:
// "firstName" and "first_name" both become "First Name".
func HumanizeAttr(attr string) string {
	if attr == "" {
		return ""
	}

	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(attr)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == '[' || r == ']':
			flush()
		case unicode.IsUpper(r):
			// New word at a lower→upper boundary.
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
