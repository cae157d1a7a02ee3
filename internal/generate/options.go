// internal/generate/options.go
package generate

import "strings"

// placeholderCues mark a first option that is a prompt rather than an
// answer ("Select...", "-- Choose one --").
var placeholderCues = []string{"select", "choose", "--"}

// pickOption implements the shared option-picking policy: blank entries are
// dropped, a placeholder-looking first option is excluded unless it is the
// only one, and the pick is uniform over what remains.
func (g *Generator) pickOption(options []string) string {
	var cands []string
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			cands = append(cands, o)
		}
	}
	if len(cands) == 0 {
		return ""
	}
	if len(cands) > 1 && looksLikePlaceholder(cands[0]) {
		cands = cands[1:]
	}
	return cands[g.rng.Intn(len(cands))]
}

// looksLikePlaceholder reports whether an option's text suggests a prompt:
// too short to be an answer, or carrying a select/choose cue.
func looksLikePlaceholder(opt string) bool {
	trimmed := strings.TrimSpace(opt)
	if len([]rune(trimmed)) < 2 {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, cue := range placeholderCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
