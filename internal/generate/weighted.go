// internal/generate/weighted.go
package generate

// weightedChoice pairs a candidate value with its selection weight in
// percent. Draws use cumulative-probability selection so the declared
// proportions hold over many calls.
type weightedChoice struct {
	value  string
	weight int
}

// pickWeighted draws one value according to the cumulative weights. Weights
// need not sum to 100; the draw is over their actual total.
func (g *Generator) pickWeighted(choices []weightedChoice) string {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	if total <= 0 {
		return ""
	}
	roll := g.rng.Intn(total)
	acc := 0
	for _, c := range choices {
		acc += c.weight
		if roll < acc {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}
