// internal/selector/selector_test.go
package selector

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parse builds a document and returns it with the first node matching query.
func parse(t *testing.T, body, query string) (*goquery.Document, *html.Node) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	sel := doc.Find(query)
	require.Positive(t, sel.Length(), "test fixture query %q matched nothing", query)
	return doc, sel.Get(0)
}

func TestGenerate_PrefersID(t *testing.T) {
	doc, node := parse(t, `<form><input id="email" name="email" class="fancy"></form>`, "input")

	loc, err := Generate(doc, node)
	require.NoError(t, err)
	assert.Equal(t, "#email", loc)
}

func TestGenerate_EscapesIDCharacters(t *testing.T) {
	doc, node := parse(t, `<input id="user:name">`, "input")

	loc, err := Generate(doc, node)
	require.NoError(t, err)
	assert.Equal(t, `#user\:name`, loc)
}

func TestGenerate_NameAttribute(t *testing.T) {
	doc, node := parse(t, `<form><input name="phone"><input name="other"></form>`, `input[name="phone"]`)

	loc, err := Generate(doc, node)
	require.NoError(t, err)
	assert.Equal(t, `input[name="phone"]`, loc)
	assert.True(t, Verify(doc, loc, node))
}

func TestGenerate_NameNotUniqueFallsThrough(t *testing.T) {
	// Radio groups share a name; the name strategy must be rejected and the
	// data attribute used instead.
	body := `<div>
		<input type="radio" name="color" data-choice="red">
		<input type="radio" name="color" data-choice="blue">
	</div>`
	doc, node := parse(t, body, `input[data-choice="red"]`)

	loc, err := Generate(doc, node)
	require.NoError(t, err)
	assert.Equal(t, `input[data-choice="red"]`, loc)
}

func TestGenerate_ClassStrategy(t *testing.T) {
	doc, node := parse(t, `<div><input class="subscribe-box wide"><input class="other"></div>`, "input.subscribe-box")

	loc, err := Generate(doc, node)
	require.NoError(t, err)
	assert.Equal(t, "input.subscribe-box", loc)
}

func TestGenerate_PositionalFallback(t *testing.T) {
	body := `<div><input type="text"><input type="text"><input type="text"></div>`
	doc, _ := parse(t, body, "input")
	second := doc.Find("input").Get(1)

	loc, err := Generate(doc, second)
	require.NoError(t, err)
	assert.Equal(t, "div > input:nth-of-type(2)", loc)
	assert.True(t, Verify(doc, loc, second))
}

func TestGenerate_PositionalOmitsIndexForOnlyChild(t *testing.T) {
	doc, node := parse(t, `<section><textarea></textarea></section>`, "textarea")

	loc, err := Generate(doc, node)
	require.NoError(t, err)
	assert.Equal(t, "section > textarea", loc)
}

func TestVerify_RejectsWrongElement(t *testing.T) {
	doc, _ := parse(t, `<div><input name="a"><input name="b"></div>`, "input")
	other := doc.Find(`input[name="b"]`).Get(0)

	assert.False(t, Verify(doc, `input[name="a"]`, other))
}

func TestGenerate_NilNode(t *testing.T) {
	doc, _ := parse(t, `<div><input></div>`, "input")

	_, err := Generate(doc, nil)
	assert.ErrorIs(t, err, ErrNoSelector)
}
