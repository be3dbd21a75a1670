package jsonld

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(blocks ...string) string {
	html := "<html><head><title>x</title>"
	for _, b := range blocks {
		html += `<script type="application/ld+json">` + b + `</script>`
	}
	return html + "</head><body><p>hello</p></body></html>"
}

func TestBlocks(t *testing.T) {
	html := `
<script>var a = 1;</script>
<SCRIPT TYPE='Application/LD+JSON'>
  {"@type":"Thing"}
</SCRIPT >
<script type="application/ld+json">   </script>
<script data-type="application/ld+json">{"skip":true}</script>
<script type=application/ld+json>{"@type":"Recipe"}</script>
<script type="application/ld+json+extra">{"skip":true}</script>
<div <<< broken markup
<script async type="application/ld+json" id="schema">[1]</script>`

	assert.Equal(t, []string{`{"@type":"Thing"}`, `{"@type":"Recipe"}`, `[1]`}, Blocks(html))
}

func TestBlocksStrayOpeningTag(t *testing.T) {
	html := `<!-- legacy <script src="old.js"> removed -->` +
		`<script type="application/ld+json">{"@type":"Recipe","name":"Soup"}</script>`

	assert.Equal(t, []string{`{"@type":"Recipe","name":"Soup"}`}, Blocks(html))

	r, ok := FindRecipe(html)
	require.True(t, ok)
	assert.Equal(t, "Soup", r.Name())
}

func TestBlocksQuotedAngleBracket(t *testing.T) {
	html := `<script data-x="a>b" type="application/ld+json">{"@type":"Recipe","name":"Soup"}</script>` +
		`<script data-note='type="application/ld+json"'>{"skip":true}</script>`

	assert.Equal(t, []string{`{"@type":"Recipe","name":"Soup"}`}, Blocks(html))

	r, ok := FindRecipe(html)
	require.True(t, ok)
	assert.Equal(t, "Soup", r.Name())
}

func TestBlocksUnterminated(t *testing.T) {
	html := `<script type="application/ld+json">{"@type":"Recipe"}</script>` +
		`<script type="application/ld+json">{"@type":"Recipe","name":"cut off`

	assert.Equal(t, []string{`{"@type":"Recipe"}`}, Blocks(html))
}

func TestBlocksNone(t *testing.T) {
	assert.Empty(t, Blocks("<html><body>no scripts</body></html>"))
	assert.Empty(t, Blocks(""))
}

func TestParse(t *testing.T) {
	v, err := Parse(`{"recipeYield": 4}`)
	require.NoError(t, err)
	assert.Equal(t, json.Number("4"), v.(map[string]any)["recipeYield"])

	_, err = Parse(`{"a":1} {"b":2}`)
	assert.Error(t, err)

	_, err = Parse(`{"a":`)
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	inner := map[string]any{"@type": "Recipe", "name": "deep"}
	middle := map[string]any{"@type": "WebPage", "@graph": []any{inner}}
	outer := map[string]any{"@graph": []any{"scalar", middle, map[string]any{"@type": "Person"}}}

	nodes := Flatten([]any{outer, json.Number("3"), []any{map[string]any{"@type": "Organization"}}})

	require.Len(t, nodes, 5)
	assert.Equal(t, outer, nodes[0])
	assert.Equal(t, middle, nodes[1])
	assert.Equal(t, inner, nodes[2])
	assert.Equal(t, "Person", nodes[3]["@type"])
	assert.Equal(t, "Organization", nodes[4]["@type"])

	assert.Empty(t, Flatten("text"))
	assert.Empty(t, Flatten(nil))
}

func TestFlattenGraphNotArray(t *testing.T) {
	n := map[string]any{"@graph": map[string]any{"@type": "Recipe"}}
	assert.Equal(t, []Node{n}, Flatten(n))
}

func TestIsRecipe(t *testing.T) {
	assert.True(t, IsRecipe(Node{"@type": "Recipe"}))
	assert.True(t, IsRecipe(Node{"@type": []any{"NewsArticle", "Recipe"}}))
	assert.False(t, IsRecipe(Node{"@type": "recipe"}))
	assert.False(t, IsRecipe(Node{"@type": "schema:Recipe"}))
	assert.False(t, IsRecipe(Node{"@type": []any{json.Number("1"), "HowTo"}}))
	assert.False(t, IsRecipe(Node{"name": "Recipe"}))
}

func TestFindRecipeNoBlocks(t *testing.T) {
	r, ok := FindRecipe("<html><body><script>{}</script></body></html>")
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestFindRecipeAllMalformed(t *testing.T) {
	r, ok := FindRecipe(page(`{"@type":"Recipe",}`, `not json`, `{"@type": "Recipe"`))
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestFindRecipeNestedGraph(t *testing.T) {
	html := page(`{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebSite", "name": "Site"},
			{"@type": "WebPage", "@graph": [
				{"@type": ["Recipe"], "name": "Two levels down"}
			]}
		]
	}`)

	r, ok := FindRecipe(html)
	require.True(t, ok)
	assert.Equal(t, "Two levels down", r.Name())
}

func TestFindRecipeSecondBlock(t *testing.T) {
	html := page(`{"@type":"Organization","name":"Publisher"}`, `[{"@type":"Recipe","name":"Soup"}]`)

	r, ok := FindRecipe(html)
	require.True(t, ok)
	assert.Equal(t, "Soup", r.Name())
}

func TestFindRecipeSkipsMalformedBlock(t *testing.T) {
	html := page(`{"@type":"Recipe","name":"broken"`, `{"@type":"Recipe","name":"Stew"}`)

	r, ok := FindRecipe(html)
	require.True(t, ok)
	assert.Equal(t, "Stew", r.Name())
}

func TestFindRecipeFirstWins(t *testing.T) {
	html := page(
		`{"@graph":[{"@type":"Recipe","name":"First"},{"@type":"Recipe","name":"Second"}]}`,
		`{"@type":"Recipe","name":"Third"}`,
	)

	r, ok := FindRecipe(html)
	require.True(t, ok)
	assert.Equal(t, "First", r.Name())
}

func TestRecipeExtractor(t *testing.T) {
	var ex Extractor = RecipeExtractor{}
	r, ok := ex.Extract(page(`{"@type":"Recipe","name":"Pie","recipeYield":6}`))
	require.True(t, ok)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"Recipe","name":"Pie","recipeYield":6}`, string(out))
}
