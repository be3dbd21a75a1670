package jsonld

import (
	"github.com/pageza/recipecard/internal/types"
)

// Extractor pulls a recipe out of raw HTML.
type Extractor interface {
	// Extract returns the recipe and true, or nil and false when the page
	// has no Recipe node.
	Extract(html string) (types.Recipe, bool)
}

// RecipeExtractor is the pattern-scanning Extractor.
type RecipeExtractor struct{}

func (RecipeExtractor) Extract(html string) (types.Recipe, bool) {
	return FindRecipe(html)
}

// Candidates returns every JSON-LD object in the page, in document order and
// then graph order. Blocks that are not valid JSON are skipped.
func Candidates(html string) []Node {
	var nodes []Node
	for _, block := range Blocks(html) {
		v, err := Parse(block)
		if err != nil {
			continue
		}
		nodes = append(nodes, Flatten(v)...)
	}
	return nodes
}

// FindRecipe returns the first Recipe node in the page. When several nodes
// qualify, the earliest in document-then-graph order wins.
func FindRecipe(html string) (types.Recipe, bool) {
	for _, n := range Candidates(html) {
		if IsRecipe(n) {
			return types.Recipe(n), true
		}
	}
	return nil, false
}
