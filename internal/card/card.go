// Package card turns a loosely-typed recipe record into display-ready
// strings for the recipe card.
//
// Each normalizer dispatches on the shape of the raw value (absent, string,
// array or object) and returns one canonical shape. Absent and empty values
// both render as Placeholder.
package card

import (
	"github.com/pageza/recipecard/internal/types"
)

// Placeholder is shown wherever a field has no value.
const Placeholder = "—"

// Card is the display model of a recipe.
type Card struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Yield        string   `json:"yield"`
	PrepTime     string   `json:"prepTime"`
	CookTime     string   `json:"cookTime"`
	TotalTime    string   `json:"totalTime"`
	Author       string   `json:"author"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	SourceURL    string   `json:"sourceUrl,omitempty"`
}

// Build normalizes every card field of r. sourceURL is the page the recipe
// came from.
func Build(r types.Recipe, sourceURL string) Card {
	c := Card{
		Name:         display(Text(r["name"])),
		Description:  display(Text(r["description"])),
		Yield:        display(Yield(r["recipeYield"])),
		PrepTime:     display(Duration(r["prepTime"])),
		CookTime:     display(Duration(r["cookTime"])),
		TotalTime:    display(Duration(r["totalTime"])),
		Author:       display(Author(r["author"])),
		Ingredients:  Ingredients(r["recipeIngredient"]),
		Instructions: Instructions(r["recipeInstructions"]),
		SourceURL:    sourceURL,
	}
	if url, ok := ImageURL(r["image"]); ok {
		c.ImageURL = url
	}
	return c
}

func display(s string, ok bool) string {
	if !ok {
		return Placeholder
	}
	return s
}
