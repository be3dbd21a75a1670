package jsonld

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// RecipeType is the only @type value treated as a recipe. Matching is exact
// and case-sensitive.
const RecipeType = "Recipe"

// Node is a JSON-LD object.
type Node = map[string]any

var errTrailingData = errors.New("jsonld: trailing data after value")

// Parse decodes one block into a generic JSON value. Numbers are kept as
// json.Number so they re-encode unchanged.
func Parse(block string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(block))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}

// Flatten turns a parsed value into the ordered list of objects it holds.
// Arrays are flattened element by element. An object yields itself followed
// by the flattened members of its @graph array, at any depth. Scalars yield
// nothing.
func Flatten(v any) []Node {
	switch t := v.(type) {
	case []any:
		var out []Node
		for _, el := range t {
			out = append(out, Flatten(el)...)
		}
		return out
	case map[string]any:
		out := []Node{t}
		if graph, ok := t["@graph"].([]any); ok {
			for _, el := range graph {
				out = append(out, Flatten(el)...)
			}
		}
		return out
	default:
		return nil
	}
}

// IsRecipe reports whether the node's @type is "Recipe" or an array that
// contains "Recipe".
func IsRecipe(n Node) bool {
	switch t := n["@type"].(type) {
	case string:
		return t == RecipeType
	case []any:
		for _, el := range t {
			if s, ok := el.(string); ok && s == RecipeType {
				return true
			}
		}
	}
	return false
}
