package types

import "encoding/json"

// Recipe is a schema.org Recipe node exactly as it appeared in the page's
// JSON-LD. Fields are loosely typed: the same property can arrive as a
// string, an array or an object depending on the publisher's markup.
// Numbers are kept as json.Number.
type Recipe map[string]any

// Name returns the recipe name when it is a string.
func (r Recipe) Name() string {
	s, _ := r["name"].(string)
	return s
}

// MarshalJSON keeps a nil Recipe encoding as an empty object.
func (r Recipe) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(r))
}
