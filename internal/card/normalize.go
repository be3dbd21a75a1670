package card

import (
	"encoding/json"
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Ingredients normalizes recipeIngredient. An array keeps its string
// entries, a string is split into lines. Entries are trimmed and blank ones
// dropped; order is kept.
func Ingredients(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, el := range t {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return compact(out)
	case []string:
		return compact(t)
	case string:
		return splitLines(t)
	default:
		return nil
	}
}

// Instructions normalizes recipeInstructions. Strings are split into lines.
// In an array, strings are kept, step objects contribute their text, and
// objects whose itemListElement is a string contribute that string. A single
// step object contributes its text.
func Instructions(v any) []string {
	switch t := v.(type) {
	case string:
		return splitLines(t)
	case []any:
		var out []string
		for _, el := range t {
			out = append(out, instructionStep(el)...)
		}
		return compact(out)
	case map[string]any:
		if s, ok := t["text"].(string); ok {
			return compact([]string{s})
		}
		return nil
	default:
		return nil
	}
}

func instructionStep(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case map[string]any:
		if s, ok := t["text"].(string); ok {
			return []string{s}
		}
		if s, ok := t["itemListElement"].(string); ok {
			return []string{s}
		}
	}
	return nil
}

// ImageURL resolves the image property to a single URL. Only the first
// element of an array is considered.
func ImageURL(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return nonEmpty(t)
	case []any:
		if len(t) == 0 {
			return "", false
		}
		switch first := t[0].(type) {
		case string:
			return nonEmpty(first)
		case map[string]any:
			return stringField(first, "url")
		}
		return "", false
	case map[string]any:
		return stringField(t, "url")
	default:
		return "", false
	}
}

// Author returns the author's display name. Several authors are joined with
// ", "; entries without a name are skipped.
func Author(v any) (string, bool) {
	switch t := v.(type) {
	case []any:
		var names []string
		for _, el := range t {
			if obj, ok := el.(map[string]any); ok {
				if name, ok := stringField(obj, "name"); ok {
					names = append(names, name)
				}
			}
		}
		return nonEmpty(strings.Join(names, ", "))
	case map[string]any:
		return stringField(t, "name")
	case string:
		return nonEmpty(t)
	default:
		return "", false
	}
}

// Yield returns recipeYield for display. Arrays are joined with ", ".
func Yield(v any) (string, bool) {
	switch t := v.(type) {
	case []any:
		var parts []string
		for _, el := range t {
			if s, ok := scalar(el); ok {
				parts = append(parts, s)
			}
		}
		return nonEmpty(strings.Join(parts, ", "))
	default:
		return scalar(v)
	}
}

// Text returns a plain string property such as name or description.
func Text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return nonEmpty(s)
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return nonEmpty(t)
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	if !ok {
		return "", false
	}
	return nonEmpty(s)
}

func nonEmpty(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func splitLines(s string) []string {
	return compact(lineBreak.Split(s, -1))
}

// compact trims every entry and drops the empty ones.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
