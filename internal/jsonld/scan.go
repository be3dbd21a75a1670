// Package jsonld finds schema.org structured data embedded in HTML pages and
// selects the Recipe node from it.
//
// Script blocks are located with a tolerant pattern scan rather than an HTML
// parser, so broken markup around the blocks does not matter.
package jsonld

import (
	"regexp"
	"strings"
)

// MediaType is the script type that marks a JSON-LD block.
const MediaType = "application/ld+json"

// Pre-compiled regular expressions for script scanning. Quoted attribute
// values may contain '>'.
var (
	scriptOpen  = regexp.MustCompile(`(?is)<script\b((?:[^>"']|"[^"]*"|'[^']*')*)>`)
	scriptClose = regexp.MustCompile(`(?i)</script\s*>`)
	attribute   = regexp.MustCompile(`(?s)([^\s"'=/>]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+)))?`)
)

// Blocks returns the trimmed, non-empty contents of every JSON-LD script
// element in document order.
//
// Only opening tags are matched. A JSON-LD block runs to the next closing
// tag; after any other opening tag scanning resumes right behind it, so a
// stray or unterminated <script cannot swallow the blocks that follow.
func Blocks(html string) []string {
	var blocks []string
	pos := 0
	for pos < len(html) {
		loc := scriptOpen.FindStringSubmatchIndex(html[pos:])
		if loc == nil {
			break
		}
		attrs := html[pos+loc[2] : pos+loc[3]]
		pos += loc[1]
		if !isJSONLD(attrs) {
			continue
		}

		end := scriptClose.FindStringIndex(html[pos:])
		if end == nil {
			break
		}
		body := strings.TrimSpace(html[pos : pos+end[0]])
		pos += end[1]
		if body != "" {
			blocks = append(blocks, body)
		}
	}
	return blocks
}

// isJSONLD reports whether a script tag's attribute text declares the JSON-LD
// media type. The first type attribute counts.
func isJSONLD(attrs string) bool {
	for _, m := range attribute.FindAllStringSubmatch(attrs, -1) {
		if !strings.EqualFold(m[1], "type") {
			continue
		}
		value := m[2] + m[3] + m[4]
		return strings.EqualFold(strings.TrimSpace(value), MediaType)
	}
	return false
}
