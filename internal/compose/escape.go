// Package compose renders individual resume sections to self-contained HTML
// fragments. Composition is pure: identical inputs produce identical markup.
package compose

import "strings"

// EscapeHTML escapes characters with special meaning in HTML text and
// attribute contexts. Every data value crosses through here exactly once, at
// the point it enters markup.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
