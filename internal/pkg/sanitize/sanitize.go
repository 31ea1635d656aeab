// Package sanitize neutralizes HTML-significant characters in inbound and
// outbound data. It is defense in depth, not validation: values are never
// rejected, only escaped and bounded.
package sanitize

import "strings"

// maxLen bounds any single string value after escaping.
const maxLen = 1000

var escaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// String escapes HTML-significant characters, truncates the result and trims
// surrounding whitespace. Ampersands are left alone, so sanitizing an
// already-sanitized string is a no-op.
func String(s string) string {
	s = escaper.Replace(s)
	if len(s) > maxLen {
		runes := []rune(s)
		if len(runes) > maxLen {
			s = string(runes[:maxLen])
		}
	}
	return strings.TrimSpace(s)
}

// Strings sanitizes every element of a string slice, preserving order.
// A nil slice stays nil.
func Strings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}

// Value recursively sanitizes a decoded JSON value. Strings are escaped,
// objects and arrays are walked element by element, and numbers, booleans
// and null pass through unchanged.
func Value(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Value(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Value(val)
		}
		return out
	default:
		return v
	}
}
