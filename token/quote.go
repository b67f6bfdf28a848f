package token

import (
	"strings"
	"unicode"
)

// NeedsQuote reports whether a string value must be written quoted:
// empty strings and strings containing whitespace, '{', '}' or '='.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, "{}=") {
		return true
	}
	return strings.ContainsFunc(v, unicode.IsSpace)
}

// Quote wraps v in double quotes. The format defines no escaping
// inside quoted strings, so none is applied.
func Quote(v string) string {
	return `"` + v + `"`
}
