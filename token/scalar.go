package token

import (
	"strconv"
	"strings"

	"github.com/clausewitz-format/go-clausewitz/ir"
)

// Coerce converts a raw value token into a typed scalar node. The
// precedence is fixed and never fails:
//
//  1. token contains '.' and parses as a decimal number -> float
//  2. token parses entirely as a base-10 integer -> integer
//  3. token equals "yes"/"no" case-insensitively -> bool
//  4. anything else -> string, surrounding quotes stripped
//
// An all-digit token therefore always becomes a number, even when the
// source meant it as an identifier. Documents depend on this quirk to
// round-trip; do not add lookahead here.
func Coerce(raw string) *ir.Node {
	raw = Unquote(raw)
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return ir.FromFloat(f)
		}
	} else if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	switch strings.ToLower(raw) {
	case "yes":
		return ir.FromBool(true)
	case "no":
		return ir.FromBool(false)
	}
	return ir.FromString(raw)
}

// Unquote strips one pair of surrounding double quotes, if present.
func Unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
