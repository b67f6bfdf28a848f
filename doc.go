// Package clausewitz reads and writes the plain-text save-file
// format used by Clausewitz-style grand-strategy games: an ordered
// sequence of key=value assignments where a value is a scalar, a
// nested block, or a block encoding a positionally-indexed list.
//
// # Usage
//
//	tree, err := clausewitz.ParseFile("autosave.eu4")
//	if err != nil {
//	    return err
//	}
//	name := tree.Path("country.ruler.name", "unknown")
//	if err := tree.Set("treasury", 1000.5); err != nil {
//	    return err
//	}
//	err = tree.WriteFile("autosave.eu4")
//
// The parser is agnostic to what keys mean; it handles syntax and
// typing only. Parsing and serializing are single-pass, synchronous
// and deterministic.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/ir - tree representation
//   - github.com/clausewitz-format/go-clausewitz/parse - parser
//   - github.com/clausewitz-format/go-clausewitz/encode - serializer
//   - github.com/clausewitz-format/go-clausewitz/libdiff - save comparison
//   - github.com/clausewitz-format/go-clausewitz/gomap - Go value conversion
package clausewitz
