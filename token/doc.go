// Package token prepares raw save-file text for the block parser.
//
// It splits input into trimmed, numbered lines (dropping blank lines
// and full-line comments), coerces raw value tokens into typed scalar
// nodes, and decides string quoting for the encoder.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/parse - Parse lines to IR
//   - github.com/clausewitz-format/go-clausewitz/encode - Encode IR to text
package token
