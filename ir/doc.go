// Package ir provides the in-memory representation of Clausewitz
// save documents.
//
// # Overview
//
// Every parsed document is a tree of ir.Node values. The root of a
// parsed document is always an object. The IR is purely semantic: it
// carries no source positions and no original quoting, so quoting is
// re-derived from content at encode time.
//
// # Node Structure
//
// A Node represents a single value:
//
//   - Scalar types: bool, number (int64 or float64), string
//   - Composite types: object (ordered key-value pairs), array
//
// The IR works as a recursive tagged union structure, where values
// are placed in fields depending on the node type. Objects preserve
// the order in which keys were first assigned; assigning an existing
// key overwrites its value in place.
//
// Each node maintains parent-child relationships, allowing navigation
// through the tree. Ownership is strictly hierarchical and the tree
// is acyclic.
//
// A tree is safe for use by one goroutine at a time; independent
// trees need no synchronization.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/parse - Parse text to IR
//   - github.com/clausewitz-format/go-clausewitz/encode - Encode IR to text
//   - github.com/clausewitz-format/go-clausewitz/gomap - Convert IR to and from Go values
package ir
