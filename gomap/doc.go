// Package gomap converts between IR nodes and Go values.
//
// # Usage
//
//	// Convert a Go value to IR
//	node, err := gomap.ToIR(map[string]any{"tag": "IRQ"})
//
//	// Decode IR into a Go struct
//	type Country struct {
//	    Tag      string
//	    Treasury float64
//	}
//	var c Country
//	err := gomap.FromIR(node, &c)
//
//	// Strip IR wrapping into plain nested Go values
//	v := gomap.ToGo(node)
//
// The package handles structs, maps, slices and primitives. It backs
// the auto-wrapping rule of the tree model: raw Go values assigned
// into a tree become IR nodes through ToIR.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/ir - IR representation
package gomap
