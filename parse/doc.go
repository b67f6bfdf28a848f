// Package parse parses Clausewitz save-file text into IR nodes.
//
// # Usage
//
//	// Parse save text
//	node, err := parse.Parse([]byte("name=\"Iraq\"\ntag=IRQ\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString("treasury=12.5")
//
//	// Reject documents whose braces close past the root scope
//	node, err := parse.Parse(data, parse.Strict())
//
// The root of any parsed document is an object. Blocks whose first
// key is numeric parse as arrays; everything else parses as nested
// objects.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/ir - IR representation
//   - github.com/clausewitz-format/go-clausewitz/encode - Encode IR to text
//   - github.com/clausewitz-format/go-clausewitz/token - Line and scalar handling
package parse
