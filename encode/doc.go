// Package encode encodes IR nodes to save-file text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with terminal colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Re-parsing encoded output reproduces an equivalent tree, modulo the
// scalar coercion quirks the format defines.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/ir - IR representation
//   - github.com/clausewitz-format/go-clausewitz/parse - Parse text to IR
package encode
