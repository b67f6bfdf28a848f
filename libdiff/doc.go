// Package libdiff compares two save documents.
//
// # Usage
//
//	// Compute the differences between two trees
//	deltas := libdiff.Diff(oldNode, newNode)
//	for _, d := range deltas {
//	    fmt.Println(d)
//	}
//
// Differences are reported as a flat list of deltas, one per added,
// removed or changed leaf, addressed by document path. String value
// changes additionally carry a character-level rendering.
//
// # Related Packages
//
//   - github.com/clausewitz-format/go-clausewitz/ir - IR representation
package libdiff
