package clausewitz

import (
	"os"

	"github.com/clausewitz-format/go-clausewitz/encode"
	"github.com/clausewitz-format/go-clausewitz/parse"
)

// ParseFile reads and parses a save file. A leading byte-order mark
// is tolerated. I/O errors pass through unwrapped.
func ParseFile(path string, opts ...parse.ParseOption) (*Tree, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// WriteFile serializes the tree to path.
func (t *Tree) WriteFile(path string, opts ...encode.EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Serialize(f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
