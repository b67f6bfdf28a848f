package clausewitz

import (
	"fmt"
	"io"
	"strings"

	"github.com/clausewitz-format/go-clausewitz/encode"
	"github.com/clausewitz-format/go-clausewitz/gomap"
	"github.com/clausewitz-format/go-clausewitz/ir"
	"github.com/clausewitz-format/go-clausewitz/parse"
)

// Tree wraps the root object of a parsed save document and exposes
// keyed, path-based and mutating access. A Tree is built in full by
// one parse call, mutable in place for as long as the caller holds
// it, and serialized by a pure read of its current state.
//
// A Tree is not internally synchronized; access each instance from
// one goroutine at a time. Independent trees share no state.
type Tree struct {
	node *ir.Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{node: ir.NewObject()}
}

// Parse parses save-file text into a tree.
func Parse(d []byte, opts ...parse.ParseOption) (*Tree, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Tree{node: node}, nil
}

func ParseString(s string, opts ...parse.ParseOption) (*Tree, error) {
	return Parse([]byte(s), opts...)
}

// FromNode wraps an existing object node.
func FromNode(node *ir.Node) (*Tree, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("tree root must be an object")
	}
	return &Tree{node: node}, nil
}

// Node returns the underlying root node.
func (t *Tree) Node() *ir.Node {
	return t.node
}

// Get returns the value at key, or an error wrapping ir.ErrNotFound
// when the key is absent.
func (t *Tree) Get(key string) (*ir.Node, error) {
	if n := ir.Get(t.node, key); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %q", ir.ErrNotFound, key)
}

// Lookup walks a dot-separated path of keys and reports whether every
// segment resolved. Only object nodes are traversed.
func (t *Tree) Lookup(path string) (*ir.Node, bool) {
	cur := t.node
	for _, part := range strings.Split(path, ".") {
		if cur.Type != ir.ObjectType {
			return nil, false
		}
		next := ir.Get(cur, part)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Path resolves a dot-separated path and returns the plain Go value
// at its end, or def when any segment is missing. Path never fails.
func (t *Tree) Path(path string, def any) any {
	n, ok := t.Lookup(path)
	if !ok {
		return def
	}
	return gomap.ToGo(n)
}

// Set replaces or inserts the value at key in the root scope. Raw Go
// values (maps, slices, scalars, structs) are auto-wrapped into the
// tree representation; *ir.Node values are attached as is.
func (t *Tree) Set(key string, v any) error {
	node, err := gomap.ToIR(v)
	if err != nil {
		return err
	}
	t.node.Set(key, node)
	return nil
}

// Delete removes key from the root scope, reporting whether it was
// present.
func (t *Tree) Delete(key string) bool {
	return t.node.Delete(key)
}

func (t *Tree) Keys() []string {
	return t.node.Keys()
}

func (t *Tree) Len() int {
	return len(t.node.Fields)
}

// Export strips tree wrapping and returns the plain nested Go value
// (objects as map[string]any, arrays as []any, scalars as
// primitives), the input for comparison tooling. Key order is carried
// by the tree itself, not by the exported maps.
func (t *Tree) Export() any {
	return gomap.ToGo(t.node)
}

// Serialize writes the tree as save-file text. It is total for any
// valid tree, does not mutate it, and may be called repeatedly.
func (t *Tree) Serialize(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(t.node, w, opts...)
}

func (t *Tree) String() string {
	return encode.MustString(t.node)
}
