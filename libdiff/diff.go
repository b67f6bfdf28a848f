package libdiff

import (
	"fmt"
	"strconv"

	"github.com/clausewitz-format/go-clausewitz/debug"
	"github.com/clausewitz-format/go-clausewitz/encode"
	"github.com/clausewitz-format/go-clausewitz/ir"
)

type Op int

const (
	OpAdd Op = iota
	OpRemove
	OpChange
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpRemove:
		return "-"
	case OpChange:
		return "~"
	}
	return "?"
}

// Delta is one reported difference. From is nil for additions, To is
// nil for removals. Text carries the character-level rendering of a
// string change, empty otherwise.
type Delta struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
	Text string
}

func (d Delta) String() string {
	switch d.Op {
	case OpAdd:
		return fmt.Sprintf("+ %s = %s", d.Path, encode.MustString(d.To))
	case OpRemove:
		return fmt.Sprintf("- %s = %s", d.Path, encode.MustString(d.From))
	default:
		if d.Text != "" {
			return fmt.Sprintf("~ %s: %s", d.Path, d.Text)
		}
		return fmt.Sprintf("~ %s: %s -> %s", d.Path,
			encode.MustString(d.From), encode.MustString(d.To))
	}
}

// Diff returns the differences between two documents as a flat delta
// list, in document order of from with additions following at each
// scope. An empty result means the documents are structurally equal.
func Diff(from, to *ir.Node) []Delta {
	var acc []Delta
	diffNode("$", from, to, &acc)
	if debug.Diff() {
		debug.Logf("diff: %d deltas\n", len(acc))
	}
	return acc
}

func diffNode(path string, from, to *ir.Node, acc *[]Delta) {
	if from.Type != to.Type {
		*acc = append(*acc, Delta{Op: OpChange, Path: path, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(path, from, to, acc)
	case ir.ArrayType:
		diffArray(path, from, to, acc)
	case ir.StringType:
		if from.String != to.String {
			*acc = append(*acc, Delta{
				Op:   OpChange,
				Path: path,
				From: from,
				To:   to,
				Text: diffString(from.String, to.String),
			})
		}
	default:
		if !ir.Equal(from, to) {
			*acc = append(*acc, Delta{Op: OpChange, Path: path, From: from, To: to})
		}
	}
}

func diffObject(path string, from, to *ir.Node, acc *[]Delta) {
	for i := range from.Fields {
		key := from.Fields[i].String
		fv := from.Values[i]
		tv := ir.Get(to, key)
		if tv == nil {
			*acc = append(*acc, Delta{Op: OpRemove, Path: fieldPath(path, key), From: fv})
			continue
		}
		diffNode(fieldPath(path, key), fv, tv, acc)
	}
	for i := range to.Fields {
		key := to.Fields[i].String
		if ir.Get(from, key) == nil {
			*acc = append(*acc, Delta{Op: OpAdd, Path: fieldPath(path, key), To: to.Values[i]})
		}
	}
}

func diffArray(path string, from, to *ir.Node, acc *[]Delta) {
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		diffNode(path+"["+strconv.Itoa(i)+"]", from.Values[i], to.Values[i], acc)
	}
	for i := n; i < len(from.Values); i++ {
		*acc = append(*acc, Delta{Op: OpRemove, Path: path + "[" + strconv.Itoa(i) + "]", From: from.Values[i]})
	}
	for i := n; i < len(to.Values); i++ {
		*acc = append(*acc, Delta{Op: OpAdd, Path: path + "[" + strconv.Itoa(i) + "]", To: to.Values[i]})
	}
}

func fieldPath(path, key string) string {
	return path + "." + key
}
