package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/clausewitz-format/go-clausewitz/ir"
	"github.com/clausewitz-format/go-clausewitz/token"
)

type EncState struct {
	depth int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node as save-file text: one key=value per line, one
// tab per nesting depth, arrays written with synthetic positional
// keys 0, 1, ... so the numeric-key convention survives a re-parse.
// Encode is total for any valid tree and does not mutate it.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		for i := range node.Fields {
			if err := encodeEntry(node.Fields[i].String, node.Values[i], w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		for i, elt := range node.Values {
			if err := encodeEntry(strconv.Itoa(i), elt, w, es); err != nil {
				return err
			}
		}
		return nil
	default:
		// bare scalar, used by debug and diff output
		return writeString(w, applyColor(es, node.Type, ValueColor, scalarText(node))+"\n")
	}
}

func encodeEntry(key string, val *ir.Node, w io.Writer, es *EncState) error {
	ind := strings.Repeat("\t", es.depth)
	k := applyColor(es, val.Type, FieldColor, key)
	switch val.Type {
	case ir.ObjectType, ir.ArrayType:
		if err := writeString(w, ind+k+applyColor(es, val.Type, SepColor, "={")+"\n"); err != nil {
			return err
		}
		es.depth++
		if err := encode(val, w, es); err != nil {
			return err
		}
		es.depth--
		return writeString(w, ind+applyColor(es, val.Type, SepColor, "}")+"\n")
	default:
		v := applyColor(es, val.Type, ValueColor, scalarText(val))
		return writeString(w, ind+k+"="+v+"\n")
	}
}

// scalarText renders a scalar in its wire form. Quoting is re-derived
// from content: strings are quoted iff empty or containing
// whitespace, '{', '}' or '='.
func scalarText(n *ir.Node) string {
	switch n.Type {
	case ir.BoolType:
		if n.Bool {
			return "yes"
		}
		return "no"
	case ir.NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		s := strconv.FormatFloat(*n.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			// keep the float mark so a re-parse coerces back to float
			s += ".0"
		}
		return s
	default:
		if token.NeedsQuote(n.String) {
			return token.Quote(n.String)
		}
		return n.String
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
