package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is the recursive tagged variant behind every parsed save
// document. Scalars occupy String/Bool/Int64/Float64 according to
// Type; objects keep Fields and Values as parallel slices so key
// insertion order survives a parse/serialize cycle.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.Values = make([]*Node, len(n.Values))
	dst.Fields = make([]*Node, len(n.Fields))
	for i, nv := range n.Values {
		dstI := &Node{}
		nv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nv.ParentField
		dst.Values[i] = dstI
	}
	for i, nf := range n.Fields {
		dstI := &Node{}
		nf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nf.String
		dst.Fields[i] = dstI
	}
	dst.String = n.String
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	dst.Bool = n.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// NewObject returns an empty mapping node.
func NewObject() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

// FromKeyValsAt builds an object from kvs in order, applying the
// last-write-wins rule for repeated keys.
func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Set(kv.Key.String, kv.Val)
	}
	return res
}

func FromMap(nMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(nMap))
	res.Values = make([]*Node, len(nMap))
	keys := slices.Sorted(maps.Keys(nMap))
	for i, key := range keys {
		n := nMap[key]
		n.Parent = res
		n.ParentIndex = i
		n.ParentField = key
		nField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = nField
		res.Values[i] = n
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromSlice(nSlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(nSlice))
	for i, n := range nSlice {
		res.Values[i] = n
		n.Parent = res
		n.ParentIndex = i
		n.ParentField = strconv.Itoa(i)
	}
	return res
}

// Get returns the value at field, or nil when absent.
func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

// Set assigns val to field on an object node. A repeated field
// overwrites the earlier value in place, keeping the position at
// which the field was first assigned.
func (n *Node) Set(field string, val *Node) {
	val.Parent = n
	val.ParentField = field
	for i := range n.Fields {
		if n.Fields[i].String == field {
			val.ParentIndex = i
			n.Values[i] = val
			return
		}
	}
	val.ParentIndex = len(n.Fields)
	n.Fields = append(n.Fields, &Node{
		Parent:      n,
		ParentIndex: len(n.Fields),
		ParentField: field,
		Type:        StringType,
		String:      field,
	})
	n.Values = append(n.Values, val)
}

// Delete removes field from an object node, reporting whether it was
// present.
func (n *Node) Delete(field string) bool {
	for i := range n.Fields {
		if n.Fields[i].String != field {
			continue
		}
		n.Fields = append(n.Fields[:i], n.Fields[i+1:]...)
		n.Values = append(n.Values[:i], n.Values[i+1:]...)
		for j := i; j < len(n.Fields); j++ {
			n.Fields[j].ParentIndex = j
			n.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

// Append adds val to the end of an array node.
func (n *Node) Append(val *Node) {
	val.Parent = n
	val.ParentIndex = len(n.Values)
	val.ParentField = strconv.Itoa(len(n.Values))
	n.Values = append(n.Values, val)
}

func (n *Node) Keys() []string {
	res := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		res[i] = f.String
	}
	return res
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, nn := range n.Values {
			if err := nn.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
