package encode

import (
	"bytes"
	"testing"

	"github.com/clausewitz-format/go-clausewitz/ir"
)

func TestEncodeScalars(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("tag"), Val: ir.FromString("IRQ")},
		{Key: ir.FromString("name"), Val: ir.FromString("west germany")},
		{Key: ir.FromString("motto"), Val: ir.FromString("")},
		{Key: ir.FromString("capital"), Val: ir.FromInt(410)},
		{Key: ir.FromString("prestige"), Val: ir.FromFloat(-12.5)},
		{Key: ir.FromString("at_war"), Val: ir.FromBool(true)},
		{Key: ir.FromString("bankrupt"), Val: ir.FromBool(false)},
	})
	want := `tag=IRQ
name="west germany"
motto=""
capital=410
prestige=-12.5
at_war=yes
bankrupt=no
`
	if got := MustString(node) + "\n"; got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeFloatMark(t *testing.T) {
	// a whole-valued float keeps its mark so it reads back as a float
	var buf bytes.Buffer
	if err := Encode(ir.FromFloat(42), &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "42.0\n" {
		t.Errorf("got %q, want %q", got, "42.0\n")
	}
}

func TestEncodeNested(t *testing.T) {
	inner := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("c"), Val: ir.FromInt(1)},
	})
	mid := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: inner},
	})
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: mid},
	})
	want := "a={\n\tb={\n\t\tc=1\n\t}\n}"
	if got := MustString(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeArrayKeys(t *testing.T) {
	army := func(size int64) *ir.Node {
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("size"), Val: ir.FromInt(size)},
		})
	}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("armies"), Val: ir.FromSlice([]*ir.Node{army(12), army(8)})},
	})
	want := "armies={\n\t0={\n\t\tsize=12\n\t}\n\t1={\n\t\tsize=8\n\t}\n}"
	if got := MustString(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	var buf bytes.Buffer
	if err := Encode(node, &buf, Depth(2)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\t\ta=1\n" {
		t.Errorf("got %q", got)
	}
}
