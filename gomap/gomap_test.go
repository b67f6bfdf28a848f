package gomap

import (
	"errors"
	"testing"

	"github.com/clausewitz-format/go-clausewitz/ir"

	"github.com/google/go-cmp/cmp"
)

type province struct {
	Name    string
	BaseTax int64
	Coastal bool
}

type country struct {
	Tag       string
	Capital   int
	Prestige  float64
	Provinces []province
}

func TestToIRStruct(t *testing.T) {
	c := country{
		Tag:      "IRQ",
		Capital:  410,
		Prestige: -12.5,
		Provinces: []province{
			{Name: "Baghdad", BaseTax: 12, Coastal: false},
		},
	}
	node, err := ToIR(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Keys(); len(got) != 4 || got[0] != "Tag" || got[3] != "Provinces" {
		t.Fatalf("keys = %v", got)
	}
	provs := ir.Get(node, "Provinces")
	if provs.Type != ir.ArrayType || len(provs.Values) != 1 {
		t.Fatalf("provinces = %v", provs)
	}
	if got := ir.Get(provs.Values[0], "Name"); got == nil || got.String != "Baghdad" {
		t.Errorf("name = %v", got)
	}
}

func TestToIRMapSorted(t *testing.T) {
	node, err := ToIR(map[string]any{"z": 1, "a": 2, "m": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "m", "z"}
	if d := cmp.Diff(want, node.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestToIRNodePassThrough(t *testing.T) {
	orig := ir.FromInt(7)
	node, err := ToIR(orig)
	if err != nil {
		t.Fatal(err)
	}
	if node != orig {
		t.Error("expected pass-through of *ir.Node")
	}
}

func TestToIRUnsupported(t *testing.T) {
	_, err := ToIR(make(chan int))
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
	_, err = ToIR(map[int]string{1: "x"})
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
}

func TestFromIRStruct(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("tag"), Val: ir.FromString("IRQ")},
		{Key: ir.FromString("capital"), Val: ir.FromInt(410)},
		{Key: ir.FromString("prestige"), Val: ir.FromFloat(-12.5)},
		{Key: ir.FromString("unknown"), Val: ir.FromInt(1)},
	})
	var c country
	if err := FromIR(node, &c); err != nil {
		t.Fatal(err)
	}
	if c.Tag != "IRQ" || c.Capital != 410 || c.Prestige != -12.5 {
		t.Errorf("decoded %+v", c)
	}
}

func TestFromIRTypeMismatch(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("tag"), Val: ir.FromInt(3)},
	})
	var c country
	err := FromIR(node, &c)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UnmarshalError", err)
	}
}

func TestFromIRNonPointer(t *testing.T) {
	var c country
	if err := FromIR(ir.NewObject(), c); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
}

func TestToGo(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("name"), Val: ir.FromString("Iraq")},
		{Key: ir.FromString("at_war"), Val: ir.FromBool(true)},
		{Key: ir.FromString("capital"), Val: ir.FromInt(410)},
		{Key: ir.FromString("prestige"), Val: ir.FromFloat(0.5)},
		{Key: ir.FromString("cores"), Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(410), ir.FromInt(411),
		})},
	})
	want := map[string]any{
		"name":     "Iraq",
		"at_war":   true,
		"capital":  int64(410),
		"prestige": 0.5,
		"cores":    []any{int64(410), int64(411)},
	}
	if d := cmp.Diff(want, ToGo(node)); d != "" {
		t.Errorf("ToGo (-want +got):\n%s", d)
	}
}

func TestRoundTripGo(t *testing.T) {
	in := map[string]any{
		"a": int64(1),
		"b": map[string]any{"c": "text", "d": false},
		"e": []any{int64(1), 2.5},
	}
	node, err := ToIR(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, ToGo(node)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}
