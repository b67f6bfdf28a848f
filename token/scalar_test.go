package token

import (
	"testing"

	"github.com/clausewitz-format/go-clausewitz/ir"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want *ir.Node
	}{
		{"42", ir.FromInt(42)},
		{"-7", ir.FromInt(-7)},
		{"42.0", ir.FromFloat(42.0)},
		{"-0.5", ir.FromFloat(-0.5)},
		{"yes", ir.FromBool(true)},
		{"No", ir.FromBool(false)},
		{"YES", ir.FromBool(true)},
		{`"hello world"`, ir.FromString("hello world")},
		{`"yes"`, ir.FromBool(true)},
		{"PLAIN", ir.FromString("PLAIN")},
		{"1444.11.11", ir.FromString("1444.11.11")},
		{"", ir.FromString("")},
		{"1e3", ir.FromString("1e3")},
	}
	for _, tc := range tests {
		got := Coerce(tc.raw)
		if !ir.Equal(got, tc.want) {
			t.Errorf("Coerce(%q) = %s, want %s", tc.raw, got.Type, tc.want.Type)
		}
	}
}

func TestUnquote(t *testing.T) {
	if got := Unquote(`"Iraq"`); got != "Iraq" {
		t.Errorf("got %q", got)
	}
	if got := Unquote(`"`); got != `"` {
		t.Errorf("lone quote should survive, got %q", got)
	}
	if got := Unquote("plain"); got != "plain" {
		t.Errorf("got %q", got)
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"", true},
		{"hello world", true},
		{"a=b", true},
		{"{", true},
		{"tab\there", true},
		{"IRQ", false},
		{"west_germany", false},
	}
	for _, tc := range tests {
		if got := NeedsQuote(tc.v); got != tc.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
