package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		var got Type
		if err := got.UnmarshalText([]byte(typ.String())); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("%s round-tripped to %s", typ, got)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Blob")); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestIsScalar(t *testing.T) {
	for _, typ := range Types() {
		want := typ != ObjectType && typ != ArrayType
		if got := typ.IsScalar(); got != want {
			t.Errorf("%s.IsScalar() = %v", typ, got)
		}
	}
}
