package clausewitz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/clausewitz-format/go-clausewitz/ir"

	"github.com/google/go-cmp/cmp"
)

const saveDoc = `date=1444.11.11
player="IRQ"
country={
	name="Iraq"
	tag=IRQ
	capital=410
	at_war=yes
	prestige=-12.5
	armies={
		0={ morale=3 size=12 }
		1={ morale=2 size=8 }
	}
}
`

func TestTreeAccess(t *testing.T) {
	tree, err := ParseString(saveDoc)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 3 {
		t.Fatalf("len = %d", tree.Len())
	}
	if _, err := tree.Get("date"); err != nil {
		t.Error(err)
	}
	if _, err := tree.Get("missing"); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	n, ok := tree.Lookup("country.name")
	if !ok || n.String != "Iraq" {
		t.Errorf("country.name = %v", n)
	}
	if _, ok := tree.Lookup("country.name.deeper"); ok {
		t.Error("scalar traversed as object")
	}

	if got := tree.Path("country.capital", nil); got != int64(410) {
		t.Errorf("capital = %v", got)
	}
	if got := tree.Path("country.none", "fallback"); got != "fallback" {
		t.Errorf("default = %v", got)
	}
}

func TestTreeMutate(t *testing.T) {
	tree := New()
	if err := tree.Set("name", "West Germany"); err != nil {
		t.Fatal(err)
	}
	if err := tree.Set("stats", map[string]any{"pop": 100, "gdp": 2.5}); err != nil {
		t.Fatal(err)
	}
	if err := tree.Set("cores", []any{410, 411}); err != nil {
		t.Fatal(err)
	}

	want := map[string]any{
		"name":  "West Germany",
		"stats": map[string]any{"pop": int64(100), "gdp": 2.5},
		"cores": []any{int64(410), int64(411)},
	}
	if d := cmp.Diff(want, tree.Export()); d != "" {
		t.Errorf("export (-want +got):\n%s", d)
	}

	if !tree.Delete("cores") {
		t.Error("delete reported absent")
	}
	if tree.Delete("cores") {
		t.Error("second delete reported present")
	}
	if got := tree.Keys(); len(got) != 2 {
		t.Errorf("keys = %v", got)
	}
}

func TestTreeRoundTrip(t *testing.T) {
	tree, err := ParseString(saveDoc)
	if err != nil {
		t.Fatal(err)
	}
	again, err := ParseString(tree.String())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tree.Node(), again.Node()) {
		t.Errorf("round trip changed tree:\n%s\nvs:\n%s", tree, again)
	}
}

func TestFromNode(t *testing.T) {
	if _, err := FromNode(ir.FromInt(1)); err == nil {
		t.Error("scalar accepted as root")
	}
	if _, err := FromNode(nil); err == nil {
		t.Error("nil accepted as root")
	}
	if _, err := FromNode(ir.NewObject()); err != nil {
		t.Error(err)
	}
}

func TestParseWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.sav")
	if err := os.WriteFile(path, []byte(saveDoc), 0644); err != nil {
		t.Fatal(err)
	}
	tree, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.sav")
	if err := tree.WriteFile(out); err != nil {
		t.Fatal(err)
	}
	again, err := ParseFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tree.Node(), again.Node()) {
		t.Error("file round trip changed tree")
	}

	if _, err := ParseFile(filepath.Join(dir, "absent.sav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
