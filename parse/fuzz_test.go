package parse

import (
	"bytes"
	"testing"

	"github.com/clausewitz-format/go-clausewitz/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Scalars
		"a=1",
		"a=-7",
		"a=3.14",
		"a=yes",
		"a=no",
		`a=""`,
		`a="hello world"`,
		"a=PLAIN",
		"date=1444.11.11",

		// Mappings
		"a={\n}",
		"a={\n\tb=1\n}",
		"a={\n\tb={\n\t\tc=1\n\t}\n}",

		// Positional lists
		"l={\n\t0=1\n}",
		"l={\n\t0={ a=1 }\n\t1={ a=2 }\n}",
		"l={\n\t0={ n=\"x y\" }\n}",

		// Comments and blanks
		"# comment\n\na=1\n",

		// Malformed
		"a={\n",
		"}\n",
		"a=1\n}\nb=2\n",
		"{{{",
		"=",
		"a=",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: if parse succeeds, encode should not panic
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			return
		}

		// Tertiary: round-trip parse should not panic
		Parse(buf.Bytes())
	})
}
