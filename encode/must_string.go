package encode

import (
	"bytes"
	"strings"

	"github.com/clausewitz-format/go-clausewitz/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
