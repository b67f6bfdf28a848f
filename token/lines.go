package token

import (
	"bytes"
	"strings"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// Line is one trimmed, non-empty, non-comment source line. Num is the
// 1-based line number in the original input, kept for error messages.
type Line struct {
	Text string
	Num  int
}

// Lines splits raw file bytes into the line stream consumed by the
// block parser. One leading byte-order mark is stripped, lines are
// trimmed, and blank lines and lines whose first non-space byte is
// '#' are dropped. A '#' after content is not a comment and passes
// through verbatim.
func Lines(d []byte) []Line {
	d = bytes.TrimPrefix(d, bom)
	raw := strings.Split(string(d), "\n")
	res := make([]Line, 0, len(raw))
	for i, ln := range raw {
		ln = strings.TrimSpace(ln)
		if ln == "" || ln[0] == '#' {
			continue
		}
		res = append(res, Line{Text: ln, Num: i + 1})
	}
	return res
}
