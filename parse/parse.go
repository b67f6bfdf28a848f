// Package parse provides save-file parsing support.
package parse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/clausewitz-format/go-clausewitz/debug"
	"github.com/clausewitz-format/go-clausewitz/ir"
	"github.com/clausewitz-format/go-clausewitz/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	lines := token.Lines(d)
	root := ir.NewObject()
	end, closed, err := parseBlock(lines, 0, root, pOpts)
	if err != nil {
		return nil, err
	}
	// A closing brace at root depth historically just stopped the
	// parse. Strict mode surfaces it instead of masking ambiguous
	// nesting.
	if closed && pOpts.strict {
		return nil, syntaxErrf(lines[end-1].Num, "unmatched '}' closes root scope")
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// parseBlock consumes lines from start into res and returns the index
// of the first unconsumed line, plus whether the scope was closed by
// a brace rather than by end of input. A scope-relative brace depth
// counter tracks nesting; the enclosing block has closed once depth
// goes negative. While a key's nested block is buffering, the counter
// is local to that block (reset to 1 for its unmatched open brace).
func parseBlock(lines []token.Line, start int, res *ir.Node, opts *parseOpts) (int, bool, error) {
	var (
		depth      int
		inBlock    bool
		currentKey string
		openLine   int
		buf        []token.Line
	)
	i := start
	for i < len(lines) {
		line := lines[i]
		i++
		depth += strings.Count(line.Text, "{") - strings.Count(line.Text, "}")
		if depth < 0 {
			// enclosing block closed on this line
			return i, true, nil
		}
		if !inBlock && strings.Contains(line.Text, "=") {
			key, val, _ := strings.Cut(line.Text, "=")
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
			if strings.HasSuffix(val, "{") {
				currentKey = key
				inBlock = true
				depth = 1
				openLine = line.Num
				buf = nil
				continue
			}
			res.Set(key, token.Coerce(val))
			continue
		}
		if inBlock {
			buf = append(buf, line)
			if depth == 0 {
				val, err := parseBuffer(buf, opts)
				if err != nil {
					return 0, false, err
				}
				res.Set(currentKey, val)
				inBlock = false
				currentKey = ""
				buf = nil
			}
		}
	}
	if inBlock {
		return 0, false, syntaxErrf(openLine, "block %q not closed before end of input", currentKey)
	}
	if depth > 0 {
		return 0, false, syntaxErrf(lines[len(lines)-1].Num, "unbalanced braces")
	}
	return i, false, nil
}

var (
	listStartRx = regexp.MustCompile(`^\s*\d+\s*=`)
	listItemRx  = regexp.MustCompile(`\d+\s*=\s*([^={}]+|\{[^}]*\})`)
)

// parseBuffer decides the representation of a closed block. The
// heuristic is purely syntactic: a numeric first key means the block
// is a positional list, anything else a keyed mapping. Blocks with a
// numeric first key followed by non-numeric keys are mis-detected as
// lists; existing files depend on this, so the rule stays as is.
func parseBuffer(buf []token.Line, opts *parseOpts) (*ir.Node, error) {
	joined := joinLines(buf)
	if !listStartRx.MatchString(joined) {
		obj := ir.NewObject()
		if _, _, err := parseBlock(buf, 0, obj, opts); err != nil {
			return nil, err
		}
		return obj, nil
	}
	if debug.Parse() {
		debug.Logf("parse: positional block %q\n", joined)
	}
	ms := listItemRx.FindAllStringSubmatch(joined, -1)
	res := &ir.Node{Type: ir.ArrayType}
	for _, m := range ms {
		item := strings.TrimSpace(m[1])
		if strings.HasPrefix(item, "{") {
			elt, err := parseInline(item, opts)
			if err != nil {
				return nil, err
			}
			res.Append(elt)
			continue
		}
		res.Append(token.Coerce(item))
	}
	return res, nil
}

// parseInline parses a single-level brace-delimited list element,
// e.g. "{a=1 b=2}", into an object.
func parseInline(item string, opts *parseOpts) (*ir.Node, error) {
	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(item, "{"), "}"))
	segs := splitFields(inner)
	lines := make([]token.Line, len(segs))
	for i, s := range segs {
		lines[i] = token.Line{Text: s}
	}
	obj := ir.NewObject()
	if _, _, err := parseBlock(lines, 0, obj, opts); err != nil {
		return nil, err
	}
	return obj, nil
}

func joinLines(buf []token.Line) string {
	texts := make([]string, len(buf))
	for i := range buf {
		texts[i] = buf[i].Text
	}
	return strings.Join(texts, " ")
}

// splitFields splits on whitespace outside double quotes.
func splitFields(s string) []string {
	var (
		res    []string
		cur    strings.Builder
		quoted bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			cur.WriteRune(r)
		case !quoted && unicode.IsSpace(r):
			if cur.Len() > 0 {
				res = append(res, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		res = append(res, cur.String())
	}
	return res
}
