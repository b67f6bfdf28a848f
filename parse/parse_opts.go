package parse

type parseOpts struct {
	strict bool
}

type ParseOption func(*parseOpts)

// Strict rejects a closing brace that would close the root scope
// instead of stopping the parse there. The default keeps the lenient
// historical behavior.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}
