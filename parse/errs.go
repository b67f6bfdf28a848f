package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax reports structurally malformed input: unbalanced braces
// or a block left open at end of input. No partial tree accompanies
// it.
var ErrSyntax = errors.New("syntax error")

// SyntaxError carries the source line on which parsing failed.
type SyntaxError struct {
	Err  error
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErrf(line int, format string, args ...any) error {
	return &SyntaxError{
		Err:  fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...)),
		Line: line,
	}
}
