package ir

import "errors"

var (
	// ErrNotFound reports keyed access to an absent field.
	ErrNotFound = errors.New("not found")
)
