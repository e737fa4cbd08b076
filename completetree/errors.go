package completetree

import "errors"

var (
	ErrInvalidArity = errors.New("completetree: arity must be at least 1")
	ErrBadIndent    = errors.New("completetree: indent must be at least 1")
)
