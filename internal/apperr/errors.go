package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidRecord = errors.New("invalid record")
)
