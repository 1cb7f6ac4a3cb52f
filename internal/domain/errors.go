package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate entry")
	ErrColumnMismatch  = errors.New("column mismatch")
	ErrEmptyTable      = errors.New("no usable rows")
	ErrProviderFailure = errors.New("provider failure")
)
