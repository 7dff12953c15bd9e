package common

import "errors"

var (
	// Router-level errors.
	ErrNotInApp      = errors.New("not in app view")
	ErrNotInAuth     = errors.New("not in auth view")
	ErrUnknownTab    = errors.New("unknown tab")
	ErrInvalidNumber = errors.New("invalid number")
)
