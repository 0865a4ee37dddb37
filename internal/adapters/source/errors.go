package source

import "errors"

// Load failure kinds. Every one of them aborts startup.
var (
	ErrFetch         = errors.New("source fetch failed")
	ErrParse         = errors.New("source parse failed")
	ErrMissingColumn = errors.New("source column missing")
)
