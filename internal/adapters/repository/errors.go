package repository

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrNotLoaded     = errors.New("dataset not loaded")
	ErrAlreadyLoaded = errors.New("dataset already loaded")
	ErrNotFound      = errors.New("country not found")
	ErrInvalidLimit  = errors.New("invalid ranking limit")
)
