package model

import "errors"

var (
	// ErrDuplicateRecord indicates a table key appeared more than once.
	ErrDuplicateRecord = errors.New("duplicate record")
	// ErrEmptyCountryCode indicates a row without a country code.
	ErrEmptyCountryCode = errors.New("empty country code")
)
