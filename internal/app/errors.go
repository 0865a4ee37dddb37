package service

import "errors"

var (
	// ErrNoLoader indicates Start was called without a dataset loader.
	ErrNoLoader = errors.New("no dataset loader configured")
	// ErrNoRenderer indicates a PNG was requested without a renderer.
	ErrNoRenderer = errors.New("no thumbnail renderer configured")
)
