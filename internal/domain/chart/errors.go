package chart

import "errors"

// ErrUnsupportedKind indicates a geometry the map assembler cannot draw.
var ErrUnsupportedKind = errors.New("unsupported chart kind")
