package types

import (
	"errors"
	"fmt"
)

// Lookup failure kinds.
var (
	ErrUnknownScope  = errors.New("unknown scope")
	ErrUnknownMetric = errors.New("unknown metric")
)

// LookupError reports the exact key that missed a static table.
type LookupError struct {
	Kind error
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Key)
}

func (e *LookupError) Unwrap() error { return e.Kind }

func unknownScope(key string) error { return &LookupError{Kind: ErrUnknownScope, Key: key} }

func unknownMetric(key string) error { return &LookupError{Kind: ErrUnknownMetric, Key: key} }
