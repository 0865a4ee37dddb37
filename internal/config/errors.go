package config

import "errors"

// Sentinel error kinds. Load wraps every failure in one of them so callers
// can tell a broken source (file, env) from a value that fails validation.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
