package pager

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration failures. Match them with errors.Is.
var (
	ErrNilSurface    = errors.New("surface is nil")
	ErrNoScreens     = errors.New("surface has no screens")
	ErrInitialScreen = errors.New("initial screen out of range")
	ErrNegativeValue = errors.New("value must not be negative")
	ErrUnknownEase   = errors.New("unknown ease function")
	ErrBadColor      = errors.New("malformed color")
)

// ConfigError reports a configuration problem found while constructing a
// Controller or loading a config file. These are fatal: the controller is not
// created.
//
// Navigation problems (out-of-range screens, requests during a transition or
// inside the suppression window) are never errors. They are dropped silently.
type ConfigError struct {
	Field string // Offending field (e.g. "initial_screen", "surface")
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("pager: config: %v", e.Err)
	}
	return fmt.Sprintf("pager: config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

func configErr(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}
