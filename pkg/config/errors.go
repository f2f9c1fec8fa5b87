package config

import "errors"

var (
	// ErrInvalidConfig indicates a configuration value outside its
	// accepted range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingRequired indicates a required option was not set.
	ErrMissingRequired = errors.New("missing required option")
)
