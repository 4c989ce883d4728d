package configuration

import "errors"

var (
	// ErrConfigRead occurs when a configuration file could not be read or
	// parsed.
	ErrConfigRead = errors.New("failed to read configuration")

	// ErrInvalidValue occurs when a configuration key holds a value that
	// cannot be converted into the expected type.
	ErrInvalidValue = errors.New("invalid configuration value")
)
