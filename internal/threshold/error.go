package threshold

import (
	"errors"
	"fmt"
)

// ErrInvalidThreshold occurs when a threshold string does not match the
// accepted grammar (e.g. "20%", "5G", "1.5%,25G").
var ErrInvalidThreshold = errors.New("invalid threshold")

// ParseError is returned by [Parse] and carries the rejected input.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidThreshold, e.Input)
}

// Unwrap allows matching a [ParseError] against [ErrInvalidThreshold].
func (e *ParseError) Unwrap() error {
	return ErrInvalidThreshold
}
