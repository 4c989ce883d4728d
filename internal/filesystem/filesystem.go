// Package filesystem queries the operating system for filesystem statistics.
package filesystem

import (
	"golang.org/x/sys/unix"
)

// unixStatfsProvider defines Statfs methods needed for disk usage checking.
type unixStatfsProvider interface {
	Statfs(path string, buf *unix.Statfs_t) error
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	unixHandler unixStatfsProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(unixHandler unixStatfsProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}
