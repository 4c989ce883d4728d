// Package mounts resolves filesystem paths to their backing devices and
// detects whether a path is a mount point.
package mounts

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sys/unix"
)

// tableProvider defines a source of the mount table.
type tableProvider interface {
	Mounts(ctx context.Context) ([]Mount, error)
}

// unixLstatProvider defines the Lstat method needed for mount point detection.
type unixLstatProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

// Handler answers mount related questions about paths.
type Handler struct {
	tableHandler tableProvider
	unixHandler  unixLstatProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(tableHandler tableProvider, unixHandler unixLstatProvider) *Handler {
	return &Handler{
		tableHandler: tableHandler,
		unixHandler:  unixHandler,
	}
}

// Device returns the device backing the given (normalized) mount point. It is
// the device of the first mount table record with exactly that mountpoint,
// ignoring [DeviceNone]. The boolean is false if no device could be found,
// including when the mount table is unreadable.
func (h *Handler) Device(ctx context.Context, path string) (string, bool) {
	mounts, err := h.tableHandler.Mounts(ctx)
	if err != nil {
		slog.Warn("Device lookup failed (treated as unknown device)",
			"path", path,
			"err", err,
		)

		return "", false
	}

	for _, m := range mounts {
		if m.Mountpoint == path && m.Device != DeviceNone {
			return m.Device, true
		}
	}

	return "", false
}

// IsMountPoint reports whether path is a mount point. Symbolic links are
// never mount points. A path is a mount point if it lives on another device
// than its parent, or if it is its own parent (the root). Any error while
// examining the path or its parent results in false.
func (h *Handler) IsMountPoint(path string) bool {
	var st unix.Stat_t
	if err := h.unixHandler.Lstat(path, &st); err != nil {
		return false
	}

	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false
	}

	var parent unix.Stat_t
	if err := h.unixHandler.Lstat(parentOf(path), &parent); err != nil {
		return false
	}

	if st.Dev != parent.Dev {
		return true
	}

	return st.Ino == parent.Ino
}

// parentOf appends ".." to path without lexical cleaning, so the parent is
// resolved by the kernel (following any symbolic links along the way).
func parentOf(path string) string {
	if strings.HasSuffix(path, "/") {
		return path + ".."
	}

	return path + "/.."
}
