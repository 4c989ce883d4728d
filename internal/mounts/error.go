package mounts

import "errors"

// ErrMountTableRead occurs when the mount table of the operating system could
// not be read.
var ErrMountTableRead = errors.New("failed to read mount table")
