package filesystem

import "errors"

// ErrStatfsFailed is an error that occurs when the filesystem statistics of a
// path could not be queried from the operating system.
var ErrStatfsFailed = errors.New("failed to statfs")
