// Package check evaluates the free space of configured paths and folds the
// individual results into one monitoring report.
package check

// Status is a monitoring status, ordered by severity. Its numeric value is
// the process exit code expected by monitoring supervisors.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the textual form used in the status line.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}
