package check

import (
	"context"
	"log/slog"
	"strings"
)

// MessageNothingChecked is the report message when every path was skipped.
const MessageNothingChecked = "no filesystems checked"

// pathChecker defines the per-path check needed by the [Reporter].
type pathChecker interface {
	Check(ctx context.Context, spec PathSpec, devices *DeviceSet) *Result
}

// Report is the consolidated outcome of a run.
type Report struct {
	Status   Status
	Messages []string
	Stats    []string
}

// String renders the report as the single monitoring status line
// "DISK <STATUS> - <messages>|<stats>".
func (r Report) String() string {
	return "DISK " + r.Status.String() + " - " +
		strings.Join(r.Messages, "; ") + "|" +
		strings.Join(r.Stats, " ")
}

// Reporter drives all configured paths through a [Checker].
type Reporter struct {
	checker pathChecker
}

// NewReporter returns a pointer to a new [Reporter].
func NewReporter(checker pathChecker) *Reporter {
	return &Reporter{
		checker: checker,
	}
}

// Run checks the given paths strictly in order and returns the aggregated
// [Report]. The aggregate status is the most severe status of all results.
// If no path produced a result, the report is [StatusUnknown].
func (r *Reporter) Run(ctx context.Context, specs []PathSpec) Report {
	devices := NewDeviceSet()

	report := Report{
		Messages: []string{},
		Stats:    []string{},
	}
	checked := false

	for _, spec := range specs {
		result := r.checker.Check(ctx, spec, devices)
		if result == nil {
			continue
		}

		if !checked || result.Status > report.Status {
			report.Status = result.Status
		}
		checked = true

		report.Messages = append(report.Messages, result.Message)
		if result.Stats != "" {
			report.Stats = append(report.Stats, result.Stats)
		}
	}

	if !checked {
		slog.Warn("No filesystem produced a result",
			"paths", len(specs),
		)

		report.Status = StatusUnknown
		report.Messages = append(report.Messages, MessageNothingChecked)
	}

	slog.Debug("Run finished",
		"status", report.Status.String(),
		"results", len(report.Messages),
		"devices", devices.Devices(),
	)

	return report
}
