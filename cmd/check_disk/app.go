package main

import (
	"context"
	"runtime"

	"github.com/desertwitch/checkdisk/internal/check"
	"github.com/desertwitch/checkdisk/internal/filesystem"
	"github.com/desertwitch/checkdisk/internal/mounts"
	"github.com/desertwitch/checkdisk/internal/schema"
	"github.com/desertwitch/checkdisk/internal/threshold"
)

// App wires the handlers needed for a single check run.
type App struct {
	reporter *check.Reporter
	specs    []check.PathSpec
}

// NewApp returns a pointer to a new [App] checking specs on the local host.
func NewApp(specs []check.PathSpec, warn threshold.Threshold, crit threshold.Threshold, uniqueFS bool) *App {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	mountHandler := mounts.NewHandler(newMountTable(osProvider), unixProvider)
	fsHandler := filesystem.NewHandler(unixProvider)
	checker := check.NewChecker(mountHandler, fsHandler, warn, crit, uniqueFS)

	return &App{
		reporter: check.NewReporter(checker),
		specs:    specs,
	}
}

// Launch runs all checks and returns the consolidated report.
func (app *App) Launch(ctx context.Context) check.Report {
	return app.reporter.Run(ctx, app.specs)
}

// mountTable is a source of the mount table.
type mountTable interface {
	Mounts(ctx context.Context) ([]mounts.Mount, error)
}

// newMountTable returns the mount table source for the running system.
func newMountTable(osProvider *schema.OS) mountTable {
	if runtime.GOOS == "linux" {
		return mounts.NewProcMountsTable(osProvider)
	}

	return mounts.NewPartitionsTable()
}
