// Command check_disk is a monitoring plugin reporting free disk space against
// warning and critical thresholds.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/checkdisk/internal/check"
	"github.com/desertwitch/checkdisk/internal/configuration"
	"github.com/desertwitch/checkdisk/internal/threshold"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals
var Version string

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		}),
	))
}

// run executes all checks and returns the process exit code. Exactly one line
// is written to stdout, unless help was requested.
func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := parseFlags(args, stderr, configHandler)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return check.StatusOK.ExitCode()
		}

		fmt.Fprintf(stdout, "DISK %s - %v|\n", check.StatusUnknown, err)

		return check.StatusUnknown.ExitCode()
	}

	setupLogging(stderr, settings.Debug)

	warn, err := threshold.Parse(settings.Warn)
	if err != nil {
		return invalidThreshold(stdout, settings.Warn)
	}

	crit, err := threshold.Parse(settings.Crit)
	if err != nil {
		return invalidThreshold(stdout, settings.Crit)
	}

	slog.Debug("Starting check",
		"version", Version,
		"paths", settings.Paths,
		"warn", warn.String(),
		"crit", crit.String(),
		"uniquefs", settings.UniqueFS,
	)

	app := NewApp(check.ParsePathSpecs(settings.Paths), warn, crit, settings.UniqueFS)
	report := app.Launch(ctx)

	fmt.Fprintln(stdout, report.String())

	return report.Status.ExitCode()
}

// invalidThreshold reports a malformed threshold, which ends the run with
// [check.StatusCritical] before any check runs.
func invalidThreshold(stdout io.Writer, s string) int {
	fmt.Fprintf(stdout, "Invalid threshold: %s\n", s)

	return check.StatusCritical.ExitCode()
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
