package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/desertwitch/checkdisk/internal/configuration"
	"github.com/spf13/pflag"
)

const usageHeader = `Check free disk space.

Usage: check_disk [flags] [path...]

Paths may be given with --path or as arguments. Append '?' to optional paths
and '=alias' to set an alias name (e.g. /mnt/data?=/data results in an
optional check on /mnt/data which is shown as /data).

Thresholds are minimum free space: "5G", "100M", "2T", "20%" or two
alternatives like "1.5%,25G" (the smaller of both applies).

Flags:
`

// cliFlags holds the raw command line values.
type cliFlags struct {
	paths      []string
	warn       string
	crit       string
	uniqueFS   bool
	debug      bool
	configFile string
}

// pathList is a [pflag.Value] appending every --path to the shared path
// list, which also receives the positional arguments in between.
type pathList struct {
	paths *[]string
}

func (p *pathList) Set(value string) error {
	*p.paths = append(*p.paths, value)

	return nil
}

func (p *pathList) String() string {
	return "[" + strings.Join(*p.paths, ",") + "]"
}

func (*pathList) Type() string {
	return "stringArray"
}

// parseFlags parses args into [configuration.Settings]. Built-in defaults are
// overridden by the configuration file, which is overridden by explicitly set
// flags. Paths from --path and from arguments are kept in the order given.
func parseFlags(args []string, output io.Writer, configHandler *configuration.Handler) (configuration.Settings, error) {
	var f cliFlags

	defaults := configuration.DefaultSettings()

	fs := pflag.NewFlagSet("check_disk", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.SetInterspersed(false)

	fs.VarP(&pathList{paths: &f.paths}, "path", "p", "path to check (repeatable, default \"/\")")
	fs.StringVarP(&f.warn, "warn", "w", defaults.Warn, "minimum free space for warning")
	fs.StringVarP(&f.crit, "crit", "c", defaults.Crit, "minimum free space for critical")
	fs.BoolVarP(&f.uniqueFS, "uniquefs", "u", false,
		"report only the first of several paths on the same device (ignored for device 'none')")
	fs.BoolVarP(&f.debug, "debug", "d", false, "enable debug logging to stderr")
	fs.StringVarP(&f.configFile, "config", "f", "", "read defaults from an env-style configuration file")

	fs.Usage = func() {
		fmt.Fprint(output, usageHeader)
		fs.PrintDefaults()
	}

	// Parsing stops at every argument, which is taken as a path before
	// parsing resumes behind it. Everything after "--" is a path.
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return configuration.Settings{}, err //nolint:wrapcheck
		}

		rest = fs.Args()

		if fs.ArgsLenAtDash() >= 0 {
			f.paths = append(f.paths, rest...)

			break
		}

		if len(rest) == 0 {
			break
		}

		f.paths = append(f.paths, rest[0])
		rest = rest[1:]
	}

	settings := defaults

	if f.configFile != "" {
		if err := configHandler.Apply(&settings, f.configFile); err != nil {
			return configuration.Settings{}, fmt.Errorf("(cli-config) %w", err)
		}
	}

	if len(f.paths) > 0 {
		settings.Paths = f.paths
	}

	if fs.Changed("warn") {
		settings.Warn = f.warn
	}

	if fs.Changed("crit") {
		settings.Crit = f.crit
	}

	if fs.Changed("uniquefs") {
		settings.UniqueFS = f.uniqueFS
	}

	if fs.Changed("debug") {
		settings.Debug = f.debug
	}

	return settings, nil
}
