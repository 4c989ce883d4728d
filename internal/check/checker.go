package check

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/checkdisk/internal/filesystem"
	"github.com/desertwitch/checkdisk/internal/threshold"
	"github.com/dustin/go-humanize"
)

const bytesPerMegabyte = 1 << 20

// mountProvider defines the mount related methods needed by the [Checker].
type mountProvider interface {
	IsMountPoint(path string) bool
	Device(ctx context.Context, path string) (string, bool)
}

// usageProvider defines the disk usage methods needed by the [Checker].
type usageProvider interface {
	GetDiskUsage(path string) (filesystem.DiskStats, error)
}

// Result is the outcome of checking a single [PathSpec].
type Result struct {
	Status  Status
	Message string

	// Stats is the performance data fragment, empty if there is none.
	Stats string
}

// Checker checks the free space of single paths against the configured
// warning and critical thresholds.
type Checker struct {
	mountHandler mountProvider
	usageHandler usageProvider
	warn         threshold.Threshold
	crit         threshold.Threshold
	uniqueFS     bool
}

// NewChecker returns a pointer to a new [Checker]. With uniqueFS set, a path
// backed by a device that was already checked in the same run is skipped.
func NewChecker(mountHandler mountProvider, usageHandler usageProvider,
	warn threshold.Threshold, crit threshold.Threshold, uniqueFS bool,
) *Checker {
	return &Checker{
		mountHandler: mountHandler,
		usageHandler: usageHandler,
		warn:         warn,
		crit:         crit,
		uniqueFS:     uniqueFS,
	}
}

// Check checks a single [PathSpec] and records its device in devices. A nil
// [Result] means the path is skipped: it is optional and not mounted, or it
// shares an already checked device while uniqueFS is set.
func (c *Checker) Check(ctx context.Context, spec PathSpec, devices *DeviceSet) *Result {
	path := spec.Path

	if !c.mountHandler.IsMountPoint(path) {
		if spec.Optional {
			slog.Debug("Volume is not mounted but optional (ignored)",
				"path", path,
			)

			return nil
		}

		slog.Warn("Volume is not mounted",
			"path", path,
		)

		return &Result{
			Status:  StatusCritical,
			Message: path + " is not mounted",
		}
	}

	path = filepath.Clean(path)

	alias := path
	if spec.HasAlias {
		alias = spec.Alias
	}

	if device, found := c.mountHandler.Device(ctx, path); found {
		alreadyReported := devices.Contains(device)
		devices.Add(device)

		if alreadyReported {
			slog.Debug("Volume is on an already reported device",
				"path", path,
				"device", device,
			)

			if c.uniqueFS {
				return nil
			}
		}
	}

	stats, err := c.usageHandler.GetDiskUsage(path)
	if err != nil {
		slog.Error("Volume is mounted but not accessible",
			"path", path,
			"err", err,
		)

		return &Result{
			Status:  StatusCritical,
			Message: fmt.Sprintf("%s is not accessible (%v)", alias, err),
		}
	}

	return c.evaluate(path, alias, stats)
}

// evaluate classifies [filesystem.DiskStats] against the thresholds, both
// resolved against the same total size.
func (c *Checker) evaluate(path string, alias string, stats filesystem.DiskStats) *Result {
	warnLimit := c.warn.Evaluate(stats.TotalSize)
	slog.Info("Warning threshold resolved",
		"path", path,
		"bytes", humanize.IBytes(warnLimit.Bytes),
		"from", warnLimit.Label,
	)

	critLimit := c.crit.Evaluate(stats.TotalSize)
	slog.Info("Critical threshold resolved",
		"path", path,
		"bytes", humanize.IBytes(critLimit.Bytes),
		"from", critLimit.Label,
	)

	result := &Result{
		Stats: perfData(alias, stats, warnLimit, critLimit),
	}

	free := HumanSize(stats.FreeSpace)

	switch {
	case stats.FreeSpace < critLimit.Bytes:
		result.Status = StatusCritical
		result.Message = fmt.Sprintf("%s %s (<%s, CRIT)", alias, free, HumanSize(critLimit.Bytes))

	case stats.FreeSpace < warnLimit.Bytes:
		result.Status = StatusWarning
		result.Message = fmt.Sprintf("%s %s (<%s, WARN)", alias, free, HumanSize(warnLimit.Bytes))

	default:
		result.Status = StatusOK
		result.Message = fmt.Sprintf("%s %s (>=%s, OK)", alias, free, HumanSize(warnLimit.Bytes))
	}

	slog.Debug("Volume checked",
		"path", path,
		"alias", alias,
		"status", result.Status.String(),
		"free", humanize.IBytes(stats.FreeSpace),
		"total", humanize.IBytes(stats.TotalSize),
	)

	return result
}

// perfData renders the performance data fragment
// "<alias>=<used>MB;<warn>;<crit>;0;<total>". Thresholds are expressed as the
// used space at which they trigger, all values in whole megabytes. A limit
// above the total size yields a negative value.
func perfData(alias string, stats filesystem.DiskStats, warn threshold.Limit, crit threshold.Limit) string {
	return fmt.Sprintf("%s=%dMB;%d;%d;0;%d",
		alias,
		toMegabytes(stats.UsedSpace),
		floorMegabytes(usedAt(stats.TotalSize, warn.Bytes)),
		floorMegabytes(usedAt(stats.TotalSize, crit.Bytes)),
		toMegabytes(stats.TotalSize),
	)
}

// usedAt returns the used space at which free space drops to the limit.
func usedAt(total uint64, limit uint64) int64 {
	return int64(total) - int64(limit) //nolint:gosec
}

func toMegabytes(bytes uint64) uint64 {
	return bytes / bytesPerMegabyte
}

// floorMegabytes rounds towards negative infinity.
func floorMegabytes(bytes int64) int64 {
	mb := bytes / bytesPerMegabyte
	if bytes%bytesPerMegabyte < 0 {
		mb--
	}

	return mb
}
