package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DiskStats holds disk usage information. It is meant to be passed by value.
type DiskStats struct {
	// TotalSize is the full capacity of the filesystem.
	TotalSize uint64

	// FreeSpace is the space available to unprivileged users.
	FreeSpace uint64

	// UsedSpace is the capacity visible to unprivileged users minus
	// [DiskStats.FreeSpace], so blocks reserved for root are not counted.
	UsedSpace uint64
}

// GetDiskUsage gets the actual [DiskStats] for a given path from the OS.
func (f *Handler) GetDiskUsage(path string) (DiskStats, error) {
	var stat unix.Statfs_t
	if err := f.unixHandler.Statfs(path, &stat); err != nil {
		return DiskStats{}, fmt.Errorf("(fs-diskstats) %w: %w", ErrStatfsFailed, err)
	}

	return diskStatsFromStatfs(&stat), nil
}

// diskStatsFromStatfs calculates [DiskStats] from a [unix.Statfs_t].
//
//nolint:unconvert
func diskStatsFromStatfs(stat *unix.Statfs_t) DiskStats {
	bsize := handleSize(int64(stat.Bsize))
	blocks := uint64(stat.Blocks)
	bfree := uint64(stat.Bfree)
	bavail := uint64(stat.Bavail)

	totalUnprivileged := bsize * (blocks - bfree + bavail)
	free := bsize * bavail

	return DiskStats{
		TotalSize: bsize * blocks,
		FreeSpace: free,
		UsedSpace: totalUnprivileged - free,
	}
}
