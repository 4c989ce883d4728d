package mounts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

const (
	// ProcMountsFile is the live mount table on Linux.
	ProcMountsFile = "/proc/mounts"

	// DeviceNone is the placeholder device of pseudo filesystems. It never
	// identifies a real backing device.
	DeviceNone = "none"
)

// Mount is a single record of the mount table.
type Mount struct {
	Device     string
	Mountpoint string
}

// osReadsProvider defines methods needed to read the mount table file.
type osReadsProvider interface {
	ReadFile(name string) ([]byte, error)
}

// ProcMountsTable reads the mount table from [ProcMountsFile].
type ProcMountsTable struct {
	osHandler osReadsProvider
}

// NewProcMountsTable returns a pointer to a new [ProcMountsTable].
func NewProcMountsTable(osHandler osReadsProvider) *ProcMountsTable {
	return &ProcMountsTable{
		osHandler: osHandler,
	}
}

// Mounts returns all records of [ProcMountsFile] in order.
func (t *ProcMountsTable) Mounts(_ context.Context) ([]Mount, error) {
	data, err := t.osHandler.ReadFile(ProcMountsFile)
	if err != nil {
		return nil, fmt.Errorf("(mounts-proc) %w: %w", ErrMountTableRead, err)
	}

	return parseMountTable(data), nil
}

// parseMountTable parses whitespace-separated mount table lines. Lines with
// fewer than two fields are skipped.
func parseMountTable(data []byte) []Mount {
	mounts := []Mount{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 { //nolint:mnd
			continue
		}

		mounts = append(mounts, Mount{
			Device:     fields[0],
			Mountpoint: fields[1],
		})
	}

	return mounts
}

// partitionsProvider defines the gopsutil function listing partitions.
type partitionsProvider func(ctx context.Context, all bool) ([]disk.PartitionStat, error)

// PartitionsTable reads the mount table through gopsutil, for operating
// systems without a [ProcMountsFile].
type PartitionsTable struct {
	partitions partitionsProvider
}

// NewPartitionsTable returns a pointer to a new [PartitionsTable].
func NewPartitionsTable() *PartitionsTable {
	return &PartitionsTable{
		partitions: disk.PartitionsWithContext,
	}
}

// Mounts returns all partitions known to the operating system, including
// pseudo filesystems.
func (t *PartitionsTable) Mounts(ctx context.Context) ([]Mount, error) {
	partitions, err := t.partitions(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("(mounts-partitions) %w: %w", ErrMountTableRead, err)
	}

	mounts := make([]Mount, 0, len(partitions))
	for _, p := range partitions {
		if p.Device == "" || p.Mountpoint == "" {
			continue
		}

		mounts = append(mounts, Mount{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
		})
	}

	return mounts, nil
}
