package platform

import (
	"github.com/provisor/provisor/internal/util"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
)

var log = util.GetLogger("platform")

// HardwareStats holds information about the state and usage of the system
type HardwareStats struct {
	Memory  *mem.VirtualMemoryStat `json:"memory"`
	Storage *disk.UsageStat        `json:"storage"`
}

// GetHWStats returns the current memory and storage stats for the provided
// work path
func GetHWStats(path string) (HardwareStats, error) {
	hw := HardwareStats{}
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return hw, err
	}
	diskStat, err := disk.Usage(path)
	if err != nil {
		return hw, err
	}
	hw.Memory = memStat
	hw.Storage = diskStat

	return hw, nil
}

// Preflight checks that the host has enough free disk and memory to run a
// batch of installs. Failures abort the batch before the image is mounted.
func Preflight(path string, minFreeDiskMB uint64, minFreeMemMB uint64) error {
	hw, err := GetHWStats(path)
	if err != nil {
		return errors.Wrap(err, "Failed to read host stats during preflight")
	}

	freeDiskMB := hw.Storage.Free / (1024 * 1024)
	if freeDiskMB < minFreeDiskMB {
		return errors.Errorf("Not enough free disk space for installs: %dMB available, %dMB required", freeDiskMB, minFreeDiskMB)
	}
	freeMemMB := hw.Memory.Available / (1024 * 1024)
	if freeMemMB < minFreeMemMB {
		return errors.Errorf("Not enough free memory for installs: %dMB available, %dMB required", freeMemMB, minFreeMemMB)
	}

	log.Debugf("Preflight OK: %dMB disk free, %dMB memory available", freeDiskMB, freeMemMB)
	return nil
}
