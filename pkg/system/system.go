// Package system summarizes the host for diagnostic output.
package system

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/elastic/go-sysinfo"
)

// Summary describes the host gpusync is running on.
type Summary struct {
	OS           string
	Architecture string
	Kernel       string
	TotalRAM     uint64
}

// Summarize collects host information. Fields that cannot be read are left
// at their zero values rather than failing the diagnostic.
func Summarize() (Summary, error) {
	host, err := sysinfo.Host()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read host info: %w", err)
	}
	info := host.Info()
	summary := Summary{
		Architecture: info.Architecture,
		Kernel:       info.KernelVersion,
	}
	if info.OS != nil {
		summary.OS = info.OS.Name + " " + info.OS.Version
	}
	if mem, err := host.Memory(); err == nil {
		summary.TotalRAM = mem.Total
	}
	return summary, nil
}

// FormatRAM renders the total RAM as a human-readable size.
func (s Summary) FormatRAM() string {
	if s.TotalRAM == 0 {
		return "unknown"
	}
	return units.BytesSize(float64(s.TotalRAM))
}
