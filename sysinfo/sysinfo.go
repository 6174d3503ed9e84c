// Package sysinfo snapshots host and process metrics for the status report.
package sysinfo

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a point-in-time view of the host and the current process.
type Stats struct {
	CPUPercent float64
	CPUCount   int

	MemTotal   uint64
	MemUsed    uint64
	MemPercent float64

	DiskTotal   uint64
	DiskUsed    uint64
	DiskPercent float64

	NetSent uint64
	NetRecv uint64

	HostUptime    time.Duration
	ProcessUptime time.Duration
	ProcessRSS    uint64
}

// Snapshot collects current metrics. startedAt is when this process began
// serving; it feeds ProcessUptime. Hard failures (CPU, memory) abort the
// snapshot; disk, network and per-process numbers degrade to zero.
func Snapshot(startedAt time.Time) (*Stats, error) {
	percents, err := cpu.Percent(0, false)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	s := &Stats{ProcessUptime: time.Since(startedAt)}
	if len(percents) > 0 {
		s.CPUPercent = percents[0]
	}
	if n, err := cpu.Counts(true); err == nil {
		s.CPUCount = n
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}
	s.MemTotal = vm.Total
	s.MemUsed = vm.Used
	s.MemPercent = vm.UsedPercent

	if du, err := disk.Usage("/"); err == nil {
		s.DiskTotal = du.Total
		s.DiskUsed = du.Used
		s.DiskPercent = du.UsedPercent
	}
	if counters, err := net.IOCounters(false); err == nil && len(counters) > 0 {
		s.NetSent = counters[0].BytesSent
		s.NetRecv = counters[0].BytesRecv
	}
	if boot, err := host.BootTime(); err == nil {
		s.HostUptime = time.Since(time.Unix(int64(boot), 0))
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := proc.MemoryInfo(); err == nil {
			s.ProcessRSS = mi.RSS
		}
	}
	return s, nil
}
