package sysinfo

import (
	"testing"
	"time"
)

func TestSnapshot(t *testing.T) {
	started := time.Now().Add(-2 * time.Second)

	stats, err := Snapshot(started)
	if err != nil {
		t.Skipf("metrics unavailable in this environment: %v", err)
	}

	if stats.MemTotal == 0 {
		t.Error("MemTotal = 0, want > 0")
	}
	if stats.MemUsed > stats.MemTotal {
		t.Errorf("MemUsed %d exceeds MemTotal %d", stats.MemUsed, stats.MemTotal)
	}
	if stats.ProcessUptime < 2*time.Second {
		t.Errorf("ProcessUptime = %v, want >= 2s", stats.ProcessUptime)
	}
	if stats.CPUPercent < 0 || stats.CPUPercent > 100*float64(stats.CPUCount+1) {
		t.Errorf("CPUPercent = %v out of range", stats.CPUPercent)
	}
}
