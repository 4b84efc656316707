package meter

import (
	"runtime"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// HostSnapshot samples current host CPU and memory utilization. The CPU
// reading covers the interval since the previous call (or since boot on the
// first call), so it returns without blocking.
func (m *Meter) HostSnapshot() (types.HostStats, error) {
	cpuPercentages, err := cpu.Percent(0, false)
	if err != nil {
		return types.HostStats{}, err
	}
	memStats, err := mem.VirtualMemory()
	if err != nil {
		return types.HostStats{}, err
	}

	stats := types.HostStats{
		MemUsedPercent: memStats.UsedPercent,
		NumGoroutine:   runtime.NumGoroutine(),
		Timestamp:      time.Now().UnixNano(),
	}
	if len(cpuPercentages) > 0 {
		stats.CPUPercent = cpuPercentages[0]
	}
	return stats, nil
}
