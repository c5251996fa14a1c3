package service

import (
	"time"

	"thinker-ui/logger"
	"thinker-ui/util/metrics"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status is the system and usage snapshot shown on the admin status page.
type Status struct {
	T        time.Time
	Cpu      float64
	CpuCores int
	Mem      struct {
		Current uint64
		Total   uint64
	}
	Uptime  uint64
	Loads   []float64
	Usage   metrics.Snapshot
	LogTail []string
}

// StatusService collects host statistics for the admin page. Collection
// failures degrade to zero values; the page still renders.
type StatusService struct{}

func (s *StatusService) GetStatus() *Status {
	status := &Status{T: time.Now()}

	if percents, err := cpu.Percent(0, false); err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	if cores, err := cpu.Counts(false); err != nil {
		logger.Warning("get cpu core count failed:", err)
	} else {
		status.CpuCores = cores
	}

	if upTime, err := host.Uptime(); err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	if avgState, err := load.Avg(); err != nil {
		logger.Warning("get load avg failed:", err)
	} else {
		status.Loads = []float64{avgState.Load1, avgState.Load5, avgState.Load15}
	}

	status.Usage = metrics.Collect()
	status.LogTail = logger.GetLogs(20, "INFO")

	return status
}
