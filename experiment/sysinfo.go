package experiment

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// CollectSysInfo queries the host. Lookups that fail leave their field empty.
func CollectSysInfo() SysInfo {
	var si SysInfo

	if hostStat, err := host.Info(); err == nil && hostStat != nil {
		si.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		si.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil && vmStat != nil {
		si.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return si
}
