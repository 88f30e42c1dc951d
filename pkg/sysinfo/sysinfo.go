package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// minimumSampleInterval is the wait between the two CPU usage reads.
// Single-sample CPU usage deltas are meaningless; 200ms is the vendor
// recommended floor.
const minimumSampleInterval = 200 * time.Millisecond

// ErrUnavailable marks a metric the current host cannot supply (e.g. load
// averages on Windows). Callers render it as an empty value instead of
// failing.
var ErrUnavailable = errors.New("metric not available on this host")

// Provider is the hardware/OS data source. Every method performs one
// synchronous point-in-time read of its subsystem.
type Provider interface {
	Host(ctx context.Context) (*HostStat, error)
	LoadAverage(ctx context.Context) (*LoadStat, error)
	PhysicalCoreCount(ctx context.Context) (int, error)
	GlobalCPUUsage(ctx context.Context) (float64, error)
	CPUs(ctx context.Context) ([]CPUStat, error)
	Memory(ctx context.Context) (*MemoryStat, error)
	Swap(ctx context.Context) (*SwapStat, error)
	Drives(ctx context.Context) ([]DriveStat, error)
	Sensors(ctx context.Context) ([]SensorStat, error)
	Networks(ctx context.Context) ([]NetworkStat, error)
}

// System reads hardware telemetry through gopsutil. One System represents
// one invocation's snapshot: drive, sensor and network lists are read
// lazily and then cached for the System's lifetime. It is not safe for
// concurrent use; each top-level run owns its own System.
type System struct {
	drives   []DriveStat
	sensors  []SensorStat
	networks []NetworkStat
}

// New returns a fresh snapshot provider.
func New() *System {
	return &System{}
}

// Host reads OS and kernel identification.
func (s *System) Host(ctx context.Context) (*HostStat, error) {
	refreshTotal.WithLabelValues("host").Inc()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	return &HostStat{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		BootTime:        info.BootTime,
	}, nil
}

// LoadAverage reads the 1/5/15 minute load averages. Hosts without load
// accounting yield ErrUnavailable.
func (s *System) LoadAverage(ctx context.Context) (*LoadStat, error) {
	refreshTotal.WithLabelValues("load").Inc()

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load average: %v", ErrUnavailable, err)
	}

	return &LoadStat{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}

// PhysicalCoreCount counts physical cores across all packages.
func (s *System) PhysicalCoreCount(ctx context.Context) (int, error) {
	refreshTotal.WithLabelValues("cpu").Inc()

	count, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("%w: physical core count: %v", ErrUnavailable, err)
	}

	return count, nil
}

// GlobalCPUUsage samples total CPU usage with the mandatory two-phase
// refresh: one read, a minimumSampleInterval sleep, a second read. The
// sleep blocks the calling goroutine and is not cancellable.
func (s *System) GlobalCPUUsage(ctx context.Context) (float64, error) {
	refreshTotal.WithLabelValues("cpu").Inc()

	start := time.Now()
	defer func() {
		cpuSampleDuration.Observe(time.Since(start).Seconds())
	}()

	percents, err := cpu.PercentWithContext(ctx, minimumSampleInterval, false)
	if err != nil {
		return 0, fmt.Errorf("failed to sample total cpu usage: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("cpu usage sampling returned no data")
	}

	return percents[0], nil
}

// CPUs samples per-core usage (two-phase refresh, see GlobalCPUUsage) and
// merges in identification data. Names follow snapshot order: cpu0, cpu1,
// and so on.
func (s *System) CPUs(ctx context.Context) ([]CPUStat, error) {
	refreshTotal.WithLabelValues("cpu").Inc()

	start := time.Now()
	defer func() {
		cpuSampleDuration.Observe(time.Since(start).Seconds())
	}()

	percents, err := cpu.PercentWithContext(ctx, minimumSampleInterval, true)
	if err != nil {
		return nil, fmt.Errorf("failed to sample per-cpu usage: %w", err)
	}

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu info: %w", err)
	}

	cpus := make([]CPUStat, len(percents))
	for i, usage := range percents {
		stat := CPUStat{
			Name:  fmt.Sprintf("cpu%d", i),
			Usage: usage,
		}

		// gopsutil reports one InfoStat per logical CPU on Linux but a
		// single entry on some platforms; fall back to the last one.
		if len(infos) > 0 {
			info := infos[len(infos)-1]
			if i < len(infos) {
				info = infos[i]
			}
			stat.FrequencyMHz = info.Mhz
			stat.Brand = info.ModelName
			stat.VendorID = info.VendorID
		}

		cpus[i] = stat
	}

	return cpus, nil
}

// Memory reads virtual memory totals.
func (s *System) Memory(ctx context.Context) (*MemoryStat, error) {
	refreshTotal.WithLabelValues("memory").Inc()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	return &MemoryStat{
		Total:     vm.Total,
		Available: vm.Available,
		Free:      vm.Free,
		Used:      vm.Used,
	}, nil
}

// Swap reads swap totals.
func (s *System) Swap(ctx context.Context) (*SwapStat, error) {
	refreshTotal.WithLabelValues("swap").Inc()

	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read swap stats: %w", err)
	}

	return &SwapStat{Total: sm.Total, Free: sm.Free, Used: sm.Used}, nil
}

// Drives enumerates mounted drives with capacity and media metadata. The
// list is read once per System and cached.
func (s *System) Drives(ctx context.Context) ([]DriveStat, error) {
	if s.drives != nil {
		return s.drives, nil
	}

	refreshTotal.WithLabelValues("drive").Inc()

	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate drives: %w", err)
	}

	drives := make([]DriveStat, 0, len(partitions))
	for _, p := range partitions {
		stat := DriveStat{
			Name:       p.Device,
			MountPoint: p.Mountpoint,
			Fs:         p.Fstype,
		}
		stat.Kind, stat.Removable = driveMedia(p.Device)

		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil {
			stat.Total = usage.Total
			stat.Available = usage.Free
		}

		drives = append(drives, stat)
	}

	s.drives = drives

	return drives, nil
}

// Sensors enumerates temperature sensors. The list is read once per System
// and cached.
func (s *System) Sensors(ctx context.Context) ([]SensorStat, error) {
	if s.sensors != nil {
		return s.sensors, nil
	}

	refreshTotal.WithLabelValues("sensor").Inc()

	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		return nil, fmt.Errorf("failed to read temperature sensors: %w", err)
	}

	sensors := make([]SensorStat, 0, len(temps))
	for _, t := range temps {
		stat := SensorStat{
			Label:       t.SensorKey,
			Temperature: t.Temperature,
			Max:         t.High,
		}
		// A sensor without a reported high watermark has never read above
		// its current temperature.
		if stat.Max == 0 {
			stat.Max = t.Temperature
		}
		if t.Critical > 0 {
			critical := t.Critical
			stat.Critical = &critical
		}

		sensors = append(sensors, stat)
	}

	s.sensors = sensors

	return sensors, nil
}

// Networks enumerates network interfaces with cumulative traffic counters
// and MAC addresses. The list is read once per System and cached.
func (s *System) Networks(ctx context.Context) ([]NetworkStat, error) {
	if s.networks != nil {
		return s.networks, nil
	}

	refreshTotal.WithLabelValues("network").Inc()

	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read network counters: %w", err)
	}

	interfaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate network interfaces: %w", err)
	}

	macs := make(map[string]string, len(interfaces))
	for _, iface := range interfaces {
		macs[iface.Name] = iface.HardwareAddr
	}

	networks := make([]NetworkStat, 0, len(counters))
	for _, c := range counters {
		networks = append(networks, NetworkStat{
			Name:               c.Name,
			MacAddress:         macs[c.Name],
			BytesReceived:      c.BytesRecv,
			BytesTransmitted:   c.BytesSent,
			PacketsReceived:    c.PacketsRecv,
			PacketsTransmitted: c.PacketsSent,
			IncomingErrors:     c.Errin,
			OutcomingErrors:    c.Errout,
		})
	}

	s.networks = networks

	return networks, nil
}
