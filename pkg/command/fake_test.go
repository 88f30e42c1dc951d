package command

import (
	"context"

	"github.com/inunix3/dshw/pkg/sysinfo"
)

// fakeProvider serves canned snapshot data and counts reads per
// subsystem, so tests can assert refresh side effects, not just output.
type fakeProvider struct {
	calls map[string]int

	host            *sysinfo.HostStat
	load            *sysinfo.LoadStat
	loadUnavailable bool
	cores           int
	globalUsage     float64
	cpus            []sysinfo.CPUStat
	memory          *sysinfo.MemoryStat
	swap            *sysinfo.SwapStat
	drives          []sysinfo.DriveStat
	sensors         []sysinfo.SensorStat
	networks        []sysinfo.NetworkStat
}

func newFakeProvider() *fakeProvider {
	critical := 95.0

	return &fakeProvider{
		calls: map[string]int{},
		host: &sysinfo.HostStat{
			Hostname:        "box",
			OS:              "linux",
			Platform:        "ubuntu",
			PlatformVersion: "24.04",
			KernelVersion:   "6.8.0",
			KernelArch:      "x86_64",
			BootTime:        1700000000,
		},
		load:        &sysinfo.LoadStat{Load1: 0.5, Load5: 1.25, Load15: 2},
		cores:       4,
		globalUsage: 12.345,
		cpus: []sysinfo.CPUStat{
			{Name: "cpu0", Usage: 10.5, FrequencyMHz: 3600, Brand: "ACME 9000", VendorID: "GenuineACME"},
			{Name: "cpu1", Usage: 12.34, FrequencyMHz: 3600.4, Brand: "ACME 9000", VendorID: "GenuineACME"},
		},
		memory: &sysinfo.MemoryStat{Total: 16000000000, Available: 8000000000, Free: 4000000000, Used: 7000000000},
		swap:   &sysinfo.SwapStat{Total: 2000000000, Free: 1500000000, Used: 500000000},
		drives: []sysinfo.DriveStat{
			{Name: "/dev/sda1", MountPoint: "/", Fs: "ext4", Kind: "SSD", Removable: false, Total: 500000000000, Available: 200000000000},
			{Name: "/dev/sdb1", MountPoint: "/mnt/usb", Fs: "vfat", Kind: "HDD", Removable: true, Total: 64000000000, Available: 32000000000},
		},
		sensors: []sysinfo.SensorStat{
			{Label: "coretemp_core_0", Temperature: 42.5, Max: 80, Critical: &critical},
			{Label: "acpitz", Temperature: 38, Max: 38},
		},
		networks: []sysinfo.NetworkStat{
			{
				Name:               "eth0",
				MacAddress:         "aa:bb:cc:dd:ee:ff",
				BytesReceived:      1000,
				BytesTransmitted:   2000,
				PacketsReceived:    30,
				PacketsTransmitted: 40,
				IncomingErrors:     1,
				OutcomingErrors:    2,
			},
			{Name: "lo", MacAddress: ""},
		},
	}
}

func (p *fakeProvider) Host(context.Context) (*sysinfo.HostStat, error) {
	p.calls["host"]++
	return p.host, nil
}

func (p *fakeProvider) LoadAverage(context.Context) (*sysinfo.LoadStat, error) {
	p.calls["load"]++
	if p.loadUnavailable {
		return nil, sysinfo.ErrUnavailable
	}
	return p.load, nil
}

func (p *fakeProvider) PhysicalCoreCount(context.Context) (int, error) {
	p.calls["cores"]++
	if p.cores == 0 {
		return 0, sysinfo.ErrUnavailable
	}
	return p.cores, nil
}

func (p *fakeProvider) GlobalCPUUsage(context.Context) (float64, error) {
	p.calls["global-cpu"]++
	return p.globalUsage, nil
}

func (p *fakeProvider) CPUs(context.Context) ([]sysinfo.CPUStat, error) {
	p.calls["cpus"]++
	return p.cpus, nil
}

func (p *fakeProvider) Memory(context.Context) (*sysinfo.MemoryStat, error) {
	p.calls["memory"]++
	return p.memory, nil
}

func (p *fakeProvider) Swap(context.Context) (*sysinfo.SwapStat, error) {
	p.calls["swap"]++
	return p.swap, nil
}

func (p *fakeProvider) Drives(context.Context) ([]sysinfo.DriveStat, error) {
	p.calls["drives"]++
	return p.drives, nil
}

func (p *fakeProvider) Sensors(context.Context) ([]sysinfo.SensorStat, error) {
	p.calls["sensors"]++
	return p.sensors, nil
}

func (p *fakeProvider) Networks(context.Context) ([]sysinfo.NetworkStat, error) {
	p.calls["networks"]++
	return p.networks, nil
}
