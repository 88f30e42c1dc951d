package sysinfo

// HostStat describes the operating system and kernel of the host.
type HostStat struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
	BootTime        uint64
}

// LoadStat holds the 1/5/15 minute load averages.
type LoadStat struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// CPUStat describes one logical CPU from a usage-sampled snapshot.
type CPUStat struct {
	Name         string
	Usage        float64
	FrequencyMHz float64
	Brand        string
	VendorID     string
}

// MemoryStat holds virtual memory totals in bytes.
type MemoryStat struct {
	Total     uint64
	Available uint64
	Free      uint64
	Used      uint64
}

// SwapStat holds swap totals in bytes.
type SwapStat struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// DriveStat describes one mounted drive.
type DriveStat struct {
	Name       string
	MountPoint string
	Fs         string
	Kind       string
	Removable  bool
	Total      uint64
	Available  uint64
}

// SensorStat describes one temperature sensor reading. Critical is nil
// when the sensor defines no critical threshold.
type SensorStat struct {
	Label       string
	Temperature float64
	Max         float64
	Critical    *float64
}

// NetworkStat holds cumulative counters for one network interface.
type NetworkStat struct {
	Name               string
	MacAddress         string
	BytesReceived      uint64
	BytesTransmitted   uint64
	PacketsReceived    uint64
	PacketsTransmitted uint64
	IncomingErrors     uint64
	OutcomingErrors    uint64
}
