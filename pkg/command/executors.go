package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/inunix3/dshw/pkg/query"
	"github.com/inunix3/dshw/pkg/sysinfo"
	"github.com/inunix3/dshw/pkg/units"
)

// formatPercent renders percentages and temperatures with exactly two
// fractional digits.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// osExecutor answers OS-level queries. Host identification and load
// averages are each read at most once per Run, regardless of how many
// fields need them.
type osExecutor struct {
	provider sysinfo.Provider
}

func (e *osExecutor) Run(ctx context.Context, fields []query.Field) ([]string, error) {
	var hostStat *sysinfo.HostStat
	hostInfo := func() (*sysinfo.HostStat, error) {
		if hostStat != nil {
			return hostStat, nil
		}
		stat, err := e.provider.Host(ctx)
		if err != nil {
			return nil, err
		}
		hostStat = stat
		return hostStat, nil
	}

	var loadStat *sysinfo.LoadStat
	loadRead := false
	loadInfo := func() (*sysinfo.LoadStat, error) {
		if loadRead {
			return loadStat, nil
		}
		stat, err := e.provider.LoadAverage(ctx)
		if err != nil && !errors.Is(err, sysinfo.ErrUnavailable) {
			return nil, err
		}
		loadRead = true
		loadStat = stat // nil when unavailable
		return loadStat, nil
	}

	loadField := func(pick func(*sysinfo.LoadStat) float64) (string, error) {
		stat, err := loadInfo()
		if err != nil {
			return "", err
		}
		if stat == nil {
			return "", nil
		}
		return formatPercent(pick(stat)), nil
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		var s string
		var err error

		switch f {
		case query.FieldBootTime:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = strconv.FormatUint(host.BootTime, 10)
			}
		case query.FieldLoadAverage1m:
			s, err = loadField(func(l *sysinfo.LoadStat) float64 { return l.Load1 })
		case query.FieldLoadAverage5m:
			s, err = loadField(func(l *sysinfo.LoadStat) float64 { return l.Load5 })
		case query.FieldLoadAverage15m:
			s, err = loadField(func(l *sysinfo.LoadStat) float64 { return l.Load15 })
		case query.FieldOSName:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = capitalize(host.Platform)
			}
		case query.FieldKernelVersion:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = host.KernelVersion
			}
		case query.FieldOSVersion:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = host.PlatformVersion
			}
		case query.FieldLongOSVersion:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = strings.TrimSpace(capitalize(host.Platform) + " " + host.PlatformVersion)
			}
		case query.FieldReleaseID:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = host.Platform
			}
		case query.FieldHostName:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = host.Hostname
			}
		case query.FieldPhysicalCoreCount:
			var count int
			count, err = e.provider.PhysicalCoreCount(ctx)
			if errors.Is(err, sysinfo.ErrUnavailable) {
				err = nil
			} else if err == nil {
				s = strconv.Itoa(count)
			}
		case query.FieldTotalCPUUsage:
			var usage float64
			if usage, err = e.provider.GlobalCPUUsage(ctx); err == nil {
				s = formatPercent(usage)
			}
		case query.FieldCPUArch:
			var host *sysinfo.HostStat
			if host, err = hostInfo(); err == nil {
				s = host.KernelArch
			}
		default:
			err = &query.UnknownFieldError{Category: query.CategoryOS, Token: string(f)}
		}

		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// cpuExecutor answers queries for one resolved CPU.
type cpuExecutor struct {
	cpu sysinfo.CPUStat
}

func (e *cpuExecutor) Run(_ context.Context, fields []query.Field) ([]string, error) {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case query.FieldUsage:
			out = append(out, formatPercent(e.cpu.Usage))
		case query.FieldFrequency:
			out = append(out, strconv.Itoa(int(math.Round(e.cpu.FrequencyMHz))))
		case query.FieldBrand:
			out = append(out, e.cpu.Brand)
		case query.FieldVendorID:
			out = append(out, e.cpu.VendorID)
		default:
			return nil, &query.UnknownFieldError{Category: query.CategoryCPU, Token: string(f)}
		}
	}

	return out, nil
}

// memoryExecutor answers virtual memory queries.
type memoryExecutor struct {
	provider sysinfo.Provider
	unit     units.Unit
}

func (e *memoryExecutor) Run(ctx context.Context, fields []query.Field) ([]string, error) {
	if len(fields) == 0 {
		return []string{}, nil
	}

	stat, err := e.provider.Memory(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		var v uint64

		switch f {
		case query.FieldUsage:
			v = stat.Used
		case query.FieldTotal:
			v = stat.Total
		case query.FieldAvailable:
			v = stat.Available
		case query.FieldFree:
			v = stat.Free
		default:
			return nil, &query.UnknownFieldError{Category: query.CategoryMemory, Token: string(f)}
		}

		out = append(out, units.FormatBytes(float64(v), e.unit))
	}

	return out, nil
}

// swapExecutor answers swap queries.
type swapExecutor struct {
	provider sysinfo.Provider
	unit     units.Unit
}

func (e *swapExecutor) Run(ctx context.Context, fields []query.Field) ([]string, error) {
	if len(fields) == 0 {
		return []string{}, nil
	}

	stat, err := e.provider.Swap(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		var v uint64

		switch f {
		case query.FieldUsage:
			v = stat.Used
		case query.FieldTotal:
			v = stat.Total
		case query.FieldAvailable:
			v = stat.Free
		default:
			return nil, &query.UnknownFieldError{Category: query.CategorySwap, Token: string(f)}
		}

		out = append(out, units.FormatBytes(float64(v), e.unit))
	}

	return out, nil
}

// driveExecutor answers queries for one resolved drive.
type driveExecutor struct {
	drive sysinfo.DriveStat
	unit  units.Unit
}

func (e *driveExecutor) Run(_ context.Context, fields []query.Field) ([]string, error) {
	used := e.drive.Total - e.drive.Available

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case query.FieldUsage:
			out = append(out, units.FormatBytes(float64(used), e.unit))
		case query.FieldFs:
			out = append(out, e.drive.Fs)
		case query.FieldIsRemovable:
			out = append(out, formatBool(e.drive.Removable))
		case query.FieldKind:
			out = append(out, e.drive.Kind)
		case query.FieldMountPoint:
			out = append(out, e.drive.MountPoint)
		case query.FieldTotal:
			out = append(out, units.FormatBytes(float64(e.drive.Total), e.unit))
		case query.FieldAvailable:
			out = append(out, units.FormatBytes(float64(e.drive.Available), e.unit))
		default:
			return nil, &query.UnknownFieldError{Category: query.CategoryDrive, Token: string(f)}
		}
	}

	return out, nil
}

// sensorExecutor answers queries for one resolved temperature sensor.
type sensorExecutor struct {
	sensor sysinfo.SensorStat
}

func (e *sensorExecutor) Run(_ context.Context, fields []query.Field) ([]string, error) {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case query.FieldCriticalTemp:
			if e.sensor.Critical == nil {
				out = append(out, "")
			} else {
				out = append(out, formatPercent(*e.sensor.Critical))
			}
		case query.FieldMaxTemp:
			out = append(out, formatPercent(e.sensor.Max))
		case query.FieldTemperature:
			out = append(out, formatPercent(e.sensor.Temperature))
		default:
			return nil, &query.UnknownFieldError{Category: query.CategorySensor, Token: string(f)}
		}
	}

	return out, nil
}

// networkExecutor answers queries for one resolved network interface.
type networkExecutor struct {
	network sysinfo.NetworkStat
	unit    units.Unit
}

func (e *networkExecutor) Run(_ context.Context, fields []query.Field) ([]string, error) {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case query.FieldMacAddress:
			out = append(out, e.network.MacAddress)
		case query.FieldTotalIncomingErrors:
			out = append(out, strconv.FormatUint(e.network.IncomingErrors, 10))
		case query.FieldTotalOutcomingErrors:
			out = append(out, strconv.FormatUint(e.network.OutcomingErrors, 10))
		case query.FieldTotalReceivedData:
			out = append(out, units.FormatBytes(float64(e.network.BytesReceived), e.unit))
		case query.FieldTotalTransmittedData:
			out = append(out, units.FormatBytes(float64(e.network.BytesTransmitted), e.unit))
		case query.FieldTotalReceivedPackets:
			out = append(out, strconv.FormatUint(e.network.PacketsReceived, 10))
		case query.FieldTotalTransmittedPackets:
			out = append(out, strconv.FormatUint(e.network.PacketsTransmitted, 10))
		default:
			return nil, &query.UnknownFieldError{Category: query.CategoryNetwork, Token: string(f)}
		}
	}

	return out, nil
}

// listExecutor enumerates entity names for the list-* categories. The
// field list is ignored by contract.
type listExecutor struct {
	provider sysinfo.Provider
	category query.Category
}

func (e *listExecutor) Run(ctx context.Context, _ []query.Field) ([]string, error) {
	switch e.category {
	case query.CategoryListCPUs:
		cpus, err := e.provider.CPUs(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(cpus))
		for i, c := range cpus {
			names[i] = c.Name
		}
		return names, nil
	case query.CategoryListSensors:
		sensors, err := e.provider.Sensors(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(sensors))
		for i, s := range sensors {
			names[i] = s.Label
		}
		return names, nil
	case query.CategoryListNetworks:
		networks, err := e.provider.Networks(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(networks))
		for i, n := range networks {
			names[i] = n.Name
		}
		return names, nil
	default:
		return nil, fmt.Errorf("category %q is not a listing", e.category)
	}
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// capitalize upper-cases the first ASCII letter, turning an os-release id
// like "ubuntu" into a display name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
