package query

import (
	"fmt"
	"strings"
)

// Category identifies the hardware/OS subsystem a query addresses.
type Category string

const (
	CategoryOS           Category = "os"
	CategoryCPU          Category = "cpu"
	CategoryMemory       Category = "memory"
	CategorySwap         Category = "swap"
	CategoryDrive        Category = "drive"
	CategorySensor       Category = "sensor"
	CategoryNetwork      Category = "network"
	CategoryListCPUs     Category = "list-cpus"
	CategoryListSensors  Category = "list-sensors"
	CategoryListNetworks Category = "list-networks"
)

// Field is a normalized (lowercase) field token within a category.
type Field string

// OS fields.
const (
	FieldBootTime          Field = "boot-time"
	FieldLoadAverage1m     Field = "load-average1m"
	FieldLoadAverage5m     Field = "load-average5m"
	FieldLoadAverage15m    Field = "load-average15m"
	FieldOSName            Field = "name"
	FieldKernelVersion     Field = "kernel-version"
	FieldOSVersion         Field = "version"
	FieldLongOSVersion     Field = "long-version"
	FieldReleaseID         Field = "release-id"
	FieldHostName          Field = "host-name"
	FieldPhysicalCoreCount Field = "physical-core-count"
	FieldTotalCPUUsage     Field = "total-cpu-usage"
	FieldCPUArch           Field = "cpu-arch"
)

// CPU fields.
const (
	FieldUsage     Field = "usage"
	FieldFrequency Field = "frequency"
	FieldBrand     Field = "brand"
	FieldVendorID  Field = "vendor-id"
)

// Memory and swap fields. FieldUsage is shared with the CPU set.
const (
	FieldTotal     Field = "total"
	FieldAvailable Field = "available"
	FieldFree      Field = "free"
)

// Drive fields.
const (
	FieldFs          Field = "fs"
	FieldIsRemovable Field = "is-removable"
	FieldKind        Field = "kind"
	FieldMountPoint  Field = "mount-point"
)

// Sensor fields.
const (
	FieldCriticalTemp Field = "critical-temp"
	FieldMaxTemp      Field = "max-temp"
	FieldTemperature  Field = "temperature"
)

// Network fields.
const (
	FieldMacAddress              Field = "mac-address"
	FieldTotalIncomingErrors     Field = "total-incoming-errors"
	FieldTotalOutcomingErrors    Field = "total-outcoming-errors"
	FieldTotalReceivedData       Field = "total-received-data"
	FieldTotalTransmittedData    Field = "total-transmitted-data"
	FieldTotalReceivedPackets    Field = "total-received-packets"
	FieldTotalTransmittedPackets Field = "total-transmitted-packets"
)

// categoryFields maps each category to its closed, ordered field set.
// Listing categories have no addressable fields.
var categoryFields = map[Category][]Field{
	CategoryOS: {
		FieldBootTime,
		FieldLoadAverage1m,
		FieldLoadAverage5m,
		FieldLoadAverage15m,
		FieldOSName,
		FieldKernelVersion,
		FieldOSVersion,
		FieldLongOSVersion,
		FieldReleaseID,
		FieldHostName,
		FieldPhysicalCoreCount,
		FieldTotalCPUUsage,
		FieldCPUArch,
	},
	CategoryCPU: {
		FieldUsage,
		FieldFrequency,
		FieldBrand,
		FieldVendorID,
	},
	CategoryMemory: {
		FieldUsage,
		FieldTotal,
		FieldAvailable,
		FieldFree,
	},
	CategorySwap: {
		FieldUsage,
		FieldTotal,
		FieldAvailable,
	},
	CategoryDrive: {
		FieldUsage,
		FieldFs,
		FieldIsRemovable,
		FieldKind,
		FieldMountPoint,
		FieldTotal,
		FieldAvailable,
	},
	CategorySensor: {
		FieldCriticalTemp,
		FieldMaxTemp,
		FieldTemperature,
	},
	CategoryNetwork: {
		FieldMacAddress,
		FieldTotalIncomingErrors,
		FieldTotalOutcomingErrors,
		FieldTotalReceivedData,
		FieldTotalTransmittedData,
		FieldTotalReceivedPackets,
		FieldTotalTransmittedPackets,
	},
	CategoryListCPUs:     {},
	CategoryListSensors:  {},
	CategoryListNetworks: {},
}

// String returns the category token as used on the command line.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	_, ok := categoryFields[c]
	return ok
}

// NeedsTarget reports whether the category requires an entity name
// (a CPU name, drive device, sensor label or interface name).
func (c Category) NeedsTarget() bool {
	switch c {
	case CategoryCPU, CategoryDrive, CategorySensor, CategoryNetwork:
		return true
	}
	return false
}

// Listing reports whether the category enumerates entities instead of
// answering field queries.
func (c Category) Listing() bool {
	switch c {
	case CategoryListCPUs, CategoryListSensors, CategoryListNetworks:
		return true
	}
	return false
}

// SupportedCategories returns all categories in command order.
func SupportedCategories() []Category {
	return []Category{
		CategoryOS,
		CategoryCPU,
		CategoryMemory,
		CategorySwap,
		CategoryDrive,
		CategorySensor,
		CategoryNetwork,
		CategoryListCPUs,
		CategoryListSensors,
		CategoryListNetworks,
	}
}

// String returns the normalized field token.
func (f Field) String() string {
	return string(f)
}

// Fields returns the ordered field set of a category. Listing categories
// and unknown categories yield an empty set.
func Fields(c Category) []Field {
	fields := categoryFields[c]

	out := make([]Field, len(fields))
	copy(out, fields)

	return out
}

// UnknownFieldError reports a token that is not in the category's field set.
type UnknownFieldError struct {
	Category Category
	Token    string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("invalid %s query %q", e.Category, e.Token)
}

// Parse resolves a field token against a category's field set. Matching is
// case-insensitive; the returned Field is the normalized form. Tokens that
// do not name a field of the category fail with UnknownFieldError, as do
// all tokens against listing categories.
func Parse(c Category, token string) (Field, error) {
	normalized := Field(strings.ToLower(token))

	for _, f := range categoryFields[c] {
		if f == normalized {
			return f, nil
		}
	}

	return "", &UnknownFieldError{Category: c, Token: token}
}
