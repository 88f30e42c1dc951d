package command

import (
	"context"
	"fmt"

	"github.com/inunix3/dshw/pkg/query"
	"github.com/inunix3/dshw/pkg/sysinfo"
	"github.com/inunix3/dshw/pkg/units"
)

// Executor answers field queries for one bound category and target.
type Executor interface {
	// Run renders one string per field, position-matched to the input
	// order. A failure on any field aborts the whole batch with no
	// partial output. For listing categories Run ignores the field list
	// and enumerates entity names in snapshot order; for every other
	// category an empty field list yields an empty result.
	Run(ctx context.Context, fields []query.Field) ([]string, error)
}

// TargetNotFoundError reports a named entity absent from the snapshot.
type TargetNotFoundError struct {
	Category query.Category
	Name     string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Category, e.Name)
}

// Bind resolves a category and optional target against the provider's
// snapshot and returns an Executor for it. Targets match entity names
// exactly; if a snapshot reports duplicate names, the first match in
// snapshot iteration order wins. Binding a CPU target performs the
// two-phase usage refresh so that the resolved entity carries a valid
// usage delta.
func Bind(ctx context.Context, p sysinfo.Provider, cat query.Category, target string, unit units.Unit) (Executor, error) {
	switch cat {
	case query.CategoryOS:
		return &osExecutor{provider: p}, nil
	case query.CategoryMemory:
		return &memoryExecutor{provider: p, unit: unit}, nil
	case query.CategorySwap:
		return &swapExecutor{provider: p, unit: unit}, nil
	case query.CategoryCPU:
		cpus, err := p.CPUs(ctx)
		if err != nil {
			return nil, err
		}
		for i := range cpus {
			if cpus[i].Name == target {
				return &cpuExecutor{cpu: cpus[i]}, nil
			}
		}
		return nil, &TargetNotFoundError{Category: cat, Name: target}
	case query.CategoryDrive:
		drives, err := p.Drives(ctx)
		if err != nil {
			return nil, err
		}
		for i := range drives {
			if drives[i].Name == target {
				return &driveExecutor{drive: drives[i], unit: unit}, nil
			}
		}
		return nil, &TargetNotFoundError{Category: cat, Name: target}
	case query.CategorySensor:
		sensors, err := p.Sensors(ctx)
		if err != nil {
			return nil, err
		}
		for i := range sensors {
			if sensors[i].Label == target {
				return &sensorExecutor{sensor: sensors[i]}, nil
			}
		}
		return nil, &TargetNotFoundError{Category: cat, Name: target}
	case query.CategoryNetwork:
		networks, err := p.Networks(ctx)
		if err != nil {
			return nil, err
		}
		for i := range networks {
			if networks[i].Name == target {
				return &networkExecutor{network: networks[i], unit: unit}, nil
			}
		}
		return nil, &TargetNotFoundError{Category: cat, Name: target}
	case query.CategoryListCPUs, query.CategoryListSensors, query.CategoryListNetworks:
		return &listExecutor{provider: p, category: cat}, nil
	default:
		return nil, fmt.Errorf("unknown category %q", cat)
	}
}
