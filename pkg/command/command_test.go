package command

import (
	"context"
	"errors"
	"testing"

	"github.com/inunix3/dshw/pkg/query"
	"github.com/inunix3/dshw/pkg/units"
)

func TestBindTargetlessCategories(t *testing.T) {
	categories := []query.Category{
		query.CategoryOS,
		query.CategoryMemory,
		query.CategorySwap,
		query.CategoryListCPUs,
		query.CategoryListSensors,
		query.CategoryListNetworks,
	}

	for _, cat := range categories {
		t.Run(string(cat), func(t *testing.T) {
			p := newFakeProvider()
			if _, err := Bind(context.Background(), p, cat, "", units.UnitBytes); err != nil {
				t.Errorf("Bind(%v) with no target failed: %v", cat, err)
			}
		})
	}
}

func TestBindTargetNotFound(t *testing.T) {
	tests := []struct {
		category query.Category
		name     string
	}{
		{query.CategoryCPU, "cpu99"},
		{query.CategoryDrive, "sdx1"},
		{query.CategorySensor, "nonexistent"},
		{query.CategoryNetwork, "wlan9"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			p := newFakeProvider()
			ex, err := Bind(context.Background(), p, tt.category, tt.name, units.UnitBytes)
			if err == nil {
				t.Fatalf("Bind(%v, %q) should have failed", tt.category, tt.name)
			}
			if ex != nil {
				t.Error("failed Bind must not return an executor")
			}

			var notFound *TargetNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("error %v is not a TargetNotFoundError", err)
			}
			if notFound.Category != tt.category || notFound.Name != tt.name {
				t.Errorf("TargetNotFoundError = {%v %q}, want {%v %q}",
					notFound.Category, notFound.Name, tt.category, tt.name)
			}
		})
	}
}

func TestBindCPURefreshesOnce(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryCPU, "cpu1", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if p.calls["cpus"] != 1 {
		t.Errorf("Bind refreshed CPUs %d times, want 1", p.calls["cpus"])
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldUsage, query.FieldFrequency, query.FieldBrand, query.FieldVendorID,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"12.34", "3600", "ACME 9000", "GenuineACME"}
	assertStrings(t, out, want)

	if p.calls["cpus"] != 1 {
		t.Errorf("Run triggered additional CPU refreshes (%d total), want 1", p.calls["cpus"])
	}
}

func TestMemoryFieldOrder(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryMemory, "", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{query.FieldTotal, query.FieldAvailable})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{"16000000000", "8000000000"})

	if p.calls["memory"] != 1 {
		t.Errorf("memory read %d times for one batch, want 1", p.calls["memory"])
	}
}

func TestMemoryUnitConversion(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryMemory, "", units.UnitGb)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{query.FieldTotal})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{"16.00"})
}

func TestSwapAvailableIsFree(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategorySwap, "", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldUsage, query.FieldTotal, query.FieldAvailable,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{"500000000", "2000000000", "1500000000"})
}

func TestDriveRendering(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryDrive, "/dev/sdb1", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldUsage, query.FieldFs, query.FieldIsRemovable,
		query.FieldKind, query.FieldMountPoint, query.FieldTotal, query.FieldAvailable,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{
		"32000000000", "vfat", "1", "HDD", "/mnt/usb", "64000000000", "32000000000",
	})
}

func TestSensorRendering(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategorySensor, "coretemp_core_0", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldTemperature, query.FieldMaxTemp, query.FieldCriticalTemp,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{"42.50", "80.00", "95.00"})
}

func TestSensorMissingCriticalRendersEmpty(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategorySensor, "acpitz", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{query.FieldCriticalTemp})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{""})
}

func TestNetworkRendering(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryNetwork, "eth0", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldMacAddress,
		query.FieldTotalIncomingErrors,
		query.FieldTotalOutcomingErrors,
		query.FieldTotalReceivedData,
		query.FieldTotalTransmittedData,
		query.FieldTotalReceivedPackets,
		query.FieldTotalTransmittedPackets,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{"aa:bb:cc:dd:ee:ff", "1", "2", "1000", "2000", "30", "40"})
}

func TestOSRendering(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryOS, "", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldBootTime,
		query.FieldOSName,
		query.FieldKernelVersion,
		query.FieldOSVersion,
		query.FieldLongOSVersion,
		query.FieldReleaseID,
		query.FieldHostName,
		query.FieldPhysicalCoreCount,
		query.FieldCPUArch,
		query.FieldLoadAverage1m,
		query.FieldLoadAverage5m,
		query.FieldLoadAverage15m,
		query.FieldTotalCPUUsage,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{
		"1700000000",
		"Ubuntu",
		"6.8.0",
		"24.04",
		"Ubuntu 24.04",
		"ubuntu",
		"box",
		"4",
		"x86_64",
		"0.50",
		"1.25",
		"2.00",
		"12.35",
	})

	// One batch reads each subsystem at most once.
	if p.calls["host"] != 1 {
		t.Errorf("host read %d times, want 1", p.calls["host"])
	}
	if p.calls["load"] != 1 {
		t.Errorf("load read %d times, want 1", p.calls["load"])
	}
}

func TestOSLoadUnavailableRendersEmpty(t *testing.T) {
	p := newFakeProvider()
	p.loadUnavailable = true

	ex, err := Bind(context.Background(), p, query.CategoryOS, "", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{
		query.FieldLoadAverage1m, query.FieldLoadAverage5m, query.FieldHostName,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertStrings(t, out, []string{"", "", "box"})
}

func TestRunEmptyFieldsNonListing(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryMemory, "", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Run with no fields returned %v, want empty", out)
	}
	if p.calls["memory"] != 0 {
		t.Errorf("empty run read memory %d times, want 0", p.calls["memory"])
	}
}

func TestListEnumeration(t *testing.T) {
	tests := []struct {
		category query.Category
		want     []string
	}{
		{query.CategoryListCPUs, []string{"cpu0", "cpu1"}},
		{query.CategoryListSensors, []string{"coretemp_core_0", "acpitz"}},
		{query.CategoryListNetworks, []string{"eth0", "lo"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			p := newFakeProvider()

			ex, err := Bind(context.Background(), p, tt.category, "", units.UnitBytes)
			if err != nil {
				t.Fatalf("Bind failed: %v", err)
			}

			// Field list is ignored by contract.
			out, err := ex.Run(context.Background(), []query.Field{query.FieldUsage})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			assertStrings(t, out, tt.want)
		})
	}
}

func TestBatchAbortsOnUnknownField(t *testing.T) {
	p := newFakeProvider()

	ex, err := Bind(context.Background(), p, query.CategoryMemory, "", units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{query.FieldTotal, query.Field("bogus")})
	if err == nil {
		t.Fatal("Run with an unknown field should have failed")
	}
	if out != nil {
		t.Errorf("failed batch returned partial output %v", out)
	}

	var unknownErr *query.UnknownFieldError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error %v is not an UnknownFieldError", err)
	}
}

func TestDuplicateNamesResolveToFirst(t *testing.T) {
	p := newFakeProvider()
	p.sensors[1].Label = p.sensors[0].Label // duplicate labels

	ex, err := Bind(context.Background(), p, query.CategorySensor, p.sensors[0].Label, units.UnitBytes)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	out, err := ex.Run(context.Background(), []query.Field{query.FieldTemperature})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// First match in snapshot order wins.
	assertStrings(t, out, []string{"42.50"})
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d values %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
