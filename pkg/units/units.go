// Package units converts raw byte counts into user-selectable display
// units. SI units scale by powers of 1000, IEC units by powers of 1024,
// bits by a factor of 1/8.
package units

import (
	"strconv"
	"strings"
)

// Unit is a display data unit selectable on the command line.
type Unit string

const (
	UnitBits  Unit = "bits"
	UnitBytes Unit = "bytes"
	UnitKb    Unit = "kb"
	UnitKib   Unit = "kib"
	UnitMb    Unit = "mb"
	UnitMib   Unit = "mib"
	UnitGb    Unit = "gb"
	UnitGib   Unit = "gib"
	UnitTb    Unit = "tb"
	UnitTib   Unit = "tib"
)

// factors gives the byte count of one unit.
var factors = map[Unit]float64{
	UnitBits:  1.0 / 8.0,
	UnitBytes: 1,
	UnitKb:    1e3,
	UnitKib:   1 << 10,
	UnitMb:    1e6,
	UnitMib:   1 << 20,
	UnitGb:    1e9,
	UnitGib:   1 << 30,
	UnitTb:    1e12,
	UnitTib:   1 << 40,
}

// unitOrder keeps SupportedUnits deterministic.
var unitOrder = []Unit{
	UnitBits, UnitBytes,
	UnitKb, UnitKib,
	UnitMb, UnitMib,
	UnitGb, UnitGib,
	UnitTb, UnitTib,
}

// String returns the unit token as used on the command line.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether u is a known unit.
func (u Unit) IsValid() bool {
	_, ok := factors[u]
	return ok
}

// SupportedUnits returns all unit tokens in display order.
func SupportedUnits() []Unit {
	out := make([]Unit, len(unitOrder))
	copy(out, unitOrder)

	return out
}

// ParseUnit resolves a unit token case-insensitively.
func ParseUnit(token string) (Unit, bool) {
	u := Unit(strings.ToLower(token))
	if !u.IsValid() {
		return "", false
	}

	return u, true
}

// FormatBytes renders a byte count in the given unit. Bit and byte values
// render with no fractional digits; every larger unit renders with exactly
// two.
func FormatBytes(v float64, u Unit) string {
	converted := v / factors[u]

	switch u {
	case UnitBits, UnitBytes:
		return strconv.FormatFloat(converted, 'f', -1, 64)
	default:
		return strconv.FormatFloat(converted, 'f', 2, 64)
	}
}
