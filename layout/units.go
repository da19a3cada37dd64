package layout

import (
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for lengths. The layout
// engine works in millimeters internally; theme values and config
// overrides are written with explicit units and converted at the edges.

// Unit represents the unit a length value was specified in.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to the target unit. Supported targets are
// UnitMM and UnitPT; unit-less values pass through numerically.
func (l Length) To(target Unit) float64 {
	switch l.Unit {
	case UnitMM:
		if target == UnitPT {
			return l.Value * MmToPt
		}
		return l.Value
	case UnitCM:
		mm := l.Value * 10
		if target == UnitPT {
			return mm * MmToPt
		}
		return mm
	case UnitIN:
		mm := l.Value * 25.4
		if target == UnitPT {
			return mm * MmToPt
		}
		return mm
	case UnitPT:
		if target == UnitPT {
			return l.Value
		}
		return l.Value * PtToMm
	default:
		return l.Value
	}
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

// ParseLength parses a length string like "54pt" or "19mm", preserving
// its unit. Unit-less numbers keep UnitNone; unparseable input yields a
// zero Length.
func ParseLength(value string) Length {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}
