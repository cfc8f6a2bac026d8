package decoder

import "k8s.io/utils/ptr"

type SpeedUnit int

const (
	SpeedKnots SpeedUnit = iota
	SpeedMetersPerSecond
	SpeedKilometersPerHour
	SpeedMilesPerHour
)

// knots per unit
var knotsPer = map[SpeedUnit]float64{
	SpeedKnots:             1,
	SpeedMetersPerSecond:   1.943844,
	SpeedKilometersPerHour: 0.539957,
	SpeedMilesPerHour:      0.868976,
}

// Speed is a wind speed with its unit.
type Speed struct {
	value *int
	unit  SpeedUnit
}

// SpeedUnitFromString maps KT, MPS and KMH.
func SpeedUnitFromString(s string) (SpeedUnit, bool) {
	switch s {
	case "KT":
		return SpeedKnots, true
	case "MPS":
		return SpeedMetersPerSecond, true
	case "KMH":
		return SpeedKilometersPerHour, true
	}
	return SpeedKnots, false
}

// SpeedFromString parses a two or three digit speed or "//".
func SpeedFromString(s string, unit SpeedUnit) *Speed {
	if s == "//" {
		return &Speed{unit: unit}
	}
	if len(s) != 2 && len(s) != 3 {
		return nil
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	return &Speed{value: ptr.To(v), unit: unit}
}

func (s Speed) Speed() *int { return s.value }

func (s Speed) Unit() SpeedUnit { return s.unit }

func (s Speed) IsReported() bool { return s.value != nil }

// ToUnit converts the speed, nil when not reported.
func (s Speed) ToUnit(unit SpeedUnit) *float64 {
	if s.value == nil {
		return nil
	}
	return ptr.To(float64(*s.value) * knotsPer[s.unit] / knotsPer[unit])
}
