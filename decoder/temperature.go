package decoder

import (
	"math"

	"k8s.io/utils/ptr"
)

type TemperatureUnit int

const (
	TemperatureCelsius TemperatureUnit = iota
	TemperatureFahrenheit
)

// Temperature is a value in degrees Celsius. Precise values come from the
// remark T-group and carry tenths.
type Temperature struct {
	value    *float64
	freezing bool
	precise  bool
}

// TemperatureFromString parses "12", "M05" or "//". "M00" is kept as zero
// with the freezing flag set.
func TemperatureFromString(s string) *Temperature {
	if s == "//" {
		return &Temperature{}
	}
	neg := false
	if len(s) == 3 && s[0] == 'M' {
		neg = true
		s = s[1:]
	}
	if len(s) != 2 {
		return nil
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	t := &Temperature{value: ptr.To(float64(v))}
	if neg {
		*t.value = -*t.value
		t.freezing = true
	}
	return t
}

// TemperatureFromRemarkString parses the four characters of a T-group
// half: sign digit (0 or 1) and tenths of a degree, e.g. "1056" = -5.6.
func TemperatureFromRemarkString(s string) *Temperature {
	if len(s) != 4 {
		return nil
	}
	if s[0] != '0' && s[0] != '1' {
		return nil
	}
	v, ok := digits(s[1:])
	if !ok {
		return nil
	}
	val := float64(v) / 10
	t := &Temperature{precise: true}
	if s[0] == '1' {
		val = -val
		t.freezing = true
	}
	t.value = ptr.To(val)
	return t
}

// Temperature returns the value in degrees Celsius.
func (t Temperature) Temperature() *float64 { return t.value }

func (t Temperature) IsReported() bool { return t.value != nil }

// IsFreezing reports a value below zero, including "M00".
func (t Temperature) IsFreezing() bool {
	if t.value == nil {
		return false
	}
	return t.freezing || *t.value < 0
}

func (t Temperature) IsPrecise() bool { return t.precise }

// ToUnit converts the temperature, nil when not reported.
func (t Temperature) ToUnit(unit TemperatureUnit) *float64 {
	if t.value == nil {
		return nil
	}
	if unit == TemperatureFahrenheit {
		return ptr.To(*t.value*9/5 + 32)
	}
	return ptr.To(*t.value)
}

// RelativeHumidity computes relative humidity in percent from air
// temperature and dew point, nil when either is not reported.
func RelativeHumidity(air, dewPoint Temperature) *float64 {
	if air.value == nil || dewPoint.value == nil {
		return nil
	}
	if *dewPoint.value > *air.value {
		return ptr.To(100.0)
	}
	saturation := func(c float64) float64 {
		return 6.11 * math.Pow(10, 7.5*c/(237.7+c))
	}
	return ptr.To(100 * saturation(*dewPoint.value) / saturation(*air.value))
}
