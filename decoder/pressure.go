package decoder

import "k8s.io/utils/ptr"

type PressureUnit int

const (
	PressureHectopascal PressureUnit = iota
	PressureInchesHg
	PressureMmHg
)

const (
	hpaPerInHg = 33.8639
	hpaPerMmHg = 1.3332
)

// Pressure is an atmospheric pressure value.
type Pressure struct {
	value *float64
	unit  PressureUnit
}

// PressureFromString parses "Q1013", "A2992", "Q////" or "A////".
func PressureFromString(s string) *Pressure {
	if len(s) != 5 {
		return nil
	}
	var p Pressure
	switch s[0] {
	case 'Q':
		p.unit = PressureHectopascal
	case 'A':
		p.unit = PressureInchesHg
	default:
		return nil
	}
	if s[1:] == "////" {
		return &p
	}
	v, ok := digits(s[1:])
	if !ok {
		return nil
	}
	if p.unit == PressureInchesHg {
		p.value = ptr.To(float64(v) / 100)
	} else {
		p.value = ptr.To(float64(v))
	}
	return &p
}

// PressureFromForecastString parses "QNH2992INS".
func PressureFromForecastString(s string) *Pressure {
	if len(s) != 10 || s[:3] != "QNH" || s[7:] != "INS" {
		return nil
	}
	p := Pressure{unit: PressureInchesHg}
	if s[3:7] == "////" {
		return &p
	}
	v, ok := digits(s[3:7])
	if !ok {
		return nil
	}
	p.value = ptr.To(float64(v) / 100)
	return &p
}

// PressureFromSlpString parses the three digits of a sea-level pressure
// remark: tenths of hectopascal with the leading 9 or 10 dropped. Values
// of 500 and above take 900, anything below takes 1000.
func PressureFromSlpString(s string) *Pressure {
	if len(s) != 3 {
		return nil
	}
	p := Pressure{unit: PressureHectopascal}
	if s == "///" {
		return &p
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	base := 1000.0
	if v >= 500 {
		base = 900.0
	}
	p.value = ptr.To(base + float64(v)/10)
	return &p
}

// PressureFromQfeString parses a three-digit QFE in millimetres of mercury.
func PressureFromQfeString(s string) *Pressure {
	if len(s) != 3 {
		return nil
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	return &Pressure{value: ptr.To(float64(v)), unit: PressureMmHg}
}

func (p Pressure) Pressure() *float64 { return p.value }

func (p Pressure) Unit() PressureUnit { return p.unit }

func (p Pressure) IsReported() bool { return p.value != nil }

// ToUnit converts the pressure, nil when not reported.
func (p Pressure) ToUnit(unit PressureUnit) *float64 {
	if p.value == nil {
		return nil
	}
	hpa := *p.value
	switch p.unit {
	case PressureInchesHg:
		hpa = InHgToMillibars(hpa)
	case PressureMmHg:
		hpa *= hpaPerMmHg
	}
	switch unit {
	case PressureInchesHg:
		return ptr.To(hpa / hpaPerInHg)
	case PressureMmHg:
		return ptr.To(hpa / hpaPerMmHg)
	}
	return ptr.To(hpa)
}

// InHgToMillibars converts pressure from inches of mercury to millibars (hPa)
func InHgToMillibars(inHg float64) float64 {
	return inHg * hpaPerInHg
}
