package decoder

import "regexp"

type PressureType int

const (
	PressureObservedQNH PressureType = iota
	PressureForecastLowestQNH
	PressureObservedQFE
	PressureObservedSLP
	PressureSLPNO
	PressureMisg
	PressureRisingRapidly
	PressureFallingRapidly
)

var qfeRegex = regexp.MustCompile(`^QFE(\d{3})(?:/(\d{4}))?$`)

// PressureGroup is an altimeter setting, a forecast lowest QNH, a station
// pressure or a sea-level pressure remark.
type PressureGroup struct {
	pressureType PressureType
	pressure     Pressure
	// PRES seen, MISG still expected
	awaitingMisg bool
}

// ParsePressureGroup parses Q/A groups in a METAR, QNH..INS in a TAF and
// SLP, QFE and pressure tendency remarks.
func ParsePressureGroup(token string, part ReportPart, _ *ReportMetadata) *PressureGroup {
	switch part {
	case PartMETAR:
		return parseObservedQNH(token)
	case PartTAF:
		if p := PressureFromForecastString(token); p != nil {
			return &PressureGroup{pressureType: PressureForecastLowestQNH, pressure: *p}
		}
		return nil
	case PartRMK:
		return parseRemarkPressure(token)
	}
	return nil
}

func parseObservedQNH(token string) *PressureGroup {
	p := PressureFromString(token)
	if p == nil {
		return nil
	}
	return &PressureGroup{pressureType: PressureObservedQNH, pressure: *p}
}

func parseRemarkPressure(token string) *PressureGroup {
	switch token {
	case "SLPNO":
		return &PressureGroup{pressureType: PressureSLPNO, pressure: Pressure{unit: PressureHectopascal}}
	case "PRES":
		return &PressureGroup{pressureType: PressureMisg, awaitingMisg: true}
	case "PRESRR":
		return &PressureGroup{pressureType: PressureRisingRapidly}
	case "PRESFR":
		return &PressureGroup{pressureType: PressureFallingRapidly}
	}
	if len(token) == 6 && token[:3] == "SLP" {
		if p := PressureFromSlpString(token[3:]); p != nil {
			return &PressureGroup{pressureType: PressureObservedSLP, pressure: *p}
		}
		return nil
	}
	if m := qfeRegex.FindStringSubmatch(token); m != nil {
		// the hPa cross-reference in m[2] is only checked for shape
		if p := PressureFromQfeString(m[1]); p != nil {
			return &PressureGroup{pressureType: PressureObservedQFE, pressure: *p}
		}
		return nil
	}
	return parseObservedQNH(token)
}

// Append only serves "PRES MISG": once PRES is seen, MISG is the only
// acceptable continuation.
func (g *PressureGroup) Append(token string, _ ReportPart, _ *ReportMetadata) AppendResult {
	if !g.awaitingMisg {
		return NotAppended
	}
	if token != "MISG" {
		return GroupInvalidated
	}
	g.awaitingMisg = false
	return Appended
}

func (g *PressureGroup) Type() PressureType { return g.pressureType }

// AtmosphericPressure returns the pressure value; its IsReported is false
// for "////" sentinels and for the types that carry no value.
func (g *PressureGroup) AtmosphericPressure() Pressure { return g.pressure }

// IsValid is false for a PRES not followed by MISG.
func (g *PressureGroup) IsValid() bool { return !g.awaitingMisg }
