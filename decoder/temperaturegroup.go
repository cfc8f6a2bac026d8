package decoder

import "regexp"

type TemperatureType int

const (
	TemperatureObserved TemperatureType = iota
	// TemperaturePrecise is the remark T-group with tenths of a degree.
	TemperaturePrecise
)

var (
	temperatureRegex        = regexp.MustCompile(`^(M?\d\d|//)/(M?\d\d|//)?$`)
	preciseTemperatureRegex = regexp.MustCompile(`^T(\d{4})(\d{4})?$`)
)

// TemperatureGroup is the air temperature and dew point.
type TemperatureGroup struct {
	temperatureType TemperatureType
	air             Temperature
	dewPoint        Temperature
}

// ParseTemperatureGroup parses TT/DD in the METAR body and the T-group
// in remarks.
func ParseTemperatureGroup(token string, part ReportPart, _ *ReportMetadata) *TemperatureGroup {
	switch part {
	case PartMETAR:
		m := temperatureRegex.FindStringSubmatch(token)
		if m == nil {
			return nil
		}
		air := TemperatureFromString(m[1])
		if air == nil {
			return nil
		}
		g := &TemperatureGroup{temperatureType: TemperatureObserved, air: *air}
		if m[2] != "" {
			dew := TemperatureFromString(m[2])
			if dew == nil {
				return nil
			}
			g.dewPoint = *dew
		}
		return g
	case PartRMK:
		m := preciseTemperatureRegex.FindStringSubmatch(token)
		if m == nil {
			return nil
		}
		air := TemperatureFromRemarkString(m[1])
		if air == nil {
			return nil
		}
		g := &TemperatureGroup{temperatureType: TemperaturePrecise, air: *air}
		if m[2] != "" {
			dew := TemperatureFromRemarkString(m[2])
			if dew == nil {
				return nil
			}
			g.dewPoint = *dew
		}
		return g
	}
	return nil
}

func (g *TemperatureGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *TemperatureGroup) Type() TemperatureType { return g.temperatureType }

func (g *TemperatureGroup) AirTemperature() Temperature { return g.air }

func (g *TemperatureGroup) DewPoint() Temperature { return g.dewPoint }

// RelativeHumidity is nil unless both values are reported.
func (g *TemperatureGroup) RelativeHumidity() *float64 {
	return RelativeHumidity(g.air, g.dewPoint)
}

// IsValid rejects a dew point above the air temperature.
func (g *TemperatureGroup) IsValid() bool {
	air, dew := g.air.Temperature(), g.dewPoint.Temperature()
	if air == nil || dew == nil {
		return true
	}
	if *dew == *air {
		// M00 air with 00 dew point
		return !g.air.IsFreezing() || g.dewPoint.IsFreezing()
	}
	return *dew < *air
}
