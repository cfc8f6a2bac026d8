package decoder

import "regexp"

var seaSurfaceRegex = regexp.MustCompile(`^W(M?\d\d|//)/([SH][\d/]{1,3})$`)

// SeaSurfaceGroup is the sea surface temperature and the state of the sea
// or the significant wave height.
type SeaSurfaceGroup struct {
	temperature Temperature
	waves       WaveHeight
}

// ParseSeaSurfaceGroup parses a W-group in the METAR body.
func ParseSeaSurfaceGroup(token string, part ReportPart, _ *ReportMetadata) *SeaSurfaceGroup {
	if part != PartMETAR {
		return nil
	}
	m := seaSurfaceRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	t := TemperatureFromString(m[1])
	w := WaveHeightFromString(m[2])
	if t == nil || w == nil {
		return nil
	}
	return &SeaSurfaceGroup{temperature: *t, waves: *w}
}

func (g *SeaSurfaceGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *SeaSurfaceGroup) SurfaceTemperature() Temperature { return g.temperature }

func (g *SeaSurfaceGroup) Waves() WaveHeight { return g.waves }

// IsValid checks the wave height or state of surface.
func (g *SeaSurfaceGroup) IsValid() bool { return g.waves.IsValid() }
