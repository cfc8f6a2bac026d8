package decoder

import (
	"regexp"
	"slices"
)

type WeatherType int

const (
	WeatherCurrent WeatherType = iota
	WeatherRecent
	WeatherEventType
	WeatherNSW
	WeatherPWINO
	WeatherTSNO
	WeatherMisg
	WeatherTSLTNGTempoUnavbl
)

// maxPhenomena caps how many tokens a current or recent weather group
// accumulates.
const maxPhenomena = 18

// weatherEventRegex matches one "<phenomena><B|E><time>" step of a recency
// remark. The phenomena may be omitted when it repeats the previous one,
// as in "RAB15E30".
var weatherEventRegex = regexp.MustCompile(`^([A-Z+\-]*?)([BE])(\d{4}|\d{2})`)

type weatherState int

const (
	weatherClosed weatherState = iota
	// optional
	weatherAccumulating
	// required
	weatherAwaitMisg
	weatherAwaitTempo
	weatherAwaitUnavbl
)

func (s weatherState) required() bool { return s >= weatherAwaitMisg }

// WeatherGroup is present, recent or forecast weather, a weather recency
// remark, or one of the weather-related literal remarks.
type WeatherGroup struct {
	weatherType WeatherType
	phenomena   []WeatherPhenomena
	state       weatherState
}

// ParseWeatherGroup parses weather phenomena in the body and weather
// remarks. Recency remarks with minute-only times need md.ReportTime.
func ParseWeatherGroup(token string, part ReportPart, md *ReportMetadata) *WeatherGroup {
	switch part {
	case PartMETAR, PartTAF:
		if token == "NSW" {
			return &WeatherGroup{weatherType: WeatherNSW}
		}
		wp := WeatherPhenomenaFromString(token, part == PartMETAR)
		if wp == nil {
			return nil
		}
		g := &WeatherGroup{weatherType: WeatherCurrent, state: weatherAccumulating}
		if wp.qualifier == QualifierRecent {
			g.weatherType = WeatherRecent
		}
		g.phenomena = append(g.phenomena, *wp)
		return g
	case PartRMK:
		switch token {
		case "PWINO":
			return &WeatherGroup{weatherType: WeatherPWINO}
		case "TSNO":
			return &WeatherGroup{weatherType: WeatherTSNO}
		case "WX":
			return &WeatherGroup{weatherType: WeatherMisg, state: weatherAwaitMisg}
		case "TS/LTNG":
			return &WeatherGroup{weatherType: WeatherTSLTNGTempoUnavbl, state: weatherAwaitTempo}
		}
		return parseWeatherEvents(token, md)
	}
	return nil
}

// parseWeatherEvents scans a recency remark such as "RAB1200" or
// "SHRAB05E30SHSNB20E55". Minute-only times take the report hour; without
// a report time the token is not recognised.
func parseWeatherEvents(token string, md *ReportMetadata) *WeatherGroup {
	g := &WeatherGroup{weatherType: WeatherEventType}
	prev := ""
	for rest := token; rest != ""; {
		m := weatherEventRegex.FindStringSubmatch(rest)
		if m == nil {
			return nil
		}
		codes := m[1]
		if codes == "" {
			codes = prev
		}
		wp := WeatherPhenomenaFromString(codes, false)
		if wp == nil {
			return nil
		}
		t, ok := resolveEventTime(m[3], md)
		if !ok {
			return nil
		}
		wp.event = EventBeginning
		if m[2] == "E" {
			wp.event = EventEnding
		}
		wp.time = &t
		g.phenomena = append(g.phenomena, *wp)
		prev = codes
		rest = rest[len(m[0]):]
	}
	return g
}

func (g *WeatherGroup) Append(token string, part ReportPart, _ *ReportMetadata) AppendResult {
	switch g.state {
	case weatherClosed:
		return NotAppended

	case weatherAccumulating:
		if len(g.phenomena) == maxPhenomena {
			g.state = weatherClosed
			return NotAppended
		}
		wp := WeatherPhenomenaFromString(token, part == PartMETAR)
		if wp == nil || (wp.qualifier == QualifierRecent) != (g.weatherType == WeatherRecent) {
			g.state = weatherClosed
			return NotAppended
		}
		g.phenomena = append(g.phenomena, *wp)
		return Appended

	case weatherAwaitMisg:
		if token != "MISG" {
			return GroupInvalidated
		}
		g.state = weatherClosed
		return Appended

	case weatherAwaitTempo:
		if token != "TEMPO" {
			return GroupInvalidated
		}
		g.state = weatherAwaitUnavbl
		return Appended

	case weatherAwaitUnavbl:
		if token != "UNAVBL" {
			return GroupInvalidated
		}
		g.state = weatherClosed
		return Appended
	}
	return NotAppended
}

func (g *WeatherGroup) Type() WeatherType { return g.weatherType }

func (g *WeatherGroup) Phenomena() []WeatherPhenomena { return slices.Clone(g.phenomena) }

// IsValid checks every phenomena and that required words followed.
func (g *WeatherGroup) IsValid() bool {
	if g.state.required() {
		return false
	}
	for _, wp := range g.phenomena {
		if !wp.IsValid() {
			return false
		}
	}
	return true
}
