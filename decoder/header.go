package decoder

import "regexp"

var (
	locationRegex   = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)
	reportTimeRegex = regexp.MustCompile(`^(\d{6})Z$`)
)

// LocationGroup is the ICAO station identifier of the report.
type LocationGroup struct {
	location string
}

// ParseLocationGroup parses a four-character station code in the header.
func ParseLocationGroup(token string, part ReportPart, _ *ReportMetadata) *LocationGroup {
	if part != PartHeader || !locationRegex.MatchString(token) {
		return nil
	}
	return &LocationGroup{location: token}
}

func (g *LocationGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *LocationGroup) Location() string { return g.location }

func (g *LocationGroup) IsValid() bool { return true }

// ReportTimeGroup is the DDHHMMZ issue time of the report.
type ReportTimeGroup struct {
	time MetafTime
}

// ParseReportTimeGroup parses the DDHHMMZ issue time in the header.
func ParseReportTimeGroup(token string, part ReportPart, _ *ReportMetadata) *ReportTimeGroup {
	if part != PartHeader {
		return nil
	}
	m := reportTimeRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	t := TimeFromDDHHMM(m[1])
	if t == nil {
		return nil
	}
	return &ReportTimeGroup{time: *t}
}

func (g *ReportTimeGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *ReportTimeGroup) Time() MetafTime { return g.time }

func (g *ReportTimeGroup) IsValid() bool { return g.time.IsValid() }
