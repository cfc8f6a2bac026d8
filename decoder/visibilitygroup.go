package decoder

import "regexp"

type VisibilityType int

const (
	VisPrevailing VisibilityType = iota
	VisPrevailingNDV
	VisDirectional
	VisRVR
	VisVariableRVR
	VisVariablePrevailing
	VisVariableDirectional
	VisRunway
	VisVariableRunway
	VisSurface
	VisTower
	VisVISNO
	VisRVRNO
	VisMisg
	VisRvrMisg
)

// RvrTrend is the tendency letter of a runway visual range group.
type RvrTrend int

const (
	TrendNone RvrTrend = iota
	TrendUpward
	TrendDownward
	TrendNeutral
)

var (
	visMeterRegex = regexp.MustCompile(`^(\d{4}|////)(NDV|N|NE|E|SE|S|SW|W|NW)?$`)
	rvrRegex      = regexp.MustCompile(`^R(\d\d[LCR]?)/(////|[PM]?\d{4})(?:V([PM]?\d{4}))?(FT)?(?:/?([UDN]))?$`)
	visRangeRegex = regexp.MustCompile(`^(\d{1,2}|\d/\d{1,2})V(\d{1,2}|\d/\d{1,2})$`)
)

// visState is the open sub-state of a visibility group's append chain.
type visState int

const (
	visClosed visState = iota
	// optional states
	visRmkValueInteger
	visRmkRangeMaxInteger
	visRmkAfterValue
	visAwaitVisnoLocation
	// incomplete: a lone integer that never got its fraction
	visIncomplete
	visAwaitFraction
	// required states
	visAwaitVisKeyword
	visRmkAwaitValue
	visRmkAwaitDirValue
	visRmkAwaitPlainValue
	visAwaitRvrMisg
)

func (s visState) incomplete() bool { return s >= visIncomplete }

// VisibilityGroup covers prevailing, directional and runway visual range
// groups and the visibility remarks.
type VisibilityGroup struct {
	visType       VisibilityType
	visibility    Distance
	maxVisibility Distance
	direction     Direction
	runway        *Runway
	trend         RvrTrend
	state         visState
}

// ParseVisibilityGroup parses prevailing, directional and runway visual
// range groups in the body and VIS/RVR remarks.
func ParseVisibilityGroup(token string, part ReportPart, _ *ReportMetadata) *VisibilityGroup {
	switch part {
	case PartMETAR, PartTAF:
		return parseBodyVisibility(token, part)
	case PartRMK:
		return parseRemarkVisibility(token)
	}
	return nil
}

func parseBodyVisibility(token string, part ReportPart) *VisibilityGroup {
	if m := visMeterRegex.FindStringSubmatch(token); m != nil {
		d := DistanceFromMeterString(m[1])
		if d == nil {
			return nil
		}
		g := &VisibilityGroup{visType: VisPrevailing, visibility: *d}
		switch m[2] {
		case "":
		case "NDV":
			g.visType = VisPrevailingNDV
			g.direction = *DirectionFromCardinalString("NDV", false, false)
		default:
			if part != PartMETAR {
				return nil
			}
			g.visType = VisDirectional
			g.direction = *DirectionFromCardinalString(m[2], false, false)
		}
		return g
	}
	if d := DistanceFromMileString(token); d != nil {
		return &VisibilityGroup{visType: VisPrevailing, visibility: *d}
	}
	if d := DistanceFromKmString(token); d != nil {
		return &VisibilityGroup{visType: VisPrevailing, visibility: *d}
	}
	if len(token) == 1 {
		if d := DistanceFromRemarkMiles(token); d != nil {
			return &VisibilityGroup{visType: VisPrevailing, visibility: *d, state: visAwaitFraction}
		}
	}
	if part == PartMETAR {
		return parseRVR(token)
	}
	return nil
}

func parseRVR(token string) *VisibilityGroup {
	m := rvrRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	feet := m[4] == "FT"
	runway := RunwayFromString("R"+m[1], false)
	lo := DistanceFromRvrString(m[2], feet)
	if runway == nil || lo == nil {
		return nil
	}
	g := &VisibilityGroup{visType: VisRVR, visibility: *lo, runway: runway}
	if m[3] != "" {
		hi := DistanceFromRvrString(m[3], feet)
		if hi == nil {
			return nil
		}
		g.visType = VisVariableRVR
		g.maxVisibility = *hi
	}
	switch m[5] {
	case "U":
		g.trend = TrendUpward
	case "D":
		g.trend = TrendDownward
	case "N":
		g.trend = TrendNeutral
	}
	return g
}

func parseRemarkVisibility(token string) *VisibilityGroup {
	switch token {
	case "VIS":
		return &VisibilityGroup{visType: VisPrevailing, state: visRmkAwaitValue}
	case "SFC":
		return &VisibilityGroup{visType: VisSurface, state: visAwaitVisKeyword}
	case "TWR":
		return &VisibilityGroup{visType: VisTower, state: visAwaitVisKeyword}
	case "VISNO":
		return &VisibilityGroup{visType: VisVISNO, state: visAwaitVisnoLocation}
	case "RVRNO":
		return &VisibilityGroup{visType: VisRVRNO}
	case "RVR":
		return &VisibilityGroup{visType: VisRvrMisg, state: visAwaitRvrMisg}
	}
	return nil
}

func (g *VisibilityGroup) Append(token string, _ ReportPart, _ *ReportMetadata) AppendResult {
	switch g.state {
	case visClosed, visIncomplete:
		return NotAppended

	case visAwaitFraction:
		d := DistanceFromMileString(token)
		if d == nil {
			if _, isInt := digits(token); isInt && len(token) <= 2 {
				return GroupInvalidated
			}
			// a fraction missing its SM suffix
			if f := DistanceFromRemarkMiles(token); f != nil && f.fracDen != 0 {
				return GroupInvalidated
			}
			g.state = visIncomplete
			return NotAppended
		}
		combined, ok := g.visibility.withFraction(*d)
		if !ok {
			return GroupInvalidated
		}
		g.visibility = combined
		g.state = visClosed
		return Appended

	case visAwaitVisKeyword:
		if token != "VIS" {
			return GroupInvalidated
		}
		g.state = visRmkAwaitPlainValue
		return Appended

	case visAwaitRvrMisg:
		if token != "MISG" {
			return GroupInvalidated
		}
		g.state = visClosed
		return Appended

	case visAwaitVisnoLocation:
		g.state = visClosed
		if r := RunwayFromString(token, true); r != nil {
			g.runway = r
			return Appended
		}
		if d := DirectionFromCardinalString(token, false, false); d != nil {
			g.direction = *d
			return Appended
		}
		return NotAppended

	case visRmkAwaitValue:
		if token == "MISG" {
			g.visType = VisMisg
			g.state = visClosed
			return Appended
		}
		if d := DirectionFromCardinalString(token, false, false); d != nil {
			g.direction = *d
			g.state = visRmkAwaitDirValue
			return Appended
		}
		return g.appendRemarkValue(token)

	case visRmkAwaitDirValue, visRmkAwaitPlainValue:
		return g.appendRemarkValue(token)

	case visRmkValueInteger:
		if m := visRangeRegex.FindStringSubmatch(token); m != nil {
			lo := DistanceFromRemarkMiles(m[1])
			hi := DistanceFromRemarkMiles(m[2])
			if lo == nil || hi == nil {
				return GroupInvalidated
			}
			combined, ok := g.visibility.withFraction(*lo)
			if !ok {
				return GroupInvalidated
			}
			g.visibility = combined
			g.setMax(*hi)
			return Appended
		}
		if d := DistanceFromRemarkMiles(token); d != nil && !d.isMilesInteger() {
			combined, ok := g.visibility.withFraction(*d)
			if !ok {
				return GroupInvalidated
			}
			g.visibility = combined
			g.state = visRmkAfterValue
			return Appended
		}
		return g.appendAfterValue(token)

	case visRmkRangeMaxInteger:
		if d := DistanceFromRemarkMiles(token); d != nil && !d.isMilesInteger() {
			combined, ok := g.maxVisibility.withFraction(*d)
			if !ok {
				return GroupInvalidated
			}
			g.maxVisibility = combined
			g.state = visRmkAfterValue
			return Appended
		}
		return g.appendAfterValue(token)

	case visRmkAfterValue:
		return g.appendAfterValue(token)
	}
	return NotAppended
}

// appendRemarkValue takes the value after "VIS", "VIS <dir>", "SFC VIS" or
// "TWR VIS": "2", "1/2" or a range "1/2V2".
func (g *VisibilityGroup) appendRemarkValue(token string) AppendResult {
	if m := visRangeRegex.FindStringSubmatch(token); m != nil {
		lo := DistanceFromRemarkMiles(m[1])
		hi := DistanceFromRemarkMiles(m[2])
		if lo == nil || hi == nil {
			return GroupInvalidated
		}
		g.visibility = *lo
		g.setMax(*hi)
		return Appended
	}
	d := DistanceFromRemarkMiles(token)
	if d == nil {
		return GroupInvalidated
	}
	g.visibility = *d
	g.state = visRmkAfterValue
	if d.isMilesInteger() {
		g.state = visRmkValueInteger
	}
	g.refineRemarkType()
	return Appended
}

func (g *VisibilityGroup) setMax(hi Distance) {
	g.maxVisibility = hi
	g.state = visRmkAfterValue
	if hi.isMilesInteger() {
		g.state = visRmkRangeMaxInteger
	}
	g.refineRemarkType()
}

// appendAfterValue accepts the optional runway that closes a "VIS" remark.
func (g *VisibilityGroup) appendAfterValue(token string) AppendResult {
	g.state = visClosed
	if g.visType == VisSurface || g.visType == VisTower {
		return NotAppended
	}
	r := RunwayFromString(token, true)
	if r == nil {
		return NotAppended
	}
	g.runway = r
	g.refineRemarkType()
	return Appended
}

func (g *VisibilityGroup) refineRemarkType() {
	if g.visType == VisSurface || g.visType == VisTower {
		return
	}
	variable := g.maxVisibility.IsReported()
	switch {
	case g.runway != nil && variable:
		g.visType = VisVariableRunway
	case g.runway != nil:
		g.visType = VisRunway
	case g.direction.IsReported() && variable:
		g.visType = VisVariableDirectional
	case g.direction.IsReported():
		g.visType = VisDirectional
	case variable:
		g.visType = VisVariablePrevailing
	default:
		g.visType = VisPrevailing
	}
}

func (g *VisibilityGroup) Type() VisibilityType { return g.visType }

// Visibility is the single reported value, or the lower bound of a range.
func (g *VisibilityGroup) Visibility() Distance { return g.visibility }

func (g *VisibilityGroup) MinVisibility() Distance { return g.visibility }

// MaxVisibility is the upper bound of a variable group; not reported
// otherwise.
func (g *VisibilityGroup) MaxVisibility() Distance { return g.maxVisibility }

func (g *VisibilityGroup) Direction() Direction { return g.direction }

func (g *VisibilityGroup) Runway() *Runway { return g.runway }

func (g *VisibilityGroup) Trend() RvrTrend { return g.trend }

// IsValid is false for an unfinished group or an inverted range.
func (g *VisibilityGroup) IsValid() bool {
	if g.state.incomplete() {
		return false
	}
	if !g.visibility.IsValid() || !g.maxVisibility.IsValid() || !g.direction.IsValid() {
		return false
	}
	if g.runway != nil && !g.runway.IsValid() {
		return false
	}
	if g.visibility.IsReported() && g.maxVisibility.IsReported() && !g.visibility.less(g.maxVisibility) {
		return false
	}
	return true
}
