package decoder

import (
	"regexp"
	"strconv"

	"k8s.io/utils/ptr"
)

type WindType int

const (
	WindSurface WindType = iota
	WindSurfaceCalm
	WindVariableSector
	WindSurfaceWithVariableSector
	WindShear
	WindWSCONDS
	WindShift
	WindShiftFROPA
	WindPeak
	WindShearInLowerLayers
	WindDataEstimated
	WindAtHeight
	WindRunway
	WindRunwayWithVariableSector
	WindMisg
)

// WindShearPhase is the flight phase named in "WS TKOF RWY.." or
// "WS LDG RWY..".
type WindShearPhase int

const (
	ShearPhaseAny WindShearPhase = iota
	ShearPhaseTakeoff
	ShearPhaseLanding
)

var (
	windRegex       = regexp.MustCompile(`^(\d{3}|VRB|///)(\d{2,3}|//)(?:G(\d{2,3}))?(KT|MPS|KMH)$`)
	windVarRegex    = regexp.MustCompile(`^(\d{3})V(\d{3})$`)
	windShearRegex  = regexp.MustCompile(`^WS(\d{3})/(\d{3}|VRB)(\d{2,3})(?:G(\d{2,3}))?(KT|MPS|KMH)$`)
	peakWindRegex   = regexp.MustCompile(`^(\d{3})(\d{2,3})/(\d{2}|\d{4})$`)
	eventTimeRegex  = regexp.MustCompile(`^(\d{2}|\d{4})$`)
	windHeightRegex = regexp.MustCompile(`^(\d{2,5})(FT|M)$`)
)

// windState is the open sub-state of a wind group's append chain.
type windState int

const (
	windClosed windState = iota
	// optional states: a mismatch closes the group
	windAwaitVarSector
	windAwaitShiftTime
	windAwaitFropa
	// required states: a mismatch invalidates the group
	windAwaitShearRunway
	windAwaitShearAllRwy
	windAwaitShearPhaseRwy
	windAwaitPkWnd
	windAwaitPkValue
	windAwaitWndNext
	windAwaitWindNext
	windAwaitEstimated
	windAwaitHeightWind
	windAwaitRunwayWind
)

func (s windState) required() bool { return s >= windAwaitShearRunway }

// WindGroup covers surface wind, variable sectors, wind shear and the
// wind-related remarks.
type WindGroup struct {
	windType       WindType
	direction      Direction
	speed          Speed
	gust           Speed
	height         Distance
	varSectorBegin Direction
	varSectorEnd   Direction
	eventTime      *MetafTime
	runway         *Runway
	phase          WindShearPhase
	state          windState
}

type windValue struct {
	direction Direction
	speed     Speed
	gust      Speed
	calm      bool
}

// parseWindValue parses "dddss[Ggg]KT|MPS|KMH". A calm wind (00000) never
// carries a gust.
func parseWindValue(token string) *windValue {
	m := windRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	unit, _ := SpeedUnitFromString(m[4])
	dir := DirectionFromDegreesString(m[1])
	speed := SpeedFromString(m[2], unit)
	if dir == nil || speed == nil {
		return nil
	}
	w := &windValue{direction: *dir, speed: *speed, gust: Speed{unit: unit}}
	if m[1] == "000" && m[2] == "00" && m[3] == "" {
		w.calm = true
		return w
	}
	if m[3] != "" {
		gust := SpeedFromString(m[3], unit)
		if gust == nil {
			return nil
		}
		w.gust = *gust
	}
	return w
}

// ParseWindGroup parses surface wind, variable sectors and wind shear in
// the body and wind remarks such as PK WND and WSHFT.
func ParseWindGroup(token string, part ReportPart, _ *ReportMetadata) *WindGroup {
	switch part {
	case PartMETAR, PartTAF:
		return parseBodyWind(token, part)
	case PartRMK:
		return parseRemarkWind(token)
	}
	return nil
}

func parseBodyWind(token string, part ReportPart) *WindGroup {
	if w := parseWindValue(token); w != nil {
		g := &WindGroup{windType: WindSurface, state: windAwaitVarSector}
		g.setWind(w)
		if w.calm {
			g.windType = WindSurfaceCalm
			g.state = windClosed
		}
		return g
	}
	if m := windVarRegex.FindStringSubmatch(token); m != nil {
		g := &WindGroup{windType: WindVariableSector}
		g.setVarSector(m[1], m[2])
		return g
	}
	if m := windShearRegex.FindStringSubmatch(token); m != nil {
		unit, _ := SpeedUnitFromString(m[5])
		height := DistanceFromHeightString(m[1])
		dir := DirectionFromDegreesString(m[2])
		speed := SpeedFromString(m[3], unit)
		if height == nil || dir == nil || speed == nil {
			return nil
		}
		g := &WindGroup{windType: WindShear, height: *height, direction: *dir, speed: *speed, gust: Speed{unit: unit}}
		if m[4] != "" {
			gust := SpeedFromString(m[4], unit)
			if gust == nil {
				return nil
			}
			g.gust = *gust
		}
		return g
	}
	if part == PartTAF && token == "WSCONDS" {
		return &WindGroup{windType: WindWSCONDS}
	}
	if part == PartMETAR && token == "WS" {
		return &WindGroup{windType: WindShearInLowerLayers, state: windAwaitShearRunway}
	}
	return nil
}

func parseRemarkWind(token string) *WindGroup {
	switch token {
	case "PK":
		return &WindGroup{windType: WindPeak, state: windAwaitPkWnd}
	case "WSHFT":
		return &WindGroup{windType: WindShift, state: windAwaitShiftTime}
	case "WND":
		return &WindGroup{windType: WindMisg, state: windAwaitWndNext}
	case "WIND":
		return &WindGroup{windType: WindDataEstimated, state: windAwaitWindNext}
	}
	if r := RunwayFromString(token, true); r != nil {
		return &WindGroup{windType: WindRunway, runway: r, state: windAwaitRunwayWind}
	}
	return nil
}

func (g *WindGroup) setWind(w *windValue) {
	g.direction = w.direction
	g.speed = w.speed
	g.gust = w.gust
}

func (g *WindGroup) setVarSector(begin, end string) {
	g.varSectorBegin = *DirectionFromDegreesString(begin)
	g.varSectorEnd = *DirectionFromDegreesString(end)
}

func (g *WindGroup) Append(token string, _ ReportPart, md *ReportMetadata) AppendResult {
	switch g.state {
	case windClosed:
		return NotAppended

	case windAwaitVarSector:
		g.state = windClosed
		m := windVarRegex.FindStringSubmatch(token)
		if m == nil {
			return NotAppended
		}
		g.setVarSector(m[1], m[2])
		if g.windType == WindRunway {
			g.windType = WindRunwayWithVariableSector
		} else {
			g.windType = WindSurfaceWithVariableSector
		}
		return Appended

	case windAwaitShiftTime:
		if token == "FROPA" {
			g.windType = WindShiftFROPA
			g.state = windClosed
			return Appended
		}
		if !eventTimeRegex.MatchString(token) {
			g.state = windClosed
			return NotAppended
		}
		t, ok := resolveEventTime(token, md)
		if !ok {
			return GroupInvalidated
		}
		g.eventTime = &t
		g.state = windAwaitFropa
		return Appended

	case windAwaitFropa:
		g.state = windClosed
		if token != "FROPA" {
			return NotAppended
		}
		g.windType = WindShiftFROPA
		return Appended

	case windAwaitShearRunway:
		switch token {
		case "ALL":
			g.runway = ptr.To(AllRunways())
			g.state = windAwaitShearAllRwy
			return Appended
		case "TKOF":
			g.phase = ShearPhaseTakeoff
			g.state = windAwaitShearPhaseRwy
			return Appended
		case "LDG":
			g.phase = ShearPhaseLanding
			g.state = windAwaitShearPhaseRwy
			return Appended
		}
		r := RunwayFromString(token, true)
		if r == nil {
			return GroupInvalidated
		}
		g.runway = r
		g.state = windClosed
		return Appended

	case windAwaitShearAllRwy:
		if token != "RWY" {
			return GroupInvalidated
		}
		g.state = windClosed
		return Appended

	case windAwaitShearPhaseRwy:
		r := RunwayFromString(token, true)
		if r == nil {
			return GroupInvalidated
		}
		g.runway = r
		g.state = windClosed
		return Appended

	case windAwaitPkWnd:
		if token != "WND" {
			return GroupInvalidated
		}
		g.state = windAwaitPkValue
		return Appended

	case windAwaitPkValue:
		m := peakWindRegex.FindStringSubmatch(token)
		if m == nil {
			return GroupInvalidated
		}
		t, ok := resolveEventTime(m[3], md)
		if !ok {
			return GroupInvalidated
		}
		g.direction = *DirectionFromDegreesString(m[1])
		g.speed = *SpeedFromString(m[2], SpeedKnots)
		g.gust = Speed{unit: SpeedKnots}
		g.eventTime = &t
		g.state = windClosed
		return Appended

	case windAwaitWndNext:
		switch token {
		case "MISG":
			g.state = windClosed
			return Appended
		case "DATA":
			g.windType = WindDataEstimated
			g.state = windAwaitEstimated
			return Appended
		}
		return GroupInvalidated

	case windAwaitWindNext:
		if token == "DATA" {
			g.state = windAwaitEstimated
			return Appended
		}
		m := windHeightRegex.FindStringSubmatch(token)
		if m == nil {
			return GroupInvalidated
		}
		v, _ := strconv.Atoi(m[1])
		unit := DistanceFeet
		if m[2] == "M" {
			unit = DistanceMeters
		}
		g.windType = WindAtHeight
		g.height = Distance{unit: unit, value: ptr.To(float64(v))}
		g.state = windAwaitHeightWind
		return Appended

	case windAwaitEstimated:
		switch token {
		case "ESTD", "ESTMD", "EST":
			g.state = windClosed
			return Appended
		}
		return GroupInvalidated

	case windAwaitHeightWind:
		w := parseWindValue(token)
		if w == nil {
			return GroupInvalidated
		}
		g.setWind(w)
		g.state = windClosed
		return Appended

	case windAwaitRunwayWind:
		w := parseWindValue(token)
		if w == nil {
			return GroupInvalidated
		}
		g.setWind(w)
		g.state = windAwaitVarSector
		return Appended
	}
	return NotAppended
}

func (g *WindGroup) Type() WindType { return g.windType }

func (g *WindGroup) Direction() Direction { return g.direction }

func (g *WindGroup) WindSpeed() Speed { return g.speed }

func (g *WindGroup) GustSpeed() Speed { return g.gust }

// Height is the wind shear height or the height of a wind-at-height remark.
func (g *WindGroup) Height() Distance { return g.height }

func (g *WindGroup) VarSectorBegin() Direction { return g.varSectorBegin }

func (g *WindGroup) VarSectorEnd() Direction { return g.varSectorEnd }

// EventTime is the time of a peak wind or wind shift, nil if not given.
func (g *WindGroup) EventTime() *MetafTime { return g.eventTime }

func (g *WindGroup) Runway() *Runway { return g.runway }

func (g *WindGroup) ShearPhase() WindShearPhase { return g.phase }

// IsValid checks directions, speeds and that gusts exceed the mean speed.
func (g *WindGroup) IsValid() bool {
	if g.state.required() {
		return false
	}
	if !g.direction.IsValid() || !g.varSectorBegin.IsValid() || !g.varSectorEnd.IsValid() {
		return false
	}
	if gust := g.gust.Speed(); gust != nil {
		if *gust == 0 {
			return false
		}
		if speed := g.speed.Speed(); speed != nil && (*speed == 0 || *gust <= *speed) {
			return false
		}
	}
	if g.windType == WindShear {
		if h := g.height.Distance(); h == nil || *h == 0 {
			return false
		}
	}
	if g.runway != nil && !g.runway.IsValid() {
		return false
	}
	if g.eventTime != nil && !g.eventTime.IsValid() {
		return false
	}
	return true
}
