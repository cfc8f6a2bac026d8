package decoder

import "slices"

// TerrainDescription is the mountain or valley visibility reported in an
// Italian MT/MON/VAL remark.
type TerrainDescription int

const (
	TerrainNotSpecified TerrainDescription = iota
	MountainsObscured
	MountainsFree
	MountainsScatteredClouds
	MountainsCloudsOnPeaks
	MountainsSlopesCovered
	MountainsCumulonimbus
	MountainsGenerallyCovered
	MountainsCovered
	MountainsInvisible
	ValleysClear
	ValleysHaze
	ValleysHazeClearAbove
	ValleysFog
	ValleysScatteredFog
	ValleysScatteredClouds
	ValleysScatteredCloudsFogBelow
	ValleysSeaOfClouds
	ValleysInvisible
)

type TerrainTrend int

const (
	TerrainTrendNone TerrainTrend = iota
	TerrainTrendNoChange
	TerrainTrendCloudsIncreasing
	TerrainTrendCloudsStationary
	TerrainTrendCloudsRising
	TerrainTrendCloudsLowering
	TerrainTrendDiminishing
	TerrainTrendIncreasing
	TerrainTrendSlow
	TerrainTrendRapid
	TerrainTrendVariableRapid
	TerrainTrendVariableSlow
	TerrainTrendFogIntermittent
)

const maxTerrainDirections = 3

var terrainTrends = map[string]TerrainTrend{
	"NC":    TerrainTrendNoChange,
	"CUF":   TerrainTrendCloudsIncreasing,
	"STF":   TerrainTrendCloudsStationary,
	"ELEV":  TerrainTrendCloudsRising,
	"ABB":   TerrainTrendCloudsLowering,
	"DIM":   TerrainTrendDiminishing,
	"AUM":   TerrainTrendIncreasing,
	"SLW":   TerrainTrendSlow,
	"RAPID": TerrainTrendRapid,
}

type terrainState int

const (
	tvStart terrainState = iota
	tvMT
	tvMON
	tvMONCLD
	tvMONVERS
	tvMONCNS
	tvMONGEN
	tvVAL
	tvVALCLD
	tvVALMAR
	tvVALFoschiaSKC
	// "VAL CLD SCT NEBBIA": INF extends the description, INTER is a trend
	tvVALCldSctNebbia
	tvTrendVAR
	tvTrendNEBBIA
	// description complete; directions and a trend may follow
	tvComplete
	// nothing more accepted
	tvDone
)

// TerrainVisibility accumulates a mountain/valley visibility remark token
// by token. Unlike the groups, a rejected token never invalidates what was
// already accumulated.
type TerrainVisibility struct {
	state       terrainState
	description TerrainDescription
	directions  []Direction
	trend       TerrainTrend
}

// AddString offers the next token. It returns true when the token was
// consumed; on false the state is left untouched.
func (tv *TerrainVisibility) AddString(token string) bool {
	next, ok := tv.transition(token)
	if !ok {
		return false
	}
	next(tv)
	return true
}

type terrainStep func(*TerrainVisibility)

func toState(s terrainState) terrainStep {
	return func(tv *TerrainVisibility) { tv.state = s }
}

func complete(d TerrainDescription) terrainStep {
	return func(tv *TerrainVisibility) {
		tv.description = d
		tv.state = tvComplete
	}
}

func withTrend(t TerrainTrend) terrainStep {
	return func(tv *TerrainVisibility) {
		tv.trend = t
		tv.state = tvDone
	}
}

// transition computes the step for token without mutating tv.
func (tv *TerrainVisibility) transition(token string) (terrainStep, bool) {
	switch tv.state {
	case tvStart:
		switch token {
		case "MT":
			return toState(tvMT), true
		case "MON":
			return toState(tvMON), true
		case "VAL":
			return toState(tvVAL), true
		}

	case tvMT:
		if token == "OBSC" {
			return func(tv *TerrainVisibility) {
				tv.description = MountainsObscured
				tv.state = tvDone
			}, true
		}

	case tvMON:
		switch token {
		case "LIB":
			return complete(MountainsFree), true
		case "CLD":
			return toState(tvMONCLD), true
		case "VERS":
			return toState(tvMONVERS), true
		case "CNS":
			return toState(tvMONCNS), true
		case "GEN":
			return toState(tvMONGEN), true
		case "INC":
			return complete(MountainsCovered), true
		case "INVIS":
			return complete(MountainsInvisible), true
		}

	case tvMONCLD:
		switch token {
		case "SCT":
			return complete(MountainsScatteredClouds), true
		case "CIME":
			return complete(MountainsCloudsOnPeaks), true
		}

	case tvMONVERS:
		if token == "INC" {
			return complete(MountainsSlopesCovered), true
		}

	case tvMONCNS:
		if token == "POST" {
			return complete(MountainsCumulonimbus), true
		}

	case tvMONGEN:
		if token == "INC" {
			return complete(MountainsGenerallyCovered), true
		}

	case tvVAL:
		switch token {
		case "NIL":
			return complete(ValleysClear), true
		case "FOSCHIA":
			return complete(ValleysHaze), true
		case "NEBBIA":
			return complete(ValleysFog), true
		case "CLD":
			return toState(tvVALCLD), true
		case "MAR":
			return toState(tvVALMAR), true
		case "INVIS":
			return complete(ValleysInvisible), true
		}

	case tvVALCLD:
		if token == "SCT" {
			return complete(ValleysScatteredClouds), true
		}

	case tvVALMAR:
		if token == "CLD" {
			return complete(ValleysSeaOfClouds), true
		}

	case tvVALFoschiaSKC:
		if token == "SUP" {
			return complete(ValleysHazeClearAbove), true
		}

	case tvVALCldSctNebbia:
		switch token {
		case "INF":
			return complete(ValleysScatteredCloudsFogBelow), true
		case "INTER":
			return withTrend(TerrainTrendFogIntermittent), true
		}

	case tvTrendVAR:
		switch token {
		case "RAPID":
			return withTrend(TerrainTrendVariableRapid), true
		case "SLW":
			return withTrend(TerrainTrendVariableSlow), true
		}

	case tvTrendNEBBIA:
		if token == "INTER" {
			return withTrend(TerrainTrendFogIntermittent), true
		}

	case tvComplete:
		return tv.afterDescription(token)
	}
	return nil, false
}

func (tv *TerrainVisibility) afterDescription(token string) (terrainStep, bool) {
	if len(tv.directions) == 0 {
		switch {
		case tv.description == ValleysHaze && token == "SKC":
			return toState(tvVALFoschiaSKC), true
		case tv.description == ValleysFog && token == "SCT":
			return complete(ValleysScatteredFog), true
		case tv.description == ValleysScatteredClouds && token == "NEBBIA":
			return toState(tvVALCldSctNebbia), true
		}
	}
	if d := DirectionFromCardinalString(token, false, false); d != nil && d.Type() == DirectionCardinal {
		if len(tv.directions) == maxTerrainDirections {
			return nil, false
		}
		return func(tv *TerrainVisibility) {
			tv.directions = append(tv.directions, *d)
		}, true
	}
	if t, ok := terrainTrends[token]; ok {
		return withTrend(t), true
	}
	switch token {
	case "VAR":
		return toState(tvTrendVAR), true
	case "NEBBIA":
		return toState(tvTrendNEBBIA), true
	}
	return nil, false
}

func (tv *TerrainVisibility) Description() TerrainDescription { return tv.description }

func (tv *TerrainVisibility) Directions() []Direction { return slices.Clone(tv.directions) }

func (tv *TerrainVisibility) Trend() TerrainTrend { return tv.trend }

// IsValid is true once a complete description has been accumulated and no
// multi-token trend is left half-read.
func (tv *TerrainVisibility) IsValid() bool {
	return tv.state == tvComplete || tv.state == tvDone
}

// TerrainVisibilityGroup lets the report assembly route MT, MON and VAL
// remarks to a TerrainVisibility.
type TerrainVisibilityGroup struct {
	TerrainVisibility
}

// ParseTerrainVisibilityGroup starts a MON, VAL or MT remark.
func ParseTerrainVisibilityGroup(token string, part ReportPart, _ *ReportMetadata) *TerrainVisibilityGroup {
	if part != PartRMK {
		return nil
	}
	g := &TerrainVisibilityGroup{}
	if !g.AddString(token) {
		return nil
	}
	return g
}

func (g *TerrainVisibilityGroup) Append(token string, _ ReportPart, _ *ReportMetadata) AppendResult {
	if g.AddString(token) {
		return Appended
	}
	return NotAppended
}
