package decoder

import (
	"regexp"
	"strconv"

	"k8s.io/utils/ptr"
)

type RunwayStateType int

const (
	RunwayStateNormal RunwayStateType = iota
	RunwayStateClrd
	RunwayStateSnoclo
	RunwayStateAerodromeSnoclo
)

type Deposits int

const (
	DepositsNotReported Deposits = iota
	DepositsClearAndDry
	DepositsDamp
	DepositsWetAndWaterPatches
	DepositsRimeAndFrostCovered
	DepositsDrySnow
	DepositsWetSnow
	DepositsSlush
	DepositsIce
	DepositsCompactedOrRolledSnow
	DepositsFrozenRutsOrRidges
)

type Extent int

const (
	ExtentNotReported Extent = iota
	ExtentNone
	ExtentLessThan10Percent
	ExtentFrom11To25Percent
	ExtentFrom26To50Percent
	ExtentMoreThan51Percent
	// ExtentReserved covers codes 3, 4, 6, 7 and 8.
	ExtentReserved
)

var extentCodes = map[byte]Extent{
	'0': ExtentNone,
	'1': ExtentLessThan10Percent,
	'2': ExtentFrom11To25Percent,
	'5': ExtentFrom26To50Percent,
	'9': ExtentMoreThan51Percent,
}

const (
	depthReservedCode       = 91
	depthNotOperationalCode = 99
)

// deposit depth in millimetres for codes 92-98
var depthCodes = map[int]int{92: 100, 93: 150, 94: 200, 95: 250, 96: 300, 97: 350, 98: 400}

var runwayStateRegex = regexp.MustCompile(
	`^(R\d\d[A-Z]?)/(?:([\d/])([\d/])(\d\d|//)(\d\d|//)|CLRD(\d\d|//)|(\d\d)?D|(SNOCLO))$`)

// RunwayStateGroup is the state of a runway: deposits, contamination
// extent, deposit depth and surface friction, or a cleared or closed
// runway.
type RunwayStateGroup struct {
	stateType      RunwayStateType
	runway         Runway
	deposits       Deposits
	extent         Extent
	depthCode      int
	depth          *int
	notOperational bool
	friction       SurfaceFriction
}

// ParseRunwayStateGroup parses an R##/ runway state group or SNOCLO in
// the METAR body.
func ParseRunwayStateGroup(token string, part ReportPart, _ *ReportMetadata) *RunwayStateGroup {
	if part != PartMETAR {
		return nil
	}
	if token == "SNOCLO" || token == "R/SNOCLO" {
		return &RunwayStateGroup{stateType: RunwayStateAerodromeSnoclo, runway: AllRunways()}
	}
	m := runwayStateRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	r := RunwayFromString(m[1], false)
	if r == nil {
		return nil
	}
	g := &RunwayStateGroup{runway: *r}
	switch {
	case m[8] != "":
		g.stateType = RunwayStateSnoclo
	case m[6] != "":
		g.stateType = RunwayStateClrd
		g.friction = *SurfaceFrictionFromString(m[6])
	case m[2] == "":
		// "R16/62D" or "R16/D"
		g.stateType = RunwayStateClrd
		if m[7] != "" {
			g.friction = *SurfaceFrictionFromString(m[7])
		}
	default:
		g.stateType = RunwayStateNormal
		g.deposits = depositsFromChar(m[2][0])
		g.extent = extentFromChar(m[3][0])
		g.setDepth(m[4])
		g.friction = *SurfaceFrictionFromString(m[5])
	}
	return g
}

func depositsFromChar(c byte) Deposits {
	if c == '/' {
		return DepositsNotReported
	}
	return Deposits(c-'0') + DepositsClearAndDry
}

func extentFromChar(c byte) Extent {
	if c == '/' {
		return ExtentNotReported
	}
	if e, ok := extentCodes[c]; ok {
		return e
	}
	return ExtentReserved
}

func (g *RunwayStateGroup) setDepth(s string) {
	if s == "//" {
		return
	}
	code, _ := strconv.Atoi(s)
	g.depthCode = code
	switch {
	case code <= 90:
		g.depth = ptr.To(code)
	case code == depthNotOperationalCode:
		g.notOperational = true
	default:
		if mm, ok := depthCodes[code]; ok {
			g.depth = ptr.To(mm)
		}
	}
}

func (g *RunwayStateGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *RunwayStateGroup) Type() RunwayStateType { return g.stateType }

func (g *RunwayStateGroup) Runway() Runway { return g.runway }

func (g *RunwayStateGroup) Deposits() Deposits { return g.deposits }

func (g *RunwayStateGroup) ContaminationExtent() Extent { return g.extent }

// DepositDepth is the deposit depth in millimetres, nil when not reported
// or when the runway is not operational.
func (g *RunwayStateGroup) DepositDepth() *int { return g.depth }

// NotOperational reports depth code 99: the runway is not operational due
// to snow, slush, ice, large drifts or clearance.
func (g *RunwayStateGroup) NotOperational() bool { return g.notOperational }

func (g *RunwayStateGroup) SurfaceFriction() SurfaceFriction { return g.friction }

// IsValid rejects reserved extent and depth codes and a bad runway or friction.
func (g *RunwayStateGroup) IsValid() bool {
	if !g.runway.IsValid() || !g.friction.IsValid() {
		return false
	}
	return g.extent != ExtentReserved && g.depthCode != depthReservedCode
}
