package decoder

import (
	"fmt"
	"regexp"
	"strconv"
)

type RunwayDesignator int

const (
	DesignatorNone RunwayDesignator = iota
	DesignatorLeft
	DesignatorCenter
	DesignatorRight
	// DesignatorUnknown is any letter other than L, C or R.
	DesignatorUnknown
)

const (
	maxRunwayNumber   = 36
	allRunwaysNumber  = 88
	repeatedMsgNumber = 99
)

var runwayRegex = regexp.MustCompile(`^(?:RWY|R)(\d{2,3})([A-Z])?$`)

// Runway identifies a runway by number and parallel-runway designator.
type Runway struct {
	number     int
	designator RunwayDesignator
}

// RunwayFromString parses "R16", "R16L", "R88" and, when enableRwy is
// set, "RWY16L". Three-digit numbers and unknown designator letters are
// accepted here and fail IsValid.
func RunwayFromString(s string, enableRwy bool) *Runway {
	if !enableRwy && len(s) > 3 && s[:3] == "RWY" {
		return nil
	}
	m := runwayRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	r := &Runway{}
	r.number, _ = strconv.Atoi(m[1])
	switch m[2] {
	case "":
		r.designator = DesignatorNone
	case "L":
		r.designator = DesignatorLeft
	case "C":
		r.designator = DesignatorCenter
	case "R":
		r.designator = DesignatorRight
	default:
		r.designator = DesignatorUnknown
	}
	return r
}

// AllRunways is the runway value reported as "88" in some groups.
func AllRunways() Runway {
	return Runway{number: allRunwaysNumber}
}

func (r Runway) Number() int { return r.number }

func (r Runway) Designator() RunwayDesignator { return r.designator }

func (r Runway) IsAllRunways() bool {
	return r.number == allRunwaysNumber && r.designator == DesignatorNone
}

func (r Runway) IsMessageRepetition() bool {
	return r.number == repeatedMsgNumber && r.designator == DesignatorNone
}

func (r Runway) IsValid() bool {
	if r.designator == DesignatorUnknown {
		return false
	}
	if r.IsAllRunways() || r.IsMessageRepetition() {
		return true
	}
	return r.number <= maxRunwayNumber
}

func (r Runway) String() string {
	d := ""
	switch r.designator {
	case DesignatorLeft:
		d = "L"
	case DesignatorCenter:
		d = "C"
	case DesignatorRight:
		d = "R"
	case DesignatorUnknown:
		d = "?"
	}
	return fmt.Sprintf("%02d%s", r.number, d)
}
