package decoder

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// DirectionType tells how a Direction was reported.
type DirectionType int

const (
	DirectionOmitted DirectionType = iota
	DirectionNotReported
	DirectionVariable
	DirectionNDV
	DirectionDegrees
	DirectionCardinal
	DirectionOverhead
	DirectionAllQuadrants
	DirectionUnknown
)

// Cardinal is an eight-point compass direction, plus the special values
// a remark can report.
type Cardinal int

const (
	CardinalNotReported Cardinal = iota
	CardinalN
	CardinalS
	CardinalW
	CardinalE
	CardinalNW
	CardinalNE
	CardinalSW
	CardinalSE
	CardinalTrueN
	CardinalTrueW
	CardinalTrueS
	CardinalTrueE
	CardinalNDV
	CardinalVRB
	CardinalOHD
	CardinalALQDS
	CardinalUnknown
)

const maxDegrees = 360

// Direction is a wind or visibility direction.
type Direction struct {
	dirType DirectionType
	degrees int
}

var cardinalDegrees = map[string]int{
	"N": 360, "NE": 45, "E": 90, "SE": 135,
	"S": 180, "SW": 225, "W": 270, "NW": 315,
}

// DirectionFromCardinalString parses N, NE, E, SE, S, SW, W, NW, NDV, and
// optionally OHD, ALQDS and UNKNOWN.
func DirectionFromCardinalString(s string, enableOhdAlqds, enableUnknown bool) *Direction {
	if deg, ok := cardinalDegrees[s]; ok {
		return &Direction{dirType: DirectionCardinal, degrees: deg}
	}
	switch s {
	case "NDV":
		return &Direction{dirType: DirectionNDV}
	case "OHD":
		if enableOhdAlqds {
			return &Direction{dirType: DirectionOverhead}
		}
	case "ALQDS":
		if enableOhdAlqds {
			return &Direction{dirType: DirectionAllQuadrants}
		}
	case "UNKNOWN":
		if enableUnknown {
			return &Direction{dirType: DirectionUnknown}
		}
	}
	return nil
}

// DirectionFromDegreesString parses "ddd", "VRB" or "///".
func DirectionFromDegreesString(s string) *Direction {
	if len(s) != 3 {
		return nil
	}
	switch s {
	case "///":
		return &Direction{dirType: DirectionNotReported}
	case "VRB":
		return &Direction{dirType: DirectionVariable}
	}
	deg, ok := digits(s)
	if !ok {
		return nil
	}
	return &Direction{dirType: DirectionDegrees, degrees: deg}
}

func (d Direction) Type() DirectionType { return d.dirType }

// Degrees returns the direction in degrees when it was reported as degrees
// or as a cardinal direction.
func (d Direction) Degrees() *int {
	if d.dirType != DirectionDegrees && d.dirType != DirectionCardinal {
		return nil
	}
	return ptr.To(d.degrees)
}

func (d Direction) IsReported() bool {
	return d.dirType != DirectionOmitted && d.dirType != DirectionNotReported
}

func (d Direction) IsValid() bool {
	if d.dirType == DirectionDegrees && d.degrees > maxDegrees {
		return false
	}
	return true
}

// Cardinal maps the direction to an eight-point compass value. With
// trueDirections set, exact multiples of 90 degrees map to the TRUE_x
// values.
func (d Direction) Cardinal(trueDirections bool) Cardinal {
	switch d.dirType {
	case DirectionOmitted, DirectionNotReported:
		return CardinalNotReported
	case DirectionVariable:
		return CardinalVRB
	case DirectionNDV:
		return CardinalNDV
	case DirectionOverhead:
		return CardinalOHD
	case DirectionAllQuadrants:
		return CardinalALQDS
	case DirectionUnknown:
		return CardinalUnknown
	}
	if d.degrees > maxDegrees {
		return CardinalNotReported
	}
	if trueDirections {
		switch d.degrees {
		case 0, 360:
			return CardinalTrueN
		case 90:
			return CardinalTrueE
		case 180:
			return CardinalTrueS
		case 270:
			return CardinalTrueW
		}
	}
	const octant = 45
	switch (d.degrees + octant/2) % 360 / octant {
	case 0:
		return CardinalN
	case 1:
		return CardinalNE
	case 2:
		return CardinalE
	case 3:
		return CardinalSE
	case 4:
		return CardinalS
	case 5:
		return CardinalSW
	case 6:
		return CardinalW
	}
	return CardinalNW
}

func (d Direction) String() string {
	switch d.dirType {
	case DirectionNotReported:
		return "///"
	case DirectionVariable:
		return "VRB"
	case DirectionNDV:
		return "NDV"
	case DirectionOverhead:
		return "OHD"
	case DirectionAllQuadrants:
		return "ALQDS"
	case DirectionUnknown:
		return "UNKNOWN"
	case DirectionDegrees, DirectionCardinal:
		return strconv.Itoa(d.degrees)
	}
	return ""
}
