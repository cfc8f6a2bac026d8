package decoder

import (
	"regexp"
	"strconv"

	"k8s.io/utils/ptr"
)

type DistanceUnit int

const (
	DistanceMeters DistanceUnit = iota
	DistanceStatuteMiles
	DistanceFeet
)

type DistanceModifier int

const (
	ModifierNone DistanceModifier = iota
	ModifierLessThan
	ModifierMoreThan
)

const (
	metersPerStatuteMile = 1609.347
	metersPerFoot        = 0.3048
	metersPerKilometer   = 1000.0
)

var (
	mileRegex     = regexp.MustCompile(`^([PM])?(?:(\d{1,2})|(\d)/(\d{1,2}))$`)
	kmRegex       = regexp.MustCompile(`^(\d{1,2})KM$`)
	rvrValueRegex = regexp.MustCompile(`^([PM])?(\d{4})$`)
)

// Distance is a visibility, RVR or height value. Statute-mile values keep
// the fraction they were reported with.
type Distance struct {
	modifier DistanceModifier
	value    *float64
	unit     DistanceUnit

	milesInteger int
	fracNum      int
	fracDen      int
}

// DistanceFromMeterString parses a four-digit visibility in meters.
// "9999" means 10 km or more, "0000" means less than 50 m.
func DistanceFromMeterString(s string) *Distance {
	if len(s) != 4 {
		return nil
	}
	if s == "////" {
		return &Distance{unit: DistanceMeters}
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	d := &Distance{unit: DistanceMeters, value: ptr.To(float64(v))}
	switch v {
	case 9999:
		d.value = ptr.To(10000.0)
		d.modifier = ModifierMoreThan
	case 0:
		d.value = ptr.To(50.0)
		d.modifier = ModifierLessThan
	}
	return d
}

// DistanceFromMileString parses statute-mile visibility with the SM suffix:
// "3SM", "P6SM", "M1/4SM", "1/2SM", "////SM".
func DistanceFromMileString(s string) *Distance {
	if len(s) < 3 || s[len(s)-2:] != "SM" {
		return nil
	}
	body := s[:len(s)-2]
	if body == "////" {
		return &Distance{unit: DistanceStatuteMiles}
	}
	return parseMiles(body, true)
}

// DistanceFromRemarkMiles parses a statute-mile value without the SM
// suffix as used in remarks: "2", "1/2".
func DistanceFromRemarkMiles(s string) *Distance {
	return parseMiles(s, false)
}

func parseMiles(body string, allowModifier bool) *Distance {
	m := mileRegex.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	if m[1] != "" && !allowModifier {
		return nil
	}
	d := &Distance{unit: DistanceStatuteMiles}
	switch m[1] {
	case "P":
		d.modifier = ModifierMoreThan
	case "M":
		d.modifier = ModifierLessThan
	}
	if m[2] != "" {
		d.milesInteger, _ = strconv.Atoi(m[2])
		d.value = ptr.To(float64(d.milesInteger))
		return d
	}
	d.fracNum, _ = strconv.Atoi(m[3])
	d.fracDen, _ = strconv.Atoi(m[4])
	if d.fracDen == 0 {
		return nil
	}
	d.value = ptr.To(float64(d.fracNum) / float64(d.fracDen))
	return d
}

// DistanceFromKmString parses "5KM".
func DistanceFromKmString(s string) *Distance {
	m := kmRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	km, _ := strconv.Atoi(m[1])
	return &Distance{unit: DistanceMeters, value: ptr.To(float64(km) * metersPerKilometer)}
}

// DistanceFromRvrString parses a runway visual range value: "P2000",
// "M0050", "0600", "////".
func DistanceFromRvrString(s string, feet bool) *Distance {
	unit := DistanceMeters
	if feet {
		unit = DistanceFeet
	}
	if s == "////" {
		return &Distance{unit: unit}
	}
	m := rvrValueRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	v, _ := strconv.Atoi(m[2])
	d := &Distance{unit: unit, value: ptr.To(float64(v))}
	switch m[1] {
	case "P":
		d.modifier = ModifierMoreThan
	case "M":
		d.modifier = ModifierLessThan
	}
	return d
}

// DistanceFromHeightString parses a three-digit height in hundreds of feet
// or "///".
func DistanceFromHeightString(s string) *Distance {
	if len(s) != 3 {
		return nil
	}
	if s == "///" {
		return &Distance{unit: DistanceFeet}
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	return &Distance{unit: DistanceFeet, value: ptr.To(float64(v * 100))}
}

// withFraction combines an integer statute-mile value with a fraction
// reported as a separate token ("1" + "1/2SM").
func (d Distance) withFraction(f Distance) (Distance, bool) {
	if d.unit != DistanceStatuteMiles || f.unit != DistanceStatuteMiles {
		return d, false
	}
	if d.value == nil || f.value == nil || d.fracDen != 0 || f.fracDen == 0 {
		return d, false
	}
	if f.modifier != ModifierNone {
		return d, false
	}
	d.fracNum = f.fracNum
	d.fracDen = f.fracDen
	d.value = ptr.To(float64(d.milesInteger) + float64(f.fracNum)/float64(f.fracDen))
	return d, true
}

func (d Distance) Modifier() DistanceModifier { return d.modifier }

func (d Distance) Unit() DistanceUnit { return d.unit }

// Distance returns the value in the reported unit.
func (d Distance) Distance() *float64 { return d.value }

// Miles returns the integer and fraction parts of a statute-mile value.
func (d Distance) Miles() (integer, numerator, denominator int, ok bool) {
	if d.unit != DistanceStatuteMiles || d.value == nil {
		return 0, 0, 0, false
	}
	return d.milesInteger, d.fracNum, d.fracDen, true
}

// isMilesInteger reports whether the value is a whole number of statute miles
// with no fraction.
func (d Distance) isMilesInteger() bool {
	return d.unit == DistanceStatuteMiles && d.value != nil && d.fracDen == 0
}

func (d Distance) IsReported() bool { return d.value != nil }

func (d Distance) IsValid() bool {
	if d.value != nil && *d.value < 0 {
		return false
	}
	if d.fracDen != 0 {
		if d.fracNum == 0 || d.fracNum >= d.fracDen {
			return false
		}
		switch d.fracDen {
		case 2, 4, 8, 16:
		default:
			return false
		}
	}
	return true
}

// ToUnit converts the value, nil when not reported.
func (d Distance) ToUnit(unit DistanceUnit) *float64 {
	if d.value == nil {
		return nil
	}
	meters := *d.value
	switch d.unit {
	case DistanceStatuteMiles:
		meters *= metersPerStatuteMile
	case DistanceFeet:
		meters *= metersPerFoot
	}
	switch unit {
	case DistanceStatuteMiles:
		return ptr.To(meters / metersPerStatuteMile)
	case DistanceFeet:
		return ptr.To(meters / metersPerFoot)
	}
	return ptr.To(meters)
}

// less compares two reported distances regardless of their units.
func (d Distance) less(o Distance) bool {
	a, b := d.ToUnit(DistanceMeters), o.ToUnit(DistanceMeters)
	if a == nil || b == nil {
		return false
	}
	return *a < *b
}
