package decoder

import "k8s.io/utils/ptr"

type SurfaceFrictionType int

const (
	FrictionNotReported SurfaceFrictionType = iota
	FrictionCoefficient
	FrictionBrakingAction
	FrictionUnreliable
	// FrictionReserved covers codes 96-98.
	FrictionReserved
)

type BrakingAction int

const (
	BrakingNone BrakingAction = iota
	BrakingPoor
	BrakingMediumPoor
	BrakingMedium
	BrakingMediumGood
	BrakingGood
)

// lower coefficient bound for each braking action
var brakingCoefficient = map[BrakingAction]int{
	BrakingPoor:       0,
	BrakingMediumPoor: 26,
	BrakingMedium:     30,
	BrakingMediumGood: 36,
	BrakingGood:       40,
}

// SurfaceFriction is the friction/braking part of a runway state group.
type SurfaceFriction struct {
	frictionType SurfaceFrictionType
	// hundredths
	coefficient int
	code        int
}

// SurfaceFrictionFromString parses the two-character friction field.
func SurfaceFrictionFromString(s string) *SurfaceFriction {
	if len(s) != 2 {
		return nil
	}
	if s == "//" {
		return &SurfaceFriction{}
	}
	v, ok := digits(s)
	if !ok {
		return nil
	}
	f := &SurfaceFriction{code: v}
	switch {
	case v <= 90:
		f.frictionType = FrictionCoefficient
		f.coefficient = v
	case v >= 91 && v <= 95:
		f.frictionType = FrictionBrakingAction
		f.coefficient = brakingCoefficient[BrakingAction(v-90)]
	case v == 99:
		f.frictionType = FrictionUnreliable
	default:
		f.frictionType = FrictionReserved
	}
	return f
}

func (f SurfaceFriction) Type() SurfaceFrictionType { return f.frictionType }

func (f SurfaceFriction) IsReported() bool {
	return f.frictionType != FrictionNotReported
}

func (f SurfaceFriction) IsValid() bool {
	return f.frictionType != FrictionReserved
}

// Coefficient returns the friction coefficient (0.00-0.90). For braking
// action codes it is the lower bound of the matching range.
func (f SurfaceFriction) Coefficient() *float64 {
	if f.frictionType != FrictionCoefficient && f.frictionType != FrictionBrakingAction {
		return nil
	}
	return ptr.To(float64(f.coefficient) / 100)
}

// BrakingAction derives the braking action from the coefficient.
func (f SurfaceFriction) BrakingAction() BrakingAction {
	switch f.frictionType {
	case FrictionBrakingAction:
		return BrakingAction(f.code - 90)
	case FrictionCoefficient:
	default:
		return BrakingNone
	}
	switch {
	case f.coefficient < 26:
		return BrakingPoor
	case f.coefficient < 30:
		return BrakingMediumPoor
	case f.coefficient < 36:
		return BrakingMedium
	case f.coefficient < 40:
		return BrakingMediumGood
	}
	return BrakingGood
}
