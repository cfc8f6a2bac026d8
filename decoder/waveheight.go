package decoder

import "k8s.io/utils/ptr"

type WaveHeightType int

const (
	WaveStateOfSurface WaveHeightType = iota
	WaveHeightReported
)

type WaveHeightUnit int

const (
	WaveMeters WaveHeightUnit = iota
	WaveFeet
)

// StateOfSurface is the WMO sea-state classification.
type StateOfSurface int

const (
	SurfaceNotReported StateOfSurface = iota
	SurfaceCalmGlassy
	SurfaceCalmRippled
	SurfaceSmooth
	SurfaceSlight
	SurfaceModerate
	SurfaceRough
	SurfaceVeryRough
	SurfaceHigh
	SurfaceVeryHigh
	SurfacePhenomenal
)

const feetPerMeter = 3.28

// upper wave height in meters for state-of-surface codes 0-9
var stateOfSurfaceHeight = [...]float64{0, 0.1, 0.5, 1.25, 2.5, 4, 6, 9, 14, 15}

// WaveHeight is a sea state given either as a state-of-surface code or as
// an explicit wave height.
type WaveHeight struct {
	waveType WaveHeightType
	// meters
	value *float64
}

// WaveHeightFromString parses "S<d>" or "H<1-3 digits>", with "/" runs
// for not reported.
func WaveHeightFromString(s string) *WaveHeight {
	if len(s) < 2 {
		return nil
	}
	switch s[0] {
	case 'S':
		if len(s) != 2 {
			return nil
		}
		return WaveHeightFromQukString(s[1:])
	case 'H':
		body := s[1:]
		if len(body) > 3 {
			return nil
		}
		w := &WaveHeight{waveType: WaveHeightReported}
		if allSlashes(body) {
			if len(body) != 3 {
				return nil
			}
			return w
		}
		v, ok := digits(body)
		if !ok {
			return nil
		}
		w.value = ptr.To(float64(v) / 10)
		return w
	}
	return nil
}

// WaveHeightFromQukString parses a bare state-of-surface digit or "/".
func WaveHeightFromQukString(s string) *WaveHeight {
	if len(s) != 1 {
		return nil
	}
	w := &WaveHeight{waveType: WaveStateOfSurface}
	if s == "/" {
		return w
	}
	code, ok := digits(s)
	if !ok {
		return nil
	}
	w.value = ptr.To(stateOfSurfaceHeight[code])
	return w
}

func (w WaveHeight) Type() WaveHeightType { return w.waveType }

func (w WaveHeight) IsReported() bool { return w.value != nil }

// IsValid is always true: every code that parses maps to a classification.
func (w WaveHeight) IsValid() bool { return true }

// WaveHeight returns the height in meters.
func (w WaveHeight) WaveHeight() *float64 { return w.value }

// ToUnit converts the height, nil when not reported.
func (w WaveHeight) ToUnit(unit WaveHeightUnit) *float64 {
	h := w.WaveHeight()
	if h == nil {
		return nil
	}
	if unit == WaveFeet {
		return ptr.To(*h * feetPerMeter)
	}
	return ptr.To(*h)
}

// StateOfSurface classifies the height. Both encodings share the same
// thresholds.
func (w WaveHeight) StateOfSurface() StateOfSurface {
	h := w.WaveHeight()
	if h == nil {
		return SurfaceNotReported
	}
	switch {
	case *h == 0:
		return SurfaceCalmGlassy
	case *h <= 0.1:
		return SurfaceCalmRippled
	case *h <= 0.5:
		return SurfaceSmooth
	case *h <= 1.25:
		return SurfaceSlight
	case *h <= 2.5:
		return SurfaceModerate
	case *h <= 4:
		return SurfaceRough
	case *h <= 6:
		return SurfaceVeryRough
	case *h <= 9:
		return SurfaceHigh
	case *h <= 14:
		return SurfaceVeryHigh
	}
	return SurfacePhenomenal
}
