package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rmitchellscott/wxparse/decoder"
)

const notReported = "not reported"

// formatNumberWithCommas formats an integer with thousands separators
func formatNumberWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// formatNumber prints whole numbers with separators and keeps any fraction
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return formatNumberWithCommas(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDistance converts a Distance to a human-readable string
func formatDistance(d decoder.Distance) string {
	if !d.IsReported() {
		return notReported
	}

	value := formatNumber(*d.Distance())
	if whole, num, den, ok := d.Miles(); ok && den != 0 {
		value = fmt.Sprintf("%d/%d", num, den)
		if whole > 0 {
			value = fmt.Sprintf("%d %s", whole, value)
		}
	}

	switch d.Modifier() {
	case decoder.ModifierLessThan:
		value = "less than " + value
	case decoder.ModifierMoreThan:
		value = "more than " + value
	}
	return value + " " + distanceUnits[d.Unit()]
}

// formatSpeed converts a Speed to a human-readable string
func formatSpeed(s decoder.Speed) string {
	if !s.IsReported() {
		return notReported
	}
	return fmt.Sprintf("%d %s", *s.Speed(), speedUnits[s.Unit()])
}

// formatTemperature shows Celsius with the Fahrenheit conversion
func formatTemperature(t decoder.Temperature) string {
	if !t.IsReported() {
		return notReported
	}
	c := *t.Temperature()
	f := *t.ToUnit(decoder.TemperatureFahrenheit)
	if t.IsPrecise() {
		return fmt.Sprintf("%.1f°C | %.1f°F", c, f)
	}
	return fmt.Sprintf("%.0f°C | %.0f°F", c, f)
}

// formatPressure shows the reported value and its conversion to the
// opposite unit
func formatPressure(p decoder.Pressure) string {
	if !p.IsReported() {
		return notReported
	}
	v := *p.Pressure()
	switch p.Unit() {
	case decoder.PressureInchesHg:
		return fmt.Sprintf("%.2f inHg | %.1f hPa", v, *p.ToUnit(decoder.PressureHectopascal))
	case decoder.PressureMmHg:
		return fmt.Sprintf("%.0f mmHg | %.1f hPa", v, *p.ToUnit(decoder.PressureHectopascal))
	}
	return fmt.Sprintf("%.1f hPa | %.2f inHg", v, *p.ToUnit(decoder.PressureInchesHg))
}

// formatTime renders a report time as day and UTC clock time
func formatTime(t decoder.MetafTime) string {
	if d := t.Day(); d != nil {
		return fmt.Sprintf("day %d, %02d:%02d UTC", *d, t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%02d:%02d UTC", t.Hour(), t.Minute())
}
