package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rmitchellscott/wxparse/decoder"
	"github.com/rmitchellscott/wxparse/report"
)

// Color definitions using fatih/color
var (
	labelColor    = color.New(color.FgCyan)
	valueColor    = color.New(color.FgWhite)
	dateColor     = color.New(color.FgGreen)
	sectionColor  = color.New(color.FgBlue)
	numberColor   = color.New(color.FgGreen)
	functionColor = color.New(color.FgMagenta)
	warningColor  = color.New(color.FgYellow)
	expiredColor  = color.New(color.FgRed)
)

type displayOptions struct {
	showRaw     bool
	invalidOnly bool
}

// maxRawWidth caps the raw column so long remark runs do not push every
// other line to the right.
const maxRawWidth = 24

// FormatReport formats a decoded report for display with colors
func FormatReport(r *report.Report, opts displayOptions) string {
	var sb strings.Builder

	labelColor.Fprint(&sb, "Station: ")
	if r.Location != "" {
		sb.WriteString(r.Location)
	} else {
		warningColor.Fprint(&sb, "unknown")
	}
	sb.WriteString("\n")

	labelColor.Fprint(&sb, "Type: ")
	sb.WriteString(r.Kind.String() + "\n")

	if r.ReportTime != nil {
		labelColor.Fprint(&sb, "Time: ")
		dateColor.Fprint(&sb, formatTime(*r.ReportTime))
		sb.WriteString("\n")
	}

	if r.Validity != nil {
		labelColor.Fprint(&sb, "Valid: ")
		dateColor.Fprintf(&sb, "%s to %s", formatTime(r.Validity.From()), formatTime(r.Validity.Until()))
		sb.WriteString("\n")
	}

	entries := r.Entries
	title := "Groups:"
	if opts.invalidOnly {
		entries = r.Invalid()
		title = "Implausible groups:"
	}

	sb.WriteString("\n")
	sectionColor.Fprintln(&sb, title)
	if len(entries) == 0 {
		sb.WriteString("  none\n")
		return sb.String()
	}

	width := 0
	for _, e := range entries {
		width = max(width, min(len(e.Raw), maxRawWidth))
	}

	for _, e := range entries {
		sb.WriteString("  ")
		sectionColor.Fprintf(&sb, "%-6s ", e.Part)
		valueColor.Fprintf(&sb, "%-*s ", width, e.Raw)
		functionColor.Fprint(&sb, report.GroupName(e.Group))
		if desc := describeGroup(e.Group); desc != "" {
			sb.WriteString(": ")
			numberColor.Fprint(&sb, desc)
		}
		if !e.Valid {
			expiredColor.Fprint(&sb, " [implausible]")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// describeGroup converts a decoded group to a human-readable string
func describeGroup(g decoder.Group) string {
	switch g := g.(type) {
	case *decoder.LocationGroup:
		return "station " + g.Location()
	case *decoder.ReportTimeGroup:
		return formatTime(g.Time())
	case *report.ValidityGroup:
		return formatTime(g.From()) + " to " + formatTime(g.Until())
	case *decoder.FixedGroup:
		return specialConditions[g.Type()]
	case *decoder.WindGroup:
		return describeWind(g)
	case *decoder.VisibilityGroup:
		return describeVisibility(g)
	case *decoder.CloudGroup:
		return describeCloud(g)
	case *decoder.WeatherGroup:
		return describeWeather(g)
	case *decoder.TemperatureGroup:
		return describeTemperature(g)
	case *decoder.PressureGroup:
		return describePressure(g)
	case *decoder.RunwayStateGroup:
		return describeRunwayState(g)
	case *decoder.SeaSurfaceGroup:
		return describeSeaSurface(g)
	case *decoder.TerrainVisibilityGroup:
		return terrainDescriptions[g.Description()]
	case *decoder.UnknownGroup:
		return "not recognised"
	}
	return ""
}

// formatDirection renders a wind or visibility direction
func formatDirection(d decoder.Direction) string {
	switch d.Type() {
	case decoder.DirectionVariable:
		return "variable"
	case decoder.DirectionNotReported:
		return "direction not reported"
	case decoder.DirectionDegrees, decoder.DirectionCardinal:
		return fmt.Sprintf("from %d°", *d.Degrees())
	case decoder.DirectionOmitted:
		return ""
	}
	return d.String()
}

func describeWind(g *decoder.WindGroup) string {
	if g.Type() == decoder.WindSurfaceCalm {
		return "calm"
	}

	var parts []string
	if g.Runway() != nil {
		parts = append(parts, "runway "+g.Runway().String())
	}
	if g.Height().IsReported() {
		parts = append(parts, "at "+formatDistance(g.Height()))
	}
	if dir := formatDirection(g.Direction()); dir != "" {
		parts = append(parts, dir)
	}
	if g.WindSpeed().IsReported() {
		parts = append(parts, "at "+formatSpeed(g.WindSpeed()))
	}
	if g.GustSpeed().IsReported() {
		parts = append(parts, "gusting to "+formatSpeed(g.GustSpeed()))
	}
	if begin, end := g.VarSectorBegin().Degrees(), g.VarSectorEnd().Degrees(); begin != nil && end != nil {
		parts = append(parts, fmt.Sprintf("varying between %d° and %d°", *begin, *end))
	}
	if t := g.EventTime(); t != nil {
		parts = append(parts, "at "+formatTime(*t))
	}
	return strings.Join(parts, " ")
}

func describeVisibility(g *decoder.VisibilityGroup) string {
	var sb strings.Builder
	if g.Runway() != nil {
		sb.WriteString("runway " + g.Runway().String() + ": ")
	}
	if g.MaxVisibility().IsReported() {
		sb.WriteString("between " + formatDistance(g.MinVisibility()) + " and " + formatDistance(g.MaxVisibility()))
	} else if g.Visibility().IsReported() {
		sb.WriteString(formatDistance(g.Visibility()))
	}
	if dir := g.Direction(); dir.Type() == decoder.DirectionCardinal {
		fmt.Fprintf(&sb, " towards %d°", *dir.Degrees())
	}
	if trend, ok := rvrTrends[g.Trend()]; ok {
		sb.WriteString(" (" + trend + ")")
	}
	return strings.TrimSpace(sb.String())
}

func describeCloud(g *decoder.CloudGroup) string {
	if desc, ok := cloudLiterals[g.Type()]; ok {
		return desc
	}
	if g.Type() == decoder.CloudVerticalVisibility {
		return "vertical visibility " + formatDistance(g.Height())
	}

	desc := cloudCoverage[g.Amount()]
	if g.Height().IsReported() {
		desc += " at " + formatDistance(g.Height())
	}
	if t, ok := cloudTypes[g.ConvectiveType()]; ok {
		desc += " (" + t + ")"
	}
	if g.IsCeiling() {
		desc += ", ceiling"
	}
	return desc
}

func describeWeather(g *decoder.WeatherGroup) string {
	if desc, ok := weatherTypeDescriptions[g.Type()]; ok {
		return desc
	}

	var out []string
	for _, wp := range g.Phenomena() {
		var words []string
		if q, ok := qualifierDescriptions[wp.Qualifier()]; ok {
			words = append(words, q)
		}
		if d, ok := descriptorDescriptions[wp.Descriptor()]; ok {
			words = append(words, d)
		}
		for _, w := range wp.Weather() {
			words = append(words, weatherDescriptions[w])
		}
		switch wp.Event() {
		case decoder.EventBeginning:
			words = append(words, "began")
		case decoder.EventEnding:
			words = append(words, "ended")
		}
		if t := wp.Time(); t != nil {
			words = append(words, "at "+formatTime(*t))
		}
		out = append(out, strings.Join(words, " "))
	}
	return strings.Join(out, ", ")
}

func describeTemperature(g *decoder.TemperatureGroup) string {
	desc := "temperature " + formatTemperature(g.AirTemperature())
	if g.DewPoint().IsReported() {
		desc += ", dew point " + formatTemperature(g.DewPoint())
	}
	if rh := g.RelativeHumidity(); rh != nil {
		desc += fmt.Sprintf(", humidity %.0f%%", *rh)
	}
	return desc
}

func describePressure(g *decoder.PressureGroup) string {
	label := pressureLabels[g.Type()]
	if !g.AtmosphericPressure().IsReported() {
		return label
	}
	return label + " " + formatPressure(g.AtmosphericPressure())
}

func describeRunwayState(g *decoder.RunwayStateGroup) string {
	desc := "runway " + g.Runway().String()
	switch g.Type() {
	case decoder.RunwayStateClrd:
		desc += " cleared"
	case decoder.RunwayStateSnoclo:
		desc += " closed due to snow"
	case decoder.RunwayStateAerodromeSnoclo:
		return "aerodrome closed due to snow"
	}
	if depth := g.DepositDepth(); depth != nil {
		desc += fmt.Sprintf(", deposit depth %d mm", *depth)
	}
	if g.NotOperational() {
		desc += ", not operational"
	}
	if c := g.SurfaceFriction().Coefficient(); c != nil {
		desc += fmt.Sprintf(", friction %.2f", *c)
	}
	return desc
}

func describeSeaSurface(g *decoder.SeaSurfaceGroup) string {
	desc := "sea surface " + formatTemperature(g.SurfaceTemperature())
	if h := g.Waves().WaveHeight(); h != nil {
		desc += fmt.Sprintf(", waves %.1f m", *h)
	}
	return desc
}
