package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/rmitchellscott/wxparse/decoder"
	"github.com/rmitchellscott/wxparse/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	r := report.Parse("KDEN 281253Z 18009KT 10SM FEW080 09/M03 A3005")
	out := FormatReport(r, displayOptions{showRaw: true})

	assert.Contains(t, out, "Station: KDEN\n")
	assert.Contains(t, out, "Type: METAR\n")
	assert.Contains(t, out, "Time: day 28, 12:53 UTC\n")
	assert.Contains(t, out, "Groups:\n")
	assert.Contains(t, out, "  HEADER KDEN    LocationGroup: station KDEN\n")
	assert.Contains(t, out, "  METAR  18009KT WindGroup: from 180° at 9 knots\n")
	assert.Contains(t, out, "VisibilityGroup: 10 statute miles\n")
	assert.Contains(t, out, "CloudGroup: few clouds at 8,000 feet\n")
	assert.Contains(t, out, "TemperatureGroup: temperature 9°C | 48°F, dew point -3°C | 27°F")
	assert.Contains(t, out, "PressureGroup: altimeter 30.05 inHg | 1017.6 hPa\n")
	assert.NotContains(t, out, "[implausible]")
	assert.NotContains(t, out, "Valid:")
}

func TestFormatReport_taf(t *testing.T) {
	t.Parallel()

	r := report.Parse("TAF KDFW 281125Z 2812/2912 16014G24KT P6SM BKN035CB")
	out := FormatReport(r, displayOptions{})

	assert.Contains(t, out, "Type: TAF\n")
	assert.Contains(t, out, "Valid: day 28, 12:00 UTC to day 29, 12:00 UTC\n")
	assert.Contains(t, out, "WindGroup: from 160° at 14 knots gusting to 24 knots\n")
	assert.Contains(t, out, "VisibilityGroup: more than 6 statute miles\n")
	assert.Contains(t, out, "CloudGroup: broken clouds at 3,500 feet (cumulonimbus), ceiling\n")
}

func TestFormatReport_invalidOnly(t *testing.T) {
	t.Parallel()

	r := report.Parse("METAR KXXX 281250Z 18010G05KT 9999 Q1013")
	out := FormatReport(r, displayOptions{invalidOnly: true})

	assert.Contains(t, out, "Implausible groups:\n")
	assert.Contains(t, out, "18010G05KT")
	assert.Contains(t, out, "[implausible]")
	assert.NotContains(t, out, "VisibilityGroup")
	assert.NotContains(t, out, "PressureGroup")

	clean := FormatReport(report.Parse("METAR KXXX 281250Z 18010KT"), displayOptions{invalidOnly: true})
	assert.Contains(t, clean, "  none\n")
}

func TestFormatReport_empty(t *testing.T) {
	t.Parallel()

	out := FormatReport(report.Parse(""), displayOptions{})
	assert.Contains(t, out, "Station: unknown\n")
	assert.Contains(t, out, "Type: UNKNOWN\n")
	assert.Contains(t, out, "  none\n")
}

func TestDescribeGroup(t *testing.T) {
	t.Parallel()

	r := report.Parse("KORD 281251Z 24012KT 2 1/2SM -SHRA BR OVC008 07/06 A2966 RMK AO2 PK WND 26035/1215 RAB25 SLP045 T00720061")
	descs := map[string]string{}
	for _, e := range r.Entries {
		descs[e.Raw] = describeGroup(e.Group)
	}

	assert.Equal(t, "2 1/2 statute miles", descs["2 1/2SM"])
	assert.Equal(t, "light showers rain, mist", descs["-SHRA BR"])
	assert.Equal(t, "overcast at 800 feet, ceiling", descs["OVC008"])
	assert.Equal(t, "automated station with precipitation discriminator", descs["AO2"])
	assert.Equal(t, "from 260° at 35 knots at 12:15 UTC", descs["PK WND 26035/1215"])
	assert.Equal(t, "rain began at day 28, 12:25 UTC", descs["RAB25"])
	assert.Equal(t, "sea level pressure 1004.5 hPa | 29.66 inHg", descs["SLP045"])
	assert.Equal(t, "temperature 7.2°C | 45.0°F, dew point 6.1°C | 43.0°F, humidity 93%", descs["T00720061"])

	assert.Equal(t, "not recognised", describeGroup(decoder.ParseUnknownGroup("XYZ", decoder.PartMETAR, nil)))
	assert.Equal(t, "calm", describeGroup(decoder.ParseWindGroup("00000KT", decoder.PartMETAR, nil)))
	assert.Equal(t, "sky clear", describeGroup(decoder.ParseCloudGroup("SKC", decoder.PartTAF, nil)))
	assert.Equal(t, "vertical visibility 200 feet", describeGroup(decoder.ParseCloudGroup("VV002", decoder.PartMETAR, nil)))
}

func TestFormatters_values(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234,567", formatNumberWithCommas(1234567))
	assert.Equal(t, "-1,234", formatNumberWithCommas(-1234))
	assert.Equal(t, "999", formatNumberWithCommas(999))
	assert.Equal(t, "0", formatNumberWithCommas(0))
	assert.Equal(t, "0.25", formatNumber(0.25))

	assert.Equal(t, "less than 1/4 statute miles", formatDistance(*decoder.DistanceFromMileString("M1/4SM")))
	assert.Equal(t, "more than 6 statute miles", formatDistance(*decoder.DistanceFromMileString("P6SM")))
	assert.Equal(t, "not reported", formatDistance(*decoder.DistanceFromMileString("////SM")))
	assert.Equal(t, "25,000 feet", formatDistance(*decoder.DistanceFromHeightString("250")))
	assert.Equal(t, "800 meters", formatDistance(*decoder.DistanceFromMeterString("0800")))

	assert.Equal(t, "12 meters per second", formatSpeed(*decoder.SpeedFromString("12", decoder.SpeedMetersPerSecond)))

	assert.Equal(t, "1013.0 hPa | 29.91 inHg", formatPressure(*decoder.PressureFromString("Q1013")))
	assert.Equal(t, "not reported", formatPressure(*decoder.PressureFromString("Q////")))

	assert.Equal(t, "-5°C | 23°F", formatTemperature(*decoder.TemperatureFromString("M05")))
	assert.Equal(t, "day 28, 06:05 UTC", formatTime(*decoder.TimeFromDDHHMM("280605")))
	assert.Equal(t, "06:05 UTC", formatTime(*decoder.TimeFromDDHHMM("0605")))
}

func TestProcessReport(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a := &app{out: &out, logger: zap.NewNop(), opts: displayOptions{showRaw: true}}

	r := a.processReport("SPECI KDEN 281310Z 18012KT 5SM BR OVC009 08/07 A3004")
	require.NotNil(t, r)
	assert.Equal(t, report.KindSPECI, r.Kind)
	assert.Contains(t, out.String(), "\nRaw SPECI:\nSPECI KDEN 281310Z 18012KT 5SM BR OVC009 08/07 A3004\n")
	assert.Contains(t, out.String(), "\nDecoded SPECI:\n")

	out.Reset()
	a.opts.showRaw = false
	a.processReport("")
	assert.NotContains(t, out.String(), "Raw report")
	assert.Contains(t, out.String(), "Decoded report:")
}
