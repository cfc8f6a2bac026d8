package decoder

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allParts = []ReportPart{PartUnknown, PartHeader, PartMETAR, PartTAF, PartRMK}

// assertGatedTo checks that parse accepts token in the listed parts and
// rejects it everywhere else.
func assertGatedTo(t *testing.T, parse ParseFunc, token string, parts ...ReportPart) {
	t.Helper()
	for _, p := range allParts {
		g := parse(token, p, nil)
		if slices.Contains(parts, p) {
			assert.NotNil(t, g, "%s should parse in %s", token, p)
		} else {
			assert.Nil(t, g, "%s should not parse in %s", token, p)
		}
	}
}

func fixedParser(t string, p ReportPart, md *ReportMetadata) Group {
	return asGroup(ParseFixedGroup(t, p, md))
}

func TestFixedGroup_partGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  FixedType
		parts []ReportPart
	}{
		{"METAR", FixedMETAR, []ReportPart{PartHeader}},
		{"SPECI", FixedSPECI, []ReportPart{PartHeader}},
		{"TAF", FixedTAF, []ReportPart{PartHeader}},
		{"AMD", FixedAMD, []ReportPart{PartHeader}},
		{"COR", FixedCOR, []ReportPart{PartHeader}},
		{"AUTO", FixedAUTO, []ReportPart{PartMETAR}},
		{"R/SNOCLO", FixedRSNOCLO, []ReportPart{PartMETAR}},
		{"CAVOK", FixedCAVOK, []ReportPart{PartMETAR, PartTAF}},
		{"NSW", FixedNSW, []ReportPart{PartMETAR, PartTAF}},
		{"RMK", FixedRMK, []ReportPart{PartMETAR, PartTAF}},
		{"$", FixedMaintenanceIndicator, []ReportPart{PartMETAR, PartRMK}},
		{"WSCONDS", FixedWSCONDS, []ReportPart{PartTAF}},
		{"AO1", FixedAO1, []ReportPart{PartRMK}},
		{"AO2A", FixedAO2A, []ReportPart{PartRMK}},
		{"NOSPECI", FixedNOSPECI, []ReportPart{PartRMK}},
		{"FZRANO", FixedFZRANO, []ReportPart{PartRMK}},
		{"FROIN", FixedFROIN, []ReportPart{PartRMK}},
		{"CLD", FixedCLDMisg, []ReportPart{PartRMK}},
		{"TS/LTNG", FixedTSLTNGTempoUnavbl, []ReportPart{PartRMK}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assertGatedTo(t, fixedParser, tt.token, tt.parts...)
			g := ParseFixedGroup(tt.token, tt.parts[0], nil)
			require.NotNil(t, g)
			assert.Equal(t, tt.want, g.Type())
		})
	}

	assert.Nil(t, ParseFixedGroup("FOO", PartRMK, nil))
}

func TestFixedGroup_literalsTakeNoContinuation(t *testing.T) {
	t.Parallel()

	g := ParseFixedGroup("AUTO", PartMETAR, nil)
	require.NotNil(t, g)
	assert.True(t, g.IsValid())
	assert.Equal(t, NotAppended, g.Append("MISG", PartMETAR, nil))
	assert.True(t, g.IsValid())
}

func TestFixedGroup_misgIdioms(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"CLD", "ICG", "PCPN", "PRES", "RVR", "T", "TD", "VIS", "WND", "WX"} {
		t.Run(prefix, func(t *testing.T) {
			g := ParseFixedGroup(prefix, PartRMK, nil)
			require.NotNil(t, g)
			assert.False(t, g.IsValid())
			assert.Equal(t, Appended, g.Append("MISG", PartRMK, nil))
			assert.True(t, g.IsValid())
			assert.Equal(t, NotAppended, g.Append("MISG", PartRMK, nil))

			for _, other := range []string{"MSG", "MISSING", "AO2", "SLP123"} {
				g := ParseFixedGroup(prefix, PartRMK, nil)
				assert.Equal(t, GroupInvalidated, g.Append(other, PartRMK, nil), other)
			}
		})
	}
}

func TestFixedGroup_tsLtngTempoUnavbl(t *testing.T) {
	t.Parallel()

	g := ParseFixedGroup("TS/LTNG", PartRMK, nil)
	require.NotNil(t, g)
	assert.Equal(t, Appended, g.Append("TEMPO", PartRMK, nil))
	assert.False(t, g.IsValid(), "TS/LTNG TEMPO alone is incomplete")
	assert.Equal(t, Appended, g.Append("UNAVBL", PartRMK, nil))
	assert.True(t, g.IsValid())
	assert.Equal(t, FixedTSLTNGTempoUnavbl, g.Type())

	g = ParseFixedGroup("TS/LTNG", PartRMK, nil)
	assert.Equal(t, GroupInvalidated, g.Append("UNAVBL", PartRMK, nil))

	g = ParseFixedGroup("TS/LTNG", PartRMK, nil)
	assert.Equal(t, Appended, g.Append("TEMPO", PartRMK, nil))
	assert.Equal(t, GroupInvalidated, g.Append("TEMPO", PartRMK, nil))
}

func TestUnknownGroup(t *testing.T) {
	t.Parallel()

	for _, p := range allParts {
		g := ParseUnknownGroup("XYZZY", p, nil)
		require.NotNil(t, g)
		assert.Equal(t, "XYZZY", g.Token())
		assert.True(t, g.IsValid())
		assert.Equal(t, NotAppended, g.Append("MORE", p, nil))
	}
	assert.Nil(t, ParseUnknownGroup("", PartMETAR, nil))
}

func TestHeaderGroups(t *testing.T) {
	t.Parallel()

	loc := ParseLocationGroup("KDEN", PartHeader, nil)
	require.NotNil(t, loc)
	assert.Equal(t, "KDEN", loc.Location())
	assert.Nil(t, ParseLocationGroup("KDEN", PartMETAR, nil))
	assert.Nil(t, ParseLocationGroup("kden", PartHeader, nil))

	rt := ParseReportTimeGroup("281232Z", PartHeader, nil)
	require.NotNil(t, rt)
	assert.Equal(t, 12, rt.Time().Hour())
	assert.True(t, rt.IsValid())
	assert.False(t, ParseReportTimeGroup("282561Z", PartHeader, nil).IsValid())
	assert.Nil(t, ParseReportTimeGroup("281232", PartHeader, nil))
}

func TestParseGroup_dispatchOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		part  ReportPart
		want  Group
	}{
		{"KDEN", PartHeader, &LocationGroup{}},
		{"281232Z", PartHeader, &ReportTimeGroup{}},
		{"18005KT", PartMETAR, &WindGroup{}},
		{"9999", PartMETAR, &VisibilityGroup{}},
		{"AUTO", PartMETAR, &FixedGroup{}},
		{"BKN020", PartMETAR, &CloudGroup{}},
		{"-RA", PartMETAR, &WeatherGroup{}},
		{"12/M01", PartMETAR, &TemperatureGroup{}},
		{"Q1013", PartMETAR, &PressureGroup{}},
		{"R16/290155", PartMETAR, &RunwayStateGroup{}},
		{"W15/S4", PartMETAR, &SeaSurfaceGroup{}},
		{"MON", PartRMK, &TerrainVisibilityGroup{}},
		{"WND", PartRMK, &WindGroup{}},
		{"VIS", PartRMK, &VisibilityGroup{}},
		{"GIBBERISH", PartMETAR, &UnknownGroup{}},
	}
	for _, tt := range tests {
		g := ParseGroup(tt.token, tt.part, nil)
		require.NotNil(t, g, tt.token)
		assert.IsType(t, tt.want, g, tt.token)
	}
	assert.Nil(t, ParseGroup("", PartMETAR, nil))
}
