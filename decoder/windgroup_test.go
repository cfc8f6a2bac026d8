package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendAll feeds tokens to g and returns the result of each call.
func appendAll(g Group, part ReportPart, md *ReportMetadata, tokens ...string) []AppendResult {
	results := make([]AppendResult, 0, len(tokens))
	for _, tok := range tokens {
		results = append(results, g.Append(tok, part, md))
	}
	return results
}

func TestWindGroup_surfaceWind(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("18005G10KT", PartMETAR, nil)
	require.NotNil(t, g)
	assert.Equal(t, WindSurface, g.Type())
	assert.Equal(t, 180, *g.Direction().Degrees())
	assert.Equal(t, 5, *g.WindSpeed().Speed())
	assert.Equal(t, SpeedKnots, g.WindSpeed().Unit())
	assert.Equal(t, 10, *g.GustSpeed().Speed())
	assert.True(t, g.IsValid())

	mps := ParseWindGroup("VRB03MPS", PartTAF, nil)
	require.NotNil(t, mps)
	assert.Equal(t, DirectionVariable, mps.Direction().Type())
	assert.Equal(t, SpeedMetersPerSecond, mps.WindSpeed().Unit())
	assert.False(t, mps.GustSpeed().IsReported())

	threeDigit := ParseWindGroup("270115G130KT", PartMETAR, nil)
	require.NotNil(t, threeDigit)
	assert.Equal(t, 115, *threeDigit.WindSpeed().Speed())
	assert.Equal(t, 130, *threeDigit.GustSpeed().Speed())

	notReported := ParseWindGroup("/////KT", PartMETAR, nil)
	require.NotNil(t, notReported)
	assert.False(t, notReported.Direction().IsReported())
	assert.False(t, notReported.WindSpeed().IsReported())
	assert.True(t, notReported.IsValid())

	assert.Nil(t, ParseWindGroup("18005KT", PartRMK, nil))
	assert.Nil(t, ParseWindGroup("18005KT", PartHeader, nil))
	assert.Nil(t, ParseWindGroup("18005XX", PartMETAR, nil))
}

func TestWindGroup_calm(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("00000KT", PartMETAR, nil)
	require.NotNil(t, g)
	assert.Equal(t, WindSurfaceCalm, g.Type())
	assert.False(t, g.GustSpeed().IsReported())
	assert.True(t, g.IsValid())
	assert.Equal(t, NotAppended, g.Append("180V240", PartMETAR, nil))
}

func TestWindGroup_gustValidity(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"18010G10KT", "18010G05KT", "18000G10KT", "37010KT"} {
		g := ParseWindGroup(token, PartMETAR, nil)
		require.NotNil(t, g, token)
		assert.False(t, g.IsValid(), token)
	}
}

func TestWindGroup_variableSector(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("24010KT", PartMETAR, nil)
	require.NotNil(t, g)
	assert.Equal(t, Appended, g.Append("210V270", PartMETAR, nil))
	assert.Equal(t, WindSurfaceWithVariableSector, g.Type())
	assert.Equal(t, 210, *g.VarSectorBegin().Degrees())
	assert.Equal(t, 270, *g.VarSectorEnd().Degrees())
	assert.Equal(t, NotAppended, g.Append("210V270", PartMETAR, nil))

	closed := ParseWindGroup("24010KT", PartMETAR, nil)
	assert.Equal(t, NotAppended, closed.Append("9999", PartMETAR, nil))
	assert.Equal(t, WindSurface, closed.Type())
	assert.Equal(t, 10, *closed.WindSpeed().Speed())
	assert.True(t, closed.IsValid())

	sector := ParseWindGroup("370V010", PartMETAR, nil)
	require.NotNil(t, sector)
	assert.Equal(t, WindVariableSector, sector.Type())
	assert.False(t, sector.IsValid())

	assert.True(t, ParseWindGroup("350V010", PartTAF, nil).IsValid())
}

func TestWindGroup_windShear(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("WS020/05065KT", PartTAF, nil)
	require.NotNil(t, g)
	assert.Equal(t, WindShear, g.Type())
	assert.InDelta(t, 2000, *g.Height().Distance(), 0.1)
	assert.Equal(t, 50, *g.Direction().Degrees())
	assert.Equal(t, 65, *g.WindSpeed().Speed())
	assert.True(t, g.IsValid())

	assert.False(t, ParseWindGroup("WS000/05065KT", PartMETAR, nil).IsValid())
}

func TestWindGroup_windShearInLowerLayers(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseWindGroup("WS", PartTAF, nil))

	g := ParseWindGroup("WS", PartMETAR, nil)
	require.NotNil(t, g)
	assert.False(t, g.IsValid())
	assert.Equal(t, []AppendResult{Appended, NotAppended}, appendAll(g, PartMETAR, nil, "R32", "BKN010"))
	assert.Equal(t, WindShearInLowerLayers, g.Type())
	assert.Equal(t, 32, g.Runway().Number())
	assert.True(t, g.IsValid())

	all := ParseWindGroup("WS", PartMETAR, nil)
	assert.Equal(t, []AppendResult{Appended, Appended}, appendAll(all, PartMETAR, nil, "ALL", "RWY"))
	assert.True(t, all.Runway().IsAllRunways())
	assert.True(t, all.IsValid())

	tkof := ParseWindGroup("WS", PartMETAR, nil)
	assert.Equal(t, []AppendResult{Appended, Appended}, appendAll(tkof, PartMETAR, nil, "TKOF", "RWY24L"))
	assert.Equal(t, ShearPhaseTakeoff, tkof.ShearPhase())
	assert.Equal(t, DesignatorLeft, tkof.Runway().Designator())

	bad := ParseWindGroup("WS", PartMETAR, nil)
	assert.Equal(t, GroupInvalidated, bad.Append("BKN010", PartMETAR, nil))
	badAll := ParseWindGroup("WS", PartMETAR, nil)
	assert.Equal(t, []AppendResult{Appended, GroupInvalidated}, appendAll(badAll, PartMETAR, nil, "ALL", "R32"))
}

func TestWindGroup_wsconds(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("WSCONDS", PartTAF, nil)
	require.NotNil(t, g)
	assert.Equal(t, WindWSCONDS, g.Type())
	assert.Nil(t, ParseWindGroup("WSCONDS", PartMETAR, nil))
}

func TestWindGroup_peakWind(t *testing.T) {
	t.Parallel()

	md := &ReportMetadata{ReportTime: TimeFromDDHHMM("281232")}

	g := ParseWindGroup("PK", PartRMK, md)
	require.NotNil(t, g)
	assert.Equal(t, []AppendResult{Appended, Appended, NotAppended},
		appendAll(g, PartRMK, md, "WND", "28045/1155", "SLP123"))
	assert.Equal(t, WindPeak, g.Type())
	assert.Equal(t, 280, *g.Direction().Degrees())
	assert.Equal(t, 45, *g.WindSpeed().Speed())
	require.NotNil(t, g.EventTime())
	assert.Equal(t, 11, g.EventTime().Hour())
	assert.Equal(t, 55, g.EventTime().Minute())
	assert.True(t, g.IsValid())

	minutes := ParseWindGroup("PK", PartRMK, md)
	assert.Equal(t, []AppendResult{Appended, Appended}, appendAll(minutes, PartRMK, md, "WND", "28045/15"))
	assert.Equal(t, 12, minutes.EventTime().Hour())
	assert.Equal(t, 15, minutes.EventTime().Minute())

	noReportTime := ParseWindGroup("PK", PartRMK, nil)
	assert.Equal(t, []AppendResult{Appended, GroupInvalidated},
		appendAll(noReportTime, PartRMK, nil, "WND", "28045/15"))

	bad := ParseWindGroup("PK", PartRMK, md)
	assert.Equal(t, GroupInvalidated, bad.Append("WIND", PartRMK, md))
	incomplete := ParseWindGroup("PK", PartRMK, md)
	assert.Equal(t, Appended, incomplete.Append("WND", PartRMK, md))
	assert.False(t, incomplete.IsValid())
}

func TestWindGroup_windShift(t *testing.T) {
	t.Parallel()

	md := &ReportMetadata{ReportTime: TimeFromDDHHMM("281232")}

	g := ParseWindGroup("WSHFT", PartRMK, md)
	require.NotNil(t, g)
	assert.Equal(t, []AppendResult{Appended, Appended}, appendAll(g, PartRMK, md, "30", "FROPA"))
	assert.Equal(t, WindShiftFROPA, g.Type())
	assert.Equal(t, 12, g.EventTime().Hour())
	assert.Equal(t, 30, g.EventTime().Minute())

	plain := ParseWindGroup("WSHFT", PartRMK, md)
	assert.Equal(t, []AppendResult{Appended, NotAppended}, appendAll(plain, PartRMK, md, "1130", "SLP123"))
	assert.Equal(t, WindShift, plain.Type())
	assert.True(t, plain.IsValid())

	bare := ParseWindGroup("WSHFT", PartRMK, md)
	assert.Equal(t, NotAppended, bare.Append("SLP123", PartRMK, md))
	assert.Nil(t, bare.EventTime())
	assert.True(t, bare.IsValid())

	noReportTime := ParseWindGroup("WSHFT", PartRMK, nil)
	assert.Equal(t, GroupInvalidated, noReportTime.Append("30", PartRMK, nil))
}

func TestWindGroup_dataEstimatedAndMisg(t *testing.T) {
	t.Parallel()

	for _, first := range []string{"WND", "WIND"} {
		for _, last := range []string{"ESTD", "ESTMD", "EST"} {
			g := ParseWindGroup(first, PartRMK, nil)
			require.NotNil(t, g)
			assert.Equal(t, []AppendResult{Appended, Appended}, appendAll(g, PartRMK, nil, "DATA", last))
			assert.Equal(t, WindDataEstimated, g.Type())
			assert.True(t, g.IsValid())
		}
	}

	misg := ParseWindGroup("WND", PartRMK, nil)
	assert.Equal(t, Appended, misg.Append("MISG", PartRMK, nil))
	assert.Equal(t, WindMisg, misg.Type())
	assert.True(t, misg.IsValid())

	bad := ParseWindGroup("WND", PartRMK, nil)
	assert.Equal(t, GroupInvalidated, bad.Append("MSG", PartRMK, nil))
	badData := ParseWindGroup("WND", PartRMK, nil)
	assert.Equal(t, []AppendResult{Appended, GroupInvalidated}, appendAll(badData, PartRMK, nil, "DATA", "MISG"))
}

func TestWindGroup_windAtHeight(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("WIND", PartRMK, nil)
	require.NotNil(t, g)
	assert.Equal(t, []AppendResult{Appended, Appended}, appendAll(g, PartRMK, nil, "2000FT", "27015KT"))
	assert.Equal(t, WindAtHeight, g.Type())
	assert.Equal(t, DistanceFeet, g.Height().Unit())
	assert.InDelta(t, 2000, *g.Height().Distance(), 0.1)
	assert.Equal(t, 15, *g.WindSpeed().Speed())
	assert.True(t, g.IsValid())

	bad := ParseWindGroup("WIND", PartRMK, nil)
	assert.Equal(t, []AppendResult{Appended, GroupInvalidated}, appendAll(bad, PartRMK, nil, "2000FT", "FAST"))
}

func TestWindGroup_runwayWind(t *testing.T) {
	t.Parallel()

	g := ParseWindGroup("RWY18", PartRMK, nil)
	require.NotNil(t, g)
	assert.Equal(t, []AppendResult{Appended, Appended, NotAppended},
		appendAll(g, PartRMK, nil, "18012KT", "150V210", "SLP123"))
	assert.Equal(t, WindRunwayWithVariableSector, g.Type())
	assert.Equal(t, 18, g.Runway().Number())
	assert.True(t, g.IsValid())

	plain := ParseWindGroup("R06", PartRMK, nil)
	assert.Equal(t, []AppendResult{Appended, NotAppended}, appendAll(plain, PartRMK, nil, "06008KT", "AO2"))
	assert.Equal(t, WindRunway, plain.Type())

	bad := ParseWindGroup("R06", PartRMK, nil)
	assert.Equal(t, GroupInvalidated, bad.Append("AO2", PartRMK, nil))
}
