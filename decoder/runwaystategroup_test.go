package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunwayStateGroup(t *testing.T) {
	t.Parallel()

	g := ParseRunwayStateGroup("R16/290155", PartMETAR, nil)
	require.NotNil(t, g)
	assert.Equal(t, RunwayStateNormal, g.Type())
	assert.Equal(t, 16, g.Runway().Number())
	assert.Equal(t, DesignatorNone, g.Runway().Designator())
	assert.Equal(t, DepositsWetAndWaterPatches, g.Deposits())
	assert.Equal(t, ExtentMoreThan51Percent, g.ContaminationExtent())
	require.NotNil(t, g.DepositDepth())
	assert.Equal(t, 1, *g.DepositDepth())
	assert.InDelta(t, 0.55, *g.SurfaceFriction().Coefficient(), 0.001)
	assert.True(t, g.IsValid())
	assert.Equal(t, NotAppended, g.Append("R16/290155", PartMETAR, nil))

	for _, p := range []ReportPart{PartUnknown, PartHeader, PartTAF, PartRMK} {
		assert.Nil(t, ParseRunwayStateGroup("R16/290155", p, nil), p.String())
	}
}

func TestRunwayStateGroup_validity(t *testing.T) {
	t.Parallel()

	out := ParseRunwayStateGroup("R37/290155", PartMETAR, nil)
	require.NotNil(t, out)
	assert.False(t, out.Runway().IsValid())
	assert.False(t, out.IsValid())

	reserved := ParseRunwayStateGroup("R16/230155", PartMETAR, nil)
	require.NotNil(t, reserved)
	assert.Equal(t, ExtentReserved, reserved.ContaminationExtent())
	assert.False(t, reserved.IsValid())

	depth91 := ParseRunwayStateGroup("R16/299155", PartMETAR, nil)
	require.NotNil(t, depth91)
	assert.False(t, depth91.IsValid())

	friction := ParseRunwayStateGroup("R16/290197", PartMETAR, nil)
	require.NotNil(t, friction)
	assert.False(t, friction.IsValid())
}

func TestRunwayStateGroup_fields(t *testing.T) {
	t.Parallel()

	slashes := ParseRunwayStateGroup("R24L///////", PartMETAR, nil)
	require.NotNil(t, slashes)
	assert.Equal(t, DepositsNotReported, slashes.Deposits())
	assert.Equal(t, ExtentNotReported, slashes.ContaminationExtent())
	assert.Nil(t, slashes.DepositDepth())
	assert.False(t, slashes.SurfaceFriction().IsReported())
	assert.True(t, slashes.IsValid())

	deep := ParseRunwayStateGroup("R08/459492", PartMETAR, nil)
	require.NotNil(t, deep)
	assert.Equal(t, DepositsDrySnow, deep.Deposits())
	assert.Equal(t, ExtentFrom26To50Percent, deep.ContaminationExtent())
	assert.Equal(t, 200, *deep.DepositDepth())
	assert.Equal(t, BrakingMediumPoor, deep.SurfaceFriction().BrakingAction())

	closed := ParseRunwayStateGroup("R08/911299", PartMETAR, nil)
	require.NotNil(t, closed)
	assert.Equal(t, DepositsFrozenRutsOrRidges, closed.Deposits())
	assert.Equal(t, ExtentLessThan10Percent, closed.ContaminationExtent())
	assert.Equal(t, 12, *closed.DepositDepth())
	assert.Equal(t, FrictionUnreliable, closed.SurfaceFriction().Type())

	notOperational := ParseRunwayStateGroup("R08/4999//", PartMETAR, nil)
	require.NotNil(t, notOperational)
	assert.True(t, notOperational.NotOperational())
	assert.Nil(t, notOperational.DepositDepth())
	assert.True(t, notOperational.IsValid())
}

func TestRunwayStateGroup_clearedAndClosed(t *testing.T) {
	t.Parallel()

	clrd := ParseRunwayStateGroup("R24C/CLRD62", PartMETAR, nil)
	require.NotNil(t, clrd)
	assert.Equal(t, RunwayStateClrd, clrd.Type())
	assert.Equal(t, DesignatorCenter, clrd.Runway().Designator())
	assert.InDelta(t, 0.62, *clrd.SurfaceFriction().Coefficient(), 0.001)
	assert.Equal(t, DepositsNotReported, clrd.Deposits())

	clrdNotReported := ParseRunwayStateGroup("R24/CLRD//", PartMETAR, nil)
	require.NotNil(t, clrdNotReported)
	assert.False(t, clrdNotReported.SurfaceFriction().IsReported())

	alt := ParseRunwayStateGroup("R24/70D", PartMETAR, nil)
	require.NotNil(t, alt)
	assert.Equal(t, RunwayStateClrd, alt.Type())
	assert.InDelta(t, 0.70, *alt.SurfaceFriction().Coefficient(), 0.001)

	bare := ParseRunwayStateGroup("R24/D", PartMETAR, nil)
	require.NotNil(t, bare)
	assert.Equal(t, RunwayStateClrd, bare.Type())
	assert.False(t, bare.SurfaceFriction().IsReported())

	snoclo := ParseRunwayStateGroup("R24/SNOCLO", PartMETAR, nil)
	require.NotNil(t, snoclo)
	assert.Equal(t, RunwayStateSnoclo, snoclo.Type())
	assert.Equal(t, 24, snoclo.Runway().Number())

	for _, token := range []string{"SNOCLO", "R/SNOCLO"} {
		g := ParseRunwayStateGroup(token, PartMETAR, nil)
		require.NotNil(t, g, token)
		assert.Equal(t, RunwayStateAerodromeSnoclo, g.Type())
		assert.True(t, g.Runway().IsAllRunways())
		assert.Nil(t, ParseRunwayStateGroup(token, PartRMK, nil))
	}

	assert.Nil(t, ParseRunwayStateGroup("R24/CLRD6", PartMETAR, nil))
	assert.Nil(t, ParseRunwayStateGroup("R24/0600", PartMETAR, nil))
}
