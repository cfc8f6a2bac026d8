package decoder

import "regexp"

type CloudType int

const (
	CloudLayer CloudType = iota
	CloudVerticalVisibility
	CloudNSC
	CloudNCD
	CloudSKC
	CloudCLR
)

type CloudAmount int

const (
	AmountNotReported CloudAmount = iota
	AmountFew
	AmountScattered
	AmountBroken
	AmountOvercast
)

type ConvectiveType int

const (
	ConvectiveNone ConvectiveType = iota
	ConvectiveNotReported
	ConvectiveTCU
	ConvectiveCB
)

var (
	cloudRegex                = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|///)(\d{3}|///)(CB|TCU|///)?$`)
	cloudConvectiveFirstRegex = regexp.MustCompile(`^(FEW|SCT|BKN|OVC)(CB|TCU)(\d{3})$`)
	verticalVisRegex          = regexp.MustCompile(`^VV(\d{3}|///)$`)
)

var cloudAmounts = map[string]CloudAmount{
	"///": AmountNotReported,
	"FEW": AmountFew,
	"SCT": AmountScattered,
	"BKN": AmountBroken,
	"OVC": AmountOvercast,
}

var convectiveTypes = map[string]ConvectiveType{
	"":    ConvectiveNone,
	"///": ConvectiveNotReported,
	"TCU": ConvectiveTCU,
	"CB":  ConvectiveCB,
}

// CloudGroup is a cloud layer, a vertical visibility or one of the
// no-cloud literals.
type CloudGroup struct {
	cloudType  CloudType
	amount     CloudAmount
	height     Distance
	convective ConvectiveType
}

// ParseCloudGroup parses a cloud layer, vertical visibility or a no-cloud
// literal in the METAR or TAF body.
func ParseCloudGroup(token string, part ReportPart, _ *ReportMetadata) *CloudGroup {
	if part != PartMETAR && part != PartTAF {
		return nil
	}
	switch token {
	case "NSC":
		return &CloudGroup{cloudType: CloudNSC}
	case "SKC":
		return &CloudGroup{cloudType: CloudSKC}
	case "NCD":
		if part == PartMETAR {
			return &CloudGroup{cloudType: CloudNCD}
		}
		return nil
	case "CLR":
		if part == PartMETAR {
			return &CloudGroup{cloudType: CloudCLR}
		}
		return nil
	}
	if m := cloudRegex.FindStringSubmatch(token); m != nil {
		return &CloudGroup{
			cloudType:  CloudLayer,
			amount:     cloudAmounts[m[1]],
			height:     *DistanceFromHeightString(m[2]),
			convective: convectiveTypes[m[3]],
		}
	}
	// some stations put the convective type before the height
	if m := cloudConvectiveFirstRegex.FindStringSubmatch(token); m != nil {
		return &CloudGroup{
			cloudType:  CloudLayer,
			amount:     cloudAmounts[m[1]],
			height:     *DistanceFromHeightString(m[3]),
			convective: convectiveTypes[m[2]],
		}
	}
	if m := verticalVisRegex.FindStringSubmatch(token); m != nil {
		return &CloudGroup{cloudType: CloudVerticalVisibility, height: *DistanceFromHeightString(m[1])}
	}
	return nil
}

func (g *CloudGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *CloudGroup) Type() CloudType { return g.cloudType }

func (g *CloudGroup) Amount() CloudAmount { return g.amount }

// Height is the cloud base or the vertical visibility.
func (g *CloudGroup) Height() Distance { return g.height }

func (g *CloudGroup) ConvectiveType() ConvectiveType { return g.convective }

// IsCeiling reports a broken or overcast layer, or an obscured sky.
func (g *CloudGroup) IsCeiling() bool {
	return g.cloudType == CloudVerticalVisibility ||
		(g.cloudType == CloudLayer && (g.amount == AmountBroken || g.amount == AmountOvercast))
}

// IsValid rejects a zero vertical visibility.
func (g *CloudGroup) IsValid() bool {
	if g.cloudType == CloudVerticalVisibility {
		if h := g.height.Distance(); h != nil && *h == 0 {
			return false
		}
	}
	return g.height.IsValid()
}
