package decoder

import "slices"

// FixedType enumerates the closed set of literal groups.
type FixedType int

const (
	FixedMETAR FixedType = iota
	FixedSPECI
	FixedTAF
	FixedAMD
	FixedNIL
	FixedCNL
	FixedCOR
	FixedAUTO
	FixedRSNOCLO
	FixedCAVOK
	FixedNSW
	FixedRMK
	FixedMaintenanceIndicator
	FixedWSCONDS
	FixedAO1
	FixedAO1A
	FixedAO2
	FixedAO2A
	FixedNOSPECI
	FixedRVRNO
	FixedPWINO
	FixedPNO
	FixedFZRANO
	FixedTSNO
	FixedSLPNO
	FixedFROIN
	FixedCLDMisg
	FixedICGMisg
	FixedPCPNMisg
	FixedPRESMisg
	FixedRVRMisg
	FixedTMisg
	FixedTDMisg
	FixedVISMisg
	FixedWNDMisg
	FixedWXMisg
	FixedTSLTNGTempoUnavbl
)

type fixedLiteral struct {
	fixedType FixedType
	parts     []ReportPart
}

var (
	headerOnly = []ReportPart{PartHeader}
	metarOnly  = []ReportPart{PartMETAR}
	tafOnly    = []ReportPart{PartTAF}
	rmkOnly    = []ReportPart{PartRMK}
	metarOrTaf = []ReportPart{PartMETAR, PartTAF}
	metarOrRmk = []ReportPart{PartMETAR, PartRMK}
)

var fixedLiterals = map[string]fixedLiteral{
	"METAR":    {FixedMETAR, headerOnly},
	"SPECI":    {FixedSPECI, headerOnly},
	"TAF":      {FixedTAF, headerOnly},
	"AMD":      {FixedAMD, headerOnly},
	"NIL":      {FixedNIL, headerOnly},
	"CNL":      {FixedCNL, headerOnly},
	"COR":      {FixedCOR, headerOnly},
	"AUTO":     {FixedAUTO, metarOnly},
	"R/SNOCLO": {FixedRSNOCLO, metarOnly},
	"CAVOK":    {FixedCAVOK, metarOrTaf},
	"NSW":      {FixedNSW, metarOrTaf},
	"RMK":      {FixedRMK, metarOrTaf},
	"$":        {FixedMaintenanceIndicator, metarOrRmk},
	"WSCONDS":  {FixedWSCONDS, tafOnly},
	"AO1":      {FixedAO1, rmkOnly},
	"AO1A":     {FixedAO1A, rmkOnly},
	"AO2":      {FixedAO2, rmkOnly},
	"AO2A":     {FixedAO2A, rmkOnly},
	"NOSPECI":  {FixedNOSPECI, rmkOnly},
	"RVRNO":    {FixedRVRNO, rmkOnly},
	"PWINO":    {FixedPWINO, rmkOnly},
	"PNO":      {FixedPNO, rmkOnly},
	"FZRANO":   {FixedFZRANO, rmkOnly},
	"TSNO":     {FixedTSNO, rmkOnly},
	"SLPNO":    {FixedSLPNO, rmkOnly},
	"FROIN":    {FixedFROIN, rmkOnly},
}

type fixedIdiom struct {
	fixedType FixedType
	rest      []string
}

// multi-token remark idioms, keyed by their first token
var fixedIdioms = map[string]fixedIdiom{
	"CLD":     {FixedCLDMisg, []string{"MISG"}},
	"ICG":     {FixedICGMisg, []string{"MISG"}},
	"PCPN":    {FixedPCPNMisg, []string{"MISG"}},
	"PRES":    {FixedPRESMisg, []string{"MISG"}},
	"RVR":     {FixedRVRMisg, []string{"MISG"}},
	"T":       {FixedTMisg, []string{"MISG"}},
	"TD":      {FixedTDMisg, []string{"MISG"}},
	"VIS":     {FixedVISMisg, []string{"MISG"}},
	"WND":     {FixedWNDMisg, []string{"MISG"}},
	"WX":      {FixedWXMisg, []string{"MISG"}},
	"TS/LTNG": {FixedTSLTNGTempoUnavbl, []string{"TEMPO", "UNAVBL"}},
}

// FixedGroup is a literal token, or a fixed multi-token remark idiom such
// as "CLD MISG" or "TS/LTNG TEMPO UNAVBL".
type FixedGroup struct {
	fixedType FixedType
	// tokens still required to complete an idiom
	pending []string
}

// ParseFixedGroup parses a literal group allowed in part. Multi-token
// literals are completed through Append.
func ParseFixedGroup(token string, part ReportPart, _ *ReportMetadata) *FixedGroup {
	if lit, ok := fixedLiterals[token]; ok {
		if !slices.Contains(lit.parts, part) {
			return nil
		}
		return &FixedGroup{fixedType: lit.fixedType}
	}
	if idiom, ok := fixedIdioms[token]; ok && part == PartRMK {
		return &FixedGroup{fixedType: idiom.fixedType, pending: idiom.rest}
	}
	return nil
}

// Append completes a multi-token idiom. Once an idiom has started, any
// token other than the expected one invalidates the group.
func (g *FixedGroup) Append(token string, _ ReportPart, _ *ReportMetadata) AppendResult {
	if len(g.pending) == 0 {
		return NotAppended
	}
	if token != g.pending[0] {
		return GroupInvalidated
	}
	g.pending = g.pending[1:]
	return Appended
}

func (g *FixedGroup) Type() FixedType { return g.fixedType }

// IsValid is false while a multi-token literal is still missing words.
func (g *FixedGroup) IsValid() bool { return len(g.pending) == 0 }
