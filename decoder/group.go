// Package decoder turns individual METAR, SPECI and TAF report tokens into
// typed groups.
//
// Every group kind has a ParseXxxGroup factory which returns nil when the
// token does not belong to that kind in the given report part. A group
// that was created may consume further tokens through Append until it
// reports NotAppended. Groups never log and never return errors: malformed
// input is reported as data (nil, NotAppended, GroupInvalidated or
// IsValid() == false).
package decoder

// ReportPart identifies the section of a report a token was found in.
type ReportPart int

const (
	PartUnknown ReportPart = iota
	PartHeader
	PartMETAR
	PartTAF
	PartRMK
)

func (p ReportPart) String() string {
	switch p {
	case PartHeader:
		return "HEADER"
	case PartMETAR:
		return "METAR"
	case PartTAF:
		return "TAF"
	case PartRMK:
		return "RMK"
	}
	return "UNKNOWN"
}

// AppendResult is returned by Group.Append.
type AppendResult int

const (
	// Appended means the token was consumed and the group is still open.
	Appended AppendResult = iota
	// NotAppended means the token was not consumed and the group is closed.
	NotAppended
	// GroupInvalidated means the token was expected to continue the group
	// but was malformed; the whole group must be discarded by the caller.
	GroupInvalidated
)

func (r AppendResult) String() string {
	switch r {
	case Appended:
		return "APPENDED"
	case NotAppended:
		return "NOT_APPENDED"
	}
	return "GROUP_INVALIDATED"
}

// ReportMetadata carries report-wide facts some groups need to resolve
// their values.
type ReportMetadata struct {
	// ReportTime is the report's own issue time, nil when unknown.
	ReportTime *MetafTime
}

func (md *ReportMetadata) reportTime() *MetafTime {
	if md == nil {
		return nil
	}
	return md.ReportTime
}

// Group is implemented by every group kind.
type Group interface {
	Append(token string, part ReportPart, md *ReportMetadata) AppendResult
	IsValid() bool
}

// ParseFunc is the common shape of the group factories once wrapped to
// return the Group interface.
type ParseFunc func(token string, part ReportPart, md *ReportMetadata) Group

// Parsers lists the group factories in the order the assembly loop should
// try them. Wind and visibility come before the fixed literals so that
// "WND ..." and "VIS ..." remarks reach the groups that can continue them.
// UnknownGroup is last and accepts any non-empty token.
var Parsers = []ParseFunc{
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseLocationGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseReportTimeGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseWindGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseVisibilityGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseFixedGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseCloudGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseWeatherGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseTemperatureGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParsePressureGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseRunwayStateGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseSeaSurfaceGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseTerrainVisibilityGroup(t, p, md)) },
	func(t string, p ReportPart, md *ReportMetadata) Group { return asGroup(ParseUnknownGroup(t, p, md)) },
}

// asGroup keeps a nil concrete pointer from turning into a non-nil
// interface value.
func asGroup[T any, PT interface {
	*T
	Group
}](g PT) Group {
	if g == nil {
		return nil
	}
	return g
}

// ParseGroup tries every factory in Parsers and returns the first match.
func ParseGroup(token string, part ReportPart, md *ReportMetadata) Group {
	for _, parse := range Parsers {
		if g := parse(token, part, md); g != nil {
			return g
		}
	}
	return nil
}
