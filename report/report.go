// Package report splits a raw METAR, SPECI or TAF into tokens and runs
// them through the decoder groups, tracking which part of the report each
// token belongs to.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rmitchellscott/wxparse/decoder"
	"go.uber.org/zap"
)

// Kind is the report type announced by the header, or inferred from it.
type Kind int

const (
	KindUnknown Kind = iota
	KindMETAR
	KindSPECI
	KindTAF
)

func (k Kind) String() string {
	switch k {
	case KindMETAR:
		return "METAR"
	case KindSPECI:
		return "SPECI"
	case KindTAF:
		return "TAF"
	}
	return "UNKNOWN"
}

// Entry is one decoded group together with the tokens it consumed.
type Entry struct {
	Raw   string
	Part  decoder.ReportPart
	Group decoder.Group
	Valid bool
}

// Report is the result of Parse.
type Report struct {
	Raw        string
	Kind       Kind
	Location   string
	ReportTime *decoder.MetafTime
	// Validity is set for TAFs that carry a DDHH/DDHH period.
	Validity *ValidityGroup
	Entries  []Entry
}

// Invalid returns the entries whose group failed its plausibility check.
func (r *Report) Invalid() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if !e.Valid {
			out = append(out, e)
		}
	}
	return out
}

// Option configures Parse.
type Option func(*assembler)

// WithLogger makes Parse log invalidated runs and implausible groups at
// debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(a *assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Tokenize splits a report on whitespace and drops the "=" terminator.
func Tokenize(raw string) []string {
	fields := strings.Fields(raw)
	if n := len(fields); n > 0 {
		last := strings.TrimRight(fields[n-1], "=")
		if last == "" {
			fields = fields[:n-1]
		} else {
			fields[n-1] = last
		}
	}
	return fields
}

type assembler struct {
	logger *zap.Logger

	report   *Report
	md       decoder.ReportMetadata
	part     decoder.ReportPart
	timeSeen bool
	// index of the entry whose group may still take tokens, -1 if none
	open int
}

// Parse decodes raw into a Report. It never fails: tokens no group
// recognises, and runs a group rejected midway, end up as UnknownGroup
// entries.
func Parse(raw string, opts ...Option) *Report {
	a := &assembler{
		logger: zap.NewNop(),
		report: &Report{Raw: raw},
		part:   decoder.PartHeader,
		open:   -1,
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, tok := range Tokenize(raw) {
		if a.appendToOpen(tok) {
			continue
		}
		a.add(tok)
	}

	for i := range a.report.Entries {
		e := &a.report.Entries[i]
		e.Valid = e.Group.IsValid()
		if !e.Valid {
			a.logger.Debug("implausible group",
				zap.String("raw", e.Raw),
				zap.Stringer("part", e.Part),
				zap.String("group", GroupName(e.Group)),
			)
		}
	}
	return a.report
}

// appendToOpen offers tok to the open group and reports whether it was
// consumed.
func (a *assembler) appendToOpen(tok string) bool {
	if a.open < 0 {
		return false
	}
	e := &a.report.Entries[a.open]
	switch e.Group.Append(tok, a.part, &a.md) {
	case decoder.Appended:
		e.Raw += " " + tok
		return true
	case decoder.GroupInvalidated:
		run := e.Raw + " " + tok
		a.logger.Debug("group invalidated",
			zap.String("run", run),
			zap.Stringer("part", e.Part),
			zap.String("group", GroupName(e.Group)),
		)
		*e = Entry{Raw: run, Part: e.Part, Group: decoder.ParseUnknownGroup(run, e.Part, &a.md)}
		a.open = -1
		return true
	}
	a.open = -1
	return false
}

func (a *assembler) add(tok string) {
	if a.part == decoder.PartHeader {
		if g := a.header(tok); g != nil {
			a.push(tok, g)
			if _, ok := g.(*ValidityGroup); ok {
				a.part = decoder.PartTAF
			}
			return
		}
		if a.report.Kind == KindUnknown {
			a.report.Kind = KindMETAR
		}
		a.part = a.bodyPart()
	}

	g := decoder.ParseGroup(tok, a.part, &a.md)
	a.push(tok, g)
	if fg, ok := g.(*decoder.FixedGroup); ok && fg.Type() == decoder.FixedRMK {
		a.part = decoder.PartRMK
		a.open = -1
	}
}

func (a *assembler) push(tok string, g decoder.Group) {
	a.report.Entries = append(a.report.Entries, Entry{Raw: tok, Part: a.part, Group: g})
	a.open = len(a.report.Entries) - 1
}

// header returns the group for tok if it still belongs to the header,
// nil once the body has started. The header ends after the report time,
// or after the validity period of a TAF; header literals such as NIL and
// COR may still trail the time.
func (a *assembler) header(tok string) decoder.Group {
	if v := ParseValidityGroup(tok); v != nil {
		if a.report.Kind == KindUnknown {
			a.report.Kind = KindTAF
		}
		a.report.Validity = v
		return v
	}
	if fg := decoder.ParseFixedGroup(tok, decoder.PartHeader, &a.md); fg != nil {
		switch fg.Type() {
		case decoder.FixedMETAR:
			a.report.Kind = KindMETAR
		case decoder.FixedSPECI:
			a.report.Kind = KindSPECI
		case decoder.FixedTAF:
			a.report.Kind = KindTAF
		}
		return fg
	}
	if a.timeSeen {
		return nil
	}
	if a.report.Location == "" {
		if lg := decoder.ParseLocationGroup(tok, decoder.PartHeader, &a.md); lg != nil {
			a.report.Location = lg.Location()
			return lg
		}
	}
	if rt := decoder.ParseReportTimeGroup(tok, decoder.PartHeader, &a.md); rt != nil {
		t := rt.Time()
		a.report.ReportTime = &t
		a.md.ReportTime = &t
		a.timeSeen = true
		return rt
	}
	if a.report.Location == "" {
		// keep the header open until a station shows up
		return decoder.ParseUnknownGroup(tok, decoder.PartHeader, &a.md)
	}
	return nil
}

func (a *assembler) bodyPart() decoder.ReportPart {
	if a.report.Kind == KindTAF {
		return decoder.PartTAF
	}
	return decoder.PartMETAR
}

// GroupName is the bare type name of g, e.g. "WindGroup".
func GroupName(g decoder.Group) string {
	name := fmt.Sprintf("%T", g)
	return name[strings.LastIndexByte(name, '.')+1:]
}

var validityRegex = regexp.MustCompile(`^(\d{4})/(\d{4})$`)

// ValidityGroup is the DDHH/DDHH validity period of a TAF.
type ValidityGroup struct {
	from, until decoder.MetafTime
}

func ParseValidityGroup(token string) *ValidityGroup {
	m := validityRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	from, until := decoder.TimeFromDDHH(m[1]), decoder.TimeFromDDHH(m[2])
	if from == nil || until == nil {
		return nil
	}
	return &ValidityGroup{from: *from, until: *until}
}

func (g *ValidityGroup) Append(string, decoder.ReportPart, *decoder.ReportMetadata) decoder.AppendResult {
	return decoder.NotAppended
}

func (g *ValidityGroup) From() decoder.MetafTime { return g.from }

func (g *ValidityGroup) Until() decoder.MetafTime { return g.until }

func (g *ValidityGroup) IsValid() bool { return g.from.IsValid() && g.until.IsValid() }
