package decoder

// UnknownGroup holds a token no other group recognised. It is the fallback
// that keeps the assembly loop moving.
type UnknownGroup struct {
	token string
}

// ParseUnknownGroup accepts any non-empty token in any report part.
func ParseUnknownGroup(token string, _ ReportPart, _ *ReportMetadata) *UnknownGroup {
	if token == "" {
		return nil
	}
	return &UnknownGroup{token: token}
}

func (g *UnknownGroup) Append(string, ReportPart, *ReportMetadata) AppendResult {
	return NotAppended
}

func (g *UnknownGroup) Token() string { return g.token }

func (g *UnknownGroup) IsValid() bool { return true }
