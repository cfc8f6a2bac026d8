package decoder

import (
	"fmt"

	"k8s.io/utils/ptr"
)

// MetafTime is a day-of-month (optional), hour and minute as used in
// report timestamps and remark event times.
type MetafTime struct {
	day    *int
	hour   int
	minute int
}

// TimeFromDDHHMM parses "HHMM" or "DDHHMM".
func TimeFromDDHHMM(s string) *MetafTime {
	switch len(s) {
	case 4:
		hour, ok1 := digits(s[0:2])
		minute, ok2 := digits(s[2:4])
		if !ok1 || !ok2 {
			return nil
		}
		return &MetafTime{hour: hour, minute: minute}
	case 6:
		day, ok1 := digits(s[0:2])
		hour, ok2 := digits(s[2:4])
		minute, ok3 := digits(s[4:6])
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MetafTime{day: ptr.To(day), hour: hour, minute: minute}
	}
	return nil
}

// TimeFromDDHH parses "DDHH" as used by TAF validity periods.
func TimeFromDDHH(s string) *MetafTime {
	if len(s) != 4 {
		return nil
	}
	day, ok1 := digits(s[0:2])
	hour, ok2 := digits(s[2:4])
	if !ok1 || !ok2 {
		return nil
	}
	return &MetafTime{day: ptr.To(day), hour: hour}
}

// NewMetafTime builds a time without a day.
func NewMetafTime(hour, minute int) MetafTime {
	return MetafTime{hour: hour, minute: minute}
}

// resolveEventTime parses a remark event time given either as "HHMM" or as
// minutes only ("MM"). Minutes-only times take the hour of the report
// time. The hour is never rolled over, so a report at 2358 with an event
// at minute 05 yields 2305. ok is false when the time is malformed or when
// only minutes are given and no report time is known.
func resolveEventTime(s string, md *ReportMetadata) (t MetafTime, ok bool) {
	switch len(s) {
	case 4:
		mt := TimeFromDDHHMM(s)
		if mt == nil {
			return MetafTime{}, false
		}
		return *mt, true
	case 2:
		minute, isNum := digits(s)
		if !isNum {
			return MetafTime{}, false
		}
		rt := md.reportTime()
		if rt == nil {
			return MetafTime{}, false
		}
		return MetafTime{day: rt.day, hour: rt.hour, minute: minute}, true
	}
	return MetafTime{}, false
}

// Day returns the day-of-month, nil when not specified.
func (t MetafTime) Day() *int { return t.day }

func (t MetafTime) Hour() int { return t.hour }

func (t MetafTime) Minute() int { return t.minute }

// IsValid checks day 1-31, hour 0-24 (24 only as 2400) and minute 0-59.
func (t MetafTime) IsValid() bool {
	if t.day != nil && (*t.day < 1 || *t.day > 31) {
		return false
	}
	if t.hour > 24 || (t.hour == 24 && t.minute != 0) {
		return false
	}
	return t.minute <= 59
}

// IsReported is always true: a MetafTime only exists when a time was given.
func (t MetafTime) IsReported() bool { return true }

func (t MetafTime) String() string {
	if t.day != nil {
		return fmt.Sprintf("%02d%02d%02d", *t.day, t.hour, t.minute)
	}
	return fmt.Sprintf("%02d%02d", t.hour, t.minute)
}

// digits converts an all-digit string to an int.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// allSlashes reports whether s is a non-empty run of '/'.
func allSlashes(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '/' {
			return false
		}
	}
	return true
}
