package schedule

import (
	"strings"
	"time"
)

// isoDate is the canonical key format for holiday lookups.
const isoDate = "2006-01-02"

// holidayLayouts are the accepted input formats for holiday dates, tried in
// order. Unparseable entries are dropped silently; holiday lists come from
// user-maintained calendars and a bad row must not block generation.
var holidayLayouts = []string{isoDate, "02/01/2006", "02-01-2006"}

// HolidaySet is a set of blocked calendar dates keyed by ISO date string.
type HolidaySet map[string]struct{}

// ParseDate parses a single calendar date in any accepted holiday format
// (YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY). The boolean reports success.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range holidayLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// ParseHolidays parses raw date strings into a HolidaySet. Unparseable
// entries are skipped; duplicates collapse onto the same ISO key.
func ParseHolidays(raw []string) HolidaySet {
	set := make(HolidaySet, len(raw))
	for _, entry := range raw {
		if d, ok := ParseDate(entry); ok {
			set[d.Format(isoDate)] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the date part of t is a holiday.
func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s[t.Format(isoDate)]
	return ok
}

// NextFree walks forward one day at a time until t is not a holiday.
// The walk is forward-only so a generated date can never land before its
// jittered origin.
func (s HolidaySet) NextFree(t time.Time) time.Time {
	for s.Contains(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// midnight truncates t to local midnight. All schedule math is whole-day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
