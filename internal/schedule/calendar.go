package schedule

import (
	"sort"
	"time"
)

// CalendarMode selects the one-year window the training calendar fills.
type CalendarMode string

const (
	// ModeReference fills the year behind now, for reconstructing what a
	// client's training record should have looked like.
	ModeReference CalendarMode = "reference"
	// ModeFuture fills the year ahead of now.
	ModeFuture CalendarMode = "future"
)

const occurrencesPerName = 4

// GenerateCalendar produces a training calendar: four occurrences per name
// inside a fixed one-year window anchored at now. Occurrence i sits at
// roughly i*3 months into the window with ±1 month and ±5 day jitter,
// clamped into the window and then advanced off holidays. Within each name
// the four dates are sorted ascending before merging; the merged output is
// sorted by ISO date string, which for ISO form is also chronological.
func GenerateCalendar(names, holidays []string, seedPrefix string, now time.Time, mode CalendarMode) []Entry {
	sanitized := sanitizeTitles(names)
	if len(sanitized) == 0 {
		return nil
	}

	set := ParseHolidays(holidays)
	anchor := midnight(now)

	winStart, winEnd := anchor.AddDate(-1, 0, 0), anchor
	if mode == ModeFuture {
		winStart, winEnd = anchor, anchor.AddDate(1, 0, 0)
	}

	var entries []Entry
	for _, name := range sanitized {
		rng := NewRand(titleSeed(seedPrefix, name, anchor.Year()))

		dates := make([]time.Time, 0, occurrencesPerName)
		for i := 0; i < occurrencesPerName; i++ {
			d := winStart.AddDate(0, i*3+rng.IntBetween(-1, 1), 0)
			d = d.AddDate(0, 0, rng.IntBetween(-5, 5))
			d = clamp(d, winStart, winEnd)
			d = set.NextFree(d)
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		for _, d := range dates {
			entries = append(entries, newEntry(name, d))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ISO < entries[j].ISO })
	return entries
}

func clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}
