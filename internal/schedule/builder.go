package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one generated schedule row.
type Entry struct {
	Title        string    `json:"title"`
	ScheduledFor time.Time `json:"-"`
	ISO          string    `json:"scheduled_iso"`
	Label        string    `json:"scheduled_label"`
}

func newEntry(title string, d time.Time) Entry {
	return Entry{
		Title:        title,
		ScheduledFor: d,
		ISO:          d.Format(isoDate),
		Label:        d.Format("02/01/2006"),
	}
}

// Generate produces countPerTitle future dates for each title, spaced roughly
// three months apart with a seeded jitter and nudged forward off holidays.
//
// Each title draws from its own generator seeded by
// (seedPrefix, lowercase title, from's year), so adding or removing one title
// never perturbs another title's dates. The flat result is sorted ascending
// by date; ties keep per-title generation order.
func Generate(titles, holidays []string, countPerTitle int, seedPrefix string, from time.Time) []Entry {
	names := sanitizeTitles(titles)
	if len(names) == 0 || countPerTitle < 1 {
		return nil
	}

	set := ParseHolidays(holidays)
	start := midnight(from)

	var entries []Entry
	for _, title := range names {
		rng := NewRand(titleSeed(seedPrefix, title, start.Year()))

		d := set.NextFree(start.AddDate(0, 0, rng.IntBetween(10, 40)))
		entries = append(entries, newEntry(title, d))

		for i := 1; i < countPerTitle; i++ {
			d = d.AddDate(0, 3, 0)
			d = d.AddDate(0, 0, rng.IntBetween(-3, 3))
			d = set.NextFree(d)
			entries = append(entries, newEntry(title, d))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ScheduledFor.Before(entries[j].ScheduledFor)
	})
	return entries
}

// titleSeed derives the per-title generator seed.
func titleSeed(seedPrefix, title string, year int) uint32 {
	return HashSeed(fmt.Sprintf("%s:%s:%d", seedPrefix, strings.ToLower(title), year))
}

// sanitizeTitles trims whitespace, drops empties, and de-duplicates keeping
// the first occurrence. Matching is case-sensitive.
func sanitizeTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
