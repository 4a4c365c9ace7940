package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliport/compliport/internal/schedule"
)

func TestGenerateCalendar(t *testing.T) {
	now := date(2026, time.June, 15)

	t.Run("four occurrences per name", func(t *testing.T) {
		entries := schedule.GenerateCalendar([]string{"Fire Safety", "First Aid"}, nil, "client1", now, schedule.ModeFuture)
		require.Len(t, entries, 8)

		counts := map[string]int{}
		for _, e := range entries {
			counts[e.Title]++
		}
		assert.Equal(t, 4, counts["Fire Safety"])
		assert.Equal(t, 4, counts["First Aid"])
	})

	t.Run("future mode stays within the year ahead", func(t *testing.T) {
		entries := schedule.GenerateCalendar([]string{"Fire Safety"}, nil, "client1", now, schedule.ModeFuture)
		for _, e := range entries {
			assert.False(t, e.ScheduledFor.Before(now))
			assert.False(t, e.ScheduledFor.After(now.AddDate(1, 0, 0)))
		}
	})

	t.Run("reference mode stays within the year behind", func(t *testing.T) {
		entries := schedule.GenerateCalendar([]string{"Fire Safety"}, nil, "client1", now, schedule.ModeReference)
		for _, e := range entries {
			assert.False(t, e.ScheduledFor.Before(now.AddDate(-1, 0, 0)))
			assert.False(t, e.ScheduledFor.After(now))
		}
	})

	t.Run("sorted by ISO date ascending", func(t *testing.T) {
		entries := schedule.GenerateCalendar([]string{"Fire Safety", "First Aid", "Evacuation Drill"}, nil, "client1", now, schedule.ModeFuture)
		for i := 1; i < len(entries); i++ {
			assert.LessOrEqual(t, entries[i-1].ISO, entries[i].ISO)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := schedule.GenerateCalendar([]string{"Fire Safety"}, []string{"2026-08-15"}, "client1", now, schedule.ModeFuture)
		b := schedule.GenerateCalendar([]string{"Fire Safety"}, []string{"2026-08-15"}, "client1", now, schedule.ModeFuture)
		assert.Equal(t, a, b)
	})

	t.Run("avoids holidays", func(t *testing.T) {
		var holidays []string
		for d := now; d.Before(now.AddDate(0, 2, 0)); d = d.AddDate(0, 0, 1) {
			holidays = append(holidays, d.Format("2006-01-02"))
		}
		set := schedule.ParseHolidays(holidays)

		entries := schedule.GenerateCalendar([]string{"Fire Safety"}, holidays, "client1", now, schedule.ModeFuture)
		for _, e := range entries {
			assert.False(t, set.Contains(e.ScheduledFor))
		}
	})

	t.Run("empty names yield empty calendar", func(t *testing.T) {
		assert.Empty(t, schedule.GenerateCalendar(nil, nil, "client1", now, schedule.ModeFuture))
	})
}
