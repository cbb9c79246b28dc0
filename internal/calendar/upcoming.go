package calendar

import (
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/recurrence"
)

// MaxUpcomingDays caps the Upcoming horizon.
const MaxUpcomingDays = 62

// DayAgenda is the set of reminders active on one date.
type DayAgenda struct {
	Date      time.Time
	Weekday   string
	Reminders []domain.Reminder
}

// Upcoming expands IsOnDate over days consecutive dates starting at from.
// Dates with nothing scheduled are omitted. When activeOnly is set, paused
// and done reminders are skipped.
func Upcoming(reminders []domain.Reminder, from time.Time, days int, activeOnly bool) []DayAgenda {
	if days <= 0 {
		return nil
	}
	if days > MaxUpcomingDays {
		days = MaxUpcomingDays
	}
	start, _ := Window(ViewDay, from)

	var out []DayAgenda
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		var hits []domain.Reminder
		for j := range reminders {
			r := &reminders[j]
			if activeOnly && !r.IsActive() {
				continue
			}
			if recurrence.IsOnDate(r, date) {
				hits = append(hits, *r)
			}
		}
		if len(hits) == 0 {
			continue
		}
		Sort(hits)
		out = append(out, DayAgenda{
			Date:      date,
			Weekday:   recurrence.WeekdayName(date),
			Reminders: hits,
		})
	}
	return out
}
