// Package calendar filters reminders for the day, week and month views.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/recurrence"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView normalizes a view name; empty means day.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewDay, nil
	case ViewDay, ViewWeek, ViewMonth:
		return v, nil
	default:
		return "", fmt.Errorf("view %q must be one of day, week, month", s)
	}
}

// Contains reports whether r belongs in view for date. The day view follows
// the repeat rule; week and month views contain reminders whose schedule date
// falls in the enclosing window.
func Contains(view View, r *domain.Reminder, date time.Time) bool {
	switch view {
	case ViewDay:
		return recurrence.IsOnDate(r, date)
	case ViewWeek:
		return recurrence.IsInWeek(r, date)
	case ViewMonth:
		return recurrence.IsInMonth(r, date)
	default:
		return false
	}
}

// Filter returns the reminders in view for date, in canonical order.
// Reminders of every status are included.
func Filter(reminders []domain.Reminder, view View, date time.Time) []domain.Reminder {
	var out []domain.Reminder
	for i := range reminders {
		if Contains(view, &reminders[i], date) {
			out = append(out, reminders[i])
		}
	}
	Sort(out)
	return out
}

// Window returns the first and last calendar dates covered by view for date.
func Window(view View, date time.Time) (start, end time.Time) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch view {
	case ViewWeek:
		start = recurrence.WeekStart(date)
		return start, start.AddDate(0, 0, 6)
	case ViewMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	default:
		return day, day
	}
}

// Sort orders reminders by the deterministic canonical rules:
// 1. Schedule date: earliest first (unparseable last)
// 2. Start time: all-day before timed, then earliest
// 3. Title: lexical ascending
// 4. ID: lexical ascending
func Sort(reminders []domain.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := &reminders[i], &reminders[j]

		// 1. Schedule date
		dateA, okA := recurrence.ParseScheduleDate(a.Schedule)
		dateB, okB := recurrence.ParseScheduleDate(b.Schedule)
		if okA != okB {
			return okA
		}
		if okA && !dateA.Equal(dateB) {
			return dateA.Before(dateB)
		}

		// 2. Start time
		startA, _, timedA := a.TimeRange()
		startB, _, timedB := b.TimeRange()
		if timedA != timedB {
			return !timedA
		}
		if startA != startB {
			return startA < startB
		}

		// 3. Title
		if a.Title != b.Title {
			return a.Title < b.Title
		}

		// 4. ID
		return a.ID < b.ID
	})
}
