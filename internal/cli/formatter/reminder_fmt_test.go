package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/stretchr/testify/assert"
)

func legDay() *domain.Reminder {
	return &domain.Reminder{
		ID:       "abcdef1234567890",
		Title:    "Leg day",
		Type:     "workout",
		Schedule: "2024-05-06 07:00 - 08:00",
		Repeat:   domain.RepeatWeekly,
		Days:     []string{`"[\"Monday\",\"Friday\"]"`},
		Method:   []string{`["Email","sms"]`},
		Status:   domain.StatusActive,
	}
}

func TestFormatReminderList(t *testing.T) {
	out := FormatReminderList([]*domain.Reminder{legDay()})
	assert.Contains(t, out, "REMINDERS")
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "Leg day")
	assert.Contains(t, out, "weekly Mon,Fri")
	assert.Contains(t, out, "Email, SMS")

	assert.Contains(t, FormatReminderList(nil), "No reminders.")
}

func TestFormatReminderDetail(t *testing.T) {
	out := FormatReminderDetail(legDay())
	assert.Contains(t, out, "07:00 – 08:00")
	assert.Contains(t, out, "Monday, Friday")
	assert.Contains(t, out, "raw days:")
}

func TestFormatCalendar(t *testing.T) {
	start := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	broken := domain.Reminder{ID: "b", Title: "Broken", Schedule: "someday", Status: domain.StatusActive}
	out := FormatCalendar(CalendarPage{
		View:      calendar.ViewWeek,
		Start:     start,
		End:       start.AddDate(0, 0, 6),
		Reminders: []domain.Reminder{*legDay(), broken},
	})
	assert.Contains(t, out, "WEEK")
	assert.Contains(t, out, "WEEK · MAY 5 – MAY 11 2024")
	assert.Contains(t, out, "07:00-08:00")
	assert.Contains(t, out, "invalid")

	empty := FormatCalendar(CalendarPage{View: calendar.ViewDay, Start: start, End: start})
	assert.Contains(t, empty, "DAY · SUNDAY, MAY 5 2024")
	assert.Contains(t, empty, "Nothing scheduled.")
}

func TestFormatUpcoming(t *testing.T) {
	now := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	agenda := []calendar.DayAgenda{{
		Date:      time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		Weekday:   "Monday",
		Reminders: []domain.Reminder{*legDay()},
	}}
	out := FormatUpcoming(agenda, now)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Leg day")

	assert.Contains(t, FormatUpcoming(nil, now), "Nothing coming up.")
}

func TestFormatDue(t *testing.T) {
	out := FormatDue([]domain.DueNotification{{ReminderID: "abcdef1234", Title: "Leg day", Message: "Time for Leg day!"}})
	assert.Contains(t, out, "DUE TODAY")
	assert.Contains(t, out, "Time for Leg day!")
	assert.Contains(t, FormatDue(nil), "Nothing due today.")
}

func TestFormatDecoded(t *testing.T) {
	assert.Contains(t, FormatDecoded("x", []string{"Monday", "Friday"}), "Monday")
	assert.Contains(t, FormatDecoded("x", nil), "(empty)")
}
