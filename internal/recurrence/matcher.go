// Package recurrence decides whether a reminder falls on a given date under
// its repeat rule, at day, week and month granularity.
package recurrence

import (
	"slices"
	"time"

	"github.com/alexanderramin/fitremind/internal/decoder"
	"github.com/alexanderramin/fitremind/internal/domain"
)

// Match is the outcome of evaluating a reminder against a date.
type Match int

const (
	MatchNo Match = iota
	MatchYes
	// MatchUnparseable means the schedule's date segment could not be read.
	MatchUnparseable
)

func (m Match) String() string {
	switch m {
	case MatchYes:
		return "yes"
	case MatchUnparseable:
		return "unparseable"
	default:
		return "no"
	}
}

// Evaluate applies the reminder's repeat policy to date.
//
//   - none:    the schedule date is date
//   - daily:   always (the schedule date is not a start bound)
//   - weekly:  date's weekday is among the decoded days
//   - monthly: the schedule's day-of-month equals date's
//
// Unknown repeat rules never match.
func Evaluate(r *domain.Reminder, date time.Time) Match {
	s, ok := ParseScheduleDate(r.Schedule)
	if !ok {
		return MatchUnparseable
	}
	var hit bool
	switch r.Repeat {
	case domain.RepeatNone:
		hit = SameDay(s, date)
	case domain.RepeatDaily:
		hit = true
	case domain.RepeatWeekly:
		hit = slices.Contains(decoder.Decode(r.Days), WeekdayName(date))
	case domain.RepeatMonthly:
		day, ok := ScheduleDayOfMonth(r.Schedule)
		hit = ok && day == date.Day()
	}
	if hit {
		return MatchYes
	}
	return MatchNo
}

// IsOnDate reports whether the reminder is active on date.
func IsOnDate(r *domain.Reminder, date time.Time) bool {
	return Evaluate(r, date) == MatchYes
}

// IsInWeek reports whether the schedule date falls inside the Sunday-to-Saturday
// week containing date. The repeat rule is not consulted.
func IsInWeek(r *domain.Reminder, date time.Time) bool {
	s, ok := ParseScheduleDate(r.Schedule)
	if !ok {
		return false
	}
	start := WeekStart(date)
	end := start.AddDate(0, 0, 6)
	return !s.Before(start) && !s.After(end)
}

// IsInMonth reports whether the schedule date shares date's year and month.
func IsInMonth(r *domain.Reminder, date time.Time) bool {
	s, ok := ParseScheduleDate(r.Schedule)
	if !ok {
		return false
	}
	return s.Year() == date.Year() && s.Month() == date.Month()
}
