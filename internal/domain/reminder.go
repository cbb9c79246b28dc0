package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ScheduleDateLayout is the layout of the leading date segment of a schedule.
const ScheduleDateLayout = "2006-01-02"

var (
	scheduleDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	scheduleRangePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}) - (\d{2}:\d{2})$`)
)

// Reminder is a scheduled event record with a recurrence rule. Days and
// Method hold the raw backend encoding; see package decoder.
type Reminder struct {
	ID          string
	Title       string
	Description string
	Type        string
	Schedule    string
	Repeat      Repeat
	Days        []string
	Method      []string
	Status      ReminderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the reminder participates in due selection.
func (r *Reminder) IsActive() bool {
	return r.Status == StatusActive
}

// TimeRange returns the "HH:mm" start and end of a timed schedule.
// ok is false for all-day or malformed schedules.
func (r *Reminder) TimeRange() (start, end string, ok bool) {
	m := scheduleRangePattern.FindStringSubmatch(strings.TrimSpace(r.Schedule))
	if m == nil {
		return "", "", false
	}
	return m[2], m[3], true
}

// ValidateSchedule checks that s is "yyyy-MM-dd" or "yyyy-MM-dd HH:mm - HH:mm"
// with a real calendar date and clock times. Used when reminders are created
// locally; records coming from the backend are never rejected for this.
func ValidateSchedule(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("schedule is required")
	}
	date := s
	if m := scheduleRangePattern.FindStringSubmatch(s); m != nil {
		date = m[1]
		start, err := time.Parse("15:04", m[2])
		if err != nil {
			return fmt.Errorf("schedule %q: invalid start time %q", s, m[2])
		}
		end, err := time.Parse("15:04", m[3])
		if err != nil {
			return fmt.Errorf("schedule %q: invalid end time %q", s, m[3])
		}
		if end.Before(start) {
			return fmt.Errorf("schedule %q: end time is before start time", s)
		}
	} else if !scheduleDatePattern.MatchString(s) {
		return fmt.Errorf("schedule %q must be YYYY-MM-DD or YYYY-MM-DD HH:mm - HH:mm", s)
	}
	if _, err := time.Parse(ScheduleDateLayout, date); err != nil {
		return fmt.Errorf("schedule %q: invalid date %q", s, date)
	}
	return nil
}

// Validate checks the fields required for a locally created reminder.
func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := ValidateSchedule(r.Schedule); err != nil {
		return err
	}
	if !ValidRepeats[r.Repeat] {
		return fmt.Errorf("invalid repeat %q", r.Repeat)
	}
	if !ValidStatuses[r.Status] {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (r *Reminder) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
