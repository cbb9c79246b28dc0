package domain

import (
	"fmt"
	"strings"
)

type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
)

// ValidRepeats is the canonical set of accepted repeat rule strings.
var ValidRepeats = map[Repeat]bool{
	RepeatNone: true, RepeatDaily: true, RepeatWeekly: true, RepeatMonthly: true,
}

// IsRecurring reports whether the rule generalizes the schedule date to other dates.
func (r Repeat) IsRecurring() bool {
	return r == RepeatDaily || r == RepeatWeekly || r == RepeatMonthly
}

// ParseRepeat normalizes a repeat rule as it arrives from the backend
// ("Weekly", " daily ") into its canonical form. An empty string means none.
func ParseRepeat(s string) (Repeat, error) {
	v := Repeat(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return RepeatNone, nil
	}
	if !ValidRepeats[v] {
		return "", fmt.Errorf("repeat %q must be one of none, daily, weekly, monthly", s)
	}
	return v, nil
}

type ReminderStatus string

const (
	StatusActive ReminderStatus = "active"
	StatusPaused ReminderStatus = "paused"
	StatusDone   ReminderStatus = "done"
)

// ValidStatuses is the canonical set of accepted reminder status strings.
var ValidStatuses = map[ReminderStatus]bool{
	StatusActive: true, StatusPaused: true, StatusDone: true,
}

// ParseStatus normalizes a reminder status. An empty string means active.
func ParseStatus(s string) (ReminderStatus, error) {
	v := ReminderStatus(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return StatusActive, nil
	}
	if !ValidStatuses[v] {
		return "", fmt.Errorf("status %q must be one of active, paused, done", s)
	}
	return v, nil
}
