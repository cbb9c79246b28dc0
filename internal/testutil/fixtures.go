package testutil

import (
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/google/uuid"
)

type ReminderOption func(*domain.Reminder)

func WithSchedule(s string) ReminderOption {
	return func(r *domain.Reminder) { r.Schedule = s }
}

func WithRepeat(rep domain.Repeat) ReminderOption {
	return func(r *domain.Reminder) { r.Repeat = rep }
}

func WithDays(raw ...string) ReminderOption {
	return func(r *domain.Reminder) { r.Days = raw }
}

func WithMethod(raw ...string) ReminderOption {
	return func(r *domain.Reminder) { r.Method = raw }
}

func WithStatus(s domain.ReminderStatus) ReminderOption {
	return func(r *domain.Reminder) { r.Status = s }
}

func WithType(typ string) ReminderOption {
	return func(r *domain.Reminder) { r.Type = typ }
}

func WithID(id string) ReminderOption {
	return func(r *domain.Reminder) { r.ID = id }
}

// NewTestReminder returns an active one-off reminder scheduled today.
func NewTestReminder(title string, opts ...ReminderOption) *domain.Reminder {
	now := time.Now().UTC().Truncate(time.Second)
	r := &domain.Reminder{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      "workout",
		Schedule:  now.Format(domain.ScheduleDateLayout),
		Repeat:    domain.RepeatNone,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
