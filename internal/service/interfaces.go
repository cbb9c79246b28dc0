package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/importer"
)

// ReminderPatch carries the fields to change on an existing reminder.
// Empty strings and nil slices leave the stored value untouched.
type ReminderPatch struct {
	Title       string
	Description string
	Type        string
	Schedule    string
	Repeat      domain.Repeat
	Days        []string
	Method      []string
}

type ReminderService interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	// Resolve accepts a full ID or a unique ID prefix.
	Resolve(ctx context.Context, idOrPrefix string) (*domain.Reminder, error)
	List(ctx context.Context, status domain.ReminderStatus) ([]*domain.Reminder, error)
	Update(ctx context.Context, id string, patch ReminderPatch) (*domain.Reminder, error)
	SetStatus(ctx context.Context, id string, status domain.ReminderStatus) error
	Delete(ctx context.Context, id string) error
}

// CalendarResult is one calendar page.
type CalendarResult struct {
	View      calendar.View
	Date      time.Time
	Start     time.Time
	End       time.Time
	Reminders []domain.Reminder
}

type CalendarService interface {
	View(ctx context.Context, view calendar.View, date time.Time) (*CalendarResult, error)
	Upcoming(ctx context.Context, from time.Time, days int) ([]calendar.DayAgenda, error)
}

type NotifyService interface {
	DueToday(ctx context.Context, today time.Time) ([]domain.DueNotification, error)
}

// ImportResult holds the outcome of a reminder import.
type ImportResult struct {
	Created  int
	Updated  int
	Warnings []string
}

type ImportService interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
