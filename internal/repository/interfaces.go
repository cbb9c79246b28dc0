package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/fitremind/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

type ReminderRepo interface {
	Create(ctx context.Context, r *domain.Reminder) error
	Upsert(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	GetByPrefix(ctx context.Context, prefix string) (*domain.Reminder, error)
	List(ctx context.Context, status domain.ReminderStatus) ([]*domain.Reminder, error)
	ListAll(ctx context.Context) ([]domain.Reminder, error)
	Update(ctx context.Context, r *domain.Reminder) error
	SetStatus(ctx context.Context, id string, status domain.ReminderStatus) error
	Delete(ctx context.Context, id string) error
}
