package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/repository"
	"github.com/google/uuid"
)

type reminderService struct {
	reminders repository.ReminderRepo
	observer  UseCaseObserver
}

func NewReminderService(reminders repository.ReminderRepo, observers ...UseCaseObserver) ReminderService {
	return &reminderService{reminders: reminders, observer: useCaseObserverOrNoop(observers)}
}

func (s *reminderService) Create(ctx context.Context, r *domain.Reminder) (err error) {
	defer observe(ctx, s.observer, "create-reminder", map[string]any{"repeat": string(r.Repeat)}, &err)()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Repeat == "" {
		r.Repeat = domain.RepeatNone
	}
	if r.Status == "" {
		r.Status = domain.StatusActive
	}
	if err = r.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.reminders.Create(ctx, r)
}

func (s *reminderService) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	return s.reminders.GetByID(ctx, id)
}

func (s *reminderService) Resolve(ctx context.Context, idOrPrefix string) (*domain.Reminder, error) {
	r, err := s.reminders.GetByID(ctx, idOrPrefix)
	if err == nil {
		return r, nil
	}
	return s.reminders.GetByPrefix(ctx, idOrPrefix)
}

func (s *reminderService) List(ctx context.Context, status domain.ReminderStatus) ([]*domain.Reminder, error) {
	return s.reminders.List(ctx, status)
}

func (s *reminderService) Update(ctx context.Context, id string, patch ReminderPatch) (r *domain.Reminder, err error) {
	defer observe(ctx, s.observer, "update-reminder", map[string]any{"id": id}, &err)()

	r, err = s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Title = domain.CoalesceStr(patch.Title, r.Title)
	r.Description = domain.CoalesceStr(patch.Description, r.Description)
	r.Type = domain.CoalesceStr(patch.Type, r.Type)
	r.Schedule = domain.CoalesceStr(patch.Schedule, r.Schedule)
	r.Repeat = domain.Repeat(domain.CoalesceStr(string(patch.Repeat), string(r.Repeat)))
	r.Days = domain.CoalesceSlice(patch.Days, r.Days)
	r.Method = domain.CoalesceSlice(patch.Method, r.Method)

	if err = r.Validate(); err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now().UTC()
	if err = s.reminders.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reminderService) SetStatus(ctx context.Context, id string, status domain.ReminderStatus) (err error) {
	defer observe(ctx, s.observer, "set-reminder-status", map[string]any{"id": id, "status": string(status)}, &err)()

	if !domain.ValidStatuses[status] {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.reminders.SetStatus(ctx, id, status)
}

func (s *reminderService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-reminder", map[string]any{"id": id}, &err)()
	return s.reminders.Delete(ctx, id)
}
