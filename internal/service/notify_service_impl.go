package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/notify"
	"github.com/alexanderramin/fitremind/internal/repository"
)

type notifyService struct {
	reminders repository.ReminderRepo
	selector  *notify.Selector
	observer  UseCaseObserver
}

func NewNotifyService(reminders repository.ReminderRepo, selector *notify.Selector, observers ...UseCaseObserver) NotifyService {
	return &notifyService{reminders: reminders, selector: selector, observer: useCaseObserverOrNoop(observers)}
}

func (s *notifyService) DueToday(ctx context.Context, today time.Time) (due []domain.DueNotification, err error) {
	fields := map[string]any{"date": today.Format("2006-01-02")}
	defer observe(ctx, s.observer, "due-today", fields, &err)()

	all, err := s.reminders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reminders: %w", err)
	}
	due = s.selector.SelectDue(all, today)
	fields["count"] = len(due)
	return due, nil
}
