package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/repository"
)

type calendarService struct {
	reminders repository.ReminderRepo
	observer  UseCaseObserver
}

func NewCalendarService(reminders repository.ReminderRepo, observers ...UseCaseObserver) CalendarService {
	return &calendarService{reminders: reminders, observer: useCaseObserverOrNoop(observers)}
}

func (s *calendarService) View(ctx context.Context, view calendar.View, date time.Time) (res *CalendarResult, err error) {
	fields := map[string]any{"view": string(view), "date": date.Format("2006-01-02")}
	defer observe(ctx, s.observer, "calendar-view", fields, &err)()

	all, err := s.reminders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reminders: %w", err)
	}
	start, end := calendar.Window(view, date)
	res = &CalendarResult{
		View:      view,
		Date:      date,
		Start:     start,
		End:       end,
		Reminders: calendar.Filter(all, view, date),
	}
	fields["count"] = len(res.Reminders)
	return res, nil
}

func (s *calendarService) Upcoming(ctx context.Context, from time.Time, days int) (agenda []calendar.DayAgenda, err error) {
	fields := map[string]any{"from": from.Format("2006-01-02"), "days": days}
	defer observe(ctx, s.observer, "calendar-upcoming", fields, &err)()

	all, err := s.reminders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reminders: %w", err)
	}
	agenda = calendar.Upcoming(all, from, days, true)
	fields["day_count"] = len(agenda)
	return agenda, nil
}
