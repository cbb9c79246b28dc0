package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
)

// Sink receives a complete batch of due notifications. Deliver is called at
// most once per run and always with the whole batch.
type Sink interface {
	Deliver(ctx context.Context, batch []domain.DueNotification) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, batch []domain.DueNotification) error

func (f SinkFunc) Deliver(ctx context.Context, batch []domain.DueNotification) error {
	return f(ctx, batch)
}

// ReminderSource supplies the reminder records to check.
type ReminderSource interface {
	ListAll(ctx context.Context) ([]domain.Reminder, error)
}

// Notifier runs the startup "due today" check.
type Notifier struct {
	source   ReminderSource
	selector *Selector
	sink     Sink
	now      func() time.Time
}

// NewNotifier wires a Notifier. now defaults to time.Now.
func NewNotifier(source ReminderSource, selector *Selector, sink Sink, now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{source: source, selector: selector, sink: sink, now: now}
}

// Run selects today's due reminders and hands them to the sink in one batch.
// Nothing is delivered when the batch is empty or ctx is cancelled before
// delivery. It returns the number of notifications delivered.
func (n *Notifier) Run(ctx context.Context) (int, error) {
	reminders, err := n.source.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading reminders: %w", err)
	}

	batch := n.selector.SelectDue(reminders, n.now())
	if len(batch) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := n.sink.Deliver(ctx, batch); err != nil {
		return 0, fmt.Errorf("delivering notifications: %w", err)
	}
	return len(batch), nil
}
