// Package notify selects the reminders that are due today and renders their
// notification text. Delivery is left to a Sink.
package notify

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/recurrence"
)

// Selector filters reminders down to those due on a date. It is safe for
// concurrent use.
type Selector struct {
	mu        sync.Mutex
	rng       *rand.Rand
	templates []string
}

// NewSelector creates a Selector drawing templates with rng. When no templates
// are given, DefaultTemplates is used.
func NewSelector(rng *rand.Rand, templates ...string) (*Selector, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	for _, t := range templates {
		if err := ValidateTemplate(t); err != nil {
			return nil, err
		}
	}
	return &Selector{
		rng:       rng,
		templates: append([]string(nil), templates...),
	}, nil
}

// NewSeededSource returns a PCG-backed *rand.Rand. A zero seed draws one from
// the clock.
func NewSeededSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IsDue reports whether r should be surfaced on today: it must be active,
// recurring, and its rule must match today. One-off reminders are never due.
func IsDue(r *domain.Reminder, today time.Time) bool {
	if !r.IsActive() || !r.Repeat.IsRecurring() {
		return false
	}
	return recurrence.IsOnDate(r, today)
}

// SelectDue returns one notification per due reminder, in input order.
func (s *Selector) SelectDue(reminders []domain.Reminder, today time.Time) []domain.DueNotification {
	var out []domain.DueNotification
	for i := range reminders {
		r := &reminders[i]
		if !IsDue(r, today) {
			continue
		}
		out = append(out, domain.DueNotification{
			ReminderID: r.ID,
			Title:      r.Title,
			Message:    Render(s.pick(), r.Title),
		})
	}
	return out
}

func (s *Selector) pick() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templates[s.rng.IntN(len(s.templates))]
}
