package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/recurrence"
	"github.com/google/uuid"
)

// ConvertResult holds converted reminders and non-fatal notes about them.
type ConvertResult struct {
	Reminders []*domain.Reminder
	Warnings  []string
}

// Convert turns a validated schema into domain reminders. Records without an
// ID get a fresh one. Unreadable schedules produce a warning, not an error.
func Convert(schema *ImportSchema, now time.Time) (*ConvertResult, error) {
	res := &ConvertResult{}
	for i, in := range schema.Reminders {
		repeat, err := domain.ParseRepeat(in.Repeat)
		if err != nil {
			return nil, fmt.Errorf("reminders[%d]: %w", i, err)
		}
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, fmt.Errorf("reminders[%d]: %w", i, err)
		}

		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}

		r := &domain.Reminder{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Type:        in.Type,
			Schedule:    in.Schedule,
			Repeat:      repeat,
			Days:        []string(in.Days),
			Method:      []string(in.Method),
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, ok := recurrence.ParseScheduleDate(r.Schedule); !ok {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("reminders[%d] %q: schedule %q is unreadable; it will not appear on any date", i, in.Title, in.Schedule))
		}
		res.Reminders = append(res.Reminders, r)
	}
	return res, nil
}
