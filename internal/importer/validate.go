package importer

import (
	"fmt"

	"github.com/alexanderramin/fitremind/internal/domain"
)

// ValidateImportSchema checks the dump before conversion and returns every
// problem found. Schedules are deliberately not checked here: a reminder with
// an unreadable schedule is imported and simply never matches a date.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	seen := make(map[string]int)

	for i, r := range schema.Reminders {
		prefix := fmt.Sprintf("reminders[%d]", i)
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if _, err := domain.ParseRepeat(r.Repeat); err != nil {
			errs = append(errs, fmt.Errorf("%s.repeat: %w", prefix, err))
		}
		if _, err := domain.ParseStatus(r.Status); err != nil {
			errs = append(errs, fmt.Errorf("%s.status: %w", prefix, err))
		}
		if r.ID != "" {
			if first, dup := seen[r.ID]; dup {
				errs = append(errs, fmt.Errorf("%s.id %q duplicates reminders[%d]", prefix, r.ID, first))
			} else {
				seen[r.ID] = i
			}
		}
	}

	return errs
}
