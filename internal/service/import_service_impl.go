package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/db"
	"github.com/alexanderramin/fitremind/internal/importer"
	"github.com/alexanderramin/fitremind/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

// ImportFromSchema writes every record in one transaction. Records whose ID
// already exists are overwritten; a failure on any record rolls back the
// whole import.
func (s *importService) ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (res *ImportResult, err error) {
	if schema == nil {
		return nil, fmt.Errorf("import schema is required")
	}
	fields := map[string]any{"records": len(schema.Reminders)}
	defer observe(ctx, s.observer, "import-reminders", fields, &err)()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(schema, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	res = &ImportResult{Warnings: converted.Warnings}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReminders := repository.NewSQLiteReminderRepo(tx)
		for _, r := range converted.Reminders {
			existing, getErr := txReminders.GetByID(ctx, r.ID)
			switch {
			case getErr == nil:
				r.CreatedAt = existing.CreatedAt
				res.Updated++
			case errors.Is(getErr, repository.ErrNotFound):
				res.Created++
			default:
				return getErr
			}
			if err := txReminders.Upsert(ctx, r); err != nil {
				return fmt.Errorf("importing reminder %q: %w", r.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["created"] = res.Created
	fields["updated"] = res.Updated
	fields["warnings"] = len(res.Warnings)
	return res, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}
