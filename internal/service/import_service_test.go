package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/importer"
	"github.com/alexanderramin/fitremind/internal/repository"
	"github.com/alexanderramin/fitremind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportService_ImportFile(t *testing.T) {
	repo, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(uow)

	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"reminders": [
  {"id": "r1", "title": "Leg day", "schedule": "2024-05-01", "repeat": "weekly", "days": ["[\"Monday\"]"]},
  {"id": "r2", "title": "Broken", "schedule": "soon"}
]}`), 0o644))

	res, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Updated)
	assert.Len(t, res.Warnings, 1)

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.RepeatWeekly, got.Repeat)
	assert.Equal(t, []string{`["Monday"]`}, got.Days)
}

func TestImportService_ReimportUpdates(t *testing.T) {
	repo, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(uow)

	schema := &importer.ImportSchema{Reminders: []importer.ReminderImport{
		{ID: "r1", Title: "Leg day", Schedule: "2024-05-01"},
	}}
	_, err := svc.ImportFromSchema(ctx, schema)
	require.NoError(t, err)

	schema.Reminders[0].Title = "Leg day v2"
	res, err := svc.ImportFromSchema(ctx, schema)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Leg day v2", got.Title)
}

func TestImportService_ValidationFailureWritesNothing(t *testing.T) {
	repo, uow := setupRepos(t)
	ctx := context.Background()
	rec := &recordingObserver{}
	svc := NewImportService(uow, rec)

	schema := &importer.ImportSchema{Reminders: []importer.ReminderImport{
		{ID: "r1", Title: "Fine", Schedule: "2024-05-01"},
		{ID: "r2", Title: "", Repeat: "hourly"},
	}}
	_, err := svc.ImportFromSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.False(t, rec.last().Success)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportService_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteReminderRepo(database)
	ctx := context.Background()
	boom := errors.New("disk full")

	svc := NewImportService(&testutil.FailOnNthWriteUoW{DB: database, FailOn: 2, Err: boom})
	schema := &importer.ImportSchema{Reminders: []importer.ReminderImport{
		{ID: "r1", Title: "First", Schedule: "2024-05-01"},
		{ID: "r2", Title: "Second", Schedule: "2024-05-02"},
	}}

	_, err := svc.ImportFromSchema(ctx, schema)
	require.ErrorIs(t, err, boom)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "first write must be rolled back")
}

func TestImportService_NilSchema(t *testing.T) {
	_, uow := setupRepos(t)
	svc := NewImportService(uow)

	res, err := svc.ImportFromSchema(context.Background(), nil)
	require.EqualError(t, err, "import schema is required")
	assert.Nil(t, res)
}
