package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderService_CreateDefaults(t *testing.T) {
	repo, _ := setupRepos(t)
	rec := &recordingObserver{}
	svc := NewReminderService(repo, rec)
	ctx := context.Background()

	r := &domain.Reminder{Title: "Leg day", Schedule: "2024-05-01 07:00 - 08:00"}
	require.NoError(t, svc.Create(ctx, r))

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.RepeatNone, r.Repeat)
	assert.Equal(t, domain.StatusActive, r.Status)
	assert.False(t, r.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leg day", got.Title)
	assert.Equal(t, "create-reminder", rec.last().Name)
	assert.True(t, rec.last().Success)
}

func TestReminderService_CreateRejectsBadSchedule(t *testing.T) {
	repo, _ := setupRepos(t)
	rec := &recordingObserver{}
	svc := NewReminderService(repo, rec)

	err := svc.Create(context.Background(), &domain.Reminder{Title: "x", Schedule: "tomorrow"})
	require.Error(t, err)
	assert.False(t, rec.last().Success)
}

func TestReminderService_UpdateKeepsUnsetFields(t *testing.T) {
	repo, _ := setupRepos(t)
	svc := NewReminderService(repo)
	ctx := context.Background()

	r := &domain.Reminder{
		Title:    "Leg day",
		Schedule: "2024-05-01",
		Repeat:   domain.RepeatWeekly,
		Days:     []string{`["Monday"]`},
		Method:   []string{"Email"},
	}
	require.NoError(t, svc.Create(ctx, r))

	updated, err := svc.Update(ctx, r.ID, ReminderPatch{Title: "Leg day!", Days: []string{"Friday"}})
	require.NoError(t, err)
	assert.Equal(t, "Leg day!", updated.Title)
	assert.Equal(t, []string{"Friday"}, updated.Days)
	assert.Equal(t, []string{"Email"}, updated.Method)
	assert.Equal(t, domain.RepeatWeekly, updated.Repeat)
	assert.Equal(t, "2024-05-01", updated.Schedule)
}

func TestReminderService_UpdateNotFound(t *testing.T) {
	repo, _ := setupRepos(t)
	svc := NewReminderService(repo)

	_, err := svc.Update(context.Background(), "missing", ReminderPatch{Title: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReminderService_ResolvePrefixAndStatus(t *testing.T) {
	repo, _ := setupRepos(t)
	svc := NewReminderService(repo)
	ctx := context.Background()

	r := &domain.Reminder{ID: "abcdef12-0000", Title: "Swim", Schedule: "2024-05-01"}
	require.NoError(t, svc.Create(ctx, r))

	got, err := svc.Resolve(ctx, "abcdef12")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	require.NoError(t, svc.SetStatus(ctx, r.ID, domain.StatusPaused))
	paused, err := svc.List(ctx, domain.StatusPaused)
	require.NoError(t, err)
	require.Len(t, paused, 1)

	assert.Error(t, svc.SetStatus(ctx, r.ID, domain.ReminderStatus("archived")))

	require.NoError(t, svc.Delete(ctx, r.ID))
	_, err = svc.GetByID(ctx, r.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
