package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/fitremind/internal/db"
	"github.com/alexanderramin/fitremind/internal/repository"
	"github.com/alexanderramin/fitremind/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteReminderRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteReminderRepo(database), testutil.NewTestUoW(database)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

