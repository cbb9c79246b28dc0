package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "due-today",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"count": 3},
	})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=due-today")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "count=3")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import-reminders", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLevelUseCaseObserver_FiltersInfo(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLevelUseCaseObserver(&buf, slog.LevelError)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "calendar-view", Success: true})
	assert.Empty(t, buf.String())
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestObserve_ReadsErrorAtReturn(t *testing.T) {
	rec := &recordingObserver{}
	fn := func() (err error) {
		defer observe(context.Background(), rec, "thing", map[string]any{}, &err)()
		return errors.New("late")
	}
	_ = fn()

	e := rec.last()
	assert.Equal(t, "thing", e.Name)
	assert.False(t, e.Success)
	assert.EqualError(t, e.Err, "late")
}
