package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatValue(t *testing.T) {
	var r domain.Repeat
	v := newRepeatValue(&r)
	require.NoError(t, v.Set(" Weekly "))
	assert.Equal(t, domain.RepeatWeekly, r)
	assert.Equal(t, "weekly", v.String())
	assert.Error(t, v.Set("fortnightly"))
	assert.Equal(t, "repeat", v.Type())
}

func TestStatusValue(t *testing.T) {
	var s domain.ReminderStatus
	v := newStatusValue(&s)
	require.NoError(t, v.Set("PAUSED"))
	assert.Equal(t, domain.StatusPaused, s)
	assert.Error(t, v.Set("archived"))
}

func TestViewValue(t *testing.T) {
	view := calendar.ViewDay
	v := newViewValue(&view)
	require.NoError(t, v.Set("month"))
	assert.Equal(t, calendar.ViewMonth, view)
	assert.Error(t, v.Set("year"))
}

func TestDateValue(t *testing.T) {
	now := func() time.Time { return monday }
	var d time.Time
	v := newDateValue(&d, now)
	assert.Equal(t, "", v.String())

	require.NoError(t, v.Set("2024-02-29"))
	assert.Equal(t, "2024-02-29", v.String())

	require.NoError(t, v.Set("tomorrow"))
	assert.Equal(t, "2024-05-07", v.String())

	assert.Error(t, v.Set("29/02/2024"))
	assert.Equal(t, monday, dateOrNow(time.Time{}, now))
}

func TestWizardValidators(t *testing.T) {
	assert.Error(t, validateRequired("title")("  "))
	assert.NoError(t, validateRequired("title")("Leg day"))
	assert.Error(t, validateSomeDays(nil))
	assert.NoError(t, validateSomeDays([]string{"Monday"}))
}
