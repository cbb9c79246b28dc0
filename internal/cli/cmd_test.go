package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/notify"
	"github.com/alexanderramin/fitremind/internal/repository"
	"github.com/alexanderramin/fitremind/internal/service"
	"github.com/alexanderramin/fitremind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is the fixed "now" for CLI tests: Monday 2024-05-06 09:00 local.
var monday = time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) (*App, *repository.SQLiteReminderRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteReminderRepo(database)

	selector, err := notify.NewSelector(notify.NewSeededSource(1))
	require.NoError(t, err)

	return &App{
		Reminders: service.NewReminderService(repo),
		Calendar:  service.NewCalendarService(repo),
		Notify:    service.NewNotifyService(repo, selector),
		Import:    service.NewImportService(testutil.NewTestUoW(database)),
		Now:       func() time.Time { return monday },
	}, repo
}

// executeCmd runs a cobra command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func seedLegDay(t *testing.T, repo *repository.SQLiteReminderRepo) *domain.Reminder {
	t.Helper()
	r := testutil.NewTestReminder("Leg day",
		testutil.WithID("abcdef12-3456-7890-abcd-ef1234567890"),
		testutil.WithSchedule("2024-04-29 07:00 - 08:00"),
		testutil.WithRepeat(domain.RepeatWeekly),
		testutil.WithDays(`"[\"Monday\",\"Friday\"]"`),
		testutil.WithMethod(`["Email"]`),
	)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestReminderAddAndList(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "reminder", "add",
		"--title", "Morning run", "--schedule", "2024-05-06 06:30 - 07:00",
		"--repeat", "DAILY", "--method", "Push Notification")
	require.NoError(t, err)
	assert.Contains(t, out, "Created reminder Morning run")

	out, _, err = executeCmd(t, app, "reminder", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning run")
	assert.Contains(t, out, "daily")
	assert.Contains(t, out, "Push Notification")
}

func TestReminderAdd_Rejects(t *testing.T) {
	app, _ := testApp(t)

	_, _, err := executeCmd(t, app, "reminder", "add", "--title", "x", "--schedule", "next tuesday")
	assert.Error(t, err)

	_, _, err = executeCmd(t, app, "reminder", "add", "--title", "x", "--schedule", "2024-05-06", "--repeat", "hourly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hourly")
}

func TestReminderShowByPrefix(t *testing.T) {
	app, repo := testApp(t)
	seedLegDay(t, repo)

	out, _, err := executeCmd(t, app, "reminder", "show", "abcdef12")
	require.NoError(t, err)
	assert.Contains(t, out, "Leg day")
	assert.Contains(t, out, "Monday, Friday")
	assert.Contains(t, out, "07:00 – 08:00")
}

func TestReminderEditPauseDelete(t *testing.T) {
	app, repo := testApp(t)
	r := seedLegDay(t, repo)
	ctx := context.Background()

	_, _, err := executeCmd(t, app, "reminder", "edit", "abcdef12", "--title", "Leg day heavy")
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leg day heavy", got.Title)
	assert.Equal(t, r.Days, got.Days)

	_, _, err = executeCmd(t, app, "reminder", "edit", "abcdef12")
	assert.Error(t, err)

	_, _, err = executeCmd(t, app, "reminder", "pause", "abcdef12")
	require.NoError(t, err)
	out, _, err := executeCmd(t, app, "reminder", "list", "--status", "paused")
	require.NoError(t, err)
	assert.Contains(t, out, "Leg day heavy")

	_, _, err = executeCmd(t, app, "reminder", "delete", "abcdef12")
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, r.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestImportCmd(t *testing.T) {
	app, repo := testApp(t)
	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`reminders:
  - id: r1
    title: Swim
    schedule: "2024-05-06"
    repeat: monthly
  - id: r2
    title: Mystery
    schedule: "06/05/2024"
`), 0o644))

	out, _, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 reminders (2 new, 0 updated)")
	assert.Contains(t, out, "06/05/2024")

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCalendarCmd(t *testing.T) {
	app, repo := testApp(t)
	seedLegDay(t, repo)

	out, _, err := executeCmd(t, app, "calendar", "--view", "week", "--date", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Leg day")

	out, _, err = executeCmd(t, app, "calendar")
	require.NoError(t, err)
	assert.Contains(t, out, "Leg day", "weekly Monday reminder shows on Monday's day view")

	_, _, err = executeCmd(t, app, "calendar", "--view", "year")
	assert.Error(t, err)
}

func TestUpcomingCmd(t *testing.T) {
	app, repo := testApp(t)
	seedLegDay(t, repo)

	out, _, err := executeCmd(t, app, "upcoming", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Friday")

	_, _, err = executeCmd(t, app, "upcoming", "--days", "0")
	assert.Error(t, err)
}

func TestDueCmd(t *testing.T) {
	app, repo := testApp(t)
	seedLegDay(t, repo)

	out, _, err := executeCmd(t, app, "due")
	require.NoError(t, err)
	assert.Contains(t, out, "Leg day")

	out, _, err = executeCmd(t, app, "due", "--date", "2024-05-07")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing due today.")
}

func TestDecodeCmd(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "decode", `"[\"monday\",\"Friday\"]"`, "sms")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Friday")
	assert.Contains(t, out, "SMS")
}

func TestStartupCheck(t *testing.T) {
	app, repo := testApp(t)
	seedLegDay(t, repo)

	selector, err := notify.NewSelector(notify.NewSeededSource(3))
	require.NoError(t, err)
	app.Startup = &StartupCheck{Source: repo, Selector: selector}

	out, errOut, err := executeCmd(t, app, "reminder", "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, "DUE TODAY")
	assert.Contains(t, errOut, "Leg day")
	assert.NotContains(t, out, "DUE TODAY")

	_, errOut, err = executeCmd(t, app, "due")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestStartupCheck_NothingDue(t *testing.T) {
	app, repo := testApp(t)
	selector, err := notify.NewSelector(notify.NewSeededSource(3))
	require.NoError(t, err)
	app.Startup = &StartupCheck{Source: repo, Selector: selector}

	_, errOut, err := executeCmd(t, app, "reminder", "list")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}
