package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/notify"
	"github.com/alexanderramin/fitremind/internal/service"
	"github.com/spf13/cobra"
)

// skipStartupCheck marks commands that must not trigger the startup
// due-today notifier.
const skipStartupCheck = "skip-startup-check"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reminders service.ReminderService
	Calendar  service.CalendarService
	Notify    service.NotifyService
	Import    service.ImportService

	// Startup, when set, runs once before the first command executes and
	// reports today's due reminders on stderr.
	Startup *StartupCheck

	IsInteractive func() bool
	Now           func() time.Time
}

// StartupCheck wires the cold-start due-today notifier.
type StartupCheck struct {
	Source   notify.ReminderSource
	Selector *notify.Selector
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fitremind" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitremind",
		Short:         "Workout reminders with calendar views and due-today alerts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Startup == nil || cmd.Annotations[skipStartupCheck] != "" {
				return nil
			}
			n := notify.NewNotifier(app.Startup.Source, app.Startup.Selector, writerSink(cmd.ErrOrStderr()), app.now)
			if _, err := n.Run(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", formatter.Dim("due-today check failed: "+err.Error()))
			}
			return nil
		},
	}

	root.AddCommand(
		newReminderCmd(app),
		newImportCmd(app),
		newCalendarCmd(app),
		newUpcomingCmd(app),
		newDueCmd(app),
		newDecodeCmd(),
	)

	return root
}

// writerSink renders a due batch to w in one write.
func writerSink(w io.Writer) notify.Sink {
	return notify.SinkFunc(func(_ context.Context, batch []domain.DueNotification) error {
		_, err := fmt.Fprintf(w, "%s\n", formatter.FormatDue(batch))
		return err
	})
}
