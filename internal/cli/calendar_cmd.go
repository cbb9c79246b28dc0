package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var (
		view = calendar.ViewDay
		date time.Time
	)

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show reminders for a day, week or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Calendar.View(cmd.Context(), view, dateOrNow(date, app.now))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatCalendar(formatter.CalendarPage{
				View:      res.View,
				Start:     res.Start,
				End:       res.End,
				Reminders: res.Reminders,
			}))
			return nil
		},
	}

	cmd.Flags().Var(newViewValue(&view), "view", "day|week|month")
	cmd.Flags().Var(newDateValue(&date, app.now), "date", "Date to show (YYYY-MM-DD, today, tomorrow)")

	return cmd
}

func newUpcomingCmd(app *App) *cobra.Command {
	var (
		days int
		from time.Time
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List active reminders for the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 || days > calendar.MaxUpcomingDays {
				return fmt.Errorf("--days must be between 1 and %d", calendar.MaxUpcomingDays)
			}
			start := dateOrNow(from, app.now)
			agenda, err := app.Calendar.Upcoming(cmd.Context(), start, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatUpcoming(agenda, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to look ahead")
	cmd.Flags().Var(newDateValue(&from, app.now), "from", "First date (default today)")

	return cmd
}
