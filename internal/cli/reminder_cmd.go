package cli

import (
	"fmt"

	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/service"
	"github.com/spf13/cobra"
)

func newReminderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"r"},
		Short:   "Manage reminders",
	}

	cmd.AddCommand(
		newReminderAddCmd(app),
		newReminderListCmd(app),
		newReminderShowCmd(app),
		newReminderEditCmd(app),
		newReminderStatusCmd(app, "pause", "Pause a reminder", domain.StatusPaused),
		newReminderStatusCmd(app, "resume", "Resume a paused reminder", domain.StatusActive),
		newReminderStatusCmd(app, "done", "Mark a reminder done", domain.StatusDone),
		newReminderDeleteCmd(app),
	)

	return cmd
}

func newReminderAddCmd(app *App) *cobra.Command {
	var (
		r           domain.Reminder
		interactive bool
	)
	r.Repeat = domain.RepeatNone

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || (r.Title == "" && app.interactive()) {
				if err := runReminderForm(&r, app.now()); err != nil {
					return err
				}
			}

			if err := app.Reminders.Create(cmd.Context(), &r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created reminder %s [%s]\n", r.Title, r.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&r.Title, "title", "", "Reminder title")
	cmd.Flags().StringVar(&r.Description, "description", "", "Longer description")
	cmd.Flags().StringVar(&r.Type, "type", "", "Reminder type (e.g. workout, meal)")
	cmd.Flags().StringVar(&r.Schedule, "schedule", "", "YYYY-MM-DD or \"YYYY-MM-DD HH:mm - HH:mm\"")
	cmd.Flags().Var(newRepeatValue(&r.Repeat), "repeat", "none|daily|weekly|monthly")
	cmd.Flags().StringArrayVar(&r.Days, "days", nil, "Weekday value (repeatable; plain or JSON-encoded)")
	cmd.Flags().StringArrayVar(&r.Method, "method", nil, "Delivery method (repeatable; plain or JSON-encoded)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the reminder in with a form")

	return cmd
}

func newReminderListCmd(app *App) *cobra.Command {
	var status domain.ReminderStatus

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			reminders, err := app.Reminders.List(cmd.Context(), status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatReminderList(reminders))
			return nil
		},
	}

	cmd.Flags().Var(newStatusValue(&status), "status", "Only show active|paused|done")

	return cmd
}

func newReminderShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a reminder with its decoded days and methods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Reminders.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatReminderDetail(r))
			return nil
		},
	}
}

func newReminderEditCmd(app *App) *cobra.Command {
	var patch service.ReminderPatch

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.Reminders.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("nothing to change")
			}
			updated, err := app.Reminders.Update(ctx, r.ID, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated reminder %s [%s]\n", updated.Title, updated.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&patch.Title, "title", "", "Reminder title")
	cmd.Flags().StringVar(&patch.Description, "description", "", "Longer description")
	cmd.Flags().StringVar(&patch.Type, "type", "", "Reminder type")
	cmd.Flags().StringVar(&patch.Schedule, "schedule", "", "YYYY-MM-DD or \"YYYY-MM-DD HH:mm - HH:mm\"")
	cmd.Flags().Var(newRepeatValue(&patch.Repeat), "repeat", "none|daily|weekly|monthly")
	cmd.Flags().StringArrayVar(&patch.Days, "days", nil, "Replace weekday values (repeatable)")
	cmd.Flags().StringArrayVar(&patch.Method, "method", nil, "Replace delivery methods (repeatable)")

	return cmd
}

func newReminderStatusCmd(app *App, use, short string, status domain.ReminderStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.Reminders.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Reminders.SetStatus(ctx, r.ID, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", r.Title, formatter.StatusPill(status))
			return nil
		},
	}
}

func newReminderDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a reminder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.Reminders.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Reminders.Delete(ctx, r.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted reminder %s [%s]\n", r.Title, r.DisplayID())
			return nil
		},
	}
}
