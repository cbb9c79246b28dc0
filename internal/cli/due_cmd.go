package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDueCmd(app *App) *cobra.Command {
	var date time.Time

	cmd := &cobra.Command{
		Use:         "due",
		Short:       "Show recurring reminders due today",
		Annotations: map[string]string{skipStartupCheck: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := app.Notify.DueToday(cmd.Context(), dateOrNow(date, app.now))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatDue(batch))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&date, app.now), "date", "Check another date instead of today")

	return cmd
}
