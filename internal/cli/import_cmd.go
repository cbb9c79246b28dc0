package cli

import (
	"fmt"

	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import reminders from a backend dump (JSON or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d reminders (%d new, %d updated)\n", res.Created+res.Updated, res.Created, res.Updated)
			for _, w := range res.Warnings {
				fmt.Fprintf(out, "  %s %s\n", formatter.StyleYellow.Render("!"), formatter.Dim(w))
			}
			return nil
		},
	}
}
