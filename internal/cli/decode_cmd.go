package cli

import (
	"fmt"

	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/alexanderramin/fitremind/internal/decoder"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var combined bool

	cmd := &cobra.Command{
		Use:   "decode RAW...",
		Short: "Decode raw days/method values the way the matcher sees them",
		Example: `  fitremind decode '["Monday","Friday"]'
  fitremind decode '"[\"Monday\"]"' --combined`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{skipStartupCheck: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if combined {
				fmt.Fprintf(out, "%s\n", formatter.FormatDecoded(fmt.Sprintf("%q", args), decoder.Decode(args)))
				return nil
			}
			for _, raw := range args {
				fmt.Fprintf(out, "%s\n", formatter.FormatDecoded(raw, decoder.DecodeOne(raw)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&combined, "combined", false, "Treat all arguments as one field and deduplicate across them")

	return cmd
}
