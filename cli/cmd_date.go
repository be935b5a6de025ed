package cli

import (
	"fmt"

	"github.com/honeynil/quoter"
	"github.com/spf13/cobra"
)

func (app *App) dateCmd() *cobra.Command {
	var dateOnly bool

	cmd := &cobra.Command{
		Use:   "date <time>",
		Short: "Format a time for a date/time literal",
		Long: `Format a time the way it appears inside a date/time literal.

The time is converted to --timezone (default UTC). Microseconds are shown
when non-zero. Years <= 0 are astronomical: year 0 is 1 BC, so
"-0005-03-01" prints as "0006-03-01 ... BC". Pass a negative year after
"--" so it is not read as a flag, or write the BC year with a " BC" suffix.

Examples:
  quoter date 2024-03-01T12:00:00Z
  quoter date 0000-01-01 --date-only
  quoter date -- -0005-03-01
  quoter date "0006-03-01 BC"
  quoter date 2024-03-01T12:00:00+02:00 --timezone America/New_York`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			t, err := parseTime(args[0])
			if err != nil {
				return err
			}

			formatted := q.QuotedDate(t)
			if dateOnly {
				// A date binding carries the date-only text form.
				binding, err := q.TypeCast(quoter.Date(t))
				if err != nil {
					return err
				}
				formatted = binding.Data.(string)
			}

			if app.config.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"input":     args[0],
					"formatted": formatted,
					"location":  q.Location().String(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dateOnly, "date-only", false, "Format the calendar date only")
	return cmd
}
