package cli

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (app *App) byteaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytea",
		Short: "Encode or decode binary text",
		Long: `Encode bytes for a binary literal, or decode binary text returned by a server.

The two directions are not inverses: escape produces the literal input
form, unescape consumes the server output form.

Examples:
  # Escape raw bytes given as hex
  quoter bytea escape '\x00275c'

  # Decode server output
  quoter bytea unescape '\x6869'`,
	}

	cmd.AddCommand(app.byteaEscapeCmd(), app.byteaUnescapeCmd())
	return cmd
}

func (app *App) byteaEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape <bytes>",
		Short: "Escape bytes for a binary literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			data, err := parseBytes(args[0])
			if err != nil {
				return err
			}

			escaped := q.EscapeBytea(data)
			if app.config.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"input":   formatBytes(data),
					"escaped": escaped.String,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), escaped.String)
			return nil
		},
	}
}

func (app *App) byteaUnescapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unescape <text>",
		Short: "Decode binary text returned by a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			data, err := q.UnescapeBytea(sql.NullString{String: args[0], Valid: true})
			if err != nil {
				return err
			}

			if app.config.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"input": args[0],
					"hex":   formatBytes(data),
					"text":  string(data),
					"size":  len(data),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hex:  %s\ntext: %s\n", formatBytes(data), strconv.Quote(string(data)))
			return nil
		},
	}
}
