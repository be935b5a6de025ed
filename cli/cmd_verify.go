package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/honeynil/quoter"
	"github.com/spf13/cobra"
)

// verifyTimeout bounds the connection check and the SELECT.
const verifyTimeout = 30 * time.Second

// VerifyResult is the outcome of a verify run.
type VerifyResult struct {
	Dialect     string `json:"dialect"`
	Environment string `json:"environment"`
	Literal     string `json:"literal"`
	Result      string `json:"result"`
	Match       bool   `json:"match"`
}

func (app *App) verifyCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "verify <value>",
		Short: "Check a quoted literal against a live server",
		Long: `Quote a value and run SELECT <literal> on the configured database.

The command confirms that the server parses the literal. For text values
the server's result must equal the input.

Examples:
  quoter verify "O'Reilly" --dsn postgres://localhost/app --dialect postgres
  quoter verify 42 --kind integer --use-config --env staging`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
			defer cancel()

			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			v, err := parseValue(kind, args[0])
			if err != nil {
				return err
			}

			result, err := app.verify(ctx, q, v, args[0])
			if err != nil {
				return err
			}

			if app.config.JSON {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "literal: %s\nresult:  %s\n", result.Literal, result.Result)
			}

			if !result.Match {
				return fmt.Errorf("server returned %q for %s, want %q", result.Result, result.Literal, args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "text", "Value kind")
	return cmd
}

func (app *App) verify(ctx context.Context, q *quoter.Quoter, v quoter.Value, input string) (*VerifyResult, error) {
	literal, err := q.Quote(v)
	if err != nil {
		return nil, err
	}

	db, err := app.openDB()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var raw any
	if err := db.QueryRowContext(ctx, "SELECT "+literal).Scan(&raw); err != nil {
		return nil, fmt.Errorf("server rejected %s: %w", literal, err)
	}

	result := &VerifyResult{
		Dialect:     canonicalDialect(app.config.Dialect),
		Environment: app.getEnvironmentName(),
		Literal:     literal,
		Result:      formatResult(raw),
		Match:       true,
	}

	switch v.Kind() {
	case quoter.KindText, quoter.KindOther:
		result.Match = result.Result == input
	}
	return result, nil
}
