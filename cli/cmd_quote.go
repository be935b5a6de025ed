package cli

import (
	"fmt"

	"github.com/honeynil/quoter"
	"github.com/spf13/cobra"
)

func (app *App) quoteCmd() *cobra.Command {
	var (
		kind         string
		hint         string
		defaultValue bool
	)

	cmd := &cobra.Command{
		Use:   "quote <value>",
		Short: "Quote a value as a SQL literal",
		Long: `Quote a value as a SQL literal for the configured dialect.

Kinds: text (default), binary, float, integer, boolean, time, date, uuid,
other, null. Binary values are taken as raw bytes, or as hex digits when
prefixed with \x.

With --default (or --hint) the value is quoted as a column default: on a
uuid column a generator expression such as gen_random_uuid() is returned
unquoted.

Examples:
  # Quote a string
  quoter quote "O'Reilly"

  # Quote bytes given as hex
  quoter quote '\x00ff' --kind binary

  # Quote a uuid column default
  quoter quote 'gen_random_uuid()' --default --hint uuid`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			} else if kind != "null" {
				return fmt.Errorf("value is required for kind %s", kind)
			}

			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			v, err := parseValue(kind, raw)
			if err != nil {
				return err
			}

			literal, err := quoteValue(q, v, hint, defaultValue || hint != "")
			if err != nil {
				return err
			}

			if app.config.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"kind":    v.Kind().String(),
					"input":   raw,
					"literal": literal,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), literal)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "text", "Value kind")
	cmd.Flags().StringVar(&hint, "hint", "", "Column type hint (uuid, text, binary, ...)")
	cmd.Flags().BoolVar(&defaultValue, "default", false, "Quote as a column default value")
	return cmd
}

// quoteValue quotes v, as a column default when asDefault is set.
func quoteValue(q *quoter.Quoter, v quoter.Value, hint string, asDefault bool) (string, error) {
	if !asDefault {
		return q.Quote(v)
	}

	var column quoter.ColumnTypeHint
	if hint != "" {
		t, err := quoter.ParseColumnType(hint)
		if err != nil {
			return "", err
		}
		column = quoter.ColumnTypeHint{Type: t, SQLType: hint}
	}
	return q.QuoteDefaultValue(v, column)
}

func (app *App) castCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "cast <value>",
		Short: "Show the prepared-statement binding for a value",
		Long: `Show how a value is bound as a prepared-statement parameter.

Binary values bind their raw bytes in binary format and are never escaped.
Every other kind binds in text format.

Examples:
  quoter cast 42 --kind integer
  quoter cast '\x00ff' --kind binary`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}

			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			v, err := parseValue(kind, raw)
			if err != nil {
				return err
			}

			binding, err := q.TypeCast(v)
			if err != nil {
				return err
			}

			format := "text"
			if binding.IsBinary() {
				format = "binary"
			}

			data := formatResult(binding.Data)
			if b, ok := binding.Data.([]byte); ok {
				data = formatBytes(b)
			}

			if app.config.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"format":      format,
					"format_code": binding.Format,
					"data":        data,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "format: %s (%d)\ndata:   %s\n", format, binding.Format, data)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "text", "Value kind")
	return cmd
}
