package cli

import (
	"fmt"

	"github.com/honeynil/quoter"
	"github.com/spf13/cobra"
)

func (app *App) identCmd() *cobra.Command {
	var (
		column bool
		schema bool
		assign string
	)

	cmd := &cobra.Command{
		Use:   "ident <name>",
		Short: "Quote a table, column or schema name",
		Long: `Quote an identifier for the configured dialect.

By default the name is treated as a table name of the form
[schema.]table, where either part may already be wrapped in double quotes
to protect embedded dots:

  table_name              -> "table_name"
  "table.name"            -> "table.name"
  schema_name.table_name  -> "schema_name"."table_name"
  schema_name."table.name"
  "schema.name".table_name
  "schema.name"."table.name"

With --column or --schema the whole input is a single identifier.

Examples:
  quoter ident 'analytics."events.2024"'
  quoter ident 'user name' --column
  quoter ident email --assign users`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if column && schema {
				return fmt.Errorf("--column and --schema are mutually exclusive")
			}

			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			name := args[0]
			var quoted string
			switch {
			case column:
				quoted = q.QuoteColumnName(name)
			case schema:
				quoted = q.QuoteSchemaName(name)
			case assign != "":
				quoted = q.QuoteTableNameForAssignment(assign, name)
			default:
				quoted, err = q.QuoteTableName(name)
				if err != nil {
					return err
				}
			}

			if app.config.JSON {
				output := map[string]string{
					"input":  name,
					"quoted": quoted,
				}
				if !column && !schema && assign == "" {
					qn, err := quoter.ParseQualifiedName(name)
					if err != nil {
						return err
					}
					output["schema"] = qn.Schema
					output["identifier"] = qn.Identifier
				}
				return writeJSON(cmd.OutOrStdout(), output)
			}
			fmt.Fprintln(cmd.OutOrStdout(), quoted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&column, "column", false, "Quote as a single column name")
	cmd.Flags().BoolVar(&schema, "schema", false, "Quote as a single schema name")
	cmd.Flags().StringVar(&assign, "assign", "", "Quote as an assignment target column of the given table")
	return cmd
}
