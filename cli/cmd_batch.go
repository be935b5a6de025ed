package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/honeynil/quoter"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// BatchFile is the structure of a batch input file.
type BatchFile struct {
	Cases []BatchCase `yaml:"cases"`
}

// BatchCase is a single value to quote.
type BatchCase struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Value   string `yaml:"value"`
	Hint    string `yaml:"hint"`
	Default bool   `yaml:"default"`
}

// BatchResult is the outcome of one BatchCase.
type BatchResult struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Input   string `json:"input"`
	Literal string `json:"literal,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (app *App) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Quote a list of values from a YAML file",
		Long: `Quote every case listed in a YAML file.

File format:

  cases:
    - name: greeting
      kind: text
      value: "it's"
    - name: id default
      kind: text
      value: gen_random_uuid()
      hint: uuid
      default: true

Output format:
  - Table format (default): human-readable table
  - JSON format (--json): machine-readable JSON output

The command fails if any case fails.

Examples:
  quoter batch cases.yaml
  quoter batch cases.yaml --dialect mysql --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.newQuoter()
			if err != nil {
				return err
			}

			cases, err := loadBatchFile(args[0])
			if err != nil {
				return err
			}

			results := runBatch(q, cases)

			if app.config.JSON {
				err = app.outputBatchJSON(cmd.OutOrStdout(), results)
			} else {
				err = app.outputBatchTable(cmd.OutOrStdout(), results)
			}
			if err != nil {
				return err
			}

			if failed := countFailed(results); failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(results))
			}
			return nil
		},
	}
}

func loadBatchFile(path string) ([]BatchCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	return bf.Cases, nil
}

func runBatch(q *quoter.Quoter, cases []BatchCase) []BatchResult {
	results := make([]BatchResult, 0, len(cases))
	for i, c := range cases {
		kind := c.Kind
		if kind == "" {
			kind = "text"
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}

		result := BatchResult{Name: name, Kind: kind, Input: c.Value}

		v, err := parseValue(kind, c.Value)
		if err == nil {
			result.Literal, err = quoteValue(q, v, c.Hint, c.Default || c.Hint != "")
		}
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

func countFailed(results []BatchResult) int {
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	return failed
}

func (app *App) outputBatchTable(w io.Writer, results []BatchResult) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Kind", "Input", "Literal", "Error"})

	for _, r := range results {
		errText := "-"
		if r.Error != "" {
			errText = r.Error
		}

		if err := table.Append([]string{
			r.Name,
			r.Kind,
			r.Input,
			r.Literal,
			errText,
		}); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSummary: %d total, %d failed (dialect %s, environment %s)\n",
		len(results), countFailed(results), canonicalDialect(app.config.Dialect), app.getEnvironmentName())
	return nil
}

func (app *App) outputBatchJSON(w io.Writer, results []BatchResult) error {
	output := struct {
		Dialect string        `json:"dialect"`
		Results []BatchResult `json:"results"`
		Summary struct {
			Total  int `json:"total"`
			Failed int `json:"failed"`
		} `json:"summary"`
	}{
		Dialect: canonicalDialect(app.config.Dialect),
		Results: results,
	}

	output.Summary.Total = len(results)
	output.Summary.Failed = countFailed(results)

	return writeJSON(w, output)
}
