// Package cli provides the quoter command-line tool.
//
// The CLI exposes the quoting engine for ad-hoc use and for scripting:
// quoting values and identifiers, encoding and decoding bytea text,
// formatting timestamps, and checking that a literal is accepted by a live
// server.
//
// Example usage:
//
//	// cmd/quoter/main.go
//	package main
//
//	import "github.com/honeynil/quoter/cli"
//
//	func main() {
//	    cli.Run()
//	}
//
// The CLI supports configuration through flags, environment variables,
// and an optional .quoter.yaml config file.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// DBOpener is a function that opens a database connection.
// It receives the DSN (data source name) and returns a *sql.DB.
type DBOpener func(dsn string) (*sql.DB, error)

// App holds the CLI application state.
type App struct {
	dbOpener DBOpener
	config   *Config
	rootCmd  *cobra.Command
}

// Run starts the CLI.
//
// Configuration priority:
//  1. Command-line flags (highest)
//  2. Environment variables
//  3. Config file .quoter.yaml (lowest, requires --use-config)
func Run() {
	RunWithDB(nil)
}

// RunWithDB starts the CLI with a custom database opener used by verify.
// If dbOpener is nil, the dialect's own opener is used.
func RunWithDB(dbOpener DBOpener) {
	app := newApp(dbOpener)

	if err := app.rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(dbOpener DBOpener) *App {
	app := &App{
		dbOpener: dbOpener,
		config:   &Config{},
	}

	app.rootCmd = &cobra.Command{
		Use:   "quoter",
		Short: "SQL literal quoting CLI",
		Long: `Quoter CLI - SQL literal quoting and value encoding.

Configuration priority:
  1. Command-line flags (highest)
  2. Environment variables (QUOTER_DIALECT, QUOTER_DSN, QUOTER_TIMEZONE)
  3. Config file .quoter.yaml (lowest, requires --use-config)

Examples:
  # Quote a string literal for Redshift
  quoter quote "O'Reilly"

  # Quote a qualified table name for MySQL
  quoter ident 'app."odd.name"' --dialect mysql

  # Decode bytea output
  quoter bytea unescape '\x6869'

  # Check a literal against a live server
  quoter verify 'it''s' --dsn postgres://localhost/app`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfig()
		},
	}

	app.addGlobalFlags()
	app.addCommands()
	return app
}

// addGlobalFlags adds flags that are available to all commands.
func (app *App) addGlobalFlags() {
	flags := app.rootCmd.PersistentFlags()

	flags.StringVar(&app.config.Dialect, "dialect", "", "SQL dialect (redshift, postgres, mysql, sqlite, clickhouse)")
	flags.StringVar(&app.config.DSN, "dsn", "", "Database connection string")
	flags.StringVar(&app.config.Timezone, "timezone", "", "Time zone for timestamps (IANA name, default UTC)")
	flags.BoolVar(&app.config.UseConfig, "use-config", false, "Enable config file (.quoter.yaml)")
	flags.StringVar(&app.config.Env, "env", "", "Environment from config file (development, staging, production)")
	flags.BoolVar(&app.config.JSON, "json", false, "Output in JSON format")
	flags.BoolVar(&app.config.Verbose, "verbose", false, "Verbose output")
}

// addCommands registers all CLI commands.
func (app *App) addCommands() {
	app.rootCmd.AddCommand(
		app.quoteCmd(),
		app.castCmd(),
		app.identCmd(),
		app.byteaCmd(),
		app.dateCmd(),
		app.batchCmd(),
		app.verifyCmd(),
	)
}

// logger returns a text logger on stderr, at debug level under --verbose.
func (app *App) logger() *slog.Logger {
	level := slog.LevelWarn
	if app.config.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
