package cli

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/clickhouse"
	"github.com/honeynil/quoter/drivers/mysql"
	"github.com/honeynil/quoter/drivers/postgres"
	"github.com/honeynil/quoter/drivers/redshift"
	"github.com/honeynil/quoter/drivers/sqlite"
)

// Dialect name constants.
//
// These constants define the recognized dialect names that can be used
// in configuration. Some dialects have aliases for convenience.
const (
	DialectRedshift   = "redshift"
	DialectPostgres   = "postgres"
	DialectPostgreSQL = "postgresql"
	DialectMySQL      = "mysql"
	DialectSQLite     = "sqlite"
	DialectSQLite3    = "sqlite3"
	DialectClickHouse = "clickhouse"

	// DefaultDialect is used when no dialect is configured.
	DefaultDialect = DialectRedshift
)

// canonicalDialect resolves aliases. Unknown names are returned unchanged.
func canonicalDialect(name string) string {
	switch strings.ToLower(name) {
	case "":
		return DefaultDialect
	case DialectPostgres, DialectPostgreSQL, "pgx":
		return DialectPostgres
	case DialectSQLite, DialectSQLite3:
		return DialectSQLite
	default:
		return strings.ToLower(name)
	}
}

// getSQLDriverName maps dialect names to database/sql driver names.
//
// If the dialect is not recognized, it returns the input unchanged as a
// passthrough.
func getSQLDriverName(dialect string) string {
	switch canonicalDialect(dialect) {
	case DialectRedshift:
		return redshift.SQLDriverName
	case DialectPostgres:
		return postgres.SQLDriverName
	case DialectMySQL:
		return mysql.SQLDriverName
	case DialectSQLite:
		return sqlite.SQLDriverName
	case DialectClickHouse:
		return clickhouse.SQLDriverName
	default:
		return dialect
	}
}

// dialectConfig returns the escaping primitives for the configured dialect.
// For MySQL the DSN, when present, selects the sql_mode specific primitives.
func (app *App) dialectConfig() (quoter.Config, error) {
	switch canonicalDialect(app.config.Dialect) {
	case DialectRedshift:
		return redshift.Config(), nil
	case DialectPostgres:
		return postgres.Config(), nil
	case DialectMySQL:
		if app.config.DSN != "" {
			return mysql.ConfigForDSN(app.config.DSN)
		}
		return mysql.Config(), nil
	case DialectSQLite:
		return sqlite.Config(), nil
	case DialectClickHouse:
		return clickhouse.Config(), nil
	default:
		return quoter.Config{}, fmt.Errorf("unsupported dialect: %s (supported: redshift, postgres, mysql, sqlite, clickhouse)", app.config.Dialect)
	}
}

// newQuoter creates a Quoter with the current configuration.
func (app *App) newQuoter() (*quoter.Quoter, error) {
	config, err := app.dialectConfig()
	if err != nil {
		return nil, err
	}

	location := time.UTC
	if app.config.Timezone != "" {
		location, err = time.LoadLocation(app.config.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", app.config.Timezone, err)
		}
	}

	return quoter.New(config,
		quoter.WithLogger(app.logger()),
		quoter.WithLocation(location),
	), nil
}

// openDB opens the configured DSN with the custom opener, if any, or with
// the dialect's own opener.
func (app *App) openDB() (*sql.DB, error) {
	if app.config.DSN == "" {
		return nil, fmt.Errorf("dsn is required (use --dsn or QUOTER_DSN)")
	}
	if app.dbOpener != nil {
		return app.dbOpener(app.config.DSN)
	}

	switch canonicalDialect(app.config.Dialect) {
	case DialectRedshift:
		return redshift.Open(app.config.DSN)
	case DialectPostgres:
		return postgres.Open(app.config.DSN)
	case DialectMySQL:
		return mysql.Open(app.config.DSN)
	case DialectSQLite:
		return sqlite.Open(app.config.DSN)
	case DialectClickHouse:
		return clickhouse.Open(app.config.DSN)
	default:
		return sql.Open(getSQLDriverName(app.config.Dialect), app.config.DSN)
	}
}
