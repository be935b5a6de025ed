// Package redshift provides Amazon Redshift escaping primitives for quoter.
//
// Redshift speaks the PostgreSQL wire protocol, so connections go through the
// pgx stdlib driver, but its string literals always treat backslash as an
// escape character. Both string literals and bytea literals therefore double
// backslashes.
//
// # Basic Usage
//
//	import (
//	    "github.com/honeynil/quoter"
//	    "github.com/honeynil/quoter/drivers/redshift"
//	)
//
//	q := redshift.New(quoter.WithLocation(time.UTC))
//	name, err := q.QuoteTableName(`analytics."events.2024"`)
//	// "analytics"."events.2024"
package redshift

import (
	"database/sql"

	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/base"
	"github.com/honeynil/quoter/drivers/postgres"
)

// SQLDriverName is the database/sql driver used for Redshift clusters.
const SQLDriverName = postgres.SQLDriverName

// Config returns the Redshift escaping primitives.
func Config() quoter.Config {
	return quoter.Config{
		EscapeBytea:     base.EscapeByteaOctalBackslash,
		UnescapeBytea:   postgres.UnescapeBytea,
		EscapeString:    base.EscapeStringBackslash,
		QuoteIdentifier: postgres.QuoteIdentifier,
	}
}

// New creates a Quoter for Redshift.
func New(opts ...quoter.Option) *quoter.Quoter {
	return quoter.New(Config(), opts...)
}

// Open opens a database/sql handle for a Redshift cluster DSN.
func Open(dsn string) (*sql.DB, error) {
	return postgres.Open(dsn)
}
