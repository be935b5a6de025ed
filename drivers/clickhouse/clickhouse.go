// Package clickhouse provides ClickHouse escaping primitives for quoter.
//
// ClickHouse string literals use C-style backslash escapes. Binary values are
// written with \xHH escapes for every byte outside printable ASCII, so the
// literal stays valid UTF-8 text while carrying arbitrary bytes.
package clickhouse

import (
	"database/sql"
	"fmt"

	driver "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/base"
)

// SQLDriverName is the database/sql driver name registered by
// github.com/ClickHouse/clickhouse-go/v2.
const SQLDriverName = "clickhouse"

// Config returns the ClickHouse escaping primitives.
func Config() quoter.Config {
	return quoter.Config{
		EscapeBytea:     base.EscapeBytesC,
		UnescapeBytea:   base.UnescapeHex,
		EscapeString:    base.EscapeStringC,
		QuoteIdentifier: base.QuoteDoubleQuotes,
	}
}

// New creates a Quoter for ClickHouse.
//
// Example:
//
//	q := clickhouse.New()
//	name, _ := q.QuoteTableName("analytics.events")
//	// "analytics"."events"
func New(opts ...quoter.Option) *quoter.Quoter {
	return quoter.New(Config(), opts...)
}

// Open opens a database/sql handle for a clickhouse:// DSN.
func Open(dsn string) (*sql.DB, error) {
	options, err := driver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	return driver.OpenDB(options), nil
}
