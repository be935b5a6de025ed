// Package postgres provides PostgreSQL escaping primitives for quoter.
//
// Identifiers and bytea values are encoded with pgx, so literals match what
// the pgx driver itself would produce. The primitives assume
// standard_conforming_strings = on (the default since PostgreSQL 9.1).
//
// # Basic Usage
//
//	import (
//	    "github.com/honeynil/quoter"
//	    "github.com/honeynil/quoter/drivers/postgres"
//	)
//
//	q := postgres.New()
//	lit, _ := q.Quote(quoter.Binary(data)) // '\x0102...'
package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/stdlib"
)

// SQLDriverName is the database/sql driver name registered by
// github.com/jackc/pgx/v5/stdlib.
const SQLDriverName = "pgx"

// pgtype.Map caches encode and scan plans and is not safe for concurrent use,
// so each call borrows one from the pool.
var typeMaps = sync.Pool{
	New: func() any { return pgtype.NewMap() },
}

// Config returns the PostgreSQL escaping primitives.
func Config() quoter.Config {
	return quoter.Config{
		EscapeBytea:     EscapeBytea,
		UnescapeBytea:   UnescapeBytea,
		EscapeString:    base.EscapeStringStandard,
		QuoteIdentifier: QuoteIdentifier,
	}
}

// New creates a Quoter for PostgreSQL.
func New(opts ...quoter.Option) *quoter.Quoter {
	return quoter.New(Config(), opts...)
}

// Open opens a database/sql handle for dsn through the pgx stdlib adapter.
// Both URL ("postgres://...") and keyword/value DSNs are accepted.
func Open(dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	return stdlib.OpenDB(*config), nil
}

// QuoteIdentifier delimits a single identifier with pgx.Identifier.
// pgx drops NUL bytes, so a name containing one is quoted verbatim instead
// and the server rejects it rather than silently naming another object.
func QuoteIdentifier(name string) string {
	if strings.IndexByte(name, 0) >= 0 {
		return base.QuoteDoubleQuotes(name)
	}
	return pgx.Identifier{name}.Sanitize()
}

// EscapeBytea encodes data in hex format using the pgx bytea codec.
func EscapeBytea(data []byte) string {
	if data == nil {
		data = []byte{}
	}

	m := typeMaps.Get().(*pgtype.Map)
	defer typeMaps.Put(m)

	buf, err := m.Encode(pgtype.ByteaOID, pgtype.TextFormatCode, data, nil)
	if err != nil {
		// The bytea codec cannot fail on a []byte; keep the output defined anyway.
		return base.EscapeByteaHex(data)
	}
	return string(buf)
}

// UnescapeBytea decodes bytea output in hex format through pgx, and in the
// legacy escape format (bytea_output = 'escape') through the base decoder.
func UnescapeBytea(text string) ([]byte, error) {
	if len(text) < 2 || text[0] != '\\' || text[1] != 'x' {
		return base.UnescapeBytea(text)
	}

	m := typeMaps.Get().(*pgtype.Map)
	defer typeMaps.Put(m)

	var data []byte
	if err := m.Scan(pgtype.ByteaOID, pgtype.TextFormatCode, []byte(text), &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}
