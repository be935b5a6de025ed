// Package sqlite provides SQLite escaping primitives for quoter.
//
// SQLite string literals follow the SQL standard: single quotes are doubled
// and backslash has no special meaning. Identifiers are delimited with double
// quotes.
//
// # Basic Usage
//
//	import (
//	    "github.com/honeynil/quoter"
//	    "github.com/honeynil/quoter/drivers/sqlite"
//	)
//
//	q := sqlite.New()
//	lit, _ := q.Quote(quoter.Text("it's")) // 'it''s'
//
// # Binary Data
//
// A SQLite text literal cannot carry NUL bytes, so binary values are written
// as a hex string body ('0A0B...'). Wrap the literal in unhex() to obtain a
// BLOB, or bind the value with TypeCast instead. UnescapeBytea decodes the
// output of hex().
//
// # Database File
//
//   - Persistent: "myapp.db" or "/path/to/database.db"
//   - In-memory: ":memory:" (lost when connection closes)
package sqlite

import (
	"database/sql"
	"encoding/hex"
	"strings"

	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/base"
	_ "github.com/mattn/go-sqlite3"
)

// SQLDriverName is the database/sql driver name registered by
// github.com/mattn/go-sqlite3.
const SQLDriverName = "sqlite3"

// Config returns the SQLite escaping primitives.
//
// Quote(Binary) yields a hex TEXT literal such as '00AB', not a BLOB. Use
// unhex(<literal>) in SQL, or bind the value with TypeCast, to store bytes.
func Config() quoter.Config {
	return quoter.Config{
		EscapeBytea:     EscapeBytea,
		UnescapeBytea:   base.UnescapeHex,
		EscapeString:    base.EscapeStringStandard,
		QuoteIdentifier: base.QuoteDoubleQuotes,
	}
}

// New creates a Quoter for SQLite.
func New(opts ...quoter.Option) *quoter.Quoter {
	return quoter.New(Config(), opts...)
}

// Open opens the SQLite database at dsn.
func Open(dsn string) (*sql.DB, error) {
	return sql.Open(SQLDriverName, dsn)
}

// EscapeBytea writes data as uppercase hex digits, the same form hex()
// returns. Quoted as-is the result is TEXT; wrap it in unhex() to get a BLOB.
func EscapeBytea(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
