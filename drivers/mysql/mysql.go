// Package mysql provides MySQL and MariaDB escaping primitives for quoter.
//
// By default string and binary literals use backslash escapes, matching a
// server running with the default sql_mode. When the session enables
// NO_BACKSLASH_ESCAPES, backslash is an ordinary character and only single
// quotes may be escaped; use ConfigForDSN or NewForDSN to pick the right
// primitives from the connection string.
//
// # Basic Usage
//
//	import (
//	    "github.com/honeynil/quoter"
//	    "github.com/honeynil/quoter/drivers/mysql"
//	)
//
//	q, err := mysql.NewForDSN("user:pass@tcp(localhost:3306)/app?sql_mode=ANSI")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lit, _ := q.Quote(quoter.Text(`C:\tmp`)) // 'C:\\tmp'
//
// # Binary Data
//
// MySQL has no bytea type. Binary values are written into the literal as raw
// bytes with the string escapes applied, and UnescapeBytea decodes the output
// of HEX(), which is how binary columns are read back as text.
package mysql

import (
	"database/sql"
	"fmt"
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"github.com/honeynil/quoter"
	"github.com/honeynil/quoter/drivers/base"
)

// SQLDriverName is the database/sql driver name registered by
// github.com/go-sql-driver/mysql.
const SQLDriverName = "mysql"

const noBackslashEscapes = "NO_BACKSLASH_ESCAPES"

// Config returns the primitives for the default sql_mode.
func Config() quoter.Config {
	return quoter.Config{
		EscapeBytea:     EscapeBytea,
		UnescapeBytea:   base.UnescapeHex,
		EscapeString:    base.EscapeStringC,
		QuoteIdentifier: base.QuoteBackticks,
	}
}

// ConfigNoBackslashEscapes returns the primitives for sessions running with
// sql_mode NO_BACKSLASH_ESCAPES.
func ConfigNoBackslashEscapes() quoter.Config {
	return quoter.Config{
		EscapeBytea:     escapeByteaStandard,
		UnescapeBytea:   base.UnescapeHex,
		EscapeString:    base.EscapeStringStandard,
		QuoteIdentifier: base.QuoteBackticks,
	}
}

// ConfigForDSN parses dsn and returns the primitives matching the sql_mode
// it requests.
func ConfigForDSN(dsn string) (quoter.Config, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return quoter.Config{}, fmt.Errorf("parse mysql dsn: %w", err)
	}
	if BackslashEscapesDisabled(cfg) {
		return ConfigNoBackslashEscapes(), nil
	}
	return Config(), nil
}

// BackslashEscapesDisabled reports whether the sql_mode set by cfg contains
// NO_BACKSLASH_ESCAPES.
func BackslashEscapesDisabled(cfg *driver.Config) bool {
	mode, ok := cfg.Params["sql_mode"]
	if !ok {
		return false
	}
	mode = strings.Trim(mode, `'"`)
	for _, m := range strings.Split(mode, ",") {
		if strings.EqualFold(strings.TrimSpace(m), noBackslashEscapes) {
			return true
		}
	}
	return false
}

// New creates a Quoter for the default sql_mode.
func New(opts ...quoter.Option) *quoter.Quoter {
	return quoter.New(Config(), opts...)
}

// NewForDSN creates a Quoter matching the sql_mode of dsn.
func NewForDSN(dsn string, opts ...quoter.Option) (*quoter.Quoter, error) {
	config, err := ConfigForDSN(dsn)
	if err != nil {
		return nil, err
	}
	return quoter.New(config, opts...), nil
}

// Open opens a database/sql handle for dsn through a go-sql-driver connector.
func Open(dsn string) (*sql.DB, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	connector, err := driver.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create mysql connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}

// EscapeBytea escapes raw bytes with the backslash sequences MySQL
// understands inside a string literal.
func EscapeBytea(data []byte) string {
	return base.EscapeStringC(string(data))
}

func escapeByteaStandard(data []byte) string {
	return base.EscapeStringStandard(string(data))
}
