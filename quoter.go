// Package quoter turns Go values into SQL literals and prepared-statement
// bindings for Redshift and other PostgreSQL-flavoured databases.
//
// A Quoter is built from a Config holding the driver-specific escaping
// primitives. Every method is a pure function of its arguments and those
// primitives, so a single Quoter can be shared between goroutines.
//
// # Basic Usage
//
//	q := quoter.New(redshift.Config())
//
//	lit, err := q.Quote(quoter.Text("O'Reilly"))   // 'O''Reilly'
//	tbl, err := q.QuoteTableName(`sales."q1.2024"`) // "sales"."q1.2024"
//	b, err := q.TypeCast(quoter.Binary(data))        // raw bytes, binary format
//
// # Injected Primitives
//
// Drivers supply the low-level escaping through Config. Any primitive left
// nil falls back to the built-in PostgreSQL-compatible rule, which makes
// the zero Config usable in tests:
//
//	q := quoter.New(quoter.Config{})
package quoter

import (
	"time"
)

// Config contains the escaping primitives a Quoter delegates to.
// Each driver package provides these strategies to customize behavior.
type Config struct {
	// EscapeBytea converts raw bytes into the body of a binary literal
	// (no surrounding quotes).
	// Redshift: escape format (\\ooo), PostgreSQL: hex format (\x...)
	EscapeBytea func(data []byte) string

	// UnescapeBytea decodes binary output returned by the database driver.
	// It is not required to invert EscapeBytea.
	UnescapeBytea func(text string) ([]byte, error)

	// EscapeString escapes a string for embedding between single quotes.
	// Standard strings: double single quotes
	// Redshift/MySQL/ClickHouse: also escape backslashes
	EscapeString func(s string) string

	// QuoteIdentifier delimits a single identifier segment.
	// PostgreSQL/Redshift/SQLite/ClickHouse: double quotes
	// MySQL: backticks
	QuoteIdentifier func(name string) string
}

// Quoter quotes identifiers and values for one database dialect.
//
// A Quoter is immutable after New and safe for concurrent use.
type Quoter struct {
	config   Config
	logger   Logger
	location *time.Location
}

// Option configures a Quoter.
type Option func(*Quoter)

// WithLogger sets the logger used for diagnostics such as ignored column hints.
// *slog.Logger satisfies Logger directly.
func WithLogger(logger Logger) Option {
	return func(q *Quoter) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithLocation sets the time zone date/time values are converted to before
// formatting. Default: UTC.
func WithLocation(loc *time.Location) Option {
	return func(q *Quoter) {
		if loc != nil {
			q.location = loc
		}
	}
}

// New creates a Quoter with the given primitives.
// Nil primitives fall back to the built-in rules.
func New(config Config, opts ...Option) *Quoter {
	q := &Quoter{
		config:   config,
		logger:   defaultLogger(),
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Location returns the time zone used by QuotedDate.
func (q *Quoter) Location() *time.Location {
	return q.location
}
