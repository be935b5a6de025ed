// Package mock provides in-memory fake escaping primitives for testing code
// that uses a Quoter without a database session.
//
// The fake primitives use simple, easily recognisable encodings (hex for
// bytea, doubled quotes for strings, bracketed identifiers) and record every
// call so tests can assert that the Quoter delegated as expected.
package mock

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/honeynil/quoter"
)

// Call is one recorded primitive invocation.
type Call struct {
	Primitive string // "escape_bytea", "unescape_bytea", "escape_string", "quote_identifier"
	Input     string
}

// Driver is an in-memory fake set of escaping primitives.
type Driver struct {
	mu          sync.Mutex
	calls       []Call
	unescapeErr error
}

// New creates a new mock driver.
func New() *Driver {
	return &Driver{}
}

// SetUnescapeError makes UnescapeBytea return the specified error.
func (d *Driver) SetUnescapeError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unescapeErr = err
}

// Calls returns a copy of the recorded calls in order.
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]Call, len(d.calls))
	copy(result, d.calls)
	return result
}

// CallCount returns how many times the named primitive was invoked.
func (d *Driver) CallCount(primitive string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, c := range d.calls {
		if c.Primitive == primitive {
			n++
		}
	}
	return n
}

// Reset clears recorded calls and injected errors.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
	d.unescapeErr = nil
}

func (d *Driver) record(primitive, input string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Primitive: primitive, Input: input})
}

// EscapeBytea encodes data as "hex:" followed by lowercase hex digits.
func (d *Driver) EscapeBytea(data []byte) string {
	d.record("escape_bytea", string(data))
	return "hex:" + hex.EncodeToString(data)
}

// UnescapeBytea decodes plain hex digits, the fake server output format.
// Note the asymmetry: the "hex:" prefix written by EscapeBytea is rejected.
func (d *Driver) UnescapeBytea(text string) ([]byte, error) {
	d.record("unescape_bytea", text)

	d.mu.Lock()
	err := d.unescapeErr
	d.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(text)
}

// EscapeString doubles single quotes.
func (d *Driver) EscapeString(s string) string {
	d.record("escape_string", s)
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteIdentifier wraps name in brackets, doubling closing brackets.
func (d *Driver) QuoteIdentifier(name string) string {
	d.record("quote_identifier", name)
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// Config returns a quoter.Config backed by this driver.
func (d *Driver) Config() quoter.Config {
	return quoter.Config{
		EscapeBytea:     d.EscapeBytea,
		UnescapeBytea:   d.UnescapeBytea,
		EscapeString:    d.EscapeString,
		QuoteIdentifier: d.QuoteIdentifier,
	}
}

// Quoter returns a Quoter wired to this driver.
func (d *Driver) Quoter(opts ...quoter.Option) *quoter.Quoter {
	return quoter.New(d.Config(), opts...)
}
