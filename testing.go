package quoter

import (
	"bytes"
	"database/sql"
	"errors"
	"testing"
)

// TestHelper provides testing utilities for code that builds SQL with a
// Quoter.
//
// TestHelper wraps a Quoter with helpers that fail the test on errors
// instead of returning them. This reduces boilerplate in dialect and
// statement-builder tests.
//
// # Usage
//
// Create a TestHelper with NewTest and use its Must* and Assert* methods:
//
//	func TestInsert(t *testing.T) {
//	    q := quoter.NewTest(t, redshift.Config())
//
//	    table := q.MustQuoteTableName("analytics.events")
//	    q.AssertLiteral(quoter.Text("it's"), "'it''s'")
//	}
//
// Use TestIdentifierRoundTrip to check that quoted names parse back to the
// same segments:
//
//	q.TestIdentifierRoundTrip(
//	    quoter.QualifiedName{Schema: "raw.data", Identifier: "events"},
//	)
type TestHelper struct {
	*Quoter
	t *testing.T
}

// NewTest creates a Quoter bound to t.
func NewTest(t *testing.T, config Config, opts ...Option) *TestHelper {
	t.Helper()

	return &TestHelper{
		Quoter: New(config, opts...),
		t:      t,
	}
}

// MustQuote is like Quote but fails the test on error.
func (th *TestHelper) MustQuote(v Value) string {
	th.t.Helper()
	literal, err := th.Quote(v)
	if err != nil {
		th.t.Fatalf("Failed to quote %s value: %v", v.Kind(), err)
	}
	return literal
}

// MustQuoteTableName is like QuoteTableName but fails the test on error.
func (th *TestHelper) MustQuoteTableName(name string) string {
	th.t.Helper()
	quoted, err := th.QuoteTableName(name)
	if err != nil {
		th.t.Fatalf("Failed to quote table name %q: %v", name, err)
	}
	return quoted
}

// MustTypeCast is like TypeCast but fails the test on error.
func (th *TestHelper) MustTypeCast(v Value) Binding {
	th.t.Helper()
	binding, err := th.TypeCast(v)
	if err != nil {
		th.t.Fatalf("Failed to cast %s value: %v", v.Kind(), err)
	}
	return binding
}

// MustUnescapeBytea decodes server bytea output, failing the test on error.
func (th *TestHelper) MustUnescapeBytea(text string) []byte {
	th.t.Helper()
	data, err := th.UnescapeBytea(sql.NullString{String: text, Valid: true})
	if err != nil {
		th.t.Fatalf("Failed to unescape bytea %q: %v", text, err)
	}
	return data
}

// AssertLiteral checks that v quotes to want.
func (th *TestHelper) AssertLiteral(v Value, want string) {
	th.t.Helper()
	if got := th.MustQuote(v); got != want {
		th.t.Errorf("Quote(%s) = %q; want %q", v.Kind(), got, want)
	}
}

// AssertUnescapeBytea checks that server output text decodes to want.
func (th *TestHelper) AssertUnescapeBytea(text string, want []byte) {
	th.t.Helper()
	if got := th.MustUnescapeBytea(text); !bytes.Equal(got, want) {
		th.t.Errorf("UnescapeBytea(%q) = %v; want %v", text, got, want)
	}
}

// AssertInvalidTableName checks that name is rejected as an identifier.
func (th *TestHelper) AssertInvalidTableName(name string) {
	th.t.Helper()
	quoted, err := th.QuoteTableName(name)
	if err == nil {
		th.t.Errorf("QuoteTableName(%q) = %q; want error", name, quoted)
		return
	}
	if !errors.Is(err, ErrInvalidIdentifier) {
		th.t.Errorf("QuoteTableName(%q) error = %v; want ErrInvalidIdentifier", name, err)
	}
}

// TestIdentifierRoundTrip verifies that each name, written in the
// double-quoted form, parses back to the same schema and identifier and
// quotes without error.
func (th *TestHelper) TestIdentifierRoundTrip(names ...QualifiedName) {
	th.t.Helper()

	for _, name := range names {
		quoted := name.Quoted()

		parsed, err := ParseQualifiedName(quoted)
		if err != nil {
			th.t.Fatalf("Failed to parse %q: %v", quoted, err)
		}
		if parsed != name {
			th.t.Errorf("ParseQualifiedName(%q) = %+v; want %+v", quoted, parsed, name)
			continue
		}
		th.MustQuoteTableName(quoted)
	}

	th.t.Logf("✓ Round-tripped %d qualified names", len(names))
}
