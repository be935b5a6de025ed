package redshift

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/honeynil/quoter"
)

func TestQuote(t *testing.T) {
	q := New()

	tests := []struct {
		name     string
		value    quoter.Value
		expected string
	}{
		{"null", quoter.Null(), "NULL"},
		{"text with quote", quoter.Text("O'Reilly"), "'O''Reilly'"},
		{"text with backslash", quoter.Text(`a\b`), `'a\\b'`},
		{"binary printable", quoter.Binary([]byte("abc")), "'abc'"},
		{"binary control", quoter.Binary([]byte{0x00, 0x7f}), `'\\000\\177'`},
		{"binary backslash", quoter.Binary([]byte(`\`)), `'\\\\'`},
		{"binary quote", quoter.Binary([]byte("'")), "''''"},
		{"integer", quoter.Int(10), "10"},
		{"bool", quoter.Bool(false), "FALSE"},
		{"bc date", quoter.Date(time.Date(-4, 6, 1, 0, 0, 0, 0, time.UTC)), "'0005-06-01 BC'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := q.Quote(tt.value)
			if err != nil {
				t.Fatalf("Quote() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Quote() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	q := New()

	tests := []struct {
		input    string
		expected string
	}{
		{"events", `"events"`},
		{`"events.2024"`, `"events.2024"`},
		{"analytics.events", `"analytics"."events"`},
		{`analytics."events.2024"`, `"analytics"."events.2024"`},
		{`"raw.data".events`, `"raw.data"."events"`},
		{`"raw.data"."events.2024"`, `"raw.data"."events.2024"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := q.QuoteTableName(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if result != tt.expected {
				t.Errorf("QuoteTableName(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestUnescapeBytea(t *testing.T) {
	q := New()

	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"escape output", `\000ab\\`, []byte{0x00, 'a', 'b', '\\'}},
		{"hex output", `\x6162`, []byte("ab")},
		{"empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := q.UnescapeBytea(sql.NullString{String: tt.input, Valid: true})
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("UnescapeBytea(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTypeCast_BinaryIsNotEscaped(t *testing.T) {
	q := New()
	data := []byte{0x00, '\\', '\''}

	b, err := q.TypeCast(quoter.Binary(data))
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsBinary() {
		t.Errorf("Format = %d; want binary", b.Format)
	}
	if !bytes.Equal(b.Data.([]byte), data) {
		t.Errorf("Data = %v; want %v", b.Data, data)
	}
}

func TestInvalidTableNames(t *testing.T) {
	th := quoter.NewTest(t, Config())

	for _, name := range []string{"", "a.b.c", `"open`, `a."b`, ".t", "s.", "s.a\x00b"} {
		th.AssertInvalidTableName(name)
	}

	th.TestIdentifierRoundTrip(
		quoter.QualifiedName{Identifier: "events"},
		quoter.QualifiedName{Schema: "raw.data", Identifier: "events.2024"},
	)

	q := New()
	if q.QuoteIdentifier("a\x00b") == q.QuoteIdentifier("ab") {
		t.Error("identifiers differing by a NUL byte quote identically")
	}
}
