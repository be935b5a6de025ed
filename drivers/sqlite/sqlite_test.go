package sqlite

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/honeynil/quoter"
)

// setupTestDB opens a private in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestQuote(t *testing.T) {
	q := New()

	tests := []struct {
		name     string
		value    quoter.Value
		expected string
	}{
		{"text with quote", quoter.Text("it's"), "'it''s'"},
		{"backslash is literal", quoter.Text(`a\b`), `'a\b'`},
		{"binary", quoter.Binary([]byte{0x00, 0xab}), "'00AB'"},
		{"empty binary", quoter.Binary([]byte{}), "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := q.Quote(tt.value)
			if err != nil {
				t.Fatal(err)
			}
			if result != tt.expected {
				t.Errorf("Quote() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestTextLiteralsEvaluate(t *testing.T) {
	db := setupTestDB(t)
	q := New()

	inputs := []string{
		"plain",
		"it's",
		"''",
		`back\slash`,
		"'; DROP TABLE users; --",
		"line\nbreak",
		"юникод",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			lit, err := q.Quote(quoter.Text(input))
			if err != nil {
				t.Fatal(err)
			}

			var got string
			if err := db.QueryRow("SELECT " + lit).Scan(&got); err != nil {
				t.Fatalf("SELECT %s failed: %v", lit, err)
			}
			if got != input {
				t.Errorf("SELECT %s = %q; want %q", lit, got, input)
			}
		})
	}
}

func TestQuotedIdentifiersEvaluate(t *testing.T) {
	db := setupTestDB(t)
	q := New()

	table, err := q.QuoteTableName(`main."odd""table.name"`)
	if err != nil {
		t.Fatal(err)
	}
	column := q.QuoteColumnName(`select`)

	if _, err := db.Exec("CREATE TABLE " + table + " (" + column + " TEXT)"); err != nil {
		t.Fatalf("CREATE TABLE %s failed: %v", table, err)
	}

	value, err := q.Quote(quoter.Text("x'y"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO " + table + " (" + column + ") VALUES (" + value + ")"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	var got string
	if err := db.QueryRow("SELECT " + column + " FROM " + table).Scan(&got); err != nil {
		t.Fatal(err)
	}
	if got != "x'y" {
		t.Errorf("stored value = %q; want %q", got, "x'y")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	q := New()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	t.Run("literal", func(t *testing.T) {
		lit, err := q.Quote(quoter.Binary(data))
		if err != nil {
			t.Fatal(err)
		}

		var got []byte
		if err := db.QueryRow("SELECT unhex(" + lit + ")").Scan(&got); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Error("binary literal did not round-trip")
		}
	})

	t.Run("binding", func(t *testing.T) {
		binding, err := q.TypeCast(quoter.Binary(data))
		if err != nil {
			t.Fatal(err)
		}

		var hexText sql.NullString
		if err := db.QueryRow("SELECT hex(?)", binding).Scan(&hexText); err != nil {
			t.Fatal(err)
		}

		got, err := q.UnescapeBytea(hexText)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Error("bound binary value did not round-trip")
		}
	})
}

func TestBinaryLiteralStorageClass(t *testing.T) {
	db := setupTestDB(t)
	q := New()

	lit, err := q.Quote(quoter.Binary([]byte{0x00, 0xab}))
	if err != nil {
		t.Fatal(err)
	}
	if lit != "'00AB'" {
		t.Fatalf("Quote(Binary) = %q; want %q", lit, "'00AB'")
	}

	tests := []struct {
		expr string
		want string
	}{
		{lit, "text"},
		{"unhex(" + lit + ")", "blob"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			var got string
			if err := db.QueryRow("SELECT typeof(" + tt.expr + ")").Scan(&got); err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("typeof(%s) = %q; want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestDateLiteralsEvaluate(t *testing.T) {
	db := setupTestDB(t)
	q := New()

	lit, err := q.Quote(quoter.Time(time.Date(2024, 2, 29, 23, 59, 58, 123456000, time.UTC)))
	if err != nil {
		t.Fatal(err)
	}

	var got string
	if err := db.QueryRow("SELECT datetime(" + lit + ")").Scan(&got); err != nil {
		t.Fatal(err)
	}
	if got != "2024-02-29 23:59:58" {
		t.Errorf("datetime(%s) = %q", lit, got)
	}
}
