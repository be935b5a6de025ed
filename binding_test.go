package quoter

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTypeCast_Binary(t *testing.T) {
	q := New(Config{})
	data := []byte{0x00, '\'', '\\', 0xff}

	b, err := q.TypeCast(Binary(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsBinary() {
		t.Errorf("Format = %d; want binary", b.Format)
	}
	raw, ok := b.Data.([]byte)
	if !ok {
		t.Fatalf("Data is %T; want []byte", b.Data)
	}
	if !bytes.Equal(raw, data) {
		t.Errorf("Data = %v; want unescaped %v", raw, data)
	}

	// The literal path escapes; the binding path must not.
	lit, err := q.Quote(Binary(data))
	if err != nil {
		t.Fatal(err)
	}
	if lit == "'"+string(data)+"'" {
		t.Errorf("Quote returned unescaped literal %q", lit)
	}
}

func TestTypeCast_EmptyBinary(t *testing.T) {
	q := New(Config{})

	b, err := q.TypeCast(Binary(nil))
	if err != nil {
		t.Fatal(err)
	}
	raw, ok := b.Data.([]byte)
	if !ok || raw == nil || len(raw) != 0 {
		t.Errorf("Data = %#v; want empty non-nil []byte", b.Data)
	}
}

func TestTypeCast_TextFormat(t *testing.T) {
	q := New(Config{})
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	tests := []struct {
		name     string
		value    Value
		expected any
	}{
		{"null", Null(), nil},
		{"text", Text("it's"), "it's"},
		{"other", Other("raw"), "raw"},
		{"integer", Int(12), int64(12)},
		{"float", Float(2.5), 2.5},
		{"boolean", Bool(true), true},
		{"time", Time(time.Date(-1, 1, 1, 0, 0, 0, 0, time.UTC)), "0002-01-01 00:00:00 BC"},
		{"date", Date(time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)), "2020-05-06"},
		{"uuid", UUID(id), "00000000-0000-0000-0000-000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := q.TypeCast(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Format != TextFormat {
				t.Errorf("Format = %d; want text", b.Format)
			}
			if b.Data != tt.expected {
				t.Errorf("Data = %#v; want %#v", b.Data, tt.expected)
			}
		})
	}
}

func TestTypeCast_NonFiniteFloatPassesThrough(t *testing.T) {
	q := New(Config{})

	b, err := q.TypeCast(Float(math.Inf(1)))
	if err != nil {
		t.Fatal(err)
	}
	f, ok := b.Data.(float64)
	if !ok || !math.IsInf(f, 1) {
		t.Errorf("Data = %#v; want +Inf", b.Data)
	}
}

func TestTypeCast_InvalidKind(t *testing.T) {
	q := New(Config{})

	if _, err := q.TypeCast(Value{}); !errors.Is(err, ErrUnsupportedValueKind) {
		t.Errorf("TypeCast(Value{}) error = %v; want ErrUnsupportedValueKind", err)
	}
}

func TestBinding_Value(t *testing.T) {
	b := Binding{Data: "x", Format: TextFormat}

	v, err := b.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "x" {
		t.Errorf("Value() = %v; want x", v)
	}
}
