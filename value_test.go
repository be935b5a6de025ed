package quoter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInvalid, "invalid"},
		{KindNull, "null"},
		{KindText, "text"},
		{KindBinary, "binary"},
		{KindFloat, "float"},
		{KindInteger, "integer"},
		{KindBoolean, "boolean"},
		{KindTime, "time"},
		{KindUUID, "uuid"},
		{KindOther, "other"},
		{Kind(99), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind(%d).String() = %q; want %q", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindNull, KindText, KindBinary, KindFloat, KindInteger, KindBoolean, KindTime, KindUUID, KindOther} {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v; want %v", kind.String(), got, kind)
		}
	}

	if got, err := ParseKind("date"); err != nil || got != KindTime {
		t.Errorf("ParseKind(date) = %v, %v", got, err)
	}
	if _, err := ParseKind("money"); !errors.Is(err, ErrUnsupportedValueKind) {
		t.Errorf("ParseKind(money) error = %v; want ErrUnsupportedValueKind", err)
	}
}

func TestFromAny(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		name  string
		input any
		kind  Kind
	}{
		{"nil", nil, KindNull},
		{"string", "s", KindText},
		{"bytes", []byte("b"), KindBinary},
		{"float64", 1.5, KindFloat},
		{"float32", float32(1.5), KindFloat},
		{"int", 1, KindInteger},
		{"int8", int8(1), KindInteger},
		{"int16", int16(1), KindInteger},
		{"int32", int32(1), KindInteger},
		{"int64", int64(1), KindInteger},
		{"uint", uint(1), KindInteger},
		{"uint8", uint8(1), KindInteger},
		{"uint16", uint16(1), KindInteger},
		{"uint32", uint32(1), KindInteger},
		{"uint64", uint64(1), KindInteger},
		{"bool", true, KindBoolean},
		{"time", now, KindTime},
		{"uuid", id, KindUUID},
		{"value", Text("v"), KindText},
		{"stringer", stringer{"x"}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromAny(tt.input)
			if err != nil {
				t.Fatalf("FromAny(%v) error: %v", tt.input, err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("FromAny(%v).Kind() = %v; want %v", tt.input, v.Kind(), tt.kind)
			}
		})
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	for _, input := range []any{struct{}{}, []int{1}, map[string]int{}, uint64(math.MaxUint64)} {
		if _, err := FromAny(input); !errors.Is(err, ErrUnsupportedValueKind) {
			t.Errorf("FromAny(%T) error = %v; want ErrUnsupportedValueKind", input, err)
		}
	}
}

func TestValue_Accessors(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-00000000000a")

	if s, ok := Text("t").Text(); !ok || s != "t" {
		t.Errorf("Text().Text() = %q, %v", s, ok)
	}
	if s, ok := UUID(id).Text(); !ok || s != id.String() {
		t.Errorf("UUID().Text() = %q, %v", s, ok)
	}
	if _, ok := Int(1).Text(); ok {
		t.Error("Int().Text() should not be text-like")
	}
	if !Null().IsNull() {
		t.Error("Null().IsNull() = false")
	}
	if !Date(time.Now()).IsDate() || Time(time.Now()).IsDate() {
		t.Error("IsDate mismatch")
	}
	if Int(3).Int() != 3 || Float(2.5).Float() != 2.5 || !Bool(true).Bool() {
		t.Error("scalar accessors mismatch")
	}
	if string(Binary([]byte("z")).Bytes()) != "z" {
		t.Error("Bytes() mismatch")
	}
	if UUID(id).UUID() != id {
		t.Error("UUID() mismatch")
	}
	if (Value{}).Kind() != KindInvalid {
		t.Error("zero Value should be KindInvalid")
	}
}
