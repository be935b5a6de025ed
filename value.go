package quoter

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which quoting rule applies to a Value.
type Kind int

const (
	// KindInvalid is the zero Kind. No quoting rule is defined for it.
	KindInvalid Kind = iota

	// KindNull is SQL NULL.
	KindNull

	// KindText is a character string.
	KindText

	// KindBinary is an arbitrary byte sequence (bytea).
	KindBinary

	// KindFloat is a float64, including infinities and NaN.
	KindFloat

	// KindInteger is an int64.
	KindInteger

	// KindBoolean is a bool.
	KindBoolean

	// KindTime is a timestamp or, for values built with Date, a calendar date.
	KindTime

	// KindUUID is a UUID.
	KindUUID

	// KindOther is a raw string with no dedicated rule. It is quoted as text.
	KindOther
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

// ParseKind maps a kind name (as printed by Kind.String) back to a Kind.
// "date" is accepted as an alias of "time".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "null":
		return KindNull, nil
	case "text", "string":
		return KindText, nil
	case "binary", "bytea":
		return KindBinary, nil
	case "float":
		return KindFloat, nil
	case "integer", "int":
		return KindInteger, nil
	case "boolean", "bool":
		return KindBoolean, nil
	case "time", "date":
		return KindTime, nil
	case "uuid":
		return KindUUID, nil
	case "other":
		return KindOther, nil
	default:
		return KindInvalid, fmt.Errorf("%w: %q", ErrUnsupportedValueKind, name)
	}
}

// Value is an immutable tagged union over the values the Quoter understands.
//
// Build values with the constructors (Text, Binary, Float, ...). The zero
// Value has KindInvalid and is rejected by Quote and TypeCast.
type Value struct {
	kind     Kind
	text     string
	data     []byte
	float    float64
	integer  int64
	boolean  bool
	time     time.Time
	dateOnly bool
	uuid     uuid.UUID
}

// Null returns the SQL NULL value.
func Null() Value { return Value{kind: KindNull} }

// Text returns a character string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Binary returns a binary value. A nil slice is still a (empty) binary
// value; use Null for SQL NULL.
func Binary(b []byte) Value { return Value{kind: KindBinary, data: b} }

// Float returns a float64 value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInteger, integer: i} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// Time returns a timestamp value.
func Time(t time.Time) Value { return Value{kind: KindTime, time: t} }

// Date returns a date value; only the calendar date of t is rendered.
func Date(t time.Time) Value { return Value{kind: KindTime, time: t, dateOnly: true} }

// UUID returns a UUID value.
func UUID(u uuid.UUID) Value { return Value{kind: KindUUID, uuid: u} }

// Other returns a raw string value without a dedicated quoting rule.
func Other(s string) Value { return Value{kind: KindOther, text: s} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is SQL NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsDate reports whether a KindTime value renders the date part only.
func (v Value) IsDate() bool { return v.kind == KindTime && v.dateOnly }

// Bytes returns the payload of a binary value.
func (v Value) Bytes() []byte { return v.data }

// Float returns the payload of a float value.
func (v Value) Float() float64 { return v.float }

// Int returns the payload of an integer value.
func (v Value) Int() int64 { return v.integer }

// Bool returns the payload of a boolean value.
func (v Value) Bool() bool { return v.boolean }

// Time returns the payload of a time value.
func (v Value) Time() time.Time { return v.time }

// UUID returns the payload of a UUID value.
func (v Value) UUID() uuid.UUID { return v.uuid }

// Text returns the textual payload of text-like values
// (KindText, KindOther, and the canonical form of KindUUID).
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindText, KindOther:
		return v.text, true
	case KindUUID:
		return v.uuid.String(), true
	default:
		return "", false
	}
}

// FromAny converts a plain Go value into a Value.
//
// Supported inputs: nil, string, []byte, float32, float64, signed and
// unsigned integers (uint64 above math.MaxInt64 is rejected), bool,
// time.Time, uuid.UUID, Value, and fmt.Stringer (as KindOther).
// Any other type returns ErrUnsupportedValueKind.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Binary(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x)
	case bool:
		return Bool(x), nil
	case time.Time:
		return Time(x), nil
	case uuid.UUID:
		return UUID(x), nil
	case fmt.Stringer:
		return Other(x.String()), nil
	default:
		return Value{}, newQuoteError("from_any", fmt.Sprintf("%T", x), ErrUnsupportedValueKind)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, newQuoteError("from_any", fmt.Sprint(u), ErrUnsupportedValueKind)
	}
	return Int(int64(u)), nil
}
