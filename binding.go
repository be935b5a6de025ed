package quoter

import (
	"database/sql/driver"

	"github.com/jackc/pgx/v5/pgtype"
)

// Format codes of the extended query protocol.
const (
	TextFormat   = pgtype.TextFormatCode
	BinaryFormat = pgtype.BinaryFormatCode
)

// Binding is a value prepared for a parameterized statement: the data sent
// out of band together with its wire format code.
type Binding struct {
	Data   any
	Format int16
}

// IsBinary reports whether the binding uses the binary wire format.
func (b Binding) IsBinary() bool {
	return b.Format == BinaryFormat
}

// Value implements driver.Valuer so a Binding can be passed to database/sql.
func (b Binding) Value() (driver.Value, error) {
	return b.Data, nil
}

// TypeCast prepares v for a prepared-statement parameter.
//
// Binary values bind the raw bytes in binary format: the protocol carries
// them safely, so they are never escaped here. All other kinds bind in text
// format:
//   - Null: nil
//   - Text, Other: string
//   - Integer: int64
//   - Float: float64
//   - Boolean: bool
//   - Time: the QuotedDate string
//   - UUID: canonical string
func (q *Quoter) TypeCast(v Value) (Binding, error) {
	switch v.kind {
	case KindBinary:
		data := v.data
		if data == nil {
			data = []byte{}
		}
		return Binding{Data: data, Format: BinaryFormat}, nil
	case KindNull:
		return Binding{Data: nil, Format: TextFormat}, nil
	case KindText, KindOther:
		return Binding{Data: v.text, Format: TextFormat}, nil
	case KindInteger:
		return Binding{Data: v.integer, Format: TextFormat}, nil
	case KindFloat:
		return Binding{Data: v.float, Format: TextFormat}, nil
	case KindBoolean:
		return Binding{Data: v.boolean, Format: TextFormat}, nil
	case KindTime:
		if v.dateOnly {
			return Binding{Data: q.quotedDateOnly(v.time), Format: TextFormat}, nil
		}
		return Binding{Data: q.QuotedDate(v.time), Format: TextFormat}, nil
	case KindUUID:
		return Binding{Data: v.uuid.String(), Format: TextFormat}, nil
	default:
		return Binding{}, newQuoteError("type_cast", v.kind.String(), ErrUnsupportedValueKind)
	}
}
