package quoter

import (
	"math"
	"strconv"
	"strings"

	"github.com/honeynil/quoter/internal/escape"
)

// Quote converts v into a SQL literal.
//
// Rules by kind:
//   - Null: NULL
//   - Binary: '<EscapeBytea>'
//   - Float: 'Infinity', '-Infinity' and 'NaN' for non-finite values,
//     otherwise the shortest decimal that round-trips
//   - Integer: decimal digits
//   - Boolean: TRUE or FALSE
//   - Time: '<QuotedDate>', with the BC correction for years <= 0
//   - UUID: the canonical text form, quoted
//   - Text, Other: '<QuoteString>'
//
// The zero Value (KindInvalid) returns ErrUnsupportedValueKind.
func (q *Quoter) Quote(v Value) (string, error) {
	switch v.kind {
	case KindNull:
		return "NULL", nil
	case KindBinary:
		return "'" + q.escapeBytea(v.data) + "'", nil
	case KindFloat:
		return quoteFloat(v.float), nil
	case KindInteger:
		return strconv.FormatInt(v.integer, 10), nil
	case KindBoolean:
		if v.boolean {
			return "TRUE", nil
		}
		return "FALSE", nil
	case KindTime:
		if v.dateOnly {
			return "'" + q.quotedDateOnly(v.time) + "'", nil
		}
		return "'" + q.QuotedDate(v.time) + "'", nil
	case KindUUID:
		return "'" + v.uuid.String() + "'", nil
	case KindText, KindOther:
		// Designated fallback: anything string-shaped is quoted as text.
		return "'" + q.QuoteString(v.text) + "'", nil
	default:
		return "", newQuoteError("quote", v.kind.String(), ErrUnsupportedValueKind)
	}
}

// quoteFloat renders f. The database has no literal syntax for non-finite
// values, so they are written in their string-cast form.
func quoteFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "'NaN'"
	case math.IsInf(f, 1):
		return "'Infinity'"
	case math.IsInf(f, -1):
		return "'-Infinity'"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// QuoteString escapes s for use between single quotes. The surrounding
// quotes are not added.
//
// Without a driver primitive both single quotes and backslashes are
// doubled, which is safe whether or not the server treats backslash as an
// escape character.
func (q *Quoter) QuoteString(s string) string {
	if q.config.EscapeString != nil {
		return q.config.EscapeString(s)
	}
	return escape.StringBackslash(s)
}

// QuoteDefaultValue quotes a column default.
//
// For uuid columns a text value containing "()" is a generator expression
// such as gen_random_uuid() and is returned verbatim, unquoted. In every
// other case the value is quoted by Quote using its own kind; a uuid hint on
// a non-text value is ignored.
func (q *Quoter) QuoteDefaultValue(v Value, column ColumnTypeHint) (string, error) {
	if column.Type == ColumnTypeUUID {
		switch v.kind {
		case KindText, KindOther:
			if strings.Contains(v.text, "()") {
				q.logger.Debug("passing uuid default expression through unquoted",
					"expression", v.text)
				return v.text, nil
			}
		default:
			q.logger.Debug("ignoring uuid column hint for non-text value",
				"kind", v.kind.String())
		}
	}
	return q.Quote(v)
}
