package quoter

import (
	"database/sql"
	"fmt"

	"github.com/honeynil/quoter/internal/escape"
)

// EscapeBytea converts data into the body of a binary literal.
//
// A nil slice means "no value": the result has Valid == false. An empty,
// non-nil slice yields a valid empty string. Every byte sequence, including
// NUL and non-ASCII bytes, has an escaped form.
func (q *Quoter) EscapeBytea(data []byte) sql.NullString {
	if data == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: q.escapeBytea(data), Valid: true}
}

func (q *Quoter) escapeBytea(data []byte) string {
	if q.config.EscapeBytea != nil {
		return q.config.EscapeBytea(data)
	}
	return escape.ByteaOctal(data, true)
}

// UnescapeBytea decodes binary output returned by the database driver.
//
// NOTE: this is NOT an inverse of EscapeBytea. EscapeBytea produces literal
// input (escape format, with the literal grammar's own escaping on top)
// while servers return bytea in their output format (usually hex). Only
// pass text obtained from the driver.
//
// Absent input (Valid == false) returns nil and no error. Malformed input
// returns an error wrapping ErrMalformedBytea and no partial output.
func (q *Quoter) UnescapeBytea(text sql.NullString) ([]byte, error) {
	if !text.Valid {
		return nil, nil
	}

	unescape := escape.UnescapeBytea
	if q.config.UnescapeBytea != nil {
		unescape = q.config.UnescapeBytea
	}

	data, err := unescape(text.String)
	if err != nil {
		q.logger.Warn("rejecting malformed bytea output",
			"length", len(text.String), "error", err)
		return nil, newQuoteError("unescape_bytea", text.String,
			fmt.Errorf("%w: %v", ErrMalformedBytea, err))
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}
