package quoter

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// dateFormat renders calendar dates.
	dateFormat = "2006-01-02"

	// timestampFormat renders timestamps without fractional seconds;
	// microseconds are appended only when non-zero.
	timestampFormat = "2006-01-02 15:04:05"
)

// leadingYear matches the signed year at the start of a formatted value.
var leadingYear = regexp.MustCompile(`^-?\d+`)

// QuotedDate formats t for use inside a date/time literal (without quotes).
//
// The value is converted to the Quoter's location first. Date values keep
// the calendar day they were built with and are never converted. Years <= 0 use
// astronomical numbering (year 0 is 1 BC), so the leading year is rewritten
// as a 4-digit 1-based BC year followed by " BC":
//
//	year 2024 -> 2024-03-01 12:00:00
//	year 0    -> 0001-03-01 12:00:00 BC
//	year -5   -> 0006-03-01 12:00:00 BC
func (q *Quoter) QuotedDate(t time.Time) string {
	return q.formatTime(t, false)
}

// quotedDateOnly is QuotedDate for Date values.
func (q *Quoter) quotedDateOnly(t time.Time) string {
	return q.formatTime(t, true)
}

func (q *Quoter) formatTime(t time.Time, dateOnly bool) string {
	var result string
	if dateOnly {
		result = t.Format(dateFormat)
	} else {
		t = t.In(q.location)
		result = t.Format(timestampFormat)
		if usec := t.Nanosecond() / int(time.Microsecond); usec > 0 {
			result += fmt.Sprintf(".%06d", usec)
		}
	}

	if year := t.Year(); year <= 0 {
		bceYear := fmt.Sprintf("%04d", -year+1)
		result = leadingYear.ReplaceAllLiteralString(result, bceYear) + " BC"
	}
	return result
}
