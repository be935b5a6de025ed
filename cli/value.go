package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/quoter"
)

// timeLayouts are tried in order when parsing time and date arguments.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseValue builds a Value of the named kind from a command-line argument.
//
// Binary arguments are taken as raw bytes, or as hex digits when prefixed
// with \x. Time and date arguments may carry a leading '-' on the year.
func parseValue(kind, raw string) (quoter.Value, error) {
	if strings.EqualFold(kind, "date") {
		t, err := parseTime(raw)
		if err != nil {
			return quoter.Value{}, err
		}
		return quoter.Date(t), nil
	}

	k, err := quoter.ParseKind(strings.ToLower(kind))
	if err != nil {
		return quoter.Value{}, err
	}

	switch k {
	case quoter.KindNull:
		return quoter.Null(), nil
	case quoter.KindText:
		return quoter.Text(raw), nil
	case quoter.KindOther:
		return quoter.Other(raw), nil
	case quoter.KindBinary:
		data, err := parseBytes(raw)
		if err != nil {
			return quoter.Value{}, err
		}
		return quoter.Binary(data), nil
	case quoter.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return quoter.Value{}, fmt.Errorf("invalid float %q: %w", raw, err)
		}
		return quoter.Float(f), nil
	case quoter.KindInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return quoter.Value{}, fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		return quoter.Int(i), nil
	case quoter.KindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return quoter.Value{}, fmt.Errorf("invalid boolean %q: %w", raw, err)
		}
		return quoter.Bool(b), nil
	case quoter.KindTime:
		t, err := parseTime(raw)
		if err != nil {
			return quoter.Value{}, err
		}
		return quoter.Time(t), nil
	case quoter.KindUUID:
		u, err := uuid.Parse(raw)
		if err != nil {
			return quoter.Value{}, fmt.Errorf("invalid uuid %q: %w", raw, err)
		}
		return quoter.UUID(u), nil
	default:
		return quoter.Value{}, fmt.Errorf("unsupported kind: %s", kind)
	}
}

// parseBytes decodes \x-prefixed hex, otherwise returns the raw bytes.
func parseBytes(raw string) ([]byte, error) {
	if !strings.HasPrefix(raw, `\x`) {
		return []byte(raw), nil
	}
	data, err := hex.DecodeString(raw[2:])
	if err != nil {
		return nil, fmt.Errorf("invalid hex bytes %q: %w", raw, err)
	}
	return data, nil
}

// parseTime parses raw with timeLayouts. A leading '-' negates the year,
// so "-0005-03-01" is astronomical year -5. A trailing " BC" gives the same
// year in BC numbering: "0006-03-01 BC".
func parseTime(raw string) (time.Time, error) {
	text := raw
	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")
	bc := !negative && strings.HasSuffix(text, " BC")
	if bc {
		text = strings.TrimSuffix(text, " BC")
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		year := t.Year()
		switch {
		case negative:
			year = -year
		case bc:
			if year < 1 {
				return time.Time{}, fmt.Errorf("invalid time %q: BC years start at 1", raw)
			}
			year = 1 - year
		default:
			return t, nil
		}
		return time.Date(year, t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use RFC 3339 or YYYY-MM-DD[ HH:MM:SS])", raw)
}
