package quoter

import (
	"errors"
	"fmt"
	"strings"
)

// identDelimiter bounds quoted identifiers.
const identDelimiter = '"'

// QualifiedName is a parsed, possibly schema-qualified identifier.
type QualifiedName struct {
	// Schema is the optional schema part. Empty means unqualified.
	Schema string

	// Identifier is the local (table) name.
	Identifier string
}

// Quoted renders the name with each segment delimited by the built-in rule.
func (n QualifiedName) Quoted() string {
	if n.Schema == "" {
		return quoteDoubleQuotes(n.Identifier)
	}
	return quoteDoubleQuotes(n.Schema) + "." + quoteDoubleQuotes(n.Identifier)
}

// String returns the unquoted dotted form, for display only.
func (n QualifiedName) String() string {
	if n.Schema == "" {
		return n.Identifier
	}
	return n.Schema + "." + n.Identifier
}

// ParseQualifiedName splits a possibly dotted, possibly quoted name into its
// schema and local parts.
//
// Accepted shapes:
//
//	table_name
//	"table.name"
//	schema_name.table_name
//	schema_name."table.name"
//	"schema.name".table_name
//	"schema.name"."table.name"
//
// Inside a quoted segment a doubled quote ("") is a literal quote and does
// not end the segment. The name is split on the first unquoted dot.
// A second unquoted dot, an unterminated quoted segment, an empty segment,
// text following a closing quote or a NUL byte returns ErrInvalidIdentifier.
func ParseQualifiedName(name string) (QualifiedName, error) {
	segments, err := splitQualified(name)
	if err != nil {
		return QualifiedName{}, newQuoteError("parse_qualified_name", name,
			fmt.Errorf("%w: %v", ErrInvalidIdentifier, err))
	}
	if len(segments) == 1 {
		return QualifiedName{Identifier: segments[0]}, nil
	}
	return QualifiedName{Schema: segments[0], Identifier: segments[1]}, nil
}

// splitQualified scans name left to right and returns one or two unquoted
// segments.
func splitQualified(name string) ([]string, error) {
	var (
		segments []string
		current  strings.Builder
		inside   bool // currently between delimiters
		closed   bool // quoted segment has been closed
	)

	flush := func() error {
		if current.Len() == 0 {
			return errors.New("empty name segment")
		}
		segments = append(segments, current.String())
		current.Reset()
		inside, closed = false, false
		return nil
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == 0:
			return nil, errors.New("NUL byte in name")
		case inside && c == identDelimiter:
			if i+1 < len(name) && name[i+1] == identDelimiter {
				current.WriteByte(identDelimiter)
				i++
				continue
			}
			inside = false
			closed = true
		case inside:
			current.WriteByte(c)
		case c == '.':
			if len(segments) == 1 {
				return nil, errors.New("more than one unquoted dot")
			}
			if err := flush(); err != nil {
				return nil, err
			}
		case closed:
			return nil, errors.New("unexpected character after closing quote")
		case c == identDelimiter:
			if current.Len() > 0 {
				return nil, errors.New("quote inside unquoted segment")
			}
			inside = true
		default:
			current.WriteByte(c)
		}
	}
	if inside {
		return nil, errors.New("unterminated quoted segment")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return segments, nil
}

// quoteDoubleQuotes is the built-in identifier rule: wrap in double quotes and
// double any embedded double quote.
func quoteDoubleQuotes(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteIdentifier delimits a single identifier, doubling embedded delimiters.
//
// Examples:
//
//	QuoteIdentifier("users")     -> "users"
//	QuoteIdentifier(`my"table`) -> "my""table"
//	QuoteIdentifier("a.b")       -> "a.b"
func (q *Quoter) QuoteIdentifier(name string) string {
	if q.config.QuoteIdentifier != nil {
		return q.config.QuoteIdentifier(name)
	}
	return quoteDoubleQuotes(name)
}

// QuoteTableName quotes a possibly schema-qualified table name.
// See ParseQualifiedName for the accepted shapes.
//
// Examples:
//
//	QuoteTableName("events")                -> "events"
//	QuoteTableName(`sales."q1.2024"`)      -> "sales"."q1.2024"
//	QuoteTableName("a.b.c")                 -> ErrInvalidIdentifier
func (q *Quoter) QuoteTableName(name string) (string, error) {
	qn, err := ParseQualifiedName(name)
	if err != nil {
		return "", err
	}
	if qn.Schema == "" {
		return q.QuoteIdentifier(qn.Identifier), nil
	}
	return q.QuoteIdentifier(qn.Schema) + "." + q.QuoteIdentifier(qn.Identifier), nil
}

// QuoteColumnName quotes a column name.
func (q *Quoter) QuoteColumnName(name string) string {
	return q.QuoteIdentifier(name)
}

// QuoteSchemaName quotes a schema name.
func (q *Quoter) QuoteSchemaName(name string) string {
	return q.QuoteIdentifier(name)
}

// QuoteTableNameForAssignment quotes the column of a SET clause.
// The table is not part of the output; assignment targets use the column
// rule unchanged.
func (q *Quoter) QuoteTableNameForAssignment(table, column string) string {
	return q.QuoteColumnName(column)
}
