package quoter

import (
	"fmt"
	"strings"
)

// ColumnType names the logical type of the column a value is written to.
type ColumnType string

const (
	// ColumnTypeUnknown means no type information is available (the default).
	ColumnTypeUnknown ColumnType = ""

	// ColumnTypeUUID marks a uuid column. Function-call defaults such as
	// gen_random_uuid() are passed through unquoted for these columns.
	ColumnTypeUUID ColumnType = "uuid"

	ColumnTypeText      ColumnType = "text"
	ColumnTypeBinary    ColumnType = "binary"
	ColumnTypeFloat     ColumnType = "float"
	ColumnTypeInteger   ColumnType = "integer"
	ColumnTypeBoolean   ColumnType = "boolean"
	ColumnTypeTimestamp ColumnType = "timestamp"
	ColumnTypeDate      ColumnType = "date"
)

// ColumnTypeHint is optional metadata accompanying a value.
//
// Hints only ever select a special case for text-like values; they never
// change how binary, numeric or temporal values are quoted.
// The zero ColumnTypeHint means "no hint".
type ColumnTypeHint struct {
	// Type is the logical column type.
	Type ColumnType

	// SQLType is the database type as declared, e.g. "character varying(36)".
	// Informational only.
	SQLType string
}

// IsZero reports whether the hint carries no information.
func (h ColumnTypeHint) IsZero() bool {
	return h.Type == ColumnTypeUnknown && h.SQLType == ""
}

// ParseColumnType maps a column type name to a ColumnType.
// Matching is case-insensitive; common SQL spellings are accepted.
func ParseColumnType(name string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return ColumnTypeUnknown, nil
	case "uuid":
		return ColumnTypeUUID, nil
	case "text", "varchar", "character varying", "char", "string":
		return ColumnTypeText, nil
	case "binary", "bytea", "varbyte":
		return ColumnTypeBinary, nil
	case "float", "double precision", "real", "float8", "float4":
		return ColumnTypeFloat, nil
	case "integer", "int", "bigint", "smallint", "int8", "int4", "int2":
		return ColumnTypeInteger, nil
	case "boolean", "bool":
		return ColumnTypeBoolean, nil
	case "timestamp", "timestamptz", "datetime":
		return ColumnTypeTimestamp, nil
	case "date":
		return ColumnTypeDate, nil
	default:
		return ColumnTypeUnknown, fmt.Errorf("unknown column type: %s", name)
	}
}
