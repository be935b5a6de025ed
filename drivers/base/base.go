// Package base provides the escaping strategies shared by the quoter
// dialect drivers.
//
// Each dialect package assembles a quoter.Config from these strategies:
//   - Identifier quoting (double quotes, backticks, brackets)
//   - String escaping (standard-conforming or backslash-escaping literals)
//   - Bytea escaping (escape/octal or hex format)
//   - Bytea output decoding
package base

import (
	"strings"

	"github.com/honeynil/quoter/internal/escape"
)

// QuoteChar represents a SQL identifier quote character.
type QuoteChar string

const (
	DoubleQuote QuoteChar = `"` // PostgreSQL, Redshift, SQLite, ClickHouse
	Backtick    QuoteChar = "`" // MySQL
)

// QuoteIdentifier wraps an identifier in quoteChar, doubling any embedded
// closing quote character so the identifier cannot break out.
//
// Examples:
//
//	QuoteIdentifier("users", DoubleQuote)     -> "users"
//	QuoteIdentifier(`my"table`, DoubleQuote) -> "my""table"
//	QuoteIdentifier("users", Backtick)        -> `users`
func QuoteIdentifier(name string, quoteChar QuoteChar) string {
	quote := string(quoteChar)
	return quote + strings.ReplaceAll(name, quote, quote+quote) + quote
}

// QuoteDoubleQuotes is QuoteIdentifier with DoubleQuote.
func QuoteDoubleQuotes(name string) string {
	return QuoteIdentifier(name, DoubleQuote)
}

// QuoteBackticks is QuoteIdentifier with Backtick.
func QuoteBackticks(name string) string {
	return QuoteIdentifier(name, Backtick)
}

// --- String Strategies ---

// EscapeStringStandard doubles single quotes only.
// Used by PostgreSQL (standard_conforming_strings = on) and SQLite.
func EscapeStringStandard(s string) string {
	return escape.StringStandard(s)
}

// EscapeStringBackslash doubles single quotes and backslashes.
// Used by Redshift, where backslash is an escape character in literals.
func EscapeStringBackslash(s string) string {
	return escape.StringBackslash(s)
}

// EscapeStringC escapes with C-style backslash sequences (\', \n, \0, ...).
// Used by MySQL and ClickHouse.
func EscapeStringC(s string) string {
	return escape.StringCEscaped(s)
}

// --- Bytea Strategies ---

// EscapeByteaOctal writes escape-format bytea for standard-conforming
// literals: \ooo for non-printable bytes, \\ for backslash.
func EscapeByteaOctal(data []byte) string {
	return escape.ByteaOctal(data, false)
}

// EscapeByteaOctalBackslash writes escape-format bytea for literals that
// treat backslash as an escape character: \\ooo and \\\\.
func EscapeByteaOctalBackslash(data []byte) string {
	return escape.ByteaOctal(data, true)
}

// EscapeByteaHex writes hex-format bytea (\x0102...).
func EscapeByteaHex(data []byte) string {
	return escape.ByteaHex(data, false)
}

// EscapeBytesC writes bytes as a C-escaped string body, non-printable bytes
// as \xHH. Used by ClickHouse.
func EscapeBytesC(data []byte) string {
	return string(escape.BytesCEscaped(data, true))
}

// UnescapeBytea decodes server bytea output in hex or escape format.
func UnescapeBytea(text string) ([]byte, error) {
	return escape.UnescapeBytea(text)
}

// UnescapeByteaHex decodes hex-format output only.
func UnescapeByteaHex(text string) ([]byte, error) {
	return escape.UnescapeByteaHex(text)
}

// UnescapeHex decodes bare hex digits as produced by the HEX() or hex()
// functions of MySQL, SQLite and ClickHouse. Either letter case is accepted.
func UnescapeHex(text string) ([]byte, error) {
	return escape.UnescapeHex(text)
}
