// Package escape provides the byte-level escaping rules shared by the
// quoter core and the dialect drivers.
package escape

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const hexPrefix = `\x`

// ByteaOctal encodes data in PostgreSQL "escape" bytea format, suitable for
// the body of a single-quoted literal.
//
// Bytes outside printable ASCII become \ooo, a backslash becomes \\ and a
// single quote is doubled. When backslashEscapes is true (the literal
// grammar itself treats backslash as an escape character) every backslash
// the bytea format needs is doubled again, giving \\ooo and \\\\.
func ByteaOctal(data []byte, backslashEscapes bool) string {
	slash := `\`
	if backslashEscapes {
		slash = `\\`
	}

	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		switch {
		case c < 0x20 || c > 0x7e:
			b.WriteString(slash)
			b.WriteByte('0' + c>>6)
			b.WriteByte('0' + (c>>3)&7)
			b.WriteByte('0' + c&7)
		case c == '\'':
			b.WriteString("''")
		case c == '\\':
			b.WriteString(slash)
			b.WriteString(slash)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ByteaHex encodes data in PostgreSQL "hex" bytea format (\x0a0b...).
// With backslashEscapes the prefix is written as \\x.
func ByteaHex(data []byte, backslashEscapes bool) string {
	prefix := hexPrefix
	if backslashEscapes {
		prefix = `\\x`
	}
	return prefix + hex.EncodeToString(data)
}

// UnescapeBytea decodes bytea text as returned by a server: hex format when
// the text starts with \x, escape format otherwise.
func UnescapeBytea(text string) ([]byte, error) {
	if strings.HasPrefix(text, hexPrefix) {
		return UnescapeByteaHex(text)
	}
	return UnescapeByteaOctal(text)
}

// UnescapeByteaHex decodes hex-format bytea output.
func UnescapeByteaHex(text string) ([]byte, error) {
	if !strings.HasPrefix(text, hexPrefix) {
		return nil, errors.New(`hex bytea must start with \x`)
	}
	out, err := hex.DecodeString(text[len(hexPrefix):])
	if err != nil {
		return nil, fmt.Errorf("hex bytea: %w", err)
	}
	return out, nil
}

// UnescapeHex decodes hex digits without a prefix.
func UnescapeHex(text string) ([]byte, error) {
	out, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("hex: %w", err)
	}
	return out, nil
}

// UnescapeByteaOctal decodes escape-format bytea output: \\ is a backslash,
// \ooo an octal byte, anything else a literal byte.
func UnescapeByteaOctal(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 < len(text) && text[i+1] == '\\' {
			out = append(out, '\\')
			i++
			continue
		}
		if i+3 >= len(text) {
			return nil, fmt.Errorf("truncated escape at offset %d", i)
		}
		d0, d1, d2 := text[i+1], text[i+2], text[i+3]
		if d0 < '0' || d0 > '3' || !isOctal(d1) || !isOctal(d2) {
			return nil, fmt.Errorf("invalid escape %q at offset %d", text[i:i+4], i)
		}
		out = append(out, (d0-'0')<<6|(d1-'0')<<3|(d2-'0'))
		i += 3
	}
	return out, nil
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

// StringStandard escapes s for a standard-conforming string literal:
// single quotes are doubled, backslashes are literal.
func StringStandard(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// StringBackslash escapes s for a literal grammar where backslash is an
// escape character: backslashes and single quotes are both doubled.
func StringBackslash(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}

// StringCEscaped escapes s with C-style backslash sequences, as MySQL and
// ClickHouse expect inside single-quoted literals.
func StringCEscaped(s string) string {
	return string(BytesCEscaped([]byte(s), false))
}

// BytesCEscaped escapes arbitrary bytes with C-style backslash sequences.
// With hexBytes, bytes outside printable ASCII are written as \xHH instead of
// being passed through.
func BytesCEscaped(data []byte, hexBytes bool) []byte {
	const digits = "0123456789ABCDEF"

	out := make([]byte, 0, len(data))
	for _, c := range data {
		switch c {
		case 0:
			out = append(out, `\0`...)
		case '\'':
			out = append(out, `\'`...)
		case '"':
			out = append(out, `\"`...)
		case '\b':
			out = append(out, `\b`...)
		case '\n':
			out = append(out, `\n`...)
		case '\r':
			out = append(out, `\r`...)
		case '\t':
			out = append(out, `\t`...)
		case 0x1A:
			if hexBytes {
				out = append(out, `\x1A`...)
				continue
			}
			out = append(out, `\Z`...)
		case '\\':
			out = append(out, `\\`...)
		default:
			if hexBytes && (c < 0x20 || c > 0x7e) {
				out = append(out, '\\', 'x', digits[c>>4], digits[c&0x0f])
				continue
			}
			out = append(out, c)
		}
	}
	return out
}
