package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatBytes renders data as \x-prefixed hex.
func formatBytes(data []byte) string {
	return `\x` + hex.EncodeToString(data)
}

// formatResult renders a value scanned from a server row.
func formatResult(v any) string {
	switch r := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(r)
	case string:
		return r
	default:
		return fmt.Sprint(r)
	}
}
