package utils

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// FormatJSON formats a value as JSON with indentation
func FormatJSON(data interface{}) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(out), nil
}

// IndentJSON re-indents a raw JSON document for display.
// Invalid input comes back unchanged.
func IndentJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}
	return buf.String()
}
