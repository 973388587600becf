package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

// FormatText pretty-prints a raw JSON document with two-space indentation.
// Key order is preserved exactly as received; only whitespace changes.
func FormatText(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidJSON, err)
	}
	return buf.String(), nil
}
