package request

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// ErrParse marks a request body that is neither JSON nor base64-wrapped JSON.
var ErrParse = errors.New("failed to parse request body")

// DecodeBody normalizes a raw request payload into JSON text. The body may
// arrive as plain JSON or as a base64-encoded JSON string; an empty body
// normalizes to an empty record. Anything else is ErrParse — callers decide
// whether that is fatal (signup) or falls back to an empty record (login,
// order).
func DecodeBody(raw []byte) ([]byte, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return []byte("{}"), nil
	}

	if json.Valid([]byte(text)) && strings.HasPrefix(text, "{") {
		return []byte(text), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(text)
	if err == nil && json.Valid(decoded) && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return decoded, nil
	}

	return nil, ErrParse
}

// RecordKeys lists the top-level field keys of a normalized body, for the
// validation diagnostics. Values are never included.
func RecordKeys(body []byte) []string {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(body, &record); err != nil {
		return nil
	}

	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
