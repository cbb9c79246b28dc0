package repository

import (
	"encoding/json"
	"time"
)

// encodeRaw stores a raw days/method array as JSON text. A nil slice is
// stored as "[]".
func encodeRaw(raw []string) (string, error) {
	if raw == nil {
		raw = []string{}
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeRaw restores a raw array written by encodeRaw. Rows that are not a
// JSON array (hand-edited databases) come back as a single element so the
// decoder can still make sense of them.
func decodeRaw(s string) []string {
	var raw []string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// parseTime parses an RFC3339 timestamp, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// escapeLike escapes LIKE wildcards in s.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
