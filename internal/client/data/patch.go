package data

import (
	"encoding/json"
	"strings"
)

func cutPair(pair string) (field, raw string, ok bool) {
	field, raw, ok = strings.Cut(pair, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", false
	}
	return field, raw, true
}

// parseValue возвращает nil для пустого значения
func parseValue(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
