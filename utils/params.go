package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryFloat parses a numeric query parameter. ok is false when the
// parameter is absent or not a number.
func QueryFloat(r *http.Request, name string) (float64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
