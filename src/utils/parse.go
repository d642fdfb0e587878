package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The analytics engine accepts loosely typed numeric fields: forms may be
// mid-edit, so anything unparsable coerces to a safe default instead of
// raising. The default table is:
//
//	strike    -> 0
//	premium   -> 0
//	contracts -> 1

// ParseFloatOrDefault converts a numeric-or-string value to a float64,
// returning fallback when the value cannot be parsed.
func ParseFloatOrDefault(value interface{}, fallback float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fallback
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fallback
		}
		return f
	default:
		return fallback
	}
}

// ParseIntOrDefault converts a numeric-or-string value to an int, returning
// fallback when the value cannot be parsed. Fractional inputs truncate.
func ParseIntOrDefault(value interface{}, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fallback
		}
		return int(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fallback
		}
		return n
	default:
		return fallback
	}
}
