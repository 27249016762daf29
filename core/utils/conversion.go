package utils

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToString converts a cell value to its canonical string form.
// nil converts to the empty string, floats never use exponent notation and times are
// rendered as RFC 3339.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		if t, ok := v.(time.Time); ok {
			return t.Format(time.RFC3339)
		}
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsBlank reports whether a cell value carries no data: nil, or text that is empty
// after trimming whitespace. Numbers, including zero, are never blank.
func IsBlank(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return len(bytes.TrimSpace(v)) == 0
	default:
		return false
	}
}
