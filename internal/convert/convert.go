package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders a duration as colon-separated text.
//
// Durations under a minute render as plain seconds ("42"), under an hour
// as "M:SS" ("3:59"), and anything longer as "H:MM:SS" ("1:03:20").
// Sub-second precision is truncated.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d", minutes, seconds)
	default:
		return strconv.Itoa(seconds)
	}
}

// ParseDuration parses colon-separated duration text back into a duration.
//
// Accepted forms are "S", "M:SS" and "H:MM:SS". Malformed input, including
// non-numeric parts or too many components, degrades to 0 rather than
// returning an error; bindings rely on that total behavior.
//
// Example:
//
//	convert.ParseDuration("3:59") // 3m59s
//	convert.ParseDuration("abc")  // 0
func ParseDuration(s string) time.Duration {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}

	return time.Duration(total) * time.Second
}

// FormatInt renders an integer as decimal text.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// ParseInt parses decimal text into an integer; malformed input yields 0.
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
