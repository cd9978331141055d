package validators

import (
	"fmt"
	"strings"
	"time"
)

// UTC timestamp formats
const (
	// ISO8601 format with Z suffix
	ISO8601UTC = "2006-01-02T15:04:05Z"

	// ISO8601 with milliseconds, the layout health reports are stamped with
	ISO8601UTCMillis = "2006-01-02T15:04:05.000Z"
)

var acceptedTimestampLayouts = []string{
	ISO8601UTC,
	ISO8601UTCMillis,
	time.RFC3339,
}

// IsValidUTCTimestamp checks if the timestamp string is valid UTC format
// Accepts: 2025-11-10T14:30:00Z or 2025-11-10T14:30:00.123Z
func IsValidUTCTimestamp(timestamp string) bool {
	_, err := ParseUTCTimestamp(timestamp)
	return err == nil
}

// ParseUTCTimestamp parses UTC timestamp string to time.Time
// Returns time in UTC timezone
func ParseUTCTimestamp(timestamp string) (time.Time, error) {
	if timestamp == "" {
		return time.Time{}, NewValidationError("timestamp", "timestamp is required")
	}

	// Must end with 'Z' to indicate UTC
	if !strings.HasSuffix(timestamp, "Z") {
		return time.Time{}, NewValidationError("timestamp", fmt.Sprintf("timestamp is not in UTC: %s", timestamp))
	}

	for _, layout := range acceptedTimestampLayouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, NewValidationError("timestamp", fmt.Sprintf("invalid UTC timestamp format: %s", timestamp))
}

// FormatUTCTimestamp formats t as ISO 8601 in UTC with millisecond precision.
// Always returns format: 2025-11-10T14:30:00.000Z
func FormatUTCTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601UTCMillis)
}
