package validators

import (
	"testing"
	"time"
)

// TestIsValidUTCTimestamp tests UTC timestamp validation
func TestIsValidUTCTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		want      bool
	}{
		{"valid RFC3339", "2025-11-10T14:30:00Z", true},
		{"valid with milliseconds", "2025-11-10T14:30:00.123Z", true},
		{"valid with microseconds", "2025-11-10T14:30:00.123456Z", true},
		{"invalid - missing Z", "2025-11-10T14:30:00", false},
		{"invalid - wrong timezone", "2025-11-10T14:30:00+01:00", false},
		{"invalid - wrong format", "2025/11/10 14:30:00", false},
		{"invalid - date only", "2025-11-10", false},
		{"empty string", "", false},
		{"random string", "not-a-timestamp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUTCTimestamp(tt.timestamp); got != tt.want {
				t.Errorf("IsValidUTCTimestamp(%q) = %v, want %v", tt.timestamp, got, tt.want)
			}
		})
	}
}

// TestParseUTCTimestamp tests timestamp parsing
func TestParseUTCTimestamp(t *testing.T) {
	got, err := ParseUTCTimestamp("2025-11-10T14:30:00.250Z")
	if err != nil {
		t.Fatalf("ParseUTCTimestamp returned error: %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", got.Location())
	}
	want := time.Date(2025, 11, 10, 14, 30, 0, 250*int(time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseUTCTimestamp() = %v, want %v", got, want)
	}

	if _, err := ParseUTCTimestamp(""); err == nil {
		t.Error("expected error for empty timestamp")
	}
}

// TestFormatUTCTimestamp tests timestamp formatting and the round trip through the parser
func TestFormatUTCTimestamp(t *testing.T) {
	prague := time.FixedZone("CET", 3600)
	testTime := time.Date(2025, 11, 10, 15, 30, 0, 7*int(time.Millisecond), prague)

	got := FormatUTCTimestamp(testTime)
	want := "2025-11-10T14:30:00.007Z"
	if got != want {
		t.Errorf("FormatUTCTimestamp() = %q, want %q", got, want)
	}

	if !IsValidUTCTimestamp(got) {
		t.Errorf("formatted timestamp %q did not parse back", got)
	}
}
