package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// UUID validation regex (RFC 4122 v4)
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Semantic versioning regex (basic)
var semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// MsgNoTextProvided is returned to API callers when the text field is missing or blank
const MsgNoTextProvided = "No text provided"

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidUUID checks if the string is a valid RFC 4122 v4 UUID
// Format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
// where x is any hex digit and y is one of 8, 9, A, or B
func IsValidUUID(uuid string) bool {
	if uuid == "" {
		return false
	}
	// Convert to lowercase for validation
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// ValidateRequiredText checks that text is present and not blank after trimming.
// The message names the field so API callers know what was missing.
func ValidateRequiredText(text string, fieldName string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError(fieldName, fmt.Sprintf("No %s provided", fieldName))
	}
	return nil
}

// ValidateTextLength validates the rune count of text against maxRunes.
// A non-positive maxRunes disables the check.
func ValidateTextLength(text string, fieldName string, maxRunes int) error {
	if maxRunes <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(text); n > maxRunes {
		return NewValidationError(fieldName, fmt.Sprintf("must be at most %d characters (got: %d)", maxRunes, n))
	}
	return nil
}

// IsValidSemanticVersion checks if the string follows semantic versioning
// Format: MAJOR.MINOR.PATCH or MAJOR.MINOR.PATCH-prerelease+build
// Examples: 1.0.0, 2.1.3-beta, 1.0.0-alpha+001
func IsValidSemanticVersion(version string) bool {
	if version == "" {
		return false
	}
	return semverRegex.MatchString(version)
}

// ValidateServiceVersion validates the version string reported by the health endpoint
func ValidateServiceVersion(version string, fieldName string) error {
	if version == "" {
		return NewValidationError(fieldName, "version is required")
	}
	if !IsValidSemanticVersion(version) {
		return NewValidationError(fieldName, "invalid semantic version format (expected: MAJOR.MINOR.PATCH)")
	}
	return nil
}

// IsValidPercentage reports whether value lies in the closed range 0..100
func IsValidPercentage(value float64) bool {
	return value >= 0 && value <= 100
}

// ValidatePercentage validates a percentage value
func ValidatePercentage(value float64, fieldName string) error {
	if !IsValidPercentage(value) {
		return NewValidationError(fieldName, fmt.Sprintf("must be between 0 and 100 (got: %f)", value))
	}
	return nil
}
