package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// Alphanumeric, underscore, hyphen and dot, as found in GTFS ids.
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateIDParam validates id and returns the field errors to report for it,
// or nil when it is valid.
func ValidateIDParam(field, id string) map[string][]string {
	if err := ValidateID(id); err != nil {
		return map[string][]string{field: {err.Error()}}
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}
