package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\d{8}$`)

// CleanPhone strips all whitespace from a phone number input.
func CleanPhone(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// ValidPhone reports whether the cleaned number is exactly 8 ASCII digits.
func ValidPhone(cleaned string) bool {
	return phonePattern.MatchString(cleaned)
}
