package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory prepares a date idea category for storage:
//   - trims leading/trailing whitespace
//   - title-cases every word ("food night" -> "Food Night", "FOOD" -> "Food")
//
// Filters are matched against the stored form case-sensitively, so this must
// run on every write.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	// A Caser keeps state between calls and is not safe to share.
	return cases.Title(language.Und).String(category)
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
