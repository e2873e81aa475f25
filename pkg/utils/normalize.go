package utils

import "strings"

// DefaultTeacherName is stored when a note arrives without a teacher name.
const DefaultTeacherName = "Unknown"

// TeacherNameOrDefault trims the given name and falls back to
// DefaultTeacherName when the result is empty.
func TeacherNameOrDefault(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return DefaultTeacherName
	}
	return trimmed
}

// NormalizeEmails flattens a raw notify list into clean addresses.
// Each entry may itself contain a comma-separated list (the frontend sends
// whatever the user typed into a single input). Entries are split on commas,
// trimmed, and blanks are dropped. The result is never nil, so an absent
// list serializes as [] rather than null.
func NormalizeEmails(emails []string) []string {
	result := make([]string, 0, len(emails))
	for _, raw := range emails {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}
