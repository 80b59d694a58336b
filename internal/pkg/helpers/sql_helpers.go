package helpers

import (
	"strings"
)

// NullIfBlank returns nil for a nil or whitespace-only string, otherwise a
// pointer to the trimmed value. Optional text columns are stored as NULL
// rather than "".
func NullIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SplitTags splits comma-separated tag text, trimming entries and dropping empties.
func SplitTags(text string) []string {
	tags := []string{}
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// StringsOrEmpty returns an empty slice for nil so text[] columns never get NULL.
func StringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
