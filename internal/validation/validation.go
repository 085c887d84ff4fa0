// Package validation normalizes free-text phrases into lookup slugs.
package validation

import (
	"regexp"
	"strings"
)

// SlugPattern defines the canonical slug format: lowercase alphanumeric
// runs joined by single hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Slugify converts an arbitrary user phrase into a canonical lookup slug.
// It lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen, so "Message Queue", "message-queue" and
// "  MESSAGE_QUEUE  " all produce the same slug. It never fails: unknown
// characters are treated as separators, and an input with no alphanumeric
// characters yields the empty string.
func Slugify(phrase string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(phrase) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	return b.String()
}

// ValidateSlug checks if a slug matches the canonical format.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > 100 {
		return false
	}
	return SlugPattern.MatchString(slug)
}
