package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
var multiDash = regexp.MustCompile(`-+`)

// Slugify derives a lowercase, hyphenated, URL-safe identifier from a title.
// Characters outside [a-z0-9-] are dropped, not dashed, so punctuation never
// produces stray separators.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
