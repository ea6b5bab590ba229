package slug

import (
	"regexp"
	"strings"

	gosimple "github.com/gosimple/slug"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL-safe slug from a title. Letters are transliterated to
// ASCII first ("Café" becomes "cafe"), then every run of characters outside
// [a-z0-9] collapses to a single hyphen with none at either end.
func Make(title string) string {
	s := nonAlphanumeric.ReplaceAllString(gosimple.Make(title), "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}
