package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// descriptionPolicy is safe for concurrent use once built.
var descriptionPolicy = bluemonday.UGCPolicy()

// sanitizeDescription strips unsafe markup from a club or event description.
func sanitizeDescription(s string) string {
	return strings.TrimSpace(descriptionPolicy.Sanitize(s))
}

// cleanInterests trims interests and drops blanks and duplicates, keeping order.
func cleanInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	seen := make(map[string]bool, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		key := strings.ToLower(interest)
		if interest == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, interest)
	}
	return out
}
