package services

import "strings"

// NormalizeSlug derives the canonical URL-safe slug from base: lower-case,
// spaces replaced by underscores, apostrophes stripped. Nothing else is
// transformed; the minimal rule is part of the storage contract.
func NormalizeSlug(base string) string {
	slug := strings.ToLower(base)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}
