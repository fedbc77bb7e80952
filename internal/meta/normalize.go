// Package meta extracts and canonicalizes publication metadata from
// heterogeneous sources: HTML meta tags, JSON-LD blocks, visible page
// text, and URL paths.
package meta

import (
	"regexp"
	"strings"
)

var (
	nonAlnumSpace = regexp.MustCompile(`[^a-z0-9 ]`)
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
)

// SlugMaxLen caps slugs used in publication IDs and commentary filenames.
const SlugMaxLen = 50

// NormalizeTitle reduces a title to its deduplication key: lowercase,
// alphanumeric-and-space only, trimmed. Deliberately lossy so the same
// item surfaced with different punctuation or casing still collides.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(nonAlnumSpace.ReplaceAllString(strings.ToLower(title), ""))
}

// Slugify converts a title into a filename/id-safe slug: lowercase,
// runs of non-alphanumerics collapsed to single hyphens, trimmed,
// truncated to SlugMaxLen.
func Slugify(title string) string {
	slug := nonAlnumRun.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > SlugMaxLen {
		slug = slug[:SlugMaxLen]
	}
	return slug
}
