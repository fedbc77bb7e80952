package meta

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// isoPrefix matches a leading YYYY-MM-DD, covering full ISO timestamps
// with arbitrary zone suffixes.
var isoPrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

// urlDate matches /2026/02/18/ and /2026-02-18/ style path segments.
var urlDate = regexp.MustCompile(`/(20\d{2})[/-](\d{2})[/-](\d{2})[/-]`)

// humanDateLayouts are tried in order after the ISO prefix check.
var humanDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ResolveDate tries each candidate in the order supplied (the caller
// encodes source priority) and returns the first that parses as a
// YYYY-MM-DD date. Returns "" when nothing parses.
func ResolveDate(candidates ...string) string {
	for _, raw := range candidates {
		if d := parseDate(raw); d != "" {
			return d
		}
	}
	return ""
}

// parseDate parses a single candidate: ISO prefix first, then the
// human-readable month-name formats.
func parseDate(raw string) string {
	if raw == "" {
		return ""
	}
	if m := isoPrefix.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	trimmed := strings.TrimSpace(raw)
	for _, layout := range humanDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// DateFromURL extracts a date from a URL path like /2026/02/18/ or
// /2026-02-18/. This is the lowest-priority date signal, used only when
// no document-level date was found.
func DateFromURL(url string) string {
	m := urlDate.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
}
