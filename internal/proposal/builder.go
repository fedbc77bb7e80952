package proposal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jatucker/sitescan/internal/meta"
)

// DefaultAuthor is used when a scanner could not determine an author
// string for a publication.
const DefaultAuthor = "Tucker, Joshua A."

// idPrefix anchors every publication ID.
const idPrefix = "tucker"

func itoa(n int) string { return strconv.Itoa(n) }

// PublicationID derives the publications.yml id:
// tucker-<year or "0">-<slugified title, at most 50 chars>.
// Collisions are not checked; two titles can truncate to the same id.
func PublicationID(title string, year int) string {
	yearPart := "0"
	if year > 0 {
		yearPart = itoa(year)
	}
	return fmt.Sprintf("%s-%s-%s", idPrefix, yearPart, meta.Slugify(title))
}

// FormatVolumeIssuePages assembles the display string persisted in
// publications.yml, e.g. "Vol. 85, No. 2, pp. 100-120". Empty parts
// are omitted; all-empty input yields "".
func FormatVolumeIssuePages(volume, number, pages string) string {
	var parts []string
	if volume != "" {
		parts = append(parts, "Vol. "+volume)
	}
	if number != "" {
		parts = append(parts, "No. "+number)
	}
	if pages != "" {
		parts = append(parts, "pp. "+pages)
	}
	return strings.Join(parts, ", ")
}

// CommentaryFilename derives the _commentary/ filename for an entry:
// <date>-<slugified title, at most 50 chars>.md.
func CommentaryFilename(date, title string) string {
	return fmt.Sprintf("%s-%s.md", date, meta.Slugify(title))
}

// NewPublication maps a raw scanned record into a publication entry,
// filling in derived fields and defaults.
func NewPublication(raw RawMetadata) Proposal {
	year := raw.Year
	if year == 0 && len(raw.Date) >= 4 {
		if y, err := strconv.Atoi(raw.Date[:4]); err == nil {
			year = y
		}
	}

	authors := raw.Authors
	if authors == "" {
		authors = DefaultAuthor
	}

	pubType := raw.PubType
	if pubType == "" {
		pubType = TypeJournalArticle
	}

	entry := &PublicationEntry{
		ID:               PublicationID(raw.Title, year),
		Title:            raw.Title,
		Authors:          authors,
		Year:             year,
		Venue:            raw.Venue,
		VolumeIssuePages: raw.VolumeIssuePages,
		DOI:              raw.DOI,
		Type:             pubType,
		Abstract:         raw.Excerpt,
		Tags:             []string{},
		Awards:           []string{},
		Links:            Links{Published: raw.URL},
	}
	return Proposal{Type: Publications, Origin: raw.Origin, Publication: entry}
}

// NewCommentary maps a raw scanned record into a commentary entry. The
// date is never left empty; it defaults to the supplied current time.
func NewCommentary(raw RawMetadata, now time.Time) Proposal {
	date := raw.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	outlet := raw.Venue
	if outlet == "" {
		outlet = "CSMAP"
	}
	entry := &CommentaryEntry{
		Title:   raw.Title,
		Date:    date,
		Outlet:  outlet,
		Link:    raw.URL,
		Excerpt: raw.Excerpt,
	}
	return Proposal{Type: Commentary, Origin: raw.Origin, Commentary: entry}
}

// NewMedia maps a raw scanned record into a media mention entry.
func NewMedia(raw RawMetadata) Proposal {
	outlet := raw.Venue
	if outlet == "" {
		outlet = "Unknown"
	}
	entry := &MediaEntry{
		Outlet: outlet,
		Title:  raw.Title,
		Date:   raw.Date,
		URL:    raw.URL,
	}
	return Proposal{Type: Media, Origin: raw.Origin, Media: entry}
}

// Build dispatches on the raw record's content-type classification.
func Build(raw RawMetadata, now time.Time) Proposal {
	switch raw.ContentType {
	case Commentary:
		return NewCommentary(raw, now)
	case Media:
		return NewMedia(raw)
	default:
		return NewPublication(raw)
	}
}
