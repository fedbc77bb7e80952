// Package cv parses the plain text of a CV PDF into proposed
// publication and media entries. CV formatting is irregular by nature,
// so every parse here is best-effort: lines that don't match the
// expected shape are dropped silently rather than reported.
package cv

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jatucker/sitescan/internal/meta"
	"github.com/jatucker/sitescan/internal/proposal"
)

// sectionHeaders is the fixed vocabulary of CV section headers,
// matched case-insensitively when a header appears alone on a line.
var sectionHeaders = []string{
	"Books",
	"Book Chapters",
	"Journal Articles",
	"Refereed Journal Articles",
	"Working Papers",
	"Under Review",
	"Other Publications",
	"Reports",
	"Media Coverage",
	"Media Appearances",
	"Press Coverage",
	"Multimedia",
	"Teaching",
	"Education",
	"Awards",
	"Honors",
	"Employment",
	"Professional Activities",
}

// publicationSections maps publication section headers (lowercased) to
// the publication subtype, in scan order.
var publicationSections = []struct {
	header  string
	pubType string
}{
	{"books", proposal.TypeBook},
	{"book chapters", proposal.TypeBookChapter},
	{"journal articles", proposal.TypeJournalArticle},
	{"refereed journal articles", proposal.TypeJournalArticle},
	{"working papers", proposal.TypeWorkingPaper},
	{"under review", proposal.TypeUnderReview},
	{"other publications", proposal.TypeOther},
	{"reports", proposal.TypeOther},
}

// mediaSections lists media section headers (lowercased) in scan order.
var mediaSections = []string{
	"media coverage",
	"media appearances",
	"press coverage",
	"multimedia",
}

const (
	minPublicationLineLen = 20
	minMediaLineLen       = 15
)

var (
	headerPattern = buildHeaderPattern()
	yearToken     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	quotedTitle   = regexp.MustCompile(`["\x{201c}\x{201d}]([^"\x{201c}\x{201d}]+)["\x{201c}\x{201d}]`)
	quotedMedia   = regexp.MustCompile(`["\x{201c}\x{2018}]([^"\x{201c}\x{2018}\x{2019}\x{201d}]+)["\x{201d}\x{2019}]`)
	venueToken    = regexp.MustCompile(`^[*_]?([^,.*_]+)[*_]?`)
	mediaDate     = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}`)
	outletPrefix  = regexp.MustCompile(`^([^,"]+),`)
)

func buildHeaderPattern() *regexp.Regexp {
	quoted := make([]string, len(sectionHeaders))
	for i, h := range sectionHeaders {
		quoted[i] = regexp.QuoteMeta(h)
	}
	return regexp.MustCompile(`(?im)^(` + strings.Join(quoted, "|") + `)\s*$`)
}

// SplitSections splits CV text into named sections keyed by the
// lowercased header. Text before the first recognized header is
// discarded.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string)
	matches := headerPattern.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		header := strings.ToLower(strings.TrimSpace(text[m[2]:m[3]]))
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections[header] = strings.TrimSpace(text[start:end])
	}
	return sections
}

// ParsePublicationLine tries to parse one CV publication line, e.g.
//
//	Tucker, Joshua A. and Co-Author. (2023). "Title." *Journal*, Vol(Issue), pp. X-Y.
//
// A quoted title is required; short or unquoted lines are rejected.
func ParsePublicationLine(line, defaultAuthor string) (proposal.RawMetadata, bool) {
	line = strings.TrimSpace(line)
	if len(line) < minPublicationLineLen {
		return proposal.RawMetadata{}, false
	}

	titleLoc := quotedTitle.FindStringSubmatchIndex(line)
	if titleLoc == nil {
		return proposal.RawMetadata{}, false
	}
	title := strings.TrimRight(strings.TrimSpace(line[titleLoc[2]:titleLoc[3]]), ".")

	year := 0
	yearLoc := yearToken.FindStringIndex(line)
	if yearLoc != nil {
		year, _ = strconv.Atoi(line[yearLoc[0]:yearLoc[1]])
	}

	authors := defaultAuthor
	if yearLoc != nil {
		if pre := strings.TrimRight(strings.TrimSpace(line[:yearLoc[0]]), ".( "); pre != "" {
			authors = pre
		}
	}

	// Venue: first comma/period/markup-delimited token after the title.
	after := strings.TrimSpace(line[titleLoc[1]:])
	after = strings.TrimSpace(strings.TrimLeft(after, `."`))
	venue := ""
	if m := venueToken.FindStringSubmatch(after); m != nil {
		venue = strings.TrimSpace(m[1])
	} else if len(after) > 60 {
		venue = after[:60]
	} else {
		venue = after
	}

	return proposal.RawMetadata{
		Title:       title,
		Authors:     authors,
		Year:        year,
		Venue:       venue,
		ContentType: proposal.Publications,
		Origin:      proposal.OriginCV,
	}, true
}

// ParseMediaLine tries to parse one CV media mention line, e.g.
//
//	Outlet Name, "Article Title", Month Day, Year.
//
// A quoted title is required; the trailing date is optional.
func ParseMediaLine(line string) (proposal.RawMetadata, bool) {
	line = strings.TrimSpace(line)
	if len(line) < minMediaLineLen {
		return proposal.RawMetadata{}, false
	}

	titleM := quotedMedia.FindStringSubmatch(line)
	if titleM == nil {
		return proposal.RawMetadata{}, false
	}
	title := strings.TrimSpace(titleM[1])

	date := ""
	if m := mediaDate.FindString(line); m != "" {
		date = meta.ResolveDate(m)
	}

	outlet := "Unknown"
	if m := outletPrefix.FindStringSubmatch(line); m != nil {
		outlet = strings.TrimSpace(m[1])
	}

	return proposal.RawMetadata{
		Title:       title,
		Date:        date,
		Venue:       outlet,
		ContentType: proposal.Media,
		Origin:      proposal.OriginCV,
	}, true
}

// Parse walks every known section of the CV text and returns the raw
// records found, publications first, in section order.
func Parse(text, defaultAuthor string) []proposal.RawMetadata {
	sections := SplitSections(text)
	var records []proposal.RawMetadata

	for _, ps := range publicationSections {
		body, ok := sections[ps.header]
		if !ok {
			continue
		}
		for _, line := range strings.Split(body, "\n") {
			rec, ok := ParsePublicationLine(line, defaultAuthor)
			if !ok {
				continue
			}
			rec.PubType = ps.pubType
			records = append(records, rec)
		}
	}

	for _, header := range mediaSections {
		body, ok := sections[header]
		if !ok {
			continue
		}
		for _, line := range strings.Split(body, "\n") {
			rec, ok := ParseMediaLine(line)
			if !ok {
				continue
			}
			records = append(records, rec)
		}
	}

	return records
}
