// Package scholar scrapes a Google Scholar author profile for the
// author's publication list.
package scholar

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/proposal"
)

const (
	// DefaultBaseURL is the Scholar host; overridable for tests.
	DefaultBaseURL = "https://scholar.google.com"
	// pageSize is the number of citation rows requested per page.
	pageSize = 100
)

// Scanner fetches the citation table of one author profile.
type Scanner struct {
	client   *fetch.Client
	baseURL  string
	authorID string
}

// New creates a Scanner for the given Scholar author ID.
func New(client *fetch.Client, baseURL, authorID string) *Scanner {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scanner{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		authorID: authorID,
	}
}

// SearchURL returns the Scholar search link for a title, used as a
// reviewer-facing fallback when a publication has no direct link.
func SearchURL(title string) string {
	return DefaultBaseURL + "/scholar?q=" + url.QueryEscape(title)
}

// Scan pages through the author's citation table until a short page
// signals the end. The first page failing is fatal; later pages degrade
// to warnings and keep what was already gathered.
func (s *Scanner) Scan(ctx context.Context) ([]proposal.RawMetadata, []error) {
	var items []proposal.RawMetadata
	var warnings []error

	for start := 0; ; start += pageSize {
		pageURL := fmt.Sprintf("%s/citations?user=%s&hl=en&sortby=pubdate&cstart=%d&pagesize=%d",
			s.baseURL, url.QueryEscape(s.authorID), start, pageSize)

		doc, err := s.client.Document(ctx, pageURL)
		if err != nil {
			err = fmt.Errorf("scholar profile (cstart=%d): %w", start, err)
			if start == 0 {
				return nil, []error{err}
			}
			warnings = append(warnings, err)
			return items, warnings
		}

		rows := s.parseRows(doc)
		items = append(items, rows...)
		if len(rows) < pageSize {
			return items, warnings
		}
	}
}

// venueDetail matches the volume/issue/pages tail of a citation venue
// line, e.g. "Journal of Politics 85 (2), 100-120".
var venueDetail = regexp.MustCompile(`^(.*\S)\s+(\d+)(?:\s*\((\d+)\))?,\s*([\d\x{2013}-]+)$`)

// splitVenueLine separates the venue name from a trailing
// volume/issue/pages detail, formatting the detail for display. Lines
// without the detail come back unchanged with an empty second value.
func splitVenueLine(line string) (venue, volIssuePages string) {
	m := venueDetail.FindStringSubmatch(line)
	if m == nil {
		return line, ""
	}
	return m[1], proposal.FormatVolumeIssuePages(m[2], m[3], m[4])
}

// parseRows extracts the publication rows of one citation-table page.
func (s *Scanner) parseRows(doc *goquery.Document) []proposal.RawMetadata {
	var items []proposal.RawMetadata

	doc.Find("tr.gsc_a_tr").Each(func(_ int, tr *goquery.Selection) {
		titleLink := tr.Find("a.gsc_a_at").First()
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return
		}

		link := ""
		if href, ok := titleLink.Attr("href"); ok && href != "" {
			if strings.HasPrefix(href, "http") {
				link = href
			} else {
				link = s.baseURL + href
			}
		}

		// The two gray lines under the title are authors then venue.
		authors, venueLine := "", ""
		gray := tr.Find("td.gsc_a_t div.gs_gray")
		if gray.Length() > 0 {
			authors = strings.TrimSpace(gray.Eq(0).Text())
		}
		if gray.Length() > 1 {
			venueLine = strings.TrimSpace(gray.Eq(1).Text())
		}
		venue, volIssuePages := splitVenueLine(venueLine)

		year := 0
		if y := strings.TrimSpace(tr.Find("td.gsc_a_y").First().Text()); y != "" {
			year, _ = strconv.Atoi(y)
		}

		items = append(items, proposal.RawMetadata{
			Title:            title,
			Authors:          authors,
			Venue:            venue,
			VolumeIssuePages: volIssuePages,
			Year:             year,
			URL:              link,
			ContentType:      proposal.Publications,
			Origin:           proposal.OriginScholar,
		})
	})

	return items
}
