// Package profile scans the institutional profile aggregator page,
// which lists all of the author's associated publications, commentary,
// and media appearances across a paginated listing.
package profile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/meta"
	"github.com/jatucker/sitescan/internal/proposal"
)

// typeMap translates the aggregator's visible type labels into content
// types. Unrecognized labels default to commentary.
var typeMap = map[string]proposal.ContentType{
	"journal article": proposal.Publications,
	"working paper":   proposal.Publications,
	"report":          proposal.Publications,
	"book":            proposal.Publications,
	"book chapter":    proposal.Publications,
	"policy":          proposal.Commentary,
	"commentary":      proposal.Commentary,
	"news":            proposal.Commentary,
	"in the media":    proposal.Media,
	"media":           proposal.Media,
}

// Scanner fetches and parses the paginated profile listing.
type Scanner struct {
	client     *fetch.Client
	baseURL    string
	profileURL string
}

// New creates a Scanner for the profile page at baseURL+profilePath.
func New(client *fetch.Client, baseURL, profilePath string) *Scanner {
	return &Scanner{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		profileURL: strings.TrimRight(baseURL, "/") + profilePath,
	}
}

// Scan fetches every page of the profile and returns the raw records,
// deduplicated by normalized title across all pages of this run. Page
// failures after the first are warnings, not fatal: items gathered
// from earlier pages are still returned.
func (s *Scanner) Scan(ctx context.Context) ([]proposal.RawMetadata, []error) {
	doc, err := s.client.Document(ctx, s.profileURL)
	if err != nil {
		return nil, []error{fmt.Errorf("profile page 1: %w", err)}
	}

	totalPages := TotalPages(doc)
	items := s.parsePage(doc)

	var warnings []error
	for page := 2; page <= totalPages; page++ {
		pageURL := fmt.Sprintf("%s?page=%d", s.profileURL, page)
		pageDoc, err := s.client.Document(ctx, pageURL)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("profile page %d: %w", page, err))
			continue
		}
		items = append(items, s.parsePage(pageDoc)...)
	}

	// Within-run dedup: the listing repeats items across pages.
	seen := make(map[string]bool)
	unique := items[:0]
	for _, item := range items {
		key := meta.NormalizeTitle(item.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	return unique, warnings
}

// TotalPages reads the pagination control and returns the highest page
// number found, defaulting to 1.
func TotalPages(doc *goquery.Document) int {
	total := 1
	doc.Find("ul.pagination li").Each(func(_ int, s *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(s.Text())); err == nil && n > total {
			total = n
		}
	})
	return total
}

// parsePage extracts the entry blocks from one listing page.
func (s *Scanner) parsePage(doc *goquery.Document) []proposal.RawMetadata {
	var items []proposal.RawMetadata

	doc.Find("li.entryBlock").Each(func(_ int, li *goquery.Selection) {
		titleLink := li.Find("header h3 a").First()
		if titleLink.Length() == 0 {
			return
		}
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return
		}

		href, _ := titleLink.Attr("href")
		link := href
		if link != "" && !strings.HasPrefix(link, "http") {
			link = s.baseURL + link
		}

		typeLabel := strings.TrimSpace(li.Find("div.typeLabel").First().Text())
		contentType, ok := typeMap[strings.ToLower(typeLabel)]
		if !ok {
			contentType = proposal.Commentary
		}

		date := meta.ResolveDate(strings.TrimSpace(li.Find("p.entryBlock-sub").First().Text()))
		excerpt := strings.TrimSpace(li.Find("div.entryBlock-excerpt").First().Text())

		items = append(items, proposal.RawMetadata{
			Title:       title,
			Date:        date,
			Excerpt:     excerpt,
			URL:         link,
			ContentType: contentType,
			Origin:      proposal.OriginCSMAP,
		})
	})

	return items
}
