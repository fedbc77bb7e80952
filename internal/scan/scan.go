// Package scan is the generic one-URL adapter: fetch a page, run the
// metadata extractors over it, and return a single raw record for the
// add-url and add-pub flows.
package scan

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/meta"
	"github.com/jatucker/sitescan/internal/proposal"
)

var domainPat = regexp.MustCompile(`^https?://(?:www\.)?([^/]+)`)

// OutletFromURL derives a displayable outlet name from the URL's
// registrable domain: the first dot-separated label, capitalized.
// Returns "" when the URL has no recognizable host.
func OutletFromURL(rawURL string) string {
	m := domainPat.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	label, _, _ := strings.Cut(m[1], ".")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// Page fetches one URL and extracts commentary/media-shaped metadata:
// title, date, outlet, and a short excerpt. A fetch failure returns an
// empty record and the error; the caller degrades to manual entry.
func Page(ctx context.Context, client *fetch.Client, rawURL string) (proposal.RawMetadata, error) {
	doc, err := client.Document(ctx, rawURL)
	if err != nil {
		return proposal.RawMetadata{}, err
	}

	outlet := meta.SiteName(doc)
	if outlet == "" {
		outlet = OutletFromURL(rawURL)
	}

	return proposal.RawMetadata{
		Title:       meta.Title(doc),
		Date:        meta.Date(doc, rawURL),
		Venue:       outlet,
		Excerpt:     meta.Description(doc),
		URL:         rawURL,
		ContentType: proposal.Commentary,
		Origin:      proposal.OriginManual,
	}, nil
}

// Publication fetches one URL and extracts publication-shaped metadata:
// everything Page extracts plus authors, venue, abstract, DOI, and year.
func Publication(ctx context.Context, client *fetch.Client, rawURL string) (proposal.RawMetadata, error) {
	doc, err := client.Document(ctx, rawURL)
	if err != nil {
		return proposal.RawMetadata{}, err
	}

	venue := meta.Venue(doc)
	if venue == "" {
		venue = OutletFromURL(rawURL)
	}

	year, _ := strconv.Atoi(meta.Year(doc, rawURL))

	return proposal.RawMetadata{
		Title:       meta.Title(doc),
		Date:        meta.Date(doc, rawURL),
		Authors:     meta.Authors(doc),
		Venue:       venue,
		Excerpt:     meta.Abstract(doc),
		DOI:         meta.DOI(doc, rawURL),
		Year:        year,
		URL:         rawURL,
		ContentType: proposal.Publications,
		Origin:      proposal.OriginManual,
	}, nil
}
