package meta

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Each extractor is a priority cascade over the parsed document: probe
// signals in a fixed order and stop at the first non-empty hit. Absence
// of a signal is always "", never an error, so callers can chain them
// with plain emptiness checks.

const (
	// minAbstractLen rejects truncated placeholder descriptions.
	minAbstractLen = 80
	// maxAbstractLen caps abstracts scraped from visible page text.
	maxAbstractLen = 2000
)

// dateMetaProps are date-bearing meta tag names tried in priority order.
var dateMetaProps = []string{
	"article:published_time",
	"og:article:published_time",
	"article:modified_time",
	"parsely-pub-date",
	"sailthru.date",
	"DC.date",
	"pubdate",
	"published_time",
}

var (
	doiInURL    = regexp.MustCompile(`10\.\d{4,}/\S+`)
	yearPat     = regexp.MustCompile(`(20\d{2})`)
	yearInURL   = regexp.MustCompile(`/(20\d{2})[/-]`)
	arxivYear   = regexp.MustCompile(`/abs/(20\d{2})\d{2}\.`)
	abstractPat = regexp.MustCompile(`(?i)abstract`)
)

// metaContent returns the content of the first meta tag matching any of
// the given names, checked as property= then name= attributes.
func metaContent(doc *goquery.Document, names ...string) string {
	for _, n := range names {
		for _, attr := range []string{"property", "name"} {
			sel := doc.Find(`meta[` + attr + `="` + n + `"]`).First()
			if content, ok := sel.Attr("content"); ok {
				if c := strings.TrimSpace(content); c != "" {
					return c
				}
			}
		}
	}
	return ""
}

// jsonLDBlocks parses every application/ld+json script in the document
// into a generic object. Malformed or non-object blocks are skipped.
func jsonLDBlocks(doc *goquery.Document) []map[string]any {
	var blocks []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}
		blocks = append(blocks, data)
	})
	return blocks
}

// Title extracts the document title: citation meta tag, then Open Graph,
// then the <title> element.
func Title(doc *goquery.Document) string {
	if t := metaContent(doc, "citation_title", "og:title"); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// Date extracts a publication date as YYYY-MM-DD, trying in order:
// known date meta tags, JSON-LD blocks, a <time> element, and finally a
// date-shaped segment of the URL itself.
func Date(doc *goquery.Document, url string) string {
	if d := ResolveDate(metaContent(doc, dateMetaProps...)); d != "" {
		return d
	}

	for _, block := range jsonLDBlocks(doc) {
		for _, key := range []string{"datePublished", "dateCreated", "uploadDate"} {
			if raw, ok := block[key].(string); ok {
				if d := ResolveDate(raw); d != "" {
					return d
				}
			}
		}
	}

	if timeEl := doc.Find("time").First(); timeEl.Length() > 0 {
		raw, ok := timeEl.Attr("datetime")
		if !ok || raw == "" {
			raw = strings.TrimSpace(timeEl.Text())
		}
		if d := ResolveDate(raw); d != "" {
			return d
		}
	}

	return DateFromURL(url)
}

// Authors extracts the author list: repeated citation_author meta tags
// joined with ", ", falling back to a generic author meta tag.
func Authors(doc *goquery.Document) string {
	var authors []string
	doc.Find(`meta[name="citation_author"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			if c := strings.TrimSpace(content); c != "" {
				authors = append(authors, c)
			}
		}
	})
	if len(authors) > 0 {
		return strings.Join(authors, ", ")
	}
	return metaContent(doc, "author")
}

// Venue extracts the journal/venue name from citation metadata, falling
// back to the Open Graph site name.
func Venue(doc *goquery.Document) string {
	return metaContent(doc,
		"citation_journal_title",
		"citation_conference_title",
		"citation_publisher",
		"DC.publisher",
		"og:site_name")
}

// SiteName extracts the Open Graph site name.
func SiteName(doc *goquery.Document) string {
	return metaContent(doc, "og:site_name")
}

// Description extracts a short page description with no length
// threshold, for use as a commentary excerpt.
func Description(doc *goquery.Document) string {
	return metaContent(doc, "og:description", "description")
}

// Abstract extracts a paper abstract: named meta tags (with a minimum
// length to reject truncated placeholders), then the Open Graph
// description, then the text of the first element whose id or class
// mentions "abstract", capped at maxAbstractLen.
func Abstract(doc *goquery.Document) string {
	for _, name := range []string{"citation_abstract", "DC.description", "description", "og:description"} {
		if c := metaContent(doc, name); len(c) > minAbstractLen {
			return c
		}
	}

	var found string
	doc.Find("[id],[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		class, _ := s.Attr("class")
		if !abstractPat.MatchString(id) && !abstractPat.MatchString(class) {
			return true
		}
		text := strings.Join(strings.Fields(s.Text()), " ")
		if len(text) > minAbstractLen {
			if len(text) > maxAbstractLen {
				text = text[:maxAbstractLen]
			}
			found = text
			return false
		}
		return true
	})
	return found
}

// DOI extracts a DOI from citation/identifier meta tags, stripping a
// resolver URL prefix or doi: scheme marker, falling back to a
// DOI-shaped match in the URL.
func DOI(doc *goquery.Document, url string) string {
	if raw := metaContent(doc, "citation_doi", "DC.identifier", "prism.doi"); raw != "" {
		raw = strings.TrimPrefix(raw, "https://doi.org/")
		raw = strings.TrimPrefix(raw, "http://doi.org/")
		raw = strings.TrimPrefix(raw, "doi:")
		return raw
	}
	if m := doiInURL.FindString(url); m != "" {
		return strings.TrimRight(m, ".")
	}
	return ""
}

// Year extracts a 4-digit publication year from JSON-LD, date meta tags,
// a /YYYY/ URL segment, or an arXiv-style /abs/YYYYMM identifier path.
func Year(doc *goquery.Document, url string) string {
	for _, block := range jsonLDBlocks(doc) {
		for _, key := range []string{"datePublished", "dateCreated", "copyrightYear"} {
			val, ok := block[key]
			if !ok {
				continue
			}
			var raw string
			switch v := val.(type) {
			case string:
				raw = v
			case float64:
				raw = strconv.Itoa(int(v))
			}
			if m := yearPat.FindStringSubmatch(raw); m != nil {
				return m[1]
			}
		}
	}

	if raw := metaContent(doc, "article:published_time", "citation_publication_date", "DC.date"); raw != "" {
		if m := yearPat.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}

	if m := yearInURL.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := arxivYear.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}
