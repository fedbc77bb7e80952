package profile

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/proposal"
)

func entryBlock(typeLabel, title, href, date string) string {
	return fmt.Sprintf(`<li class="entryBlock">
		<div class="typeLabel">%s</div>
		<header><h3><a href="%s">%s</a></h3></header>
		<p class="entryBlock-sub">%s</p>
		<div class="entryBlock-excerpt">Excerpt for %s</div>
	</li>`, typeLabel, href, title, date, title)
}

func listingPage(pages int, blocks ...string) string {
	var pag strings.Builder
	pag.WriteString(`<ul class="pagination">`)
	for i := 1; i <= pages; i++ {
		fmt.Fprintf(&pag, "<li>%d</li>", i)
	}
	pag.WriteString("<li>Next</li></ul>")
	return `<html><body><ul>` + strings.Join(blocks, "\n") + `</ul>` + pag.String() + `</body></html>`
}

func TestTotalPages(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingPage(4)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := TotalPages(doc); got != 4 {
		t.Errorf("TotalPages = %d, want 4", got)
	}

	empty, _ := goquery.NewDocumentFromReader(strings.NewReader("<html></html>"))
	if got := TotalPages(empty); got != 1 {
		t.Errorf("TotalPages with no control = %d, want 1", got)
	}
}

func TestScan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, listingPage(2,
				entryBlock("Journal Article", "A Study of Bots", "/research/bots", "February 19, 2026"),
				entryBlock("In the Media", "Quoted Somewhere", "https://other.example.com/q", "January 2, 2026"),
				entryBlock("Mystery Label", "An Oddity", "/items/odd", "not a date"),
			))
		case "2":
			fmt.Fprint(w, listingPage(2,
				// Repeated from page 1; must be dropped by the per-run dedup.
				entryBlock("Journal Article", "A Study of Bots!", "/research/bots", "February 19, 2026"),
				entryBlock("Commentary", "A Fresh Take", "/commentary/fresh", "March 1, 2026"),
			))
		}
	}))
	defer srv.Close()

	s := New(fetch.New(), srv.URL, "/people/joshua-a-tucker")
	items, warnings := s.Scan(context.Background())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4 (cross-page duplicate dropped): %+v", len(items), items)
	}

	first := items[0]
	if first.Title != "A Study of Bots" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.ContentType != proposal.Publications {
		t.Errorf("ContentType = %q, want publications", first.ContentType)
	}
	if first.Date != "2026-02-19" {
		t.Errorf("Date = %q", first.Date)
	}
	if first.URL != srv.URL+"/research/bots" {
		t.Errorf("URL = %q, want relative href resolved", first.URL)
	}
	if first.Origin != proposal.OriginCSMAP {
		t.Errorf("Origin = %q", first.Origin)
	}

	if items[1].URL != "https://other.example.com/q" {
		t.Errorf("absolute href should pass through, got %q", items[1].URL)
	}
	if items[1].ContentType != proposal.Media {
		t.Errorf("in the media label should map to media")
	}
	if items[2].ContentType != proposal.Commentary {
		t.Errorf("unknown label should default to commentary, got %q", items[2].ContentType)
	}
	if items[2].Date != "" {
		t.Errorf("unparseable date should be empty, got %q", items[2].Date)
	}
}

func TestScanPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, listingPage(3,
				entryBlock("Journal Article", "Page One Item", "/one", "January 1, 2026")))
		case "2":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "3":
			fmt.Fprint(w, listingPage(3,
				entryBlock("Commentary", "Page Three Item", "/three", "January 3, 2026")))
		}
	}))
	defer srv.Close()

	s := New(fetch.New(), srv.URL, "/people/joshua-a-tucker")
	items, warnings := s.Scan(context.Background())

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if len(items) != 2 {
		t.Fatalf("page 2 failure must not discard pages 1 and 3; got %d items", len(items))
	}
	if items[0].Title != "Page One Item" || items[1].Title != "Page Three Item" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestScanFirstPageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(fetch.New(), srv.URL, "/people/joshua-a-tucker")
	items, warnings := s.Scan(context.Background())
	if len(items) != 0 || len(warnings) != 1 {
		t.Errorf("want zero items and one warning, got %d items %d warnings", len(items), len(warnings))
	}
}
