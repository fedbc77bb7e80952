package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jatucker/sitescan/internal/proposal"
)

const (
	// ListTitleMaxLen truncates titles in confirmation lines.
	ListTitleMaxLen = 60
)

// contentTypeLabel maps a content type to its display label and the
// store it is written to.
func contentTypeLabel(ct proposal.ContentType) (label, target string) {
	switch ct {
	case proposal.Publications:
		return "publication", "publications.yml"
	case proposal.Commentary:
		return "commentary", "_commentary/"
	case proposal.Media:
		return "media mention", "site_content.yml media.press"
	}
	return string(ct), ""
}

// countLabel is the key used for commit-message counting.
func countLabel(ct proposal.ContentType) string {
	switch ct {
	case proposal.Commentary:
		return "commentary entry"
	default:
		label, _ := contentTypeLabel(ct)
		return label
	}
}

// exitWithError writes an error message to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// printWarnings reports non-fatal scan problems to stderr.
func printWarnings(warnings []error) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
}

// printProposal prints one proposal card for review.
func printProposal(index, total int, p proposal.Proposal) {
	label, target := contentTypeLabel(p.Type)
	fmt.Printf("\n--- Item %d of %d (%s) ---\n", index, total, p.Type)
	fmt.Printf("  Title:  %s\n", p.Title())
	fmt.Printf("  Type:   %s -> %s\n", label, target)
	if d := p.Date(); d != "" {
		fmt.Printf("  Date:   %s\n", d)
	}
	if o := p.Outlet(); o != "" {
		fmt.Printf("  Outlet: %s\n", o)
	}
	if u := p.URL(); u != "" {
		fmt.Printf("  URL:    %s\n", u)
	}
	if p.Origin != "" {
		fmt.Printf("  Source: %s\n", p.Origin)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// summarize prints a one-line count of proposals per content type.
func summarize(proposals map[proposal.ContentType][]proposal.Proposal) int {
	total := 0
	var parts []string
	for _, ct := range proposal.ContentTypes {
		n := len(proposals[ct])
		if n == 0 {
			continue
		}
		total += n
		parts = append(parts, fmt.Sprintf("%d %s", n, ct))
	}
	if total == 0 {
		fmt.Println("Everything is up to date. No new content found.")
		return 0
	}
	fmt.Printf("\nFound %d proposed new item(s): %s\n", total, strings.Join(parts, ", "))
	return total
}
