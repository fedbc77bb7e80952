package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/proposal"
	"github.com/jatucker/sitescan/internal/scan"
)

var addPubCmd = &cobra.Command{
	Use:   "add-pub [url]",
	Short: "Add one publication, optionally pre-filled from a URL",
	Long: `Fetch a publication page (journal, arXiv, SSRN, publisher), extract
title/authors/year/venue/abstract/DOI, then walk through every field
interactively before writing the entry to publications.yml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := mustFindRepository()
		cfg := mustLoadConfig(root)

		var raw proposal.RawMetadata
		if len(args) == 1 {
			fmt.Printf("Fetching: %s\n", args[0])
			fetched, err := scan.Publication(context.Background(), fetch.New(), args[0])
			if err != nil {
				fmt.Printf("Could not fetch URL (%v) - continuing with manual entry.\n", err)
				raw = proposal.RawMetadata{URL: args[0], Origin: proposal.OriginManual}
			} else {
				raw = fetched
			}
		} else {
			raw.Origin = proposal.OriginManual
		}

		reader := stdinReader()

		if raw.Title != "" {
			fmt.Printf("\nPre-filled from URL:\n  Title:    %s\n  Authors:  %s\n  Year:     %d\n  Venue:    %s\n  DOI:      %s\n  Abstract: %s\n",
				raw.Title, raw.Authors, raw.Year, raw.Venue, raw.DOI, truncateString(raw.Excerpt, 120))
		}

		title := promptLine(reader, "Title", raw.Title)
		if title == "" {
			fmt.Println("Title is required. Cancelled.")
			return nil
		}
		authorDefault := raw.Authors
		if authorDefault == "" {
			authorDefault = cfg.DefaultAuthor
		}
		authors := promptLine(reader, "Authors (e.g. Tucker, Joshua A. and Smith, Jane)", authorDefault)

		yearDefault := ""
		if raw.Year > 0 {
			yearDefault = strconv.Itoa(raw.Year)
		}
		year, _ := strconv.Atoi(promptLine(reader, "Year", yearDefault))

		venue := promptLine(reader, "Venue (journal, publisher, or archive)", raw.Venue)
		volIssuePages := promptLine(reader, "Volume / Issue / Pages (e.g. Vol. 12, No. 3, pp. 45-67)", "")
		doi := promptLine(reader, "DOI (just the identifier, not the full URL)", raw.DOI)

		fmt.Println("\nPublication type:")
		for i, t := range proposal.PublicationTypes {
			fmt.Printf("  %d) %s\n", i+1, t)
		}
		pubType := proposal.PublicationTypes[0]
		if n, err := strconv.Atoi(promptChoice(reader, "Enter number", "1")); err == nil && n >= 1 && n <= len(proposal.PublicationTypes) {
			pubType = proposal.PublicationTypes[n-1]
		}

		abstract := raw.Excerpt
		if abstract != "" {
			if promptChoice(reader, fmt.Sprintf("Use pre-filled abstract (%d chars)? [y/n]", len(abstract)), "y") != "y" {
				abstract = promptLine(reader, "Abstract", "")
			}
		} else {
			abstract = promptLine(reader, "Abstract (paste or leave blank)", "")
		}

		tags := promptTags(reader, cfg.KnownTags)

		fmt.Println("\nLinks (press Enter to leave blank):")
		links := proposal.Links{
			Published:   promptLine(reader, "Published URL (journal page)", raw.URL),
			Preprint:    promptLine(reader, "Preprint URL (arXiv, SSRN, OSF, etc.)", ""),
			Appendix:    promptLine(reader, "Appendix URL", ""),
			Replication: promptLine(reader, "Replication data URL", ""),
		}

		entry := &proposal.PublicationEntry{
			ID:               proposal.PublicationID(title, year),
			Title:            title,
			Authors:          authors,
			Year:             year,
			Venue:            venue,
			VolumeIssuePages: volIssuePages,
			DOI:              doi,
			Type:             pubType,
			Abstract:         abstract,
			Tags:             tags,
			Awards:           []string{},
			Links:            links,
		}
		p := proposal.Proposal{Type: proposal.Publications, Origin: proposal.OriginManual, Publication: entry}

		changed, counts, err := applyApproved(root, cfg, []proposal.Proposal{p}, false)
		if err != nil {
			exitWithError(ExitDataError, "writing publication: %v", err)
		}

		maybeCommit(root, changed, counts)
		return nil
	},
}

// promptTags shows the numbered tag vocabulary and returns the chosen
// tags. "0" adds a tag not in the list; Enter skips tagging.
func promptTags(reader *bufio.Reader, known []string) []string {
	fmt.Println("\nSelect topic tags (comma-separated numbers, or press Enter to skip):")
	for i, tag := range known {
		fmt.Printf("  %2d) %s\n", i+1, tag)
	}
	fmt.Println("   0) Add a new tag not in the list")

	line := promptLine(reader, "Tags", "")
	if line == "" {
		return []string{}
	}

	chosen := []string{}
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "0" {
			if newTag := promptLine(reader, "New tag name", ""); newTag != "" {
				chosen = append(chosen, newTag)
			}
			continue
		}
		if n, err := strconv.Atoi(part); err == nil && n >= 1 && n <= len(known) {
			chosen = append(chosen, known[n-1])
		}
	}
	return chosen
}

func init() {
	rootCmd.AddCommand(addPubCmd)
}
