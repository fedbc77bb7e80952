package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/proposal"
	"github.com/jatucker/sitescan/internal/scan"
)

var addURLCmd = &cobra.Command{
	Use:   "add-url [url]",
	Short: "Add one commentary entry or media mention from a URL",
	Long: `Fetch a URL, extract title/date/outlet/excerpt, let you confirm or
edit each field, and write the entry. With no URL (or when the fetch
fails) every field is entered manually.

For publications, use: sitescan add-pub <url>`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := mustFindRepository()
		cfg := mustLoadConfig(root)

		var raw proposal.RawMetadata
		if len(args) == 1 {
			fmt.Printf("Fetching: %s\n", args[0])
			fetched, err := scan.Page(context.Background(), fetch.New(), args[0])
			if err != nil {
				fmt.Printf("Could not fetch URL (%v) - continuing with manual entry.\n", err)
				raw = proposal.RawMetadata{URL: args[0], Origin: proposal.OriginManual}
			} else {
				raw = fetched
			}
		} else {
			fmt.Println("No URL provided - entering all fields manually.")
			raw.Origin = proposal.OriginManual
		}

		reader := stdinReader()

		confirmed := false
		if raw.Title != "" {
			fmt.Printf("\n  Title:   %s\n  Date:    %s\n  Outlet:  %s\n  URL:     %s\n  Excerpt: %s\n",
				raw.Title, raw.Date, raw.Venue, raw.URL, truncateString(raw.Excerpt, 120))
			confirmed = promptChoice(reader, "Does this look right? [y/n]", "y") == "y"
		}
		if !confirmed {
			raw.Title = promptLine(reader, "Title", raw.Title)
			raw.Date = promptLine(reader, "Date (YYYY-MM-DD)", raw.Date)
			raw.Venue = promptLine(reader, "Outlet / publisher", raw.Venue)
			raw.URL = promptLine(reader, "URL", raw.URL)
			raw.Excerpt = promptLine(reader, "Excerpt / description", raw.Excerpt)
		}
		if raw.Title == "" {
			fmt.Println("Title is required. Cancelled.")
			return nil
		}

		fmt.Println("\nWhat type of content is this?")
		fmt.Println("  1) Commentary (op-ed, blog post, policy piece)")
		fmt.Println("  2) Media mention (interview, press quote, news article about you)")
		kind := proposal.Commentary
		if promptChoice(reader, "Enter 1 or 2", "1") == "2" {
			kind = proposal.Media
		}
		raw.ContentType = kind

		p := proposal.Build(raw, time.Now())
		changed, counts, err := applyApproved(root, cfg, []proposal.Proposal{p}, false)
		if err != nil {
			exitWithError(ExitDataError, "writing entry: %v", err)
		}

		maybeCommit(root, changed, counts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addURLCmd)
}
