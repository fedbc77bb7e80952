package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jatucker/sitescan/internal/corpus"
	"github.com/jatucker/sitescan/internal/cv"
	"github.com/jatucker/sitescan/internal/dedup"
	"github.com/jatucker/sitescan/internal/pdf"
	"github.com/jatucker/sitescan/internal/proposal"
)

var (
	cvDryRun bool
	cvFile   string
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Parse the CV PDF for entries missing from the site",
	Long: `Extract the text of the CV PDF, parse its publication and media
sections, and review anything not already in the site's data files.

CV formatting is irregular; lines that don't parse are skipped
silently, so treat this as a recall aid, not an exhaustive import.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := mustFindRepository()
		cfg := mustLoadConfig(root)

		path := cvFile
		if path == "" {
			path = cfg.CVPath(root)
		}

		fmt.Printf("Extracting text from %s...\n", path)
		text, err := pdf.ExtractText(path)
		if err != nil {
			exitWithError(ExitDataError, "extracting CV text: %v", err)
		}

		records := cv.Parse(text, cfg.DefaultAuthor)
		fmt.Printf("Parsed %d candidate line(s) from the CV.\n", len(records))

		now := time.Now()
		candidates := make(map[proposal.ContentType][]proposal.Proposal)
		for _, r := range records {
			if r.Title == "" {
				continue
			}
			p := proposal.Build(r, now)
			candidates[p.Type] = append(candidates[p.Type], p)
		}

		existing, err := corpus.Load(cfg.PublicationsPath(root), cfg.SiteContentPath(root), cfg.CommentaryPath(root))
		if err != nil {
			exitWithError(ExitDataError, "loading existing content: %v", err)
		}
		snooze, err := corpus.LoadSnooze(cfg.SnoozePath(root))
		if err != nil {
			exitWithError(ExitDataError, "loading snooze list: %v", err)
		}

		proposals := dedup.Filter(candidates, existing, snooze)
		if summarize(proposals) == 0 {
			return nil
		}

		approved, snoozed := reviewProposals(cmd.InOrStdin(), proposals, snooze)
		if snoozed > 0 && !cvDryRun {
			if err := corpus.SaveSnooze(cfg.SnoozePath(root), snooze); err != nil {
				exitWithError(ExitDataError, "saving snooze list: %v", err)
			}
		}

		changed, counts, err := applyApproved(root, cfg, approved, cvDryRun)
		if err != nil {
			exitWithError(ExitDataError, "applying approved items: %v", err)
		}
		if len(changed) == 0 {
			fmt.Println("Nothing to write.")
			return nil
		}

		maybeCommit(root, changed, counts)
		return nil
	},
}

func init() {
	cvCmd.Flags().BoolVar(&cvDryRun, "dry-run", false, "Review without writing anything")
	cvCmd.Flags().StringVar(&cvFile, "file", "", "CV PDF path (default: cv_file from sitescan.yml)")
	rootCmd.AddCommand(cvCmd)
}
