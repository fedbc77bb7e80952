package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jatucker/sitescan/internal/corpus"
	"github.com/jatucker/sitescan/internal/dedup"
	"github.com/jatucker/sitescan/internal/fetch"
	"github.com/jatucker/sitescan/internal/gitops"
	"github.com/jatucker/sitescan/internal/profile"
	"github.com/jatucker/sitescan/internal/proposal"
	"github.com/jatucker/sitescan/internal/scholar"
)

var (
	checkScholarOnly bool
	checkCSMAPOnly   bool
	checkDryRun      bool
)

// scanInterval spaces out page fetches within one scan.
const scanInterval = 500 * time.Millisecond

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan all sources for new content and review the findings",
	Long: `Scan Google Scholar and the profile aggregator for items not yet in
the site's data files, then review each finding interactively.

Approved items are written to their stores; snoozed items never come
up again. With --dry-run nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkScholarOnly && checkCSMAPOnly {
			return fmt.Errorf("--scholar-only and --csmap-only are mutually exclusive")
		}

		root := mustFindRepository()
		cfg := mustLoadConfig(root)
		ctx := context.Background()
		client := fetch.New(fetch.WithRateLimit(scanInterval))
		now := time.Now()

		// Scholar results come first: they carry richer publication
		// metadata, so they should win cross-source dedup ties.
		var raw []proposal.RawMetadata
		if !checkCSMAPOnly {
			fmt.Println("Scanning Google Scholar...")
			items, warnings := scholar.New(client, scholar.DefaultBaseURL, cfg.ScholarAuthorID).Scan(ctx)
			printWarnings(warnings)
			fmt.Printf("  %d item(s) on Scholar.\n", len(items))
			raw = append(raw, items...)
		}
		if !checkScholarOnly {
			fmt.Printf("Scanning profile: %s%s...\n", cfg.ProfileBaseURL, cfg.ProfilePath)
			items, warnings := profile.New(client, cfg.ProfileBaseURL, cfg.ProfilePath).Scan(ctx)
			printWarnings(warnings)
			fmt.Printf("  %d item(s) on the profile.\n", len(items))
			raw = append(raw, items...)
		}

		candidates := make(map[proposal.ContentType][]proposal.Proposal)
		for _, r := range raw {
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
		if snoozed > 0 && !checkDryRun {
			if err := corpus.SaveSnooze(cfg.SnoozePath(root), snooze); err != nil {
				exitWithError(ExitDataError, "saving snooze list: %v", err)
			}
		}

		changed, counts, err := applyApproved(root, cfg, approved, checkDryRun)
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

// maybeCommit offers to commit and push the changed data files when the
// site root is a git checkout.
func maybeCommit(root string, changed []string, counts map[string]int) {
	if !gitops.IsGitRepo(root) {
		return
	}

	reader := stdinReader()
	if promptChoice(reader, "Commit and push the changes? [y/n]", "n") != "y" {
		return
	}

	if err := gitops.Add(root, changed...); err != nil {
		fmt.Printf("git: %v\n", err)
		return
	}
	if !gitops.HasStagedChanges(root) {
		fmt.Println("Nothing staged; skipping commit.")
		return
	}
	msg := gitops.CommitMessage(counts)
	if err := gitops.Commit(root, msg); err != nil {
		fmt.Printf("git: %v\n", err)
		return
	}
	fmt.Printf("Committed: %s\n", msg)
	if err := gitops.Push(root); err != nil {
		fmt.Printf("git: %v (push manually)\n", err)
		return
	}
	fmt.Println("Pushed.")
}

func init() {
	checkCmd.Flags().BoolVar(&checkScholarOnly, "scholar-only", false, "Scan only Google Scholar")
	checkCmd.Flags().BoolVar(&checkCSMAPOnly, "csmap-only", false, "Scan only the profile aggregator")
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "Review without writing anything")
	rootCmd.AddCommand(checkCmd)
}
