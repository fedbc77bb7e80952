package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jatucker/sitescan/internal/config"
	"github.com/jatucker/sitescan/internal/corpus"
	"github.com/jatucker/sitescan/internal/dedup"
	"github.com/jatucker/sitescan/internal/proposal"
)

// reviewProposals walks the operator through every proposal, one prompt
// per item: y approves, n skips for this run, s snoozes the title
// forever. Snoozed titles are added to the snooze set in place; the
// caller persists it. Blocks on stdin until every item is answered.
func reviewProposals(in io.Reader, proposals map[proposal.ContentType][]proposal.Proposal, snooze dedup.TitleSet) (approved []proposal.Proposal, snoozed int) {
	total := 0
	for _, ct := range proposal.ContentTypes {
		total += len(proposals[ct])
	}
	if total == 0 {
		return nil, 0
	}

	fmt.Println("For each item: [y] add it, [n] skip this time, [s] skip always (snooze)")

	reader := bufio.NewReader(in)
	i := 0
	for _, ct := range proposal.ContentTypes {
		for _, p := range proposals[ct] {
			i++
			printProposal(i, total, p)

			switch promptChoice(reader, "Action [y/n/s]", "n") {
			case "y":
				approved = append(approved, p)
				fmt.Println("  Approved")
			case "s":
				snooze.Add(p.Title())
				snoozed++
				fmt.Println("  Snoozed (won't appear again)")
			default:
				fmt.Println("  Skipped")
			}
		}
	}
	return approved, snoozed
}

// promptChoice reads one line and returns its lowercased first answer,
// or def on an empty line or EOF.
func promptChoice(reader *bufio.Reader, label, def string) string {
	fmt.Printf("%s (default %s): ", label, def)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return def
	}
	return line
}

// promptLine reads one line with a default shown in brackets.
func promptLine(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// applyApproved writes approved proposals to their stores and returns
// the changed file paths (relative to root where possible) and the
// per-label counts for the commit message.
func applyApproved(root string, cfg *config.Config, approved []proposal.Proposal, dryRun bool) ([]string, map[string]int, error) {
	changed := make(map[string]bool)
	counts := make(map[string]int)

	for _, p := range approved {
		if dryRun {
			fmt.Printf("[dry run] would add %s: %s\n", p.Type, truncateString(p.Title(), ListTitleMaxLen))
			continue
		}

		switch p.Type {
		case proposal.Publications:
			if err := corpus.AppendPublication(cfg.PublicationsPath(root), p.Publication); err != nil {
				return nil, nil, err
			}
			changed[cfg.PublicationsFile] = true
			fmt.Printf("Added publication: %s\n", truncateString(p.Title(), ListTitleMaxLen))
		case proposal.Commentary:
			path, err := corpus.WriteCommentary(cfg.CommentaryPath(root), p.Commentary)
			if err != nil {
				return nil, nil, err
			}
			if rel, err := relPath(root, path); err == nil {
				changed[rel] = true
			} else {
				changed[path] = true
			}
			fmt.Printf("Created commentary: %s\n", path)
		case proposal.Media:
			if err := corpus.AppendMedia(cfg.SiteContentPath(root), p.Media); err != nil {
				return nil, nil, err
			}
			changed[cfg.SiteContentFile] = true
			fmt.Printf("Added media mention: %s\n", truncateString(p.Title(), ListTitleMaxLen))
		}
		counts[countLabel(p.Type)]++
	}

	files := make([]string, 0, len(changed))
	for f := range changed {
		files = append(files, f)
	}
	return files, counts, nil
}

func relPath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("outside root: %s", path)
	}
	return rel, nil
}

// stdinReader is the shared prompt source for all commands.
func stdinReader() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
}
