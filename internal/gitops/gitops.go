// Package gitops wraps the git operations run after applying approved
// entries: stage the data files, commit with a generated message, and
// optionally push.
package gitops

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotGitRepo indicates the directory is not a git repository.
var ErrNotGitRepo = errors.New("not a git repository")

// FindRepoRoot finds the root of the git repository containing the given path.
// Returns ErrNotGitRepo if not in a git repository.
func FindRepoRoot(path string) (string, error) {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", ErrNotGitRepo
	}
	return strings.TrimSpace(string(output)), nil
}

// IsGitRepo checks if the given path is inside a git repository.
func IsGitRepo(path string) bool {
	_, err := FindRepoRoot(path)
	return err == nil
}

// Add stages the given paths (relative to repoRoot).
func Add(repoRoot string, paths ...string) error {
	args := append([]string{"-C", repoRoot, "add", "--"}, paths...)
	cmd := exec.Command("git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git add: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Commit creates a commit with the given message. Committing with
// nothing staged is an error; callers should check HasStagedChanges.
func Commit(repoRoot, message string) error {
	cmd := exec.Command("git", "-C", repoRoot, "commit", "-m", message)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Push pushes the current branch to its upstream.
func Push(repoRoot string) error {
	cmd := exec.Command("git", "-C", repoRoot, "push")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git push: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// HasStagedChanges reports whether anything is staged for commit.
func HasStagedChanges(repoRoot string) bool {
	cmd := exec.Command("git", "-C", repoRoot, "diff", "--cached", "--quiet")
	// diff --quiet exits 1 when there are differences.
	return cmd.Run() != nil
}

// CommitMessage builds a one-line commit message for a batch of
// applied entries, e.g. "Add 2 publications, 1 media mention".
func CommitMessage(counts map[string]int) string {
	var parts []string
	for _, kind := range []string{"publication", "commentary entry", "media mention"} {
		n := counts[kind]
		if n == 0 {
			continue
		}
		label := kind
		if n != 1 {
			label = plural(kind)
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, label))
	}
	if len(parts) == 0 {
		return "Update site content"
	}
	return "Add " + strings.Join(parts, ", ")
}

func plural(kind string) string {
	switch kind {
	case "commentary entry":
		return "commentary entries"
	default:
		return kind + "s"
	}
}
