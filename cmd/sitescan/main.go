// Package main provides the sitescan CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jatucker/sitescan/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sitescan",
	Short: "Keep an academic personal website's content up to date",
	Long: `sitescan finds new publications, commentary, and media mentions
for an academic personal website and proposes them for review.

Sources:
  - Google Scholar author profile
  - CSMAP profile aggregator page
  - CV PDF
  - Any single URL (add-url, add-pub)

Approved items are written into the site's YAML/Markdown data files;
rejected items can be snoozed so they never come up again.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for the
// site repository. SITESCAN_ROOT (possibly via .env) wins over cwd.
func getStartingDirectory() string {
	if root := os.Getenv("SITESCAN_ROOT"); root != "" {
		return config.ExpandPath(root)
	}

	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}
	return cwd
}

// mustFindRepository finds the site repository, exits on error.
// Returns the repository root path.
func mustFindRepository() string {
	root, err := config.FindRepository(getStartingDirectory())
	if err != nil {
		fmt.Fprintf(os.Stderr, `No site repository found.

Tip: create %s at your site's root (an empty file works; all
settings have defaults), or set SITESCAN_ROOT to the site path.
`, config.ConfigFile)
		os.Exit(ExitConfigError)
	}
	return root
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
