// Package config handles site repository discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the scanner configuration stored in sitescan.yml at
// the site repository root. Every field has a working default, so the
// file only needs to list overrides.
type Config struct {
	PublicationsFile string `yaml:"publications_file,omitempty"` // relative to site root
	SiteContentFile  string `yaml:"site_content_file,omitempty"`
	CommentaryDir    string `yaml:"commentary_dir,omitempty"`
	CVFile           string `yaml:"cv_file,omitempty"`
	SnoozeFile       string `yaml:"snooze_file,omitempty"`

	ScholarAuthorID string `yaml:"scholar_author_id,omitempty"`
	ProfileBaseURL  string `yaml:"profile_base_url,omitempty"`
	ProfilePath     string `yaml:"profile_path,omitempty"`

	DefaultAuthor  string   `yaml:"default_author,omitempty"`
	AuthorVariants []string `yaml:"author_variants,omitempty"`
	KnownTags      []string `yaml:"known_tags,omitempty"`
}

// ConfigFile is the marker file that identifies a site repository.
const ConfigFile = "sitescan.yml"

// defaultAuthorVariants are the author name spellings matched when
// filtering scanned items.
var defaultAuthorVariants = []string{
	"Joshua Tucker",
	"Joshua A. Tucker",
	"J.A. Tucker",
	"J. Tucker",
	"Tucker, Joshua",
	"Tucker, Joshua A.",
	"Tucker, J.A.",
	"Tucker, J.",
}

// defaultKnownTags is the tag vocabulary offered by the add-pub menu.
var defaultKnownTags = []string{
	"Data Science Methodology",
	"Elections & Voting",
	"Elite & Mass Political Behavior",
	"Foreign Influence Campaigns",
	"Media Consumption",
	"Online Information Environment",
	"Partisanship",
	"Political Polarization",
	"Politics of Authoritarianism",
	"Post-Communist Politics",
	"Protest",
	"Public Opinion",
}

// Default returns a Config carrying every default value.
func Default() *Config {
	return &Config{
		PublicationsFile: filepath.Join("_data", "publications.yml"),
		SiteContentFile:  filepath.Join("_data", "site_content.yml"),
		CommentaryDir:    "_commentary",
		CVFile:           filepath.Join("assets", "Tucker_CV.pdf"),
		SnoozeFile:       filepath.Join("scripts", ".scan_ignore.yml"),
		ScholarAuthorID:  "fc0VgPAAAAAJ",
		ProfileBaseURL:   "https://csmapnyu.org",
		ProfilePath:      "/people/joshua-a-tucker",
		DefaultAuthor:    "Tucker, Joshua A.",
		AuthorVariants:   defaultAuthorVariants,
		KnownTags:        defaultKnownTags,
	}
}

// ConfigPath returns the path to sitescan.yml from a site root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}

// IsRepository checks if the given path contains a site repository.
func IsRepository(root string) bool {
	info, err := os.Stat(ConfigPath(root))
	return err == nil && !info.IsDir()
}

// FindRepository walks up from the given path to find a site repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a site repository (no %s found)", ConfigFile)
		}
		abs = parent
	}
}

// Load reads sitescan.yml from the repository at the given root and
// fills missing fields with defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.PublicationsFile == "" {
		c.PublicationsFile = d.PublicationsFile
	}
	if c.SiteContentFile == "" {
		c.SiteContentFile = d.SiteContentFile
	}
	if c.CommentaryDir == "" {
		c.CommentaryDir = d.CommentaryDir
	}
	if c.CVFile == "" {
		c.CVFile = d.CVFile
	}
	if c.SnoozeFile == "" {
		c.SnoozeFile = d.SnoozeFile
	}
	if c.ScholarAuthorID == "" {
		c.ScholarAuthorID = d.ScholarAuthorID
	}
	if c.ProfileBaseURL == "" {
		c.ProfileBaseURL = d.ProfileBaseURL
	}
	if c.ProfilePath == "" {
		c.ProfilePath = d.ProfilePath
	}
	if c.DefaultAuthor == "" {
		c.DefaultAuthor = d.DefaultAuthor
	}
	if len(c.AuthorVariants) == 0 {
		c.AuthorVariants = d.AuthorVariants
	}
	if len(c.KnownTags) == 0 {
		c.KnownTags = d.KnownTags
	}
}

// Save writes the configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// PublicationsPath returns the absolute path to publications.yml.
func (c *Config) PublicationsPath(root string) string {
	return filepath.Join(root, c.PublicationsFile)
}

// SiteContentPath returns the absolute path to site_content.yml.
func (c *Config) SiteContentPath(root string) string {
	return filepath.Join(root, c.SiteContentFile)
}

// CommentaryPath returns the absolute path to the commentary directory.
func (c *Config) CommentaryPath(root string) string {
	return filepath.Join(root, c.CommentaryDir)
}

// CVPath returns the absolute path to the CV PDF. A ~-prefixed or
// absolute cv_file is used as-is, so the CV can live outside the repo.
func (c *Config) CVPath(root string) string {
	p := ExpandPath(c.CVFile)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// SnoozePath returns the absolute path to the snooze list.
func (c *Config) SnoozePath(root string) string {
	return filepath.Join(root, c.SnoozeFile)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
