// Package corpus reads and rewrites the persisted site data stores:
// the publications list, the site-content media lists, the commentary
// file set, and the scan snooze list. All access is whole-file
// read-then-rewrite; this is a single-operator tool with no locking.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jatucker/sitescan/internal/dedup"
	"github.com/jatucker/sitescan/internal/proposal"
)

// frontMatter matches a leading ---\n ... \n--- block.
var frontMatter = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---`)

// titledEntry is the minimal shape needed to collect titles from any
// of the stores.
type titledEntry struct {
	Title string `yaml:"title"`
}

// siteContent is the subset of site_content.yml the loaders care
// about.
type siteContent struct {
	Media struct {
		Press      []titledEntry `yaml:"press"`
		Multimedia []titledEntry `yaml:"multimedia"`
	} `yaml:"media"`
}

// LoadPublicationTitles reads publications.yml and returns the set of
// normalized titles.
func LoadPublicationTitles(path string) (dedup.TitleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading publications: %w", err)
	}

	var pubs []titledEntry
	if err := yaml.Unmarshal(data, &pubs); err != nil {
		return nil, fmt.Errorf("parsing publications: %w", err)
	}

	titles := make(dedup.TitleSet)
	for _, p := range pubs {
		titles.Add(p.Title)
	}
	return titles, nil
}

// LoadMediaTitles reads site_content.yml and returns the normalized
// titles of the media press and multimedia sections.
func LoadMediaTitles(path string) (dedup.TitleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site content: %w", err)
	}

	var sc siteContent
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing site content: %w", err)
	}

	titles := make(dedup.TitleSet)
	for _, item := range sc.Media.Press {
		titles.Add(item.Title)
	}
	for _, item := range sc.Media.Multimedia {
		titles.Add(item.Title)
	}
	return titles, nil
}

// LoadCommentaryTitles scans a directory of commentary markdown files
// and returns the normalized titles from their front matter. Files
// whose front matter fails to parse contribute nothing: a malformed
// existing file must never block scanning for new content.
func LoadCommentaryTitles(dir string) (dedup.TitleSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading commentary dir: %w", err)
	}

	titles := make(dedup.TitleSet)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		m := frontMatter.FindSubmatch(data)
		if m == nil {
			continue
		}
		var fm titledEntry
		if err := yaml.Unmarshal(m[1], &fm); err != nil {
			continue
		}
		titles.Add(fm.Title)
	}
	return titles, nil
}

// Load reads all three stores and returns the corpus partitioned by
// content type.
func Load(publicationsPath, siteContentPath, commentaryDir string) (dedup.Corpus, error) {
	pubs, err := LoadPublicationTitles(publicationsPath)
	if err != nil {
		return nil, err
	}
	media, err := LoadMediaTitles(siteContentPath)
	if err != nil {
		return nil, err
	}
	commentary, err := LoadCommentaryTitles(commentaryDir)
	if err != nil {
		return nil, err
	}
	return dedup.Corpus{
		proposal.Publications: pubs,
		proposal.Media:        media,
		proposal.Commentary:   commentary,
	}, nil
}
