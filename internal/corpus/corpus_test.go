package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jatucker/sitescan/internal/proposal"
)

const publicationsFixture = `- id: tucker-2023-polarization-online
  title: Polarization Online
  authors: Tucker, Joshua A.
  year: 2023
  venue: Journal of Politics
- id: tucker-2021-echo-chambers
  title: "Echo Chambers, Revisited!"
  year: 2021
`

const siteContentFixture = `site:
  name: Joshua A. Tucker
  tagline: Professor of Politics
media:
  press:
    - outlet: The Times
      title: Quoted on Bots
      date: "2024-01-10"
      url: https://example.com/bots
  multimedia:
    - outlet: Some Podcast
      title: An Hour on Disinfo
      date: "2023-06-02"
      url: https://example.com/pod
footer:
  copyright: 2026
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadPublicationTitles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "publications.yml", publicationsFixture)

	titles, err := LoadPublicationTitles(path)
	if err != nil {
		t.Fatalf("LoadPublicationTitles: %v", err)
	}
	if len(titles) != 2 {
		t.Errorf("got %d titles, want 2", len(titles))
	}
	if !titles.Contains("polarization online") {
		t.Errorf("missing normalized title")
	}
	if !titles.Contains("Echo Chambers, Revisited") {
		t.Errorf("membership should be normalized")
	}
}

func TestLoadMediaTitles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "site_content.yml", siteContentFixture)

	titles, err := LoadMediaTitles(path)
	if err != nil {
		t.Fatalf("LoadMediaTitles: %v", err)
	}
	if !titles.Contains("Quoted on Bots") || !titles.Contains("An Hour on Disinfo") {
		t.Errorf("press and multimedia sections should both contribute, got %v", titles)
	}
}

func TestLoadCommentaryTitles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-01-01-good.md", "---\ntitle: A Good Post\ndate: 2024-01-01\n---\n")
	writeFile(t, dir, "2024-02-01-broken.md", "no front matter here")
	writeFile(t, dir, "2024-03-01-bad-yaml.md", "---\ntitle: [unclosed\n---\n")
	writeFile(t, dir, "notes.txt", "---\ntitle: Not Markdown\n---\n")

	titles, err := LoadCommentaryTitles(dir)
	if err != nil {
		t.Fatalf("LoadCommentaryTitles: %v", err)
	}
	if len(titles) != 1 || !titles.Contains("A Good Post") {
		t.Errorf("only the parseable .md file should contribute, got %v", titles)
	}
}

func TestAppendPublicationPrepends(t *testing.T) {
	path := writeFile(t, t.TempDir(), "publications.yml", publicationsFixture)

	entry := &proposal.PublicationEntry{
		ID:    "tucker-2026-new-work",
		Title: "New Work",
		Year:  2026,
		Type:  proposal.TypeJournalArticle,
	}
	if err := AppendPublication(path, entry); err != nil {
		t.Fatalf("AppendPublication: %v", err)
	}

	titles, err := LoadPublicationTitles(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if len(titles) != 3 {
		t.Errorf("got %d titles after append, want 3", len(titles))
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	if !strings.Contains(content, "tucker-2026-new-work") {
		t.Errorf("new entry missing from file")
	}
	if strings.Index(content, "New Work") > strings.Index(content, "Polarization Online") {
		t.Errorf("new entry should be prepended, not appended")
	}
}

func TestWriteCommentary(t *testing.T) {
	dir := t.TempDir()
	entry := &proposal.CommentaryEntry{
		Title:   "The Rise of Disinfo!",
		Date:    "2026-02-18",
		Outlet:  "Monkey Cage",
		Link:    "https://example.com/post",
		Excerpt: "A short excerpt.",
	}

	path, err := WriteCommentary(dir, entry)
	if err != nil {
		t.Fatalf("WriteCommentary: %v", err)
	}
	if filepath.Base(path) != "2026-02-18-the-rise-of-disinfo.md" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	// The written file must round-trip through the corpus loader.
	titles, err := LoadCommentaryTitles(dir)
	if err != nil {
		t.Fatalf("LoadCommentaryTitles: %v", err)
	}
	if !titles.Contains("The Rise of Disinfo!") {
		t.Errorf("written commentary not visible to loader: %v", titles)
	}
}

func TestAppendMediaPrepends(t *testing.T) {
	path := writeFile(t, t.TempDir(), "site_content.yml", siteContentFixture)

	entry := &proposal.MediaEntry{
		Outlet: "The Post",
		Title:  "Fresh Mention",
		Date:   "2026-02-20",
		URL:    "https://example.com/fresh",
	}
	if err := AppendMedia(path, entry); err != nil {
		t.Fatalf("AppendMedia: %v", err)
	}

	titles, err := LoadMediaTitles(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if !titles.Contains("Fresh Mention") || !titles.Contains("Quoted on Bots") {
		t.Errorf("expected old and new entries, got %v", titles)
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	if strings.Index(content, "Fresh Mention") > strings.Index(content, "Quoted on Bots") {
		t.Errorf("new media entry should be prepended")
	}
	// Unrelated sections survive the rewrite.
	if !strings.Contains(content, "tagline: Professor of Politics") || !strings.Contains(content, "copyright: 2026") {
		t.Errorf("unrelated site content was lost:\n%s", content)
	}
}

func TestAppendMediaCreatesMissingSections(t *testing.T) {
	path := writeFile(t, t.TempDir(), "site_content.yml", "site:\n  name: Test\n")

	entry := &proposal.MediaEntry{Outlet: "X", Title: "First Ever", Date: "", URL: ""}
	if err := AppendMedia(path, entry); err != nil {
		t.Fatalf("AppendMedia: %v", err)
	}

	titles, err := LoadMediaTitles(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if !titles.Contains("First Ever") {
		t.Errorf("media.press should be created on demand, got %v", titles)
	}
}

func TestSnoozeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".scan_ignore.yml")

	// Missing file is an empty set.
	set, err := LoadSnooze(path)
	if err != nil {
		t.Fatalf("LoadSnooze on missing file: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("missing snooze file should be empty set")
	}

	set.Add("An Item To Skip Forever")
	set.Add("another one")
	if err := SaveSnooze(path, set); err != nil {
		t.Fatalf("SaveSnooze: %v", err)
	}

	// An item snoozed in run N must not reappear in run N+1.
	reloaded, err := LoadSnooze(path)
	if err != nil {
		t.Fatalf("LoadSnooze: %v", err)
	}
	if !reloaded.Contains("an item to skip forever") || !reloaded.Contains("another one") {
		t.Errorf("snooze set did not survive round trip: %v", reloaded)
	}
}
