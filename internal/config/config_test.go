package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	cfg := Default()
	root := "/site"

	if got := cfg.PublicationsPath(root); got != filepath.Join(root, "_data", "publications.yml") {
		t.Errorf("PublicationsPath = %q", got)
	}
	if got := cfg.SiteContentPath(root); got != filepath.Join(root, "_data", "site_content.yml") {
		t.Errorf("SiteContentPath = %q", got)
	}
	if got := cfg.CommentaryPath(root); got != filepath.Join(root, "_commentary") {
		t.Errorf("CommentaryPath = %q", got)
	}
	if got := cfg.SnoozePath(root); got != filepath.Join(root, "scripts", ".scan_ignore.yml") {
		t.Errorf("SnoozePath = %q", got)
	}
	if cfg.ScholarAuthorID == "" || cfg.ProfileBaseURL == "" {
		t.Errorf("defaults must include scanner identifiers")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "scholar_author_id: OTHER_ID\ncv_file: docs/cv.pdf\n"
	if err := os.WriteFile(ConfigPath(dir), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScholarAuthorID != "OTHER_ID" {
		t.Errorf("override lost: %q", cfg.ScholarAuthorID)
	}
	if cfg.CVFile != "docs/cv.pdf" {
		t.Errorf("CVFile = %q", cfg.CVFile)
	}
	if cfg.PublicationsFile != filepath.Join("_data", "publications.yml") {
		t.Errorf("unset field should default, got %q", cfg.PublicationsFile)
	}
	if len(cfg.KnownTags) == 0 || len(cfg.AuthorVariants) == 0 {
		t.Errorf("vocabularies should default when unset")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.ScholarAuthorID = "ROUNDTRIP"

	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ScholarAuthorID != "ROUNDTRIP" {
		t.Errorf("ScholarAuthorID = %q", loaded.ScholarAuthorID)
	}
}

func TestFindRepository(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(ConfigPath(root), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindRepository(nested)
	if err != nil {
		t.Fatalf("FindRepository: %v", err)
	}
	// t.TempDir may sit behind a symlink; compare resolved paths.
	wantRoot, _ := filepath.EvalSymlinks(root)
	gotRoot, _ := filepath.EvalSymlinks(found)
	if gotRoot != wantRoot {
		t.Errorf("found %q, want %q", gotRoot, wantRoot)
	}
}

func TestFindRepositoryNotFound(t *testing.T) {
	if _, err := FindRepository(t.TempDir()); err == nil {
		t.Errorf("want error outside a site repository")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/cv.pdf"); got != filepath.Join(home, "cv.pdf") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got := ExpandPath("plain/path"); got != "plain/path" {
		t.Errorf("non-tilde path should pass through, got %q", got)
	}
}
