package cv

import (
	"testing"

	"github.com/jatucker/sitescan/internal/proposal"
)

const defaultAuthor = "Tucker, Joshua A."

func TestSplitSections(t *testing.T) {
	text := `Joshua A. Tucker
Professor of Politics

Journal Articles
First article line.
Second article line.

Working Papers
A working paper line.

Media Coverage
An outlet, "A Story", January 5, 2024.
`
	sections := SplitSections(text)

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3: %v", len(sections), sections)
	}
	if _, ok := sections["journal articles"]; !ok {
		t.Errorf("missing journal articles section")
	}
	if body := sections["working papers"]; body != "A working paper line." {
		t.Errorf("working papers body = %q", body)
	}
}

func TestSplitSectionsHeaderMustStandAlone(t *testing.T) {
	text := "He discussed his Journal Articles at length.\n\nBooks\nA book line here.\n"
	sections := SplitSections(text)
	if _, ok := sections["journal articles"]; ok {
		t.Errorf("inline mention should not start a section")
	}
	if _, ok := sections["books"]; !ok {
		t.Errorf("standalone header should start a section")
	}
}

func TestParsePublicationLine(t *testing.T) {
	line := `Tucker, Joshua A. (2023). "Polarization Online." *Journal of Politics*, Vol. 5, pp. 1-20.`

	rec, ok := ParsePublicationLine(line, defaultAuthor)
	if !ok {
		t.Fatalf("line should parse")
	}
	if rec.Title != "Polarization Online" {
		t.Errorf("Title = %q, want trailing period stripped", rec.Title)
	}
	if rec.Year != 2023 {
		t.Errorf("Year = %d, want 2023", rec.Year)
	}
	if rec.Authors != "Tucker, Joshua A." {
		t.Errorf("Authors = %q", rec.Authors)
	}
	if rec.Venue != "Journal of Politics" {
		t.Errorf("Venue = %q, want formatting markers stripped", rec.Venue)
	}
	if rec.Origin != proposal.OriginCV {
		t.Errorf("Origin = %q", rec.Origin)
	}
}

func TestParsePublicationLineRejects(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too short", `"Hi." (2023).`},
		{"no quoted title", "Tucker, Joshua A. (2023). Untitled manuscript in preparation."},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParsePublicationLine(tt.line, defaultAuthor); ok {
				t.Errorf("line %q should be rejected", tt.line)
			}
		})
	}
}

func TestParsePublicationLineCurlyQuotes(t *testing.T) {
	line := "Tucker, Joshua A. (2022). “Echo Chambers.” *Nature*, 600, pp. 1-5."
	rec, ok := ParsePublicationLine(line, defaultAuthor)
	if !ok {
		t.Fatalf("curly-quoted line should parse")
	}
	if rec.Title != "Echo Chambers" {
		t.Errorf("Title = %q", rec.Title)
	}
}

func TestParsePublicationLineDefaultAuthor(t *testing.T) {
	line := `(2021). "Anonymous Work." *Some Venue*, pp. 1-2.`
	rec, ok := ParsePublicationLine(line, defaultAuthor)
	if !ok {
		t.Fatalf("line should parse")
	}
	if rec.Authors != defaultAuthor {
		t.Errorf("Authors = %q, want default when prefix empty", rec.Authors)
	}
}

func TestParseMediaLine(t *testing.T) {
	line := `The Washington Post, "Bots Are Everywhere", March 12, 2024.`

	rec, ok := ParseMediaLine(line)
	if !ok {
		t.Fatalf("line should parse")
	}
	if rec.Title != "Bots Are Everywhere" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Venue != "The Washington Post" {
		t.Errorf("Outlet = %q", rec.Venue)
	}
	if rec.Date != "2024-03-12" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.ContentType != proposal.Media {
		t.Errorf("ContentType = %q", rec.ContentType)
	}
}

func TestParseMediaLineOptionalDate(t *testing.T) {
	rec, ok := ParseMediaLine(`Some Radio Show, "An Interview Segment".`)
	if !ok {
		t.Fatalf("line should parse without a date")
	}
	if rec.Date != "" {
		t.Errorf("Date = %q, want empty", rec.Date)
	}
}

func TestParseMediaLineRequiresQuotedTitle(t *testing.T) {
	if _, ok := ParseMediaLine("An outlet mentioned the professor on March 12, 2024."); ok {
		t.Errorf("unquoted media line should be rejected")
	}
}

func TestParse(t *testing.T) {
	text := `Education
PhD, Harvard University.

Journal Articles
Tucker, Joshua A. (2023). "Polarization Online." *Journal of Politics*, Vol. 5, pp. 1-20.
Some unparseable continuation line that has no quotes in it at all.

Working Papers
Tucker, Joshua A. and Smith, Jane. (2025). "Drafting in Public." Working paper.

Media Coverage
The Times, "Quoted on Bots", January 5, 2024.
`
	records := Parse(text, defaultAuthor)

	var pubs, media int
	for _, r := range records {
		switch r.ContentType {
		case proposal.Publications:
			pubs++
		case proposal.Media:
			media++
		}
	}
	if pubs != 2 {
		t.Errorf("got %d publications, want 2", pubs)
	}
	if media != 1 {
		t.Errorf("got %d media records, want 1", media)
	}

	// Section determines the publication subtype.
	if records[0].PubType != proposal.TypeJournalArticle {
		t.Errorf("PubType = %q, want journal_article", records[0].PubType)
	}
	if records[1].PubType != proposal.TypeWorkingPaper {
		t.Errorf("PubType = %q, want working_paper", records[1].PubType)
	}
}
