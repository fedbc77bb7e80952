// Package proposal defines the candidate-entry shapes produced by the
// source adapters and the builders that map raw scanned metadata into
// them. A proposal is not yet persisted; it lives until the review loop
// approves or rejects it.
package proposal

// ContentType discriminates the three target stores.
type ContentType string

const (
	Publications ContentType = "publications"
	Commentary   ContentType = "commentary"
	Media        ContentType = "media"
)

// ContentTypes lists all content types in review order.
var ContentTypes = []ContentType{Publications, Commentary, Media}

// Origin records which scanner produced a raw record. Used for
// traceability only, never for control flow.
type Origin string

const (
	OriginManual  Origin = "manual"
	OriginCSMAP   Origin = "csmap"
	OriginCV      Origin = "cv"
	OriginScholar Origin = "scholar"
)

// Publication subtypes, matching the values persisted in
// publications.yml.
const (
	TypeJournalArticle = "journal_article"
	TypeWorkingPaper   = "working_paper"
	TypeUnderReview    = "under_review"
	TypeBookChapter    = "book_chapter"
	TypeBook           = "book"
	TypeOther          = "other"
)

// PublicationTypes lists the valid publication subtypes in menu order.
var PublicationTypes = []string{
	TypeJournalArticle,
	TypeWorkingPaper,
	TypeUnderReview,
	TypeBookChapter,
	TypeBook,
	TypeOther,
}

// RawMetadata is the transient record a source adapter emits, one per
// discovered item. Title is the only required field; a titleless record
// is unusable and must be discarded before dedup.
type RawMetadata struct {
	Title            string
	Date             string // YYYY-MM-DD or ""
	Authors          string
	Venue            string
	Excerpt          string
	URL              string
	DOI              string
	Year             int
	VolumeIssuePages string
	PubType          string      // publication subtype hint (CV sections)
	ContentType      ContentType // classification hint (profile adapter)
	Origin           Origin
}

// Links holds the external URLs attached to a publication entry.
type Links struct {
	Published   string `yaml:"published"`
	Preprint    string `yaml:"preprint"`
	Appendix    string `yaml:"appendix"`
	Replication string `yaml:"replication"`
}

// PublicationEntry is one record in publications.yml.
type PublicationEntry struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Authors          string   `yaml:"authors"`
	Year             int      `yaml:"year"`
	Venue            string   `yaml:"venue"`
	VolumeIssuePages string   `yaml:"volume_issue_pages"`
	DOI              string   `yaml:"doi"`
	Type             string   `yaml:"type"`
	Abstract         string   `yaml:"abstract"`
	Tags             []string `yaml:"tags"`
	Awards           []string `yaml:"awards"`
	Links            Links    `yaml:"links"`
}

// CommentaryEntry is the front matter of one _commentary/ file.
type CommentaryEntry struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"` // never empty; defaults to today
	Outlet  string `yaml:"outlet"`
	Link    string `yaml:"link"`
	Excerpt string `yaml:"excerpt"`
}

// MediaEntry is one record in the site_content media.press list.
type MediaEntry struct {
	Outlet string `yaml:"outlet"`
	Title  string `yaml:"title"`
	Date   string `yaml:"date"`
	URL    string `yaml:"url"`
}

// Proposal is the tagged union handed to the review loop. Exactly one
// of the entry pointers is set, matching Type.
type Proposal struct {
	Type        ContentType
	Origin      Origin
	Publication *PublicationEntry
	Commentary  *CommentaryEntry
	Media       *MediaEntry
}

// Title returns the title of whichever variant is set.
func (p Proposal) Title() string {
	switch p.Type {
	case Publications:
		return p.Publication.Title
	case Commentary:
		return p.Commentary.Title
	case Media:
		return p.Media.Title
	}
	return ""
}

// Date returns the display date of whichever variant is set.
func (p Proposal) Date() string {
	switch p.Type {
	case Publications:
		if p.Publication.Year > 0 {
			return itoa(p.Publication.Year)
		}
		return ""
	case Commentary:
		return p.Commentary.Date
	case Media:
		return p.Media.Date
	}
	return ""
}

// Outlet returns the venue or outlet of whichever variant is set.
func (p Proposal) Outlet() string {
	switch p.Type {
	case Publications:
		return p.Publication.Venue
	case Commentary:
		return p.Commentary.Outlet
	case Media:
		return p.Media.Outlet
	}
	return ""
}

// URL returns the primary link of whichever variant is set.
func (p Proposal) URL() string {
	switch p.Type {
	case Publications:
		return p.Publication.Links.Published
	case Commentary:
		return p.Commentary.Link
	case Media:
		return p.Media.URL
	}
	return ""
}
