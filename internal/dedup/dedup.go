// Package dedup filters scan proposals against each other and against
// the already-persisted corpus. It performs no I/O; callers load the
// corpus and snooze sets and persist any snooze updates themselves.
package dedup

import (
	"github.com/jatucker/sitescan/internal/meta"
	"github.com/jatucker/sitescan/internal/proposal"
)

// TitleSet is a membership set of normalized titles.
type TitleSet map[string]bool

// NewTitleSet builds a TitleSet from raw titles, normalizing each.
func NewTitleSet(titles ...string) TitleSet {
	s := make(TitleSet, len(titles))
	for _, t := range titles {
		if key := meta.NormalizeTitle(t); key != "" {
			s[key] = true
		}
	}
	return s
}

// Add inserts a normalized title.
func (s TitleSet) Add(title string) {
	if key := meta.NormalizeTitle(title); key != "" {
		s[key] = true
	}
}

// Contains reports whether the normalized form of title is present.
func (s TitleSet) Contains(title string) bool {
	return s[meta.NormalizeTitle(title)]
}

// Corpus holds the existing-title sets for each store. The partitions
// are distinct on purpose: a title already persisted as a publication
// does not block the same title being proposed as commentary.
type Corpus map[proposal.ContentType]TitleSet

// Filter applies the dedup cascade to candidates grouped by content
// type, with each group already ordered by adapter priority
// (higher-trust scanners first):
//
//  1. cross-adapter merge — one seen-set across all content types;
//     the first occurrence of a normalized title wins, regardless of
//     how each adapter classified the item;
//  2. existing-corpus filter — drop candidates already persisted in
//     the store matching their own content type;
//  3. snooze filter — drop candidates the operator marked "skip
//     always" in an earlier run.
//
// Survivors keep their original relative order. Candidates with an
// empty normalized title are unusable and dropped.
func Filter(candidates map[proposal.ContentType][]proposal.Proposal, existing Corpus, snooze TitleSet) map[proposal.ContentType][]proposal.Proposal {
	seen := make(TitleSet)
	out := make(map[proposal.ContentType][]proposal.Proposal, len(candidates))

	for _, ct := range proposal.ContentTypes {
		kept := []proposal.Proposal{}
		for _, cand := range candidates[ct] {
			key := meta.NormalizeTitle(cand.Title())
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			if existing[ct][key] {
				continue
			}
			if snooze[key] {
				continue
			}
			kept = append(kept, cand)
		}
		out[ct] = kept
	}
	return out
}
