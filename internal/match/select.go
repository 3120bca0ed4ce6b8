package match

import (
	"fmt"

	"github.com/bibfix/bibfix/internal/authors"
	"github.com/bibfix/bibfix/internal/bib"
	"github.com/bibfix/bibfix/internal/titles"
)

// Decision is the output of candidate selection: either a specific
// replacement entry or an explicit keep-original signal.
type Decision struct {
	// Entry is the selected replacement, nil to keep the original.
	Entry *bib.Entry
	// Outcome classifies the decision for reporting.
	Outcome Outcome
}

// Selector filters and ranks search candidates against an original
// entry. Soft failures (unparseable candidate authors) surface through
// the Sink, never as errors.
type Selector struct {
	sink Sink
}

// NewSelector creates a Selector reporting to the given sink. A nil
// sink discards events.
func NewSelector(sink Sink) *Selector {
	if sink == nil {
		sink = NopSink{}
	}
	return &Selector{sink: sink}
}

// Select decides which candidate, if any, should replace the original.
//
// Candidates are filtered to those with an author field, a matching
// title comparison key, and at least one author in common with the
// original. The survivors are partitioned into preprint and published,
// and replaceArxiv governs the preference between the two partitions:
// it never hard-filters, so with the flag off a published original can
// still be replaced by the overall best candidate.
func (s *Selector) Select(candidates []*bib.Entry, orig *bib.Entry, replaceArxiv bool) Decision {
	if len(candidates) == 0 {
		return Decision{}
	}

	origKey := titles.ComparisonKey(orig.Title)
	origAuthors, err := authors.Canonical(orig)
	if err != nil {
		s.sink.Warning(fmt.Sprintf("cannot parse authors: %s", orig.Author))
	}

	var matching []*bib.Entry
	for _, c := range candidates {
		// No author field disqualifies a candidate outright.
		if c.Author == "" {
			continue
		}
		if titles.ComparisonKey(c.Title) != origKey {
			continue
		}
		candAuthors, err := authors.Canonical(c)
		if err != nil {
			s.sink.Warning(fmt.Sprintf("cannot parse authors: %s", c.Author))
			continue
		}
		if !intersects(origAuthors, candAuthors) {
			continue
		}
		matching = append(matching, c)
	}

	var preprints, published []*bib.Entry
	for _, c := range matching {
		if IsPreprint(c) {
			preprints = append(preprints, c)
		} else {
			published = append(published, c)
		}
	}

	bestAll := BestOf(matching, orig)
	bestPublished := BestOf(published, orig)
	bestPreprint := BestOf(preprints, orig)

	// A published version exists for this preprint, but the caller
	// chose not to prefer it. Notify, decision unchanged.
	if !replaceArxiv && IsPreprint(orig) && bestPublished != nil {
		s.sink.ArxivKept(orig)
	}

	var chosen *bib.Entry
	if replaceArxiv {
		chosen = bestPublished
	} else {
		chosen = bestPreprint
	}
	if chosen == nil {
		chosen = bestAll
	}
	if chosen == nil {
		return Decision{}
	}

	return Decision{Entry: chosen, Outcome: s.classify(chosen, orig, replaceArxiv)}
}

// classify labels an adopted replacement for reporting.
func (s *Selector) classify(chosen, orig *bib.Entry, replaceArxiv bool) Outcome {
	if SamePublication(chosen, orig) {
		return OutcomeEquivalent
	}
	if replaceArxiv && IsPreprint(orig) && !IsPreprint(chosen) {
		return OutcomeArxivUpgrade
	}
	return OutcomeUpdate
}

// intersects reports whether the two author sets share a member. Order
// is irrelevant to matching.
func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if set[s] {
			return true
		}
	}
	return false
}
