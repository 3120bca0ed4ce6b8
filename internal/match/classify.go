// Package match decides which candidate record, if any, should replace
// an original bibliography entry.
package match

import (
	"strings"

	"github.com/bibfix/bibfix/internal/bib"
)

// IsPreprint reports whether an entry describes an unreviewed
// self-archived manuscript. Pure field inspection: "arxiv" anywhere in
// journal, eprinttype or url, or a CoRR journal.
func IsPreprint(e *bib.Entry) bool {
	journal := strings.ToLower(e.Journal)
	eprint := strings.ToLower(e.EprintType)
	url := strings.ToLower(e.URL)

	if strings.Contains(journal+eprint+url, "arxiv") {
		return true
	}
	return strings.Contains(journal, "corr")
}

// SamePublication reports whether two records describe the same
// publication instance.
//
// Matching year plus matching pages is conclusive. Failing that, a
// matching year plus venue containment (either direction) is accepted,
// since venue strings from different sources vary in prefixes and
// suffixes. Everything else is not equivalent.
func SamePublication(a, b *bib.Entry) bool {
	yearMatch := a.Year != "" && b.Year != "" && a.Year == b.Year
	pagesMatch := a.Pages != "" && b.Pages != "" && a.Pages == b.Pages

	if yearMatch && pagesMatch {
		return true
	}

	venueMatch := a.Booktitle != "" && b.Booktitle != "" &&
		(strings.Contains(a.Booktitle, b.Booktitle) || strings.Contains(b.Booktitle, a.Booktitle))

	return yearMatch && venueMatch
}
