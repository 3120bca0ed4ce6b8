// Package bib defines the BibTeX entry model and file I/O.
package bib

import "sort"

// Field names the fixer inspects directly.
const (
	FieldAuthor     = "author"
	FieldTitle      = "title"
	FieldJournal    = "journal"
	FieldBooktitle  = "booktitle"
	FieldPublisher  = "publisher"
	FieldAddress    = "address"
	FieldPages      = "pages"
	FieldYear       = "year"
	FieldURL        = "url"
	FieldEprintType = "eprinttype"
	FieldTimestamp  = "timestamp"
)

// knownFields is the serialization order for the fields above.
var knownFields = []string{
	FieldAuthor,
	FieldTitle,
	FieldJournal,
	FieldBooktitle,
	FieldPublisher,
	FieldAddress,
	FieldPages,
	FieldYear,
	FieldURL,
	FieldEprintType,
	FieldTimestamp,
}

// Entry represents one bibliographic record, original or candidate.
//
// The fields the fixer reasons about are named; anything else a .bib
// file or the search service carries rides along in Extra untouched.
type Entry struct {
	Type string // BibTeX entry type: article, inproceedings, ...
	Key  string // citation key, never overwritten by a replacement

	Author     string
	Title      string
	Journal    string
	Booktitle  string
	Publisher  string
	Address    string
	Pages      string
	Year       string
	URL        string
	EprintType string
	Timestamp  string // search-service metadata, candidates only

	Extra map[string]string
}

// Get returns the value of a field by its BibTeX name.
func (e *Entry) Get(field string) string {
	switch field {
	case FieldAuthor:
		return e.Author
	case FieldTitle:
		return e.Title
	case FieldJournal:
		return e.Journal
	case FieldBooktitle:
		return e.Booktitle
	case FieldPublisher:
		return e.Publisher
	case FieldAddress:
		return e.Address
	case FieldPages:
		return e.Pages
	case FieldYear:
		return e.Year
	case FieldURL:
		return e.URL
	case FieldEprintType:
		return e.EprintType
	case FieldTimestamp:
		return e.Timestamp
	}
	return e.Extra[field]
}

// Set stores a field value by its BibTeX name.
func (e *Entry) Set(field, value string) {
	switch field {
	case FieldAuthor:
		e.Author = value
	case FieldTitle:
		e.Title = value
	case FieldJournal:
		e.Journal = value
	case FieldBooktitle:
		e.Booktitle = value
	case FieldPublisher:
		e.Publisher = value
	case FieldAddress:
		e.Address = value
	case FieldPages:
		e.Pages = value
	case FieldYear:
		e.Year = value
	case FieldURL:
		e.URL = value
	case FieldEprintType:
		e.EprintType = value
	case FieldTimestamp:
		e.Timestamp = value
	default:
		if e.Extra == nil {
			e.Extra = make(map[string]string)
		}
		e.Extra[field] = value
	}
}

// Has reports whether a field is populated.
func (e *Entry) Has(field string) bool {
	return e.Get(field) != ""
}

// Delete removes a field.
func (e *Entry) Delete(field string) {
	switch field {
	case FieldAuthor, FieldTitle, FieldJournal, FieldBooktitle,
		FieldPublisher, FieldAddress, FieldPages, FieldYear,
		FieldURL, FieldEprintType, FieldTimestamp:
		e.Set(field, "")
	default:
		delete(e.Extra, field)
	}
}

// FieldNames returns the populated field names in serialization order:
// known fields first, then extras alphabetically.
func (e *Entry) FieldNames() []string {
	var names []string
	for _, f := range knownFields {
		if e.Get(f) != "" {
			names = append(names, f)
		}
	}
	extras := make([]string, 0, len(e.Extra))
	for k := range e.Extra {
		if e.Extra[k] != "" {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return append(names, extras...)
}

// FieldCount returns the number of populated fields. Richer entries
// win ranking ties.
func (e *Entry) FieldCount() int {
	return len(e.FieldNames())
}

// Clone returns an independent copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.Extra != nil {
		c.Extra = make(map[string]string, len(e.Extra))
		for k, v := range e.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}
