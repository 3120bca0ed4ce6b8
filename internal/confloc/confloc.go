// Package confloc splits proceedings names into a cleaned name and a
// conference address using date/place recognition.
package confloc

import (
	"regexp"
	"sort"
	"strings"
)

// Span is one recognized entity within a proceedings name. Offsets are
// byte positions into the analyzed string.
type Span struct {
	Label string // DATE, GPE, ORDINAL, ...
	Start int
	End   int
}

// Recognizer is the external named-entity collaborator.
type Recognizer interface {
	Entities(text string) ([]Span, error)
}

var dateRe = regexp.MustCompile(`(?i)([1-3]?[0-9](?:st|rd|nd|th)?((?: *[-–] *)[1-3]?[0-9](?:st|rd|nd|th)?)?) +` +
	`(january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec),? +[12][90][0-9]{2}`)

var suffixRe = regexp.MustCompile(`(?i)(?:(?:volume|and|long|demo|demonstration|short|papers|selected|proceedings|part| [0-9]|[IVX]{1,4}|[,;:\(\)]) *)+$`)

// defaultPlaces lists venue cities the recognizer tends to miss.
var defaultPlaces = []string{
	"Copenhagen",
	"Groningen",
	"Heraklion",
	"Hersonissos",
	"Online Event",
	"Online",
	"Pisa",
	"Punta Cana",
	"Santa Fe",
	"Schloss Dagstuhl",
	"Tilburg University",
	"Virtual Event",
}

// Extractor applies date/place extraction to proceedings names.
type Extractor struct {
	rec     Recognizer
	placeRe *regexp.Regexp
}

// NewExtractor builds an Extractor around a recognizer. extraPlaces
// extends the built-in gazetteer.
func NewExtractor(rec Recognizer, extraPlaces ...string) *Extractor {
	places := make([]string, 0, len(defaultPlaces)+len(extraPlaces))
	for _, p := range append(append([]string{}, defaultPlaces...), extraPlaces...) {
		places = append(places, regexp.QuoteMeta(p))
	}
	return &Extractor{
		rec:     rec,
		placeRe: regexp.MustCompile(`(?i)\b(` + strings.Join(places, "|") + `)\b`),
	}
}

// Extract splits a proceedings name into (cleaned name, address).
//
// A trailing enumeration suffix is set aside first, then entities are
// collected from the recognizer, the date regex and the gazetteer.
// Proceedings names typically end with the location and the date, so
// the scan runs backward: a contiguous trailing run of dates (gaps of
// up to 3 characters merge) is captured first, then a contiguous
// trailing run of places before it. A place run becomes the address and
// is excised; a date-only run is excised without an address.
func (x *Extractor) Extract(booktitle string) (name, address string, err error) {
	procTitle := strings.ReplaceAll(booktitle, "\n", " ")

	suffix := ""
	if loc := suffixRe.FindStringIndex(procTitle); loc != nil {
		suffix = procTitle[loc[0]:]
		procTitle = strings.TrimRight(procTitle[:loc[0]], ",; ")
	}

	ents, err := x.rec.Entities(procTitle)
	if err != nil {
		return booktitle, "", err
	}

	// Dates and places the recognizer missed.
	for _, loc := range dateRe.FindAllStringIndex(procTitle, -1) {
		ents = append(ents, Span{Label: "DATE", Start: loc[0], End: loc[1]})
	}
	for _, loc := range x.placeRe.FindAllStringIndex(procTitle, -1) {
		ents = append(ents, Span{Label: "GPE", Start: loc[0], End: loc[1]})
	}

	// Numbers would masquerade as dates.
	filtered := ents[:0]
	for _, e := range ents {
		if e.Label != "ORDINAL" && e.Label != "CARDINAL" {
			filtered = append(filtered, e)
		}
	}
	ents = filtered

	sort.Slice(ents, func(i, j int) bool { return ents[i].Start < ents[j].Start })

	var dates, places []Span
	for len(ents) > 0 && last(ents).Label == "DATE" &&
		(len(dates) == 0 || last(ents).End+3 >= dates[0].Start) {
		dates = append([]Span{last(ents)}, dates...)
		ents = ents[:len(ents)-1]
	}
	for len(ents) > 0 && last(ents).Label == "GPE" &&
		(len(places) == 0 || last(ents).End+3 >= places[0].Start) {
		places = append([]Span{last(ents)}, places...)
		ents = ents[:len(ents)-1]
	}

	switch {
	case len(places) > 0:
		address = procTitle[places[0].Start:last(places).End]
		name = strings.TrimRight(procTitle[:places[0].Start], ",; ") + suffix
	case len(dates) > 0:
		name = strings.TrimRight(procTitle[:dates[0].Start], ",; ") + suffix
	default:
		name = booktitle
	}
	return name, address, nil
}

func last(spans []Span) Span {
	return spans[len(spans)-1]
}
