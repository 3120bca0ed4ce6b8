package bib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nickng/bibtex"
)

// ErrParse indicates malformed BibTeX input.
var ErrParse = errors.New("parsing bibtex")

// Parse reads BibTeX text into entries, preserving order. A new parser
// is used per call so state never leaks between independent responses.
func Parse(r io.Reader) ([]*Entry, error) {
	parsed, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	entries := make([]*Entry, 0, len(parsed.Entries))
	for _, be := range parsed.Entries {
		entries = append(entries, fromBibEntry(be))
	}
	return entries, nil
}

// ParseString parses BibTeX from a string.
func ParseString(s string) ([]*Entry, error) {
	return Parse(strings.NewReader(s))
}

// Load reads a .bib file into entries.
func Load(path string) ([]*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// fromBibEntry converts a parsed entry into the internal model.
func fromBibEntry(be *bibtex.BibEntry) *Entry {
	e := &Entry{
		Type: strings.ToLower(be.Type),
		Key:  be.CiteName,
	}
	for name, value := range be.Fields {
		e.Set(strings.ToLower(name), value.String())
	}
	return e
}
