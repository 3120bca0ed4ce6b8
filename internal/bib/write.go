package bib

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nickng/bibtex"
)

// WriteOptions controls output serialization.
type WriteOptions struct {
	// SortBy lists field names used as sort keys, applied in order.
	// "ID" refers to the citation key. Empty keeps input order.
	SortBy []string
	// Pretty enables indented, value-aligned formatting.
	Pretty bool
}

// Render serializes entries to BibTeX text.
func Render(entries []*Entry, opts WriteOptions) string {
	ordered := entries
	if len(opts.SortBy) > 0 {
		ordered = make([]*Entry, len(entries))
		copy(ordered, entries)
		sortEntries(ordered, opts.SortBy)
	}

	out := bibtex.NewBibTex()
	for _, e := range ordered {
		be := bibtex.NewBibEntry(e.Type, e.Key)
		for _, name := range e.FieldNames() {
			be.AddField(name, bibtex.NewBibConst(e.Get(name)))
		}
		out.AddEntry(be)
	}

	if opts.Pretty {
		return out.PrettyString()
	}
	return out.String()
}

// Save writes entries to a .bib file, creating parent directories.
func Save(path string, entries []*Entry, opts WriteOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(entries, opts)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// sortEntries sorts stably by the given field names in order of
// priority. "ID" and "ENTRYTYPE" are accepted as aliases for the
// citation key and entry type.
func sortEntries(entries []*Entry, keys []string) {
	sort.SliceStable(entries, func(i, j int) bool {
		for _, key := range keys {
			a, b := sortValue(entries[i], key), sortValue(entries[j], key)
			if a != b {
				return a < b
			}
		}
		return false
	})
}

func sortValue(e *Entry, key string) string {
	switch key {
	case "ID":
		return e.Key
	case "ENTRYTYPE":
		return e.Type
	}
	return e.Get(strings.ToLower(key))
}
