// Package authors normalizes free-text author fields into comparable
// ASCII "First Last" strings.
package authors

import (
	"errors"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"

	"github.com/bibfix/bibfix/internal/bib"
)

// ErrNoAuthors signals an entry without a usable author field. Callers
// must treat this as "no author evidence", not as a hard failure.
var ErrNoAuthors = errors.New("no authors found")

// nameParticles stay attached to the surname when splitting
// space-separated names.
var nameParticles = map[string]bool{
	"van": true, "von": true, "der": true, "den": true, "de": true,
	"del": true, "della": true, "di": true, "da": true, "dos": true,
	"du": true, "la": true, "le": true, "ter": true, "ten": true,
}

// Canonical extracts the canonical author list from an entry.
//
// The result is an empty slice both for a missing author field and for
// an unparseable one; the error distinguishes the two so the caller can
// warn appropriately.
func Canonical(e *bib.Entry) ([]string, error) {
	if e.Author == "" {
		return nil, ErrNoAuthors
	}
	return CanonicalList(e.Author)
}

// CanonicalList normalizes a raw BibTeX author string into one
// "First Last" string per author.
func CanonicalList(raw string) ([]string, error) {
	// Truncation markers and ties are decoration, not names.
	raw = strings.ReplaceAll(raw, "and others", "")
	raw = strings.ReplaceAll(raw, "~", " ")
	raw = strings.ReplaceAll(raw, "\n", " ")

	var out []string
	for _, unit := range splitConjunction(raw) {
		unit = toASCII(unit)
		first, last, err := splitName(unit)
		if err != nil {
			return nil, err
		}
		out = append(out, strings.TrimSpace(first+" "+last))
	}
	if len(out) == 0 {
		return nil, ErrNoAuthors
	}
	return out, nil
}

// splitConjunction splits on the BibTeX "and" separator.
func splitConjunction(raw string) []string {
	var units []string
	for _, u := range strings.Split(raw, " and ") {
		u = strings.TrimSpace(u)
		if u != "" {
			units = append(units, u)
		}
	}
	return units
}

// toASCII resolves accented and special characters to a plain-ASCII
// comparable form: Unicode canonicalization first, transliteration
// second.
func toASCII(s string) string {
	s = norm.NFKC.String(s)
	s = unidecode.Unidecode(s)
	return strings.Join(strings.Fields(s), " ")
}

// splitName splits one name unit into first and last parts.
//
// Parsing is permissive: "Last, First" and "First Last" forms are both
// accepted, particles (van, von, de, ...) attach to the surname, and a
// single-word name is treated as a bare surname. Only an empty unit is
// an error.
func splitName(unit string) (first, last string, err error) {
	if unit == "" {
		return "", "", ErrNoAuthors
	}

	if idx := strings.Index(unit, ","); idx >= 0 {
		last = strings.TrimSpace(unit[:idx])
		first = strings.TrimSpace(strings.ReplaceAll(unit[idx+1:], ",", " "))
		first = strings.Join(strings.Fields(first), " ")
		if last == "" {
			return "", "", ErrNoAuthors
		}
		return first, last, nil
	}

	parts := strings.Fields(unit)
	switch len(parts) {
	case 0:
		return "", "", ErrNoAuthors
	case 1:
		return "", parts[0], nil
	}

	// Last word is the surname; preceding particles join it.
	split := len(parts) - 1
	for split > 0 && nameParticles[strings.ToLower(parts[split-1])] {
		split--
	}
	if split == 0 {
		split = len(parts) - 1
	}
	return strings.Join(parts[:split], " "), strings.Join(parts[split:], " "), nil
}
