// Package titles provides title comparison keys, capitalization
// heuristics, and BibTeX casing protection.
package titles

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// smallWords stay lowercase inside a title unless first or last.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "nor": true,
	"as": true, "at": true, "by": true, "for": true, "in": true,
	"of": true, "on": true, "per": true, "to": true, "via": true,
	"vs": true, "with": true,
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// ComparisonKey reduces a title to a casing- and punctuation-
// insensitive key. Two titles name the same publication iff their keys
// are byte-equal.
func ComparisonKey(title string) string {
	var b strings.Builder
	for _, r := range title {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		} else if r >= 'A' && r <= 'Z' {
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// IsTitlecased reports whether a title already looks properly
// capitalized. Heuristic: for up to 2 words all must start uppercase,
// for 3-4 words at least 2, for 5+ words at least 3.
func IsTitlecased(title string) bool {
	words := strings.Fields(title)
	upper := 0
	for _, w := range words {
		if unicode.IsUpper([]rune(w)[0]) {
			upper++
		}
	}

	switch {
	case len(words) <= 2:
		return upper == len(words)
	case len(words) <= 4:
		return upper >= 2
	default:
		return upper >= 3
	}
}

// Recapitalize applies best-effort title casing: small words are
// lowercased except in first or last position, words that already carry
// capitals beyond the first letter are left alone (acronyms, mixed
// case), everything else gets an initial capital.
func Recapitalize(title string) string {
	words := strings.Fields(title)
	for i, w := range words {
		if hasInteriorUpper(w) {
			continue
		}
		lower := strings.ToLower(w)
		if smallWords[strings.TrimRight(lower, ".,:;!?")] && i > 0 && i < len(words)-1 {
			words[i] = lower
			continue
		}
		words[i] = titleCaser.String(lower)
	}
	return strings.Join(words, " ")
}

func hasInteriorUpper(word string) bool {
	for i, r := range []rune(word) {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Protect wraps capital letters in braces so BibTeX styles cannot
// lowercase them.
//
// Each qualifying capital is wrapped individually, preserving
// mixed-case acronyms letter by letter. The one exception: in a
// hyphenated word whose first part is longer than one letter, a capital
// immediately after a hyphen with an all-lowercase tail is ordinary
// word-initial capitalization and stays unwrapped ("Spatially-Varying"),
// while "Mip-NeRF" and "U-Net" keep their protection.
func Protect(title string) string {
	words := strings.Fields(title)
	for wi, word := range words {
		if strings.Contains(word, "{") {
			// already (presumably) protected
			continue
		}

		runes := []rune(word)
		parts := strings.Split(word, "-")
		var b strings.Builder

		for i, r := range runes {
			protect := true
			if len(parts) > 1 && len([]rune(parts[0])) > 1 &&
				i > 0 && runes[i-1] == '-' && allLower(runes[i+1:]) {
				protect = false
			}

			if unicode.IsUpper(r) && protect {
				b.WriteByte('{')
				b.WriteRune(r)
				b.WriteByte('}')
			} else {
				b.WriteRune(r)
			}
		}
		words[wi] = b.String()
	}
	return strings.Join(words, " ")
}

// allLower reports whether every rune is a lowercase letter.
func allLower(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
