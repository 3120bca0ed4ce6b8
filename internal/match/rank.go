package match

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"github.com/bibfix/bibfix/internal/bib"
)

// rankKey is the composite sort key for candidate ranking: submission
// timestamp, year, field richness, citation key, each breaking ties for
// the previous.
type rankKey struct {
	entry     *bib.Entry
	timestamp time.Time
	year      string
	fields    int
	key       string
}

func makeRankKey(e *bib.Entry) rankKey {
	k := rankKey{
		entry:  e,
		year:   e.Year,
		fields: e.FieldCount(),
		key:    e.Key,
	}
	if e.Timestamp != "" {
		// Unparseable timestamps rank as the zero time, so they
		// lose ties instead of aborting ranking.
		if t, err := dateparse.ParseAny(e.Timestamp); err == nil {
			k.timestamp = t
		}
	}
	return k
}

// less orders rank keys ascending: older, then lower year, then fewer
// fields, then smaller citation key.
func (k rankKey) less(o rankKey) bool {
	if !k.timestamp.Equal(o.timestamp) {
		return k.timestamp.Before(o.timestamp)
	}
	if k.year != o.year {
		return k.year < o.year
	}
	if k.fields != o.fields {
		return k.fields < o.fields
	}
	return k.key < o.key
}

// BestOf picks the single best candidate for the original entry.
//
// Candidates are ranked newest/richest first; the first one that is the
// same publication as the original wins. When none is equivalent, the
// newest/richest candidate is returned anyway: the caller has already
// restricted candidates to title+author matches, so the top of the
// ranking is the most plausible replacement available.
func BestOf(candidates []*bib.Entry, orig *bib.Entry) *bib.Entry {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	ranked := make([]rankKey, len(candidates))
	for i, c := range candidates {
		ranked[i] = makeRankKey(c)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[j].less(ranked[i]) // descending
	})

	for _, r := range ranked {
		if SamePublication(r.entry, orig) {
			return r.entry
		}
	}
	return ranked[0].entry
}
