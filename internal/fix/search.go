package fix

import (
	"context"

	"github.com/bibfix/bibfix/internal/bib"
	"github.com/bibfix/bibfix/internal/cache"
	"github.com/bibfix/bibfix/internal/dblp"
)

// Searcher fetches candidate records for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]*bib.Entry, error)
}

// CachedSearcher consults the response cache before hitting the search
// service. A nil cache degrades to plain client searches.
type CachedSearcher struct {
	Client *dblp.Client
	Cache  *cache.Store
}

func (s *CachedSearcher) Search(ctx context.Context, query string) ([]*bib.Entry, error) {
	if s.Cache == nil {
		return s.Client.Search(ctx, query)
	}

	if body, ok, err := s.Cache.Get(query); err == nil && ok {
		return bib.ParseString(body)
	}

	body, err := s.Client.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	// A failed cache write costs a repeat fetch later, nothing more.
	_ = s.Cache.Put(query, body)
	return bib.ParseString(body)
}
