package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Searcher is the coarse-search capability over the catalog: a bleve
// shortlist by name, hydrated from the store and ordered by popularity rank
// ascending with unranked games last. Fine-grained similarity scoring is the
// caller's concern.
type Searcher struct {
	store *Store
	index *Index
	log   *slog.Logger
}

// NewSearcher creates a searcher over the given store and index.
func NewSearcher(store *Store, index *Index, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{store: store, index: index, log: logger}
}

// SearchGames returns up to limit catalog rows matching the free-text query.
func (s *Searcher) SearchGames(ctx context.Context, query string, limit int) ([]*Game, error) {
	start := time.Now()

	ids, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	games, err := s.store.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate search results: %w", err)
	}

	// Rank ascending, unranked last; stable so text relevance breaks ties.
	sort.SliceStable(games, func(i, j int) bool {
		ri, rj := games[i].Rank, games[j].Rank
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri < *rj
		}
	})

	s.log.Debug("catalog search",
		"query", query,
		"results", len(games),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return games, nil
}
