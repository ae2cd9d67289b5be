// Package reconcile links noisy detected titles to catalog rows: coarse
// search, similarity scoring, ranked selection, and collection-membership
// annotation, run concurrently per title.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/shelfscan/internal/catalog"
)

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/vmunix/shelfscan/internal/reconcile Searcher,CollectionChecker

// DetectedTitle is one candidate game from the extraction step. BGGID is the
// extractor's guess at a catalog key; it is a hint, never trusted as a match.
type DetectedTitle struct {
	Title string `json:"title"`
	BGGID int64  `json:"bgg_id"`
}

// Reason classifies why a title did or did not match. It keeps
// "nothing scored above threshold" distinguishable from "search broke".
type Reason string

const (
	ReasonMatched      Reason = "matched"
	ReasonNoCandidates Reason = "no_candidates"
	ReasonSearchFailed Reason = "search_failed"
)

// MatchResult is the terminal output of the pipeline for one detected title.
// InCollection is only meaningful when Matched is true.
type MatchResult struct {
	Detected     DetectedTitle
	Best         *ScoredCandidate
	Matched      bool
	InCollection bool
	Reason       Reason
}

// Searcher is the catalog's coarse text-search capability.
type Searcher interface {
	SearchGames(ctx context.Context, query string, limit int) ([]*catalog.Game, error)
}

// CollectionChecker answers whether a user already owns a game.
type CollectionChecker interface {
	Exists(ctx context.Context, userID string, gameID int64) (bool, error)
}

// Options tune the reconciliation fan-out.
type Options struct {
	SearchLimit int           // rows per coarse search (default 10)
	Concurrency int           // concurrent per-title pipelines (default 8)
	ItemTimeout time.Duration // per-title deadline, degrades to unmatched (default 10s)
}

func (o Options) withDefaults() Options {
	if o.SearchLimit <= 0 {
		o.SearchLimit = 10
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 8
	}
	if o.ItemTimeout <= 0 {
		o.ItemTimeout = 10 * time.Second
	}
	return o
}

// Reconciler drives the per-title pipeline against injected capabilities.
type Reconciler struct {
	search     Searcher
	collection CollectionChecker
	opts       Options
	log        *slog.Logger
}

// New creates a Reconciler. collection may be nil when no user context
// exists; membership then degrades to "not in collection" for every result.
func New(search Searcher, collection CollectionChecker, opts Options, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		search:     search,
		collection: collection,
		opts:       opts.withDefaults(),
		log:        logger,
	}
}

// Reconcile matches every detected title against the catalog. Titles run
// concurrently; the result slice preserves input order. A failure in one
// title's pipeline degrades that result only and never fails the batch.
func (r *Reconciler) Reconcile(ctx context.Context, userID string, titles []DetectedTitle) ([]MatchResult, error) {
	if len(titles) == 0 {
		return []MatchResult{}, nil
	}

	batch := uuid.NewString()
	start := time.Now()
	r.log.Debug("reconcile started", "batch", batch, "titles", len(titles))

	results := make([]MatchResult, len(titles))

	// Plain Group, not WithContext: one title's failure must not cancel
	// its siblings.
	var g errgroup.Group
	g.SetLimit(r.opts.Concurrency)

	for i, t := range titles {
		g.Go(func() error {
			results[i] = r.reconcileOne(ctx, batch, userID, t)
			return nil
		})
	}
	_ = g.Wait()

	matched := 0
	for _, res := range results {
		if res.Matched {
			matched++
		}
	}
	r.log.Info("reconcile complete",
		"batch", batch,
		"titles", len(titles),
		"matched", matched,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return results, nil
}

func (r *Reconciler) reconcileOne(ctx context.Context, batch, userID string, t DetectedTitle) MatchResult {
	ctx, cancel := context.WithTimeout(ctx, r.opts.ItemTimeout)
	defer cancel()

	res := MatchResult{Detected: t}

	// The raw title goes to the coarse search; the index does its own
	// analysis and scoring works on the lower-cased forms.
	games, err := r.search.SearchGames(ctx, t.Title, r.opts.SearchLimit)
	if err != nil {
		r.log.Warn("coarse search failed",
			"batch", batch,
			"title", t.Title,
			"error", err,
		)
		res.Reason = ReasonSearchFailed
		return res
	}

	best := BestMatch(Rank(t.Title, games))
	if best == nil {
		res.Reason = ReasonNoCandidates
		return res
	}

	res.Best = best
	res.Matched = true
	res.Reason = ReasonMatched
	res.InCollection = r.inCollection(ctx, batch, userID, best.Game.ID)
	return res
}

// inCollection is best-effort: no user context or a lookup error both read
// as "not in collection" rather than failing the title.
func (r *Reconciler) inCollection(ctx context.Context, batch, userID string, gameID int64) bool {
	if r.collection == nil || userID == "" {
		return false
	}
	owned, err := r.collection.Exists(ctx, userID, gameID)
	if err != nil {
		r.log.Warn("membership lookup failed",
			"batch", batch,
			"game_id", gameID,
			"error", err,
		)
		return false
	}
	return owned
}
