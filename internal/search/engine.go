// Package search implements compound boolean search over the job corpus.
//
// The storage substrate only answers single-predicate substring lookups, so
// all boolean combination of terms is evaluated here as set algebra over
// document IDs. The engine is transport-agnostic and holds no mutable state
// between calls: every Search is a pure function of its query and a
// point-in-time read of the store.
package search

import (
	"context"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
)

// DefaultLimit is the page size callers fall back to when the client did not
// ask for one. The engine itself only rejects non-positive limits.
const DefaultLimit = 20

// Query is the transport-agnostic request shape. Terms are raw tokens in the
// query mini-language; Page is 1-based and clamped to >= 1 by the caller.
type Query struct {
	Facets Facets
	Terms  []string
	Page   int
	Limit  int
}

// Engine evaluates queries against the corpus through a Store.
type Engine struct {
	store  Store
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine over the given store.
func NewEngine(store Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	e := &Engine{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Search parses the query's terms, folds them over the facet-filtered
// universe, and returns the requested page in descending internal-ID order.
// Returns ErrInvalidLimit for a non-positive limit and a wrapped
// ErrStoreUnavailable if any substrate call fails mid-evaluation.
func (e *Engine) Search(ctx context.Context, q Query) (*Page, error) {
	if q.Limit <= 0 {
		return nil, ErrInvalidLimit
	}

	terms := Parse(q.Terms)

	candidates, err := e.evaluate(ctx, q.Facets, terms)
	if err != nil {
		return nil, err
	}

	ids := sortedIDsDesc(candidates)
	page := newPage(ids, q.Page, q.Limit)

	if len(page.pageIDs) > 0 {
		items, err := e.store.GetByIDs(ctx, page.pageIDs)
		if err != nil {
			return nil, wrapUnavailable("materialize page", err)
		}
		page.Items = items
	}

	e.logger.Debug("search evaluated",
		"terms", len(terms),
		"jobClass", q.Facets.JobClass,
		"source", q.Facets.Source,
		"total", page.Total,
		"page", page.PageNum,
	)
	return page, nil
}

// Get returns a single document by internal ID. A missing document is
// ErrJobNotFound, distinct from an empty search result.
func (e *Engine) Get(ctx context.Context, id int64) (*model.Job, error) {
	return e.store.GetByID(ctx, id)
}

// evaluate computes the unordered set of document IDs satisfying the facets
// and every term. The universe is computed once; each term then derives a new
// candidate set from the previous one (include intersects, exclude subtracts),
// so a failed step never leaves a half-applied result behind.
func (e *Engine) evaluate(ctx context.Context, facets Facets, terms []Term) (mapset.Set[int64], error) {
	universe, err := e.store.FindAll(ctx, facets)
	if err != nil {
		return nil, wrapUnavailable("load universe", err)
	}

	candidates := mapset.NewThreadUnsafeSet[int64]()
	for _, job := range universe {
		candidates.Add(job.InternalID)
	}

	for _, term := range terms {
		// Empty intersected or subtracted by anything stays empty.
		if candidates.Cardinality() == 0 {
			break
		}

		matched, err := e.matchingIDs(ctx, facets, term)
		if err != nil {
			return nil, err
		}

		if term.Mode == ModeExclude {
			candidates = candidates.Difference(matched)
		} else {
			candidates = candidates.Intersect(matched)
		}
	}

	return candidates, nil
}
