package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
)

// matchingIDs computes the set of document IDs satisfying a single term,
// ignoring the current candidate set. The substrate rejects queries carrying
// very large ID lists, so the matcher always re-queries with only the term's
// own predicate and leaves the intersection to the evaluator.
func (e *Engine) matchingIDs(ctx context.Context, facets Facets, term Term) (mapset.Set[int64], error) {
	if term.Kind == MatchExact {
		return e.exactMatchingIDs(ctx, facets, term)
	}
	return e.fuzzyMatchingIDs(ctx, facets, term)
}

// fuzzyMatchingIDs unions substring lookups across every searchable field and
// every OR-group alternative. The lookups are independent read-only substrate
// calls, so they are fanned out concurrently; the first failure cancels the
// rest and aborts the match.
func (e *Engine) fuzzyMatchingIDs(ctx context.Context, facets Facets, term Term) (mapset.Set[int64], error) {
	matched := mapset.NewThreadUnsafeSet[int64]()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, field := range searchFields {
		field := field
		for _, alt := range term.alternatives() {
			alt := alt
			g.Go(func() error {
				jobs, err := e.store.FindBySubstring(ctx, field, alt, facets)
				if err != nil {
					return wrapUnavailable(fmt.Sprintf("%s lookup for %q", field, alt), err)
				}
				mu.Lock()
				for _, job := range jobs {
					matched.Add(job.InternalID)
				}
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return matched, nil
}

// exactMatchingIDs materializes the facet-filtered corpus and tests literal,
// case-sensitive containment in-process. The substrate's substring primitive
// case-folds and matches one field at a time, so it cannot express literal
// containment over the combined text; scanning here keeps the query shape
// bounded instead.
func (e *Engine) exactMatchingIDs(ctx context.Context, facets Facets, term Term) (mapset.Set[int64], error) {
	jobs, err := e.store.FindAll(ctx, facets)
	if err != nil {
		return nil, wrapUnavailable("materialize for exact term", err)
	}

	matched := mapset.NewThreadUnsafeSet[int64]()
	for _, job := range jobs {
		if strings.Contains(combinedText(job), term.Text) {
			matched.Add(job.InternalID)
		}
	}
	return matched, nil
}

// combinedText joins the searchable fields with single spaces; an exact term
// can straddle a field boundary only across that separator.
func combinedText(job model.Job) string {
	return job.Title + " " + job.CompanyName + " " + job.Description
}
