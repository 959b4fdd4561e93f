package search

import (
	"context"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
)

// Field names a searchable document attribute. The store maps it onto its
// own column/key space; the engine never builds raw predicates itself.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldCompanyName Field = "company_name"
)

// searchFields is the fixed set of fields fuzzy terms are matched against.
var searchFields = []Field{FieldTitle, FieldDescription, FieldCompanyName}

// Facets restricts the search universe by exact attribute equality before
// any term is evaluated. A zero value on a dimension means no restriction.
type Facets struct {
	JobClass string
	Source   string
}

// Store is the minimal substrate contract the engine requires. It only
// supports single-predicate substring lookups: all boolean combination
// happens in the engine. Implementations must exclude documents whose
// description is missing or carries the "N/A" sentinel from every listing.
type Store interface {
	// FindAll returns every available document matching the facets,
	// in no particular order.
	FindAll(ctx context.Context, facets Facets) ([]model.Job, error)

	// FindBySubstring returns the available documents whose field
	// case-insensitively contains text, restricted by the facets.
	FindBySubstring(ctx context.Context, field Field, text string, facets Facets) ([]model.Job, error)

	// GetByIDs returns the documents with the given internal IDs, ordered
	// by internal ID descending. Callers keep the ID list small (at most
	// one page); the substrate rejects oversized parameter lists.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Job, error)

	// GetByID returns one document or ErrJobNotFound.
	GetByID(ctx context.Context, id int64) (*model.Job, error)
}
