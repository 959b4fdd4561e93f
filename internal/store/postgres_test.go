package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/search"
)

func TestFieldColumns_CoverAllSearchableFields(t *testing.T) {
	for _, field := range []search.Field{
		search.FieldTitle,
		search.FieldDescription,
		search.FieldCompanyName,
	} {
		column, ok := fieldColumns[field]
		assert.True(t, ok, "field %q has no column mapping", field)
		assert.NotEmpty(t, column)
	}
}

func TestFindBySubstring_RejectsUnknownField(t *testing.T) {
	s := New(nil)

	// The whitelist check happens before any query is issued, so a nil pool
	// is safe here.
	_, err := s.FindBySubstring(context.Background(), search.Field("salary_description"), "x", search.Facets{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported search field")
}

func TestListFacetValues_RejectsUnknownTable(t *testing.T) {
	s := New(nil)

	_, err := s.listFacetValues(context.Background(), "users; DROP TABLE jobs")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported facet table")
}
