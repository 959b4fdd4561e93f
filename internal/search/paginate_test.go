package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/search"
)

func corpusOf(n int64) []model.Job {
	jobs := make([]model.Job, 0, n)
	for i := int64(1); i <= n; i++ {
		jobs = append(jobs, model.Job{InternalID: i, Title: "Engineer", CompanyName: "Acme", Description: "x"})
	}
	return jobs
}

func TestPagination_DescendingIDOrder(t *testing.T) {
	engine := newTestEngine(t, &memStore{jobs: corpusOf(5)})

	page := searchAll(t, engine, search.Query{Page: 1, Limit: 3})
	assert.Equal(t, []int64{5, 4, 3}, ids(page.Items))

	page = searchAll(t, engine, search.Query{Page: 2, Limit: 3})
	assert.Equal(t, []int64{2, 1}, ids(page.Items))
}

func TestPagination_TotalPagesCeiling(t *testing.T) {
	engine := newTestEngine(t, &memStore{jobs: corpusOf(10)})

	cases := []struct {
		limit      int
		totalPages int
	}{
		{1, 10},
		{3, 4},
		{5, 2},
		{10, 1},
		{11, 1},
	}
	for _, c := range cases {
		page := searchAll(t, engine, search.Query{Page: 1, Limit: c.limit})
		assert.Equal(t, c.totalPages, page.TotalPages, "limit %d", c.limit)
		assert.Equal(t, 10, page.Total)
	}
}

func TestPagination_EmptyResultIsPageOneOfOne(t *testing.T) {
	engine := newTestEngine(t, &memStore{})

	page := searchAll(t, engine, search.Query{Page: 1, Limit: 20})
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestPagination_PageBeyondLastIsEmptyNotError(t *testing.T) {
	engine := newTestEngine(t, &memStore{jobs: corpusOf(5)})

	page, err := engine.Search(context.Background(), search.Query{Page: 4, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 4, page.PageNum)
}

func TestPagination_LastPartialPage(t *testing.T) {
	engine := newTestEngine(t, &memStore{jobs: corpusOf(7)})

	page := searchAll(t, engine, search.Query{Page: 3, Limit: 3})
	assert.Equal(t, []int64{1}, ids(page.Items))
	assert.Equal(t, 3, page.TotalPages)
}

func TestPagination_ItemsNeverExceedLimit(t *testing.T) {
	engine := newTestEngine(t, &memStore{jobs: corpusOf(9)})

	for pageNum := 1; pageNum <= 4; pageNum++ {
		page := searchAll(t, engine, search.Query{Page: pageNum, Limit: 4})
		assert.LessOrEqual(t, len(page.Items), 4)
	}
}
