package search_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/search"
)

// memStore is an in-memory substrate with the same observable semantics as
// the Postgres adapter: availability filtering, exact facet equality, and
// case-insensitive single-field containment.
type memStore struct {
	jobs []model.Job

	substringCalls atomic.Int64
}

func (m *memStore) visible(j model.Job, f search.Facets) bool {
	if j.Description == "" || j.Description == "N/A" {
		return false
	}
	if f.JobClass != "" && j.JobClass != f.JobClass {
		return false
	}
	if f.Source != "" && j.Source != f.Source {
		return false
	}
	return true
}

func (m *memStore) FindAll(ctx context.Context, f search.Facets) ([]model.Job, error) {
	out := make([]model.Job, 0)
	for _, j := range m.jobs {
		if m.visible(j, f) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memStore) FindBySubstring(ctx context.Context, field search.Field, text string, f search.Facets) ([]model.Job, error) {
	m.substringCalls.Add(1)

	out := make([]model.Job, 0)
	for _, j := range m.jobs {
		if !m.visible(j, f) {
			continue
		}
		var value string
		switch field {
		case search.FieldTitle:
			value = j.Title
		case search.FieldDescription:
			value = j.Description
		case search.FieldCompanyName:
			value = j.CompanyName
		default:
			return nil, errors.New("unsupported field")
		}
		if strings.Contains(strings.ToLower(value), strings.ToLower(text)) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memStore) GetByIDs(ctx context.Context, ids []int64) ([]model.Job, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := make([]model.Job, 0, len(ids))
	for _, j := range m.jobs {
		if want[j.InternalID] {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].InternalID > out[k].InternalID })
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	for _, j := range m.jobs {
		if j.InternalID == id {
			return &j, nil
		}
	}
	return nil, search.ErrJobNotFound
}

// failingStore errors on every call, standing in for an unreachable substrate.
type failingStore struct{}

var errDown = errors.New("connection refused")

func (failingStore) FindAll(context.Context, search.Facets) ([]model.Job, error) {
	return nil, errDown
}

func (failingStore) FindBySubstring(context.Context, search.Field, string, search.Facets) ([]model.Job, error) {
	return nil, errDown
}

func (failingStore) GetByIDs(context.Context, []int64) ([]model.Job, error) {
	return nil, errDown
}

func (failingStore) GetByID(context.Context, int64) (*model.Job, error) {
	return nil, errDown
}

// matchFailStore lists fine but fails every substring lookup, so term
// evaluation (not universe loading) is what breaks.
type matchFailStore struct{ memStore }

func (s *matchFailStore) FindBySubstring(context.Context, search.Field, string, search.Facets) ([]model.Job, error) {
	return nil, errDown
}
