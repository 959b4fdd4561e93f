package search

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
)

// Page is one slice of a search result, plus the counts the UI needs to
// render pagination controls.
type Page struct {
	Items      []model.Job `json:"items"`
	Total      int         `json:"total"`
	PageNum    int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`

	// pageIDs is the descending ID slice for this page, kept so the engine
	// can materialize documents after slicing.
	pageIDs []int64
}

// sortedIDsDesc flattens a candidate set into canonical display order:
// internal ID descending, newest first. Sorting happens exactly once, after
// all set algebra.
func sortedIDsDesc(candidates mapset.Set[int64]) []int64 {
	ids := candidates.ToSlice()
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

// newPage slices the ordered ID list. A page beyond the last (or below 1,
// which callers are expected to clamp away) yields empty items with the
// totals still correct; an empty result is reported as page N of 1.
func newPage(ids []int64, page, limit int) *Page {
	total := len(ids)

	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	p := &Page{
		Items:      []model.Job{},
		Total:      total,
		PageNum:    page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	skip := (page - 1) * limit
	if skip < 0 || skip >= total {
		return p
	}

	end := skip + limit
	if end > total {
		end = total
	}
	p.pageIDs = ids[skip:end]
	return p
}
