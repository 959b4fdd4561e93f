// Package store implements the search substrate over PostgreSQL.
//
// The substrate deliberately exposes only single-predicate lookups: listing,
// one-field ILIKE containment, and small-batch ID materialization. Boolean
// combination of predicates lives in the search engine, so a future backend
// with a real boolean query language can replace this package without
// touching the engine.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/search"
)

// jobColumns is the scan list shared by every jobs query. Most columns are
// nullable in the schema (scrapers fill what they can), hence the COALESCEs.
const jobColumns = `
	j.internal_id, COALESCE(j.id, ''), COALESCE(j.title, ''),
	COALESCE(j.description, ''), COALESCE(j.company_name, ''),
	COALESCE(j.location, ''), COALESCE(j.work_type, ''),
	COALESCE(j.salary_description, ''), COALESCE(j.date_posted, ''),
	COALESCE(j.date_scraped, ''), COALESCE(j.source, ''),
	COALESCE(j.other, ''), COALESCE(j.remark, ''),
	COALESCE(j.job_class, ''), COALESCE(j.job_subclass, '')`

// available excludes rows with no usable description. "N/A" is the sentinel
// the scrapers write when a posting's body could not be fetched; such rows
// never appear in any search universe.
const available = `
	j.description IS NOT NULL AND j.description <> '' AND j.description <> 'N/A'`

// facetPredicate matches $1/$2 as job class and source filters; an empty
// string means no restriction on that dimension. Equality is exact.
const facetPredicate = `
	AND ($1 = '' OR j.job_class = $1)
	AND ($2 = '' OR j.source = $2)`

// fieldColumns whitelists the searchable fields. Substring lookups refuse
// anything else rather than interpolate a column name.
var fieldColumns = map[search.Field]string{
	search.FieldTitle:       "j.title",
	search.FieldDescription: "j.description",
	search.FieldCompanyName: "j.company_name",
}

// Store answers substrate queries from a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store backed by pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FindAll returns every available job matching the facets, unordered.
func (s *Store) FindAll(ctx context.Context, facets search.Facets) ([]model.Job, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT`+jobColumns+`
		 FROM jobs j
		 WHERE`+available+facetPredicate,
		facets.JobClass, facets.Source,
	)
	if err != nil {
		return nil, fmt.Errorf("findAll query: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// FindBySubstring returns the available jobs whose field case-insensitively
// contains text, restricted by the facets.
func (s *Store) FindBySubstring(ctx context.Context, field search.Field, text string, facets search.Facets) ([]model.Job, error) {
	column, ok := fieldColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported search field %q", field)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT`+jobColumns+`
		 FROM jobs j
		 WHERE`+available+facetPredicate+`
		 AND `+column+` ILIKE '%' || $3 || '%'`,
		facets.JobClass, facets.Source, text,
	)
	if err != nil {
		return nil, fmt.Errorf("findBySubstring query: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetByIDs returns the jobs with the given internal IDs, newest first.
// Callers pass at most a page worth of IDs.
func (s *Store) GetByIDs(ctx context.Context, ids []int64) ([]model.Job, error) {
	if len(ids) == 0 {
		return []model.Job{}, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT`+jobColumns+`
		 FROM jobs j
		 WHERE j.internal_id = ANY($1)
		 ORDER BY j.internal_id DESC`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("getByIDs query: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetByID returns one job by internal ID, or search.ErrJobNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var j model.Job
	err := s.pool.QueryRow(ctx,
		`SELECT`+jobColumns+`
		 FROM jobs j
		 WHERE j.internal_id = $1`,
		id,
	).Scan(
		&j.InternalID, &j.ExternalID, &j.Title,
		&j.Description, &j.CompanyName,
		&j.Location, &j.WorkType,
		&j.SalaryDescription, &j.DatePosted,
		&j.DateScraped, &j.Source,
		&j.Other, &j.Remark,
		&j.JobClass, &j.JobSubclass,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, search.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getByID query: %w", err)
	}
	return &j, nil
}

// ListJobClasses returns the job_class lookup table, for facet dropdowns.
func (s *Store) ListJobClasses(ctx context.Context) ([]model.FacetValue, error) {
	return s.listFacetValues(ctx, "job_class")
}

// ListSourcePlatforms returns the source_platform lookup table.
func (s *Store) ListSourcePlatforms(ctx context.Context) ([]model.FacetValue, error) {
	return s.listFacetValues(ctx, "source_platform")
}

func (s *Store) listFacetValues(ctx context.Context, table string) ([]model.FacetValue, error) {
	switch table {
	case "job_class", "source_platform":
	default:
		return nil, fmt.Errorf("unsupported facet table %q", table)
	}

	rows, err := s.pool.Query(ctx, `SELECT id, name FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list %s query: %w", table, err)
	}
	defer rows.Close()

	values := make([]model.FacetValue, 0)
	for rows.Next() {
		var v model.FacetValue
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, fmt.Errorf("list %s scan: %w", table, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanJobs(rows pgx.Rows) ([]model.Job, error) {
	jobs := make([]model.Job, 0)
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.InternalID, &j.ExternalID, &j.Title,
			&j.Description, &j.CompanyName,
			&j.Location, &j.WorkType,
			&j.SalaryDescription, &j.DatePosted,
			&j.DateScraped, &j.Source,
			&j.Other, &j.Remark,
			&j.JobClass, &j.JobSubclass,
		); err != nil {
			return nil, fmt.Errorf("job scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
